// SPDX-License-Identifier: MIT

package features

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/ragfeat/accumulator"
	"github.com/katalvlaran/ragfeat/grid"
	"github.com/katalvlaran/ragfeat/matrix"
	"github.com/katalvlaran/ragfeat/rag"
)

// Column counts per family.
const (
	NumIntensity   = 9 * numDerived
	NumGeometric   = 21
	NumTopological = 5
)

// Extractor computes edge features of one graph over one label grid.
// It never mutates its inputs and may be used from several goroutines.
type Extractor struct {
	g      *rag.Graph
	labels *grid.Labels
	opts   options
	log    zerolog.Logger
}

// NewExtractor binds a graph to the label grid it was built from.
func NewExtractor(g *rag.Graph, labels *grid.Labels, opts ...Option) (*Extractor, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if labels == nil {
		return nil, ErrNilLabels
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Extractor{
		g:      g,
		labels: labels,
		opts:   o,
		log:    o.log.With().Str("component", "features").Logger(),
	}, nil
}

// EdgeCount returns the number of rows every feature matrix has.
func (x *Extractor) EdgeCount() int { return x.g.EdgeCount() }

// Graph returns the bound graph.
func (x *Extractor) Graph() *rag.Graph { return x.g }

// newMatrix allocates an EdgeCount() × cols matrix.
func (x *Extractor) newMatrix(cols int) (*matrix.Dense, error) {
	return matrix.NewDense(x.g.EdgeCount(), cols)
}

// nodeChains returns a node accumulator map indexed by node id. Only
// registered nodes get a Chain; ids no region uses stay nil, so sparse
// labels cost one pointer per gap instead of a histogram.
func (x *Extractor) nodeChains(sel accumulator.Select, opts ...accumulator.Option) ([]*accumulator.Chain, error) {
	out := make([]*accumulator.Chain, int(x.g.MaxNodeID())+1)
	for _, n := range x.g.Nodes() {
		c, err := accumulator.New(sel, opts...)
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", n, err)
		}
		out[n] = c
	}

	return out, nil
}
