// SPDX-License-Identifier: MIT

package sweep

import (
	"fmt"
	"reflect"
	"time"

	"github.com/katalvlaran/ragfeat/accumulator"
	"github.com/katalvlaran/ragfeat/grid"
	"github.com/katalvlaran/ragfeat/rag"
)

// Accumulate populates node and edge accumulator maps from one grid.
//
// nodes is indexed by node id (len >= MaxNodeID()+1), edges by edge id
// (len >= EdgeCount()). data may be nil, in which case every update is a
// data-free UpdateCoord. The coordinate handed to an accumulator is only
// valid for the duration of the call.
//
// Pass plan: P_node is the requirement of the first registered node's
// accumulator, P_edge that of edge 0 (0 without edges); P = max of both.
// In pass p (1-based) nodes are updated while p <= P_node and edges while
// p <= P_edge. At least one pass always runs, and it checks every cell label
// and every boundary face against the graph, so a graph with no edges (or no
// nodes) still fails on a grid that has them.
//
// Errors: ErrNilGraph, ErrNilLabels, grid.ErrShapeMismatch,
// ErrUnsupportedDims, ErrNodeMapSize, ErrEdgeMapSize, ErrNilAccumulator,
// rag.ErrNodeNotFound, rag.ErrEdgeNotFound, context errors and any error an
// accumulator returns. All are fatal; maps may be partially updated.
//
// Complexity: O(P·V·N) time for V cells and N axes, O(N) extra memory.
func Accumulate[N, E accumulator.Accumulator](
	g *rag.Graph, labels *grid.Labels, data *grid.Data,
	nodes []N, edges []E, opts ...Option,
) error {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := validate(g, labels, data, nodes, edges); err != nil {
		return fmt.Errorf("Accumulate: %w", err)
	}

	nodePasses, edgePasses := 0, 0
	if ns := g.Nodes(); len(ns) > 0 {
		nodePasses = nodes[ns[0]].PassesRequired()
	}
	if g.EdgeCount() > 0 {
		edgePasses = edges[0].PassesRequired()
	}
	// Pass 1 always runs: it resolves every label and every boundary face
	// against the graph even when no accumulator needs the data.
	passes := max(1, nodePasses, edgePasses)

	log := o.log.With().Str("component", "sweep").Logger()
	log.Debug().
		Int("passes", passes).
		Int("node_passes", nodePasses).
		Int("edge_passes", edgePasses).
		Int("dims", labels.Dims()).
		Msg("pass plan")

	s := sweeper[N, E]{
		g: g, labels: labels, data: data,
		nodes: nodes, edges: edges,
		shape:   labels.Shape(),
		strides: labels.Strides(),
		next:    make(grid.Coord, labels.Dims()),
	}
	for p := 1; p <= passes; p++ {
		if err := o.ctx.Err(); err != nil {
			return fmt.Errorf("Accumulate pass %d: %w", p, err)
		}
		start := time.Now()
		if err := s.pass(p, p == 1, p <= nodePasses, p <= edgePasses); err != nil {
			return fmt.Errorf("Accumulate pass %d: %w", p, err)
		}
		log.Debug().Int("pass", p).Dur("elapsed", time.Since(start)).Msg("pass done")
	}

	return nil
}

func validate[N, E accumulator.Accumulator](
	g *rag.Graph, labels *grid.Labels, data *grid.Data, nodes []N, edges []E,
) error {
	if g == nil {
		return ErrNilGraph
	}
	if labels == nil {
		return ErrNilLabels
	}
	if err := grid.CheckSameShape(labels, data); err != nil {
		return err
	}
	if d := labels.Dims(); d != 2 && d != 3 {
		return fmt.Errorf("%d axes: %w", d, ErrUnsupportedDims)
	}
	if need := int(g.MaxNodeID()) + 1; len(nodes) < need {
		return fmt.Errorf("len %d, need %d: %w", len(nodes), need, ErrNodeMapSize)
	}
	if need := g.EdgeCount(); len(edges) < need {
		return fmt.Errorf("len %d, need %d: %w", len(edges), need, ErrEdgeMapSize)
	}
	for _, n := range g.Nodes() {
		if isNil(nodes[n]) {
			return fmt.Errorf("node %d: %w", n, ErrNilAccumulator)
		}
	}
	for e := 0; e < g.EdgeCount(); e++ {
		if isNil(edges[e]) {
			return fmt.Errorf("edge %d: %w", e, ErrNilAccumulator)
		}
	}

	return nil
}

// isNil catches both a nil interface and a typed nil pointer.
func isNil(a any) bool {
	if a == nil {
		return true
	}
	v := reflect.ValueOf(a)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}

	return false
}

type sweeper[N, E accumulator.Accumulator] struct {
	g      *rag.Graph
	labels *grid.Labels
	data   *grid.Data
	nodes  []N
	edges  []E

	shape   grid.Shape
	strides []int
	next    grid.Coord // scratch coordinate of the forward neighbour
}

// pass runs one raster sweep. With check set, labels and faces are resolved
// against the graph even when their accumulators are not fed.
func (s *sweeper[N, E]) pass(p int, check, doNodes, doEdges bool) error {
	it := grid.NewIterator(s.shape)
	for it.Next() {
		c, i := it.Coord(), it.Index()
		u := rag.Node(s.labels.AtIndex(i))
		if check || doNodes {
			if !s.g.HasNode(u) {
				return fmt.Errorf("cell %v label %d: %w", c, u, rag.ErrNodeNotFound)
			}
		}
		if doNodes {
			if err := s.feed(s.nodes[u], i, c, p); err != nil {
				return fmt.Errorf("node %d: %w", u, err)
			}
		}
		if !check && !doEdges {
			continue
		}
		for d := range s.shape {
			if c[d]+1 >= s.shape[d] {
				continue
			}
			j := i + s.strides[d]
			v := rag.Node(s.labels.AtIndex(j))
			if u == v {
				continue
			}
			e, err := s.g.FindEdge(u, v)
			if err != nil {
				return fmt.Errorf("face %v axis %d: %w", c, d, err)
			}
			if !doEdges {
				continue
			}
			copy(s.next, c)
			s.next[d]++
			if err := s.feed(s.edges[e], i, c, p); err != nil {
				return fmt.Errorf("edge %d: %w", e, err)
			}
			if err := s.feed(s.edges[e], j, s.next, p); err != nil {
				return fmt.Errorf("edge %d: %w", e, err)
			}
		}
	}

	return nil
}

func (s *sweeper[N, E]) feed(a accumulator.Accumulator, i int, c grid.Coord, p int) error {
	if s.data == nil {
		return a.UpdateCoord(c, p)
	}

	return a.Update(s.data.AtIndex(i), c, p)
}
