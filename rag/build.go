// SPDX-License-Identifier: MIT

package rag

import (
	"fmt"

	"github.com/katalvlaran/ragfeat/grid"
)

// FromLabels builds the region-adjacency graph of a label grid.
//
// Behavior:
//  1. Register every distinct label as a node (ascending order).
//  2. Sweep the grid in raster order; for each cell and each positive axis
//     direction, register an edge when the forward neighbour carries a
//     different label.
//
// Edge ids therefore follow the raster position of each boundary's first
// face. Works for any number of axes.
//
// Complexity: O(V·N) time, O(K + E) memory.
func FromLabels(labels *grid.Labels) (*Graph, error) {
	if labels == nil {
		return nil, ErrNilLabels
	}
	g := New()
	for _, l := range labels.Unique() {
		if err := g.AddNode(Node(l)); err != nil {
			return nil, fmt.Errorf("FromLabels: %w", err)
		}
	}

	shape := labels.Shape()
	strides := labels.Strides()
	it := grid.NewIterator(shape)
	for it.Next() {
		c, i := it.Coord(), it.Index()
		u := labels.AtIndex(i)
		for d := range shape {
			if c[d]+1 >= shape[d] {
				continue
			}
			v := labels.AtIndex(i + strides[d])
			if u == v {
				continue
			}
			if _, err := g.AddEdge(Node(u), Node(v)); err != nil {
				return nil, fmt.Errorf("FromLabels: %w", err)
			}
		}
	}

	return g, nil
}
