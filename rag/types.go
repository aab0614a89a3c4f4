// SPDX-License-Identifier: MIT

package rag

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

// Node identifies a region; its value equals the region label.
type Node int64

// Edge is the dense id of a region boundary, 0..EdgeCount()-1.
type Edge int

// maxNode is the largest node id representable as a uint32 label.
const maxNode = Node(^uint32(0))

// ragEdge is the gonum edge stored in the adjacency graph. It carries the
// dense edge id so gonum-side consumers can map back with EdgeID.
type ragEdge struct {
	f, t simple.Node
	id   Edge
}

var _ graph.Edge = ragEdge{}

func (e ragEdge) From() graph.Node         { return e.f }
func (e ragEdge) To() graph.Node           { return e.t }
func (e ragEdge) ReversedEdge() graph.Edge { return ragEdge{f: e.t, t: e.f, id: e.id} }

// EdgeID recovers the dense edge id from an edge obtained through
// Undirected(). ok is false for edges that did not come from a RAG.
func EdgeID(e graph.Edge) (id Edge, ok bool) {
	re, ok := e.(ragEdge)
	if !ok {
		return -1, false
	}

	return re.id, true
}

// pairKey packs an unordered node pair (min, max) into one map key.
func pairKey(u, v Node) uint64 {
	if u > v {
		u, v = v, u
	}

	return uint64(u)<<32 | uint64(v)
}
