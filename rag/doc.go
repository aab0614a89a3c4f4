// SPDX-License-Identifier: MIT

// Package rag implements the region-adjacency graph (RAG) that feature
// extraction reads from and accumulates into.
//
// Model:
//
//   - A Node is a region and its id IS the region label, so lookups from a
//     label grid need no translation table. Node ids may be sparse;
//     MaxNodeID()+1 sizes dense per-node arrays.
//   - An Edge is an unordered pair of distinct adjacent regions with a dense
//     id 0..EdgeCount()-1 assigned in insertion order; per-edge arrays are
//     indexed by it directly.
//   - Adjacency (Degree, Neighbors, Components) is stored in a gonum
//     simple.UndirectedGraph, exposed read-only through Undirected() so any
//     gonum graph algorithm can run on a RAG.
//
// Construction:
//
//   - New + AddNode/AddEdge for callers that own their own graph building.
//   - FromLabels builds the RAG of a label grid using forward (positive
//     axis) neighbours, the same rule the sweep driver uses.
//
// Errors:
//
//   - ErrNodeNotFound: label/node not registered.
//   - ErrEdgeNotFound: adjacency not registered.
//   - ErrSelfLoop:     an edge from a region to itself.
//   - ErrNodeRange:    node id outside [0, 2^32).
//   - ErrNilLabels:    FromLabels called with nil.
package rag
