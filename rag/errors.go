// SPDX-License-Identifier: MIT

package rag

import "errors"

// Sentinel errors for region-adjacency graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("rag: node not found")

	// ErrEdgeNotFound indicates that two regions are not registered as adjacent.
	ErrEdgeNotFound = errors.New("rag: edge not found")

	// ErrSelfLoop indicates an edge from a region to itself.
	ErrSelfLoop = errors.New("rag: self-loop not allowed")

	// ErrNodeRange indicates a node id that cannot be a uint32 region label.
	ErrNodeRange = errors.New("rag: node id out of label range")

	// ErrNilLabels indicates FromLabels was called with a nil label grid.
	ErrNilLabels = errors.New("rag: label grid is nil")
)
