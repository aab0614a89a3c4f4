// SPDX-License-Identifier: MIT

package sweep

import "errors"

var (
	// ErrNilGraph indicates Accumulate was called without a graph.
	ErrNilGraph = errors.New("sweep: graph is nil")

	// ErrNilLabels indicates Accumulate was called without a label grid.
	ErrNilLabels = errors.New("sweep: label grid is nil")

	// ErrUnsupportedDims indicates a grid that is neither 2-D nor 3-D.
	ErrUnsupportedDims = errors.New("sweep: only 2-D and 3-D grids are supported")

	// ErrNodeMapSize indicates a node accumulator map shorter than MaxNodeID()+1.
	ErrNodeMapSize = errors.New("sweep: node accumulator map too small")

	// ErrEdgeMapSize indicates an edge accumulator map shorter than EdgeCount().
	ErrEdgeMapSize = errors.New("sweep: edge accumulator map too small")

	// ErrNilAccumulator indicates a nil accumulator for a registered node or edge.
	ErrNilAccumulator = errors.New("sweep: nil accumulator")
)
