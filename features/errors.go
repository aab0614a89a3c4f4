// SPDX-License-Identifier: MIT

package features

import "errors"

var (
	// ErrNilGraph indicates an Extractor built without a graph.
	ErrNilGraph = errors.New("features: graph is nil")

	// ErrNilLabels indicates an Extractor built without a label grid.
	ErrNilLabels = errors.New("features: label grid is nil")

	// ErrNilData indicates an intensity run without a data grid.
	ErrNilData = errors.New("features: data grid is nil")

	// ErrInvalidRange indicates a histogram range with !(min < max) or a
	// non-finite bound.
	ErrInvalidRange = errors.New("features: invalid histogram range")
)
