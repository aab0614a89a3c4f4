// SPDX-License-Identifier: MIT

package grid

import "errors"

var (
	// ErrEmptyGrid indicates a shape with no axes or no cells.
	ErrEmptyGrid = errors.New("grid: grid must have at least one axis and one cell")
	// ErrBadShape indicates a non-positive axis extent.
	ErrBadShape = errors.New("grid: every axis extent must be > 0")
	// ErrDataLength indicates a flat buffer whose length differs from the shape size.
	ErrDataLength = errors.New("grid: value count does not match shape")
	// ErrNonRectangular indicates rows (or planes) of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrShapeMismatch indicates label and data grids of different shapes.
	ErrShapeMismatch = errors.New("grid: label and data shapes differ")
)
