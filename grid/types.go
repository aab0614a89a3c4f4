// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"strings"
)

// Shape is the extent of every axis. Axis 0 varies fastest in raster order.
type Shape []int

// Coord is a position inside a Shape, one entry per axis.
type Coord []int

// Dims returns the number of axes.
func (s Shape) Dims() int { return len(s) }

// Size returns the number of cells (product of extents).
// Complexity: O(N).
func (s Shape) Size() int {
	if len(s) == 0 {
		return 0
	}
	n := 1
	for _, e := range s {
		n *= e
	}

	return n
}

// Validate reports ErrEmptyGrid for a shape without axes and ErrBadShape
// for any non-positive extent.
func (s Shape) Validate() error {
	if len(s) == 0 {
		return ErrEmptyGrid
	}
	for d, e := range s {
		if e <= 0 {
			return fmt.Errorf("axis %d extent %d: %w", d, e, ErrBadShape)
		}
	}

	return nil
}

// Equal reports whether both shapes have the same axes and extents.
func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for d := range s {
		if s[d] != o[d] {
			return false
		}
	}

	return true
}

// Clone returns an independent copy of s.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	copy(out, s)

	return out
}

// Strides returns the flat-index step of each axis: strides[0] == 1 and
// strides[d] == strides[d-1]*s[d-1].
// Complexity: O(N).
func (s Shape) Strides() []int {
	st := make([]int, len(s))
	step := 1
	for d := range s {
		st[d] = step
		step *= s[d]
	}

	return st
}

// InBounds reports whether every component of c lies in [0, s[d]).
// Complexity: O(N).
func (s Shape) InBounds(c Coord) bool {
	if len(c) != len(s) {
		return false
	}
	for d := range s {
		if c[d] < 0 || c[d] >= s[d] {
			return false
		}
	}

	return true
}

// Index maps c to its flat raster index: c[0] + s[0]*(c[1] + s[1]*(...)).
// The caller guarantees InBounds(c).
// Complexity: O(N).
func (s Shape) Index(c Coord) int {
	idx := 0
	for d := len(s) - 1; d >= 0; d-- {
		idx = idx*s[d] + c[d]
	}

	return idx
}

// Coordinate converts a flat raster index back to a Coord, writing into dst
// when it has the right length and allocating otherwise.
// Complexity: O(N).
func (s Shape) Coordinate(idx int, dst Coord) Coord {
	if len(dst) != len(s) {
		dst = make(Coord, len(s))
	}
	for d := range s {
		dst[d] = idx % s[d]
		idx /= s[d]
	}

	return dst
}

// String renders the shape as "4x3x2".
func (s Shape) String() string {
	parts := make([]string, len(s))
	for d, e := range s {
		parts[d] = fmt.Sprint(e)
	}

	return strings.Join(parts, "x")
}

// Clone returns an independent copy of c.
func (c Coord) Clone() Coord {
	out := make(Coord, len(c))
	copy(out, c)

	return out
}
