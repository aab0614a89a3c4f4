// SPDX-License-Identifier: MIT
// Package: ragfeat/builder
//
// impl_labels.go - label constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ragfeat/grid"
)

// Stripes labels slabs of width cells along axis: label = c[axis] / width.
func Stripes(axis, width int) LabelConstructor {
	return func(vals []uint32, shape grid.Shape, _ builderConfig) error {
		if axis < 0 || axis >= len(shape) {
			return fmt.Errorf("Stripes(axis=%d) on %v: %w", axis, shape, ErrBadAxis)
		}
		if width < 1 {
			return fmt.Errorf("Stripes(width=%d): %w", width, ErrTooSmall)
		}
		it := grid.NewIterator(shape)
		for it.Next() {
			vals[it.Index()] = uint32(it.Coord()[axis] / width)
		}

		return nil
	}
}

// Blocks tiles the grid with boxes of size[d] cells per axis. Boxes are
// numbered in raster order of their corner.
func Blocks(size ...int) LabelConstructor {
	return func(vals []uint32, shape grid.Shape, _ builderConfig) error {
		if len(size) != len(shape) {
			return fmt.Errorf("Blocks(%v) on %v: %w", size, shape, ErrBadAxis)
		}
		per := make([]int, len(shape)) // boxes per axis
		for d, s := range size {
			if s < 1 {
				return fmt.Errorf("Blocks(%v): %w", size, ErrTooSmall)
			}
			per[d] = (shape[d] + s - 1) / s
		}
		it := grid.NewIterator(shape)
		for it.Next() {
			c := it.Coord()
			id, stride := 0, 1
			for d := range c {
				id += (c[d] / size[d]) * stride
				stride *= per[d]
			}
			vals[it.Index()] = uint32(id)
		}

		return nil
	}
}

// Checkerboard alternates labels 0 and 1 over cubes of cell cells.
func Checkerboard(cell int) LabelConstructor {
	return func(vals []uint32, shape grid.Shape, _ builderConfig) error {
		if cell < 1 {
			return fmt.Errorf("Checkerboard(%d): %w", cell, ErrTooSmall)
		}
		it := grid.NewIterator(shape)
		for it.Next() {
			sum := 0
			for _, x := range it.Coord() {
				sum += x / cell
			}
			vals[it.Index()] = uint32(sum % 2)
		}

		return nil
	}
}

// Voronoi drops k random seed cells and labels every cell with the index of
// its nearest seed (squared Euclidean distance, lowest index on ties).
// Requires WithSeed or WithRand. Coinciding seeds leave label gaps; use
// grid.RelabelComponents when dense, connected labels are needed.
// Complexity: O(V·k).
func Voronoi(k int) LabelConstructor {
	return func(vals []uint32, shape grid.Shape, cfg builderConfig) error {
		if k < 1 {
			return fmt.Errorf("Voronoi(%d): %w", k, ErrTooSmall)
		}
		if cfg.rng == nil {
			return fmt.Errorf("Voronoi(%d): %w", k, ErrNeedRandSource)
		}
		seeds := make([]grid.Coord, k)
		for i := range seeds {
			s := make(grid.Coord, len(shape))
			for d := range s {
				s[d] = cfg.rng.Intn(shape[d])
			}
			seeds[i] = s
		}
		it := grid.NewIterator(shape)
		for it.Next() {
			c := it.Coord()
			best, bestD := 0, -1
			for i, s := range seeds {
				dist := 0
				for d := range c {
					x := c[d] - s[d]
					dist += x * x
				}
				if bestD < 0 || dist < bestD {
					best, bestD = i, dist
				}
			}
			vals[it.Index()] = uint32(best)
		}

		return nil
	}
}
