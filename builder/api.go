// SPDX-License-Identifier: MIT
// Package: ragfeat/builder
//
// api.go - public entry points.
//
// Design contract:
//   - Two orchestrators: BuildLabels and BuildData. Each resolves the config
//     once and runs its constructors in order.
//   - Constructors validate early and return sentinel errors.
//   - Determinism: same shape, options, seed and constructor order give
//     identical grids.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ragfeat/grid"
)

// LabelConstructor writes labels into vals, a flat grid of the given shape
// in raster order (axis 0 fastest).
type LabelConstructor func(vals []uint32, shape grid.Shape, cfg builderConfig) error

// DataConstructor adds a contribution to vals. labels is the label grid the
// data is built for.
type DataConstructor func(vals []float64, labels *grid.Labels, cfg builderConfig) error

// BuildLabels creates a zero-filled label grid of shape and applies cons in
// order. Constructor errors are wrapped with "BuildLabels: %w".
// Complexity: O(V) per constructor for V cells, except Voronoi (O(V·k)).
func BuildLabels(shape grid.Shape, bopts []BuilderOption, cons ...LabelConstructor) (*grid.Labels, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("BuildLabels: %w", err)
	}
	cfg := newBuilderConfig(bopts...)
	vals := make([]uint32, shape.Size())
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildLabels: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(vals, shape, cfg); err != nil {
			return nil, fmt.Errorf("BuildLabels: %w", err)
		}
	}

	return grid.NewLabels(shape, vals)
}

// BuildData creates a zero data grid shaped like labels and applies cons in
// order; contributions add up.
func BuildData(labels *grid.Labels, bopts []BuilderOption, cons ...DataConstructor) (*grid.Data, error) {
	if labels == nil {
		return nil, fmt.Errorf("BuildData: nil labels: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	vals := make([]float64, labels.Len())
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildData: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(vals, labels, cfg); err != nil {
			return nil, fmt.Errorf("BuildData: %w", err)
		}
	}

	return grid.NewData(labels.Shape(), vals)
}
