// SPDX-License-Identifier: MIT
// Package: ragfeat/builder
//
// impl_data.go - additive data constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ragfeat/grid"
)

// Constant adds v to every cell.
func Constant(v float64) DataConstructor {
	return func(vals []float64, _ *grid.Labels, _ builderConfig) error {
		for i := range vals {
			vals[i] += v
		}

		return nil
	}
}

// Ramp adds slope * c[axis] to every cell.
func Ramp(axis int, slope float64) DataConstructor {
	return func(vals []float64, labels *grid.Labels, _ builderConfig) error {
		if axis < 0 || axis >= labels.Dims() {
			return fmt.Errorf("Ramp(axis=%d) on %v: %w", axis, labels.Shape(), ErrBadAxis)
		}
		it := grid.NewIterator(labels.Shape())
		for it.Next() {
			vals[it.Index()] += slope * float64(it.Coord()[axis])
		}

		return nil
	}
}

// Noise adds zero-mean Gaussian noise of standard deviation sigma.
// Requires WithSeed or WithRand.
func Noise(sigma float64) DataConstructor {
	return func(vals []float64, _ *grid.Labels, cfg builderConfig) error {
		if sigma < 0 {
			return fmt.Errorf("Noise(%g): %w", sigma, ErrTooSmall)
		}
		if cfg.rng == nil {
			return fmt.Errorf("Noise(%g): %w", sigma, ErrNeedRandSource)
		}
		for i := range vals {
			vals[i] += cfg.rng.NormFloat64() * sigma
		}

		return nil
	}
}

// PerLabel adds fn(label) to every cell, giving each region its own level.
func PerLabel(fn func(label uint32) float64) DataConstructor {
	return func(vals []float64, labels *grid.Labels, _ builderConfig) error {
		if fn == nil {
			return fmt.Errorf("PerLabel(nil): %w", ErrConstructFailed)
		}
		for i := range vals {
			vals[i] += fn(labels.AtIndex(i))
		}

		return nil
	}
}
