// SPDX-License-Identifier: MIT
// Package: ragfeat/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context with %w; they never panic at runtime.
//   • Validation panics are confined to option constructors (WithX...).

package builder

import "errors"

// ErrTooSmall indicates a size parameter (width, cell, seed count) below
// its minimum.
var ErrTooSmall = errors.New("builder: parameter too small")

// ErrBadAxis indicates an axis index outside 0..Dims()-1 or a per-axis
// parameter list whose length differs from the grid dimensionality.
var ErrBadAxis = errors.New("builder: axis out of range")

// ErrNeedRandSource indicates a stochastic constructor without WithSeed or
// WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or a nil input grid.
var ErrConstructFailed = errors.New("builder: construction failed")
