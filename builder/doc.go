// SPDX-License-Identifier: MIT

// Package builder assembles deterministic label and data grids for tests,
// benchmarks and demos.
//
// Label grids are produced by BuildLabels from a shape and an ordered list of
// label constructors (Stripes, Blocks, Checkerboard, Voronoi); later
// constructors overwrite earlier ones. Data grids are produced by BuildData
// over an existing label grid from additive data constructors (Constant,
// Ramp, Noise, PerLabel), so a ramp plus noise is simply Ramp(...), Noise(...).
//
// Stochastic constructors (Voronoi, Noise) need a seeded source:
//
//	labels, err := builder.BuildLabels(grid.Shape{32, 32, 16},
//		[]builder.BuilderOption{builder.WithSeed(42)},
//		builder.Voronoi(12))
//
// Same inputs, options and seed always give identical grids.
package builder
