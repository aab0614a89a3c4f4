// SPDX-License-Identifier: MIT

// Package sweep drives statistic accumulators over a labelled grid.
//
// Accumulate walks the grid in raster order (axis 0 fastest) as many times
// as the accumulators ask for. In every pass each cell feeds the accumulator
// of its region, and each boundary face, a pair of axis-neighbours with
// different labels, feeds the accumulator of the boundary twice: the sample
// on the near side first, then the sample across the face.
//
// The region-adjacency graph is borrowed: it must already contain every
// region and every boundary the grid exhibits. A face whose regions are not
// registered as adjacent aborts the sweep with rag.ErrEdgeNotFound.
package sweep
