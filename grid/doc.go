// SPDX-License-Identifier: MIT

// Package grid stores N-dimensional label and data grids and walks them in
// raster order.
//
// What:
//
//   - Shape/Coord describe an N-d extent; axis 0 varies fastest, so the flat
//     index of (x, y, z) is x + W·(y + H·z).
//   - Labels holds one uint32 region id per cell; Data holds one float64
//     sample per cell. Both are immutable once built.
//   - Iterator is an odometer over a Shape that replaces per-dimension loop
//     nests with one dimension-generic loop.
//   - ConnectedComponents/RelabelComponents split a label grid into
//     axis-connected regions.
//
// Why:
//
//   - Region-adjacency feature extraction needs one sweep driver for 2-D
//     images and 3-D volumes alike.
//   - Dense flat storage keeps the hot sweep allocation-free.
//
// Complexity:
//
//   - Iterator.Next: O(1) amortized, Memory: O(N).
//   - ConnectedComponents: O(V·N), Memory: O(V)   (V = cells, N = dims).
//
// Errors:
//
//   - ErrEmptyGrid: shape has no axes or zero cells.
//   - ErrBadShape: an axis extent is not positive.
//   - ErrDataLength: flat values do not match the shape's cell count.
//   - ErrNonRectangular: nested 2-D/3-D input is ragged.
//   - ErrShapeMismatch: label and data grids differ in shape.
package grid
