// SPDX-License-Identifier: MIT

// Package features computes per-edge feature matrices of a region-adjacency
// graph over a labelled 2-D or 3-D grid.
//
// Three families are available, each returning one row per edge (row index
// equals edge id):
//
//   - Intensity (99 columns): mean, standard deviation and seven standard
//     quantiles of the data on the boundary and in both regions, each
//     expanded into 11 contrast values.
//   - Geometric (21 columns): sizes of boundary and regions, distances
//     between their centres, and log-ratios mixing both.
//   - Topological (5 columns): degree statistics of the endpoints and the
//     number of common neighbours.
//
// Degenerate geometry (zero distances, empty quantities) propagates as
// IEEE-754 Inf/NaN values rather than errors. All runs the three families
// concurrently; each family owns its accumulator maps and shares the inputs
// read-only.
package features
