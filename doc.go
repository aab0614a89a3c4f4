// SPDX-License-Identifier: MIT

// Package ragfeat extracts per-edge feature matrices from region-adjacency
// graphs over labelled 2-D and 3-D grids.
//
// A label grid partitions an image or volume into regions; the graph has a
// node per region and an edge per pair of regions that touch along an axis.
// For every edge ragfeat computes three feature families, one matrix row per
// edge:
//
//	intensity    99 columns  boundary vs. region statistics of a data grid
//	geometric    21 columns  sizes and centre distances
//	topological   5 columns  degrees and common neighbours
//
// Packages:
//
//	grid/        - shapes, label and data grids, raster iterator, components
//	rag/         - region-adjacency graph on gonum graph/simple
//	accumulator/ - statistic chains: moments, histogram quantiles, centres
//	sweep/       - multi-pass raster driver feeding node and edge accumulators
//	features/    - the three families, concurrent All, viper config
//	matrix/      - dense row-major feature matrix
//	builder/     - deterministic fixture grids
//
// Quick example:
//
//	labels, _ := grid.LabelsFrom2D([][]uint32{{0, 0, 1}, {0, 0, 1}})
//	g, _ := rag.FromLabels(labels)
//	x, _ := features.NewExtractor(g, labels)
//	topo, _ := x.Topological()
//
// See examples/ for an end-to-end run on a synthetic volume.
package ragfeat
