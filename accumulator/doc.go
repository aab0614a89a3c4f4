// SPDX-License-Identifier: MIT

// Package accumulator provides per-region and per-boundary statistic
// accumulators fed by a raster sweep.
//
// A Chain tracks the statistics selected by a Select bit set:
//
//	Count      number of samples
//	Mean       arithmetic mean (Welford)
//	StdDev     population standard deviation (implies Mean)
//	MinMax     smallest and largest sample
//	Histogram  fixed- or auto-range histogram (default 40 bins)
//	Quantiles  standard quantiles {0, .1, .25, .5, .75, .9, 1} (implies
//	           Histogram and MinMax)
//	Center     mean coordinate of the samples
//
// Most statistics finish in a single pass. An auto-range histogram needs two:
// pass 1 learns the range, pass 2 bins. PassesRequired reports the number a
// configured Chain needs, and Update enforces that passes never go backwards.
//
// Quantile 0 and 1 are the exact minimum and maximum; interior quantiles are
// interpolated linearly on the cumulative histogram, so their precision is
// bounded by the bin width.
//
// Chains are not safe for concurrent use. Partial chains built on disjoint
// partitions can be combined with Merge.
package accumulator
