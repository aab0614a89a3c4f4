// SPDX-License-Identifier: MIT

package accumulator

import "math"

// StandardQuantiles is the fixed probability schedule reported by Quantiles.
var StandardQuantiles = [7]float64{0, 0.1, 0.25, 0.5, 0.75, 0.9, 1}

// histRange returns the active histogram range. For an auto-range histogram
// it is the pass-1 extent of the data.
func (c *Chain) histRange() (lo, hi float64) {
	if c.cfg.autoRange {
		return c.min, c.max
	}

	return c.cfg.lo, c.cfg.hi
}

// mapItem maps v to continuous bin coordinates: lo -> 0, hi -> bins.
func (c *Chain) mapItem(v float64) float64 {
	lo, hi := c.histRange()

	return float64(len(c.hist)) * (v - lo) / (hi - lo)
}

func (c *Chain) mapInverse(x float64) float64 {
	lo, hi := c.histRange()

	return lo + x*(hi-lo)/float64(len(c.hist))
}

// bin adds v to its histogram bin. hi itself falls into the last bin; values
// outside [lo, hi] count as left/right outliers and NaN is ignored.
func (c *Chain) bin(v float64) {
	if c.hist == nil || math.IsNaN(v) {
		return
	}
	lo, hi := c.histRange()
	switch {
	case v < lo:
		c.left++
	case v > hi:
		c.right++
	case lo == hi:
		c.hist[0]++
	default:
		i := int(math.Floor(c.mapItem(v)))
		if i >= len(c.hist) {
			i = len(c.hist) - 1
		}
		c.hist[i]++
	}
}

// Histogram returns a copy of the bin counts, nil when not selected.
func (c *Chain) Histogram() []float64 {
	if c.hist == nil {
		return nil
	}
	out := make([]float64, len(c.hist))
	copy(out, c.hist)

	return out
}

// Outliers returns the number of samples below and above the histogram range.
func (c *Chain) Outliers() (left, right float64) { return c.left, c.right }

// Quantiles returns the StandardQuantiles of the samples. Quantile 0 and 1
// are the exact extremes; interior quantiles interpolate linearly between
// keypoints of the cumulative histogram (outliers included). All entries are
// NaN when the chain is empty or Quantiles is not selected.
//
// Complexity: O(bins).
func (c *Chain) Quantiles() [7]float64 {
	var res [7]float64
	if c.n == 0 || !c.sel.Has(Quantiles) {
		for i := range res {
			res[i] = math.NaN()
		}

		return res
	}
	if c.min == c.max {
		for i := range res {
			res[i] = c.min
		}

		return res
	}

	// Stage 1: keypoints (bin coordinates) with cumulative counts.
	keys := []float64{c.mapItem(c.min)}
	cum := []float64{0}
	if c.left > 0 {
		keys = append(keys, 0)
		cum = append(cum, c.left)
	}
	total := c.left
	for k, cnt := range c.hist {
		if cnt <= 0 {
			continue
		}
		if keys[len(keys)-1] <= float64(k) {
			keys = append(keys, float64(k))
			cum = append(cum, total)
		}
		total += cnt
		keys = append(keys, float64(k+1))
		cum = append(cum, total)
	}
	if c.right > 0 {
		keys = append(keys, c.mapItem(c.max))
		cum = append(cum, c.n)
	} else {
		keys[len(keys)-1] = c.mapItem(c.max)
		cum[len(cum)-1] = c.n
	}

	// Stage 2: walk the keypoints once for the interior quantiles.
	res[0], res[len(res)-1] = c.min, c.max
	q, end := 1, len(res)-1
	point := 0
	for q < end {
		if point+1 >= len(cum) {
			res[q] = c.max
			q++

			continue
		}
		want := c.n * StandardQuantiles[q]
		if cum[point] < want && cum[point+1] >= want {
			t := (want - cum[point]) / (cum[point+1] - cum[point]) * (keys[point+1] - keys[point])
			res[q] = c.mapInverse(keys[point] + t)
			q++
		} else {
			point++
		}
	}

	return res
}
