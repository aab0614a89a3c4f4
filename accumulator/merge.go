// SPDX-License-Identifier: MIT

package accumulator

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Merge folds the samples of other into c, as if c had seen them itself.
// Both chains must share the same selection and histogram configuration; an
// auto-range histogram cannot be merged because its bins depend on each
// partition's own range.
//
// Complexity: O(bins + dims).
func (c *Chain) Merge(other *Chain) error {
	if other == nil || other.n == 0 {
		return nil
	}
	if c.sel != other.sel || c.cfg != other.cfg {
		return fmt.Errorf("Merge(%s, %s): %w", c.sel, other.sel, ErrIncompatible)
	}
	if c.sel.Has(Histogram) && c.cfg.autoRange {
		return fmt.Errorf("Merge auto-range histogram: %w", ErrIncompatible)
	}
	if c.centre != nil && other.centre != nil && len(c.centre) != len(other.centre) {
		return fmt.Errorf("Merge centre %d vs %d axes: %w", len(c.centre), len(other.centre), ErrDimMismatch)
	}

	// Chan et al. pairwise update of mean and M2.
	n := c.n + other.n
	d := other.mean - c.mean
	c.m2 += other.m2 + d*d*c.n*other.n/n
	c.mean += d * other.n / n
	c.n = n

	c.min = math.Min(c.min, other.min)
	c.max = math.Max(c.max, other.max)

	switch {
	case other.centre == nil:
	case c.centre == nil:
		c.centre = append([]float64(nil), other.centre...)
	default:
		floats.Add(c.centre, other.centre)
	}
	if c.hist != nil {
		floats.Add(c.hist, other.hist)
		c.left += other.left
		c.right += other.right
	}
	if other.lastPass > c.lastPass {
		c.lastPass = other.lastPass
	}

	return nil
}
