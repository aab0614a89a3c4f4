// SPDX-License-Identifier: MIT

package accumulator

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/ragfeat/grid"
)

// Accumulator is what the sweep driver feeds. Implementations declare how
// many raster passes they need and receive every sample of every pass.
type Accumulator interface {
	// PassesRequired returns the number of sweeps needed, >= 1.
	PassesRequired() int
	// Update feeds one sample with its coordinate during pass (1-based).
	Update(v float64, c grid.Coord, pass int) error
	// UpdateCoord feeds a coordinate only, for data-free statistics.
	UpdateCoord(c grid.Coord, pass int) error
}

var _ Accumulator = (*Chain)(nil)

// Chain accumulates the statistics chosen by a Select set.
// The zero value is not usable; build it with New or Configure.
type Chain struct {
	sel Select
	cfg config

	lastPass int

	n        float64
	mean, m2 float64
	min, max float64
	centre   []float64 // coordinate sums

	hist        []float64
	left, right float64 // outlier counts
}

// New returns a Chain tracking sel (plus its dependencies).
// Errors: ErrNoRange, ErrInvalidRange.
func New(sel Select, opts ...Option) (*Chain, error) {
	c := new(Chain)
	if err := c.Configure(sel, opts...); err != nil {
		return nil, err
	}

	return c, nil
}

// NewMap returns n identically configured chains, the dense accumulator map
// the driver expects.
func NewMap(n int, sel Select, opts ...Option) ([]*Chain, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewMap(%d): negative size", n)
	}
	out := make([]*Chain, n)
	for i := range out {
		c, err := New(sel, opts...)
		if err != nil {
			return nil, fmt.Errorf("NewMap: %w", err)
		}
		out[i] = c
	}

	return out, nil
}

// Configure resets c and applies a new configuration.
func (c *Chain) Configure(sel Select, opts ...Option) error {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	sel = sel.closure()
	if sel.Has(Histogram) {
		switch {
		case cfg.hasRange:
			if !validRange(cfg.lo, cfg.hi) {
				return fmt.Errorf("Configure [%g, %g]: %w", cfg.lo, cfg.hi, ErrInvalidRange)
			}
		case !cfg.autoRange:
			return fmt.Errorf("Configure(%s): %w", sel, ErrNoRange)
		}
		if cfg.autoRange {
			sel |= MinMax
		}
	}
	*c = Chain{sel: sel, cfg: cfg}
	c.Reset()

	return nil
}

// Reset clears all accumulated state but keeps the configuration.
func (c *Chain) Reset() {
	c.lastPass = 0
	c.n, c.mean, c.m2 = 0, 0, 0
	c.min, c.max = math.Inf(1), math.Inf(-1)
	c.centre = nil
	c.left, c.right = 0, 0
	if c.sel.Has(Histogram) {
		c.hist = make([]float64, c.cfg.bins)
	} else {
		c.hist = nil
	}
}

// Selected returns the effective statistic set, dependencies included.
func (c *Chain) Selected() Select { return c.sel }

// PassesRequired is 2 for an auto-range histogram, 1 otherwise.
func (c *Chain) PassesRequired() int {
	if c.sel.Has(Histogram) && c.cfg.autoRange {
		return 2
	}

	return 1
}

func (c *Chain) enterPass(pass int) error {
	if pass < 1 || pass > c.PassesRequired() {
		return fmt.Errorf("pass %d of %d: %w", pass, c.PassesRequired(), ErrPassRange)
	}
	if pass < c.lastPass {
		return fmt.Errorf("pass %d after %d: %w", pass, c.lastPass, ErrPassOrder)
	}
	c.lastPass = pass

	return nil
}

// Update feeds sample v at coordinate c (c may be nil when Center is not
// selected).
func (c *Chain) Update(v float64, coord grid.Coord, pass int) error {
	if err := c.enterPass(pass); err != nil {
		return err
	}
	if pass == 2 {
		c.bin(v)

		return nil
	}
	if err := c.addCoord(coord); err != nil {
		return err
	}
	c.n++
	if c.sel.Has(Mean) {
		// Welford
		d := v - c.mean
		c.mean += d / c.n
		c.m2 += d * (v - c.mean)
	}
	if v < c.min {
		c.min = v
	}
	if v > c.max {
		c.max = v
	}
	if c.sel.Has(Histogram) && !c.cfg.autoRange {
		c.bin(v)
	}

	return nil
}

// UpdateCoord feeds a coordinate without a value. It fails with ErrNoValue
// when c tracks any value statistic.
func (c *Chain) UpdateCoord(coord grid.Coord, pass int) error {
	if c.sel&(Mean|StdDev|MinMax|Histogram|Quantiles) != 0 {
		return fmt.Errorf("UpdateCoord(%s): %w", c.sel, ErrNoValue)
	}
	if err := c.enterPass(pass); err != nil {
		return err
	}
	if err := c.addCoord(coord); err != nil {
		return err
	}
	c.n++

	return nil
}

func (c *Chain) addCoord(coord grid.Coord) error {
	if !c.sel.Has(Center) {
		return nil
	}
	if c.centre == nil {
		c.centre = make([]float64, len(coord))
	} else if len(coord) != len(c.centre) {
		return fmt.Errorf("coordinate %v vs %d axes: %w", coord, len(c.centre), ErrDimMismatch)
	}
	for i, x := range coord {
		c.centre[i] += float64(x)
	}

	return nil
}

// Count returns the number of samples seen in pass 1.
func (c *Chain) Count() float64 { return c.n }

// Mean returns the sample mean, NaN when empty or not selected.
func (c *Chain) Mean() float64 {
	if c.n == 0 || !c.sel.Has(Mean) {
		return math.NaN()
	}

	return c.mean
}

// Variance returns the population variance, NaN when empty or not selected.
func (c *Chain) Variance() float64 {
	if c.n == 0 || !c.sel.Has(StdDev) {
		return math.NaN()
	}

	return c.m2 / c.n
}

// StdDev returns the population standard deviation.
func (c *Chain) StdDev() float64 { return math.Sqrt(c.Variance()) }

// Min returns the smallest sample, NaN when empty or not selected.
func (c *Chain) Min() float64 {
	if c.n == 0 || !c.sel.Has(MinMax) {
		return math.NaN()
	}

	return c.min
}

// Max returns the largest sample, NaN when empty or not selected.
func (c *Chain) Max() float64 {
	if c.n == 0 || !c.sel.Has(MinMax) {
		return math.NaN()
	}

	return c.max
}

// Center returns the mean coordinate, nil when empty or not selected.
func (c *Chain) Center() []float64 {
	if c.n == 0 || c.centre == nil {
		return nil
	}
	out := make([]float64, len(c.centre))
	copy(out, c.centre)
	floats.Scale(1/c.n, out)

	return out
}

func validRange(lo, hi float64) bool {
	return !math.IsNaN(lo) && !math.IsNaN(hi) &&
		!math.IsInf(lo, 0) && !math.IsInf(hi, 0) && lo < hi
}
