// SPDX-License-Identifier: MIT

package accumulator

import "fmt"

// DefaultBinCount is the histogram resolution used when WithBinCount is absent.
const DefaultBinCount = 40

// Option customizes a Chain before its first update.
type Option func(*config)

type config struct {
	bins      int
	lo, hi    float64
	hasRange  bool
	autoRange bool
}

func defaultConfig() config {
	return config{bins: DefaultBinCount}
}

// WithBinCount sets the number of histogram bins. Panics when n < 1.
func WithBinCount(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("accumulator: WithBinCount(%d)", n))
	}

	return func(c *config) { c.bins = n }
}

// WithRange fixes the histogram range to [lo, hi]. Samples outside it are
// counted as outliers. The range is validated by New/Configure.
func WithRange(lo, hi float64) Option {
	return func(c *config) {
		c.lo, c.hi = lo, hi
		c.hasRange = true
		c.autoRange = false
	}
}

// WithAutoRange makes the histogram learn its range from the data in pass 1
// and bin in pass 2.
func WithAutoRange() Option {
	return func(c *config) {
		c.autoRange = true
		c.hasRange = false
	}
}
