// SPDX-License-Identifier: MIT

package features

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/ragfeat/accumulator"
)

// Option configures an Extractor.
type Option func(*options)

type options struct {
	log        zerolog.Logger
	bins       int
	concurrent bool
}

func defaultOptions() options {
	return options{
		log:        zerolog.Nop(),
		bins:       accumulator.DefaultBinCount,
		concurrent: true,
	}
}

// WithLogger sets the logger for family-level events.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithBinCount sets the histogram resolution of intensity quantiles.
// Panics when n < 1.
func WithBinCount(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("features: WithBinCount(%d)", n))
	}

	return func(o *options) { o.bins = n }
}

// WithConcurrent toggles concurrent execution of the families in All.
func WithConcurrent(on bool) Option {
	return func(o *options) { o.concurrent = on }
}
