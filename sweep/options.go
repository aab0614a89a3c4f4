// SPDX-License-Identifier: MIT

package sweep

import (
	"context"

	"github.com/rs/zerolog"
)

// Option configures Accumulate.
type Option func(*options)

type options struct {
	log zerolog.Logger
	ctx context.Context
}

func defaultOptions() options {
	return options{log: zerolog.Nop(), ctx: context.Background()}
}

// WithLogger sets the logger used for pass-level debug events.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithContext makes the sweep stop between passes once ctx is done.
// Panics on nil.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("sweep: WithContext(nil)")
	}

	return func(o *options) { o.ctx = ctx }
}
