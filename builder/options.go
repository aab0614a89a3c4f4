// SPDX-License-Identifier: MIT
// Package: ragfeat/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options mutate builderConfig before any constructor runs.
//   • Option constructors panic on meaningless input (nil rng).
//   • Determinism is explicit: randomness only via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// builderConfig is passed by value to constructors.
type builderConfig struct {
	// rng for stochastic constructors; nil means none.
	rng *rand.Rand
}

// newBuilderConfig applies options in order; last wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a seeded RNG; use it in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}
