// SPDX-License-Identifier: MIT
// Package: uzone/simulate
//
// options.go: functional options for the path simulator.
//
// Contract:
//   • Options are functional (type Option func(*simConfig)).
//   • Constructors that receive a nil strategy PANIC (programmer error).
//   • Numeric knobs are stored as given and validated by GBM, which reports
//     core.ErrInvalidParameter instead of panicking.
//   • Determinism is explicit: seed with WithSeed, or inject WithRand/WithSource.

package simulate

import (
	"math/rand/v2"

	"github.com/katalvlaran/uzone/core"
)

// Option customizes a simulation run by mutating simConfig before GBM starts.
type Option func(*simConfig)

// WithDrift sets the drift r of the GBM (default 0).
func WithDrift(r float64) Option {
	return func(c *simConfig) {
		c.drift = r
	}
}

// WithHorizon sets the terminal time T (default 1).
func WithHorizon(T float64) Option {
	return func(c *simConfig) {
		c.horizon = T
	}
}

// WithInitialPrice sets x0 (default 100).
func WithInitialPrice(x0 float64) Option {
	return func(c *simConfig) {
		c.x0 = x0
	}
}

// WithSource injects the random stream. Panics on nil.
func WithSource(src core.Source) Option {
	if src == nil {
		panic("simulate: WithSource(nil)")
	}
	return func(c *simConfig) {
		c.src = src
	}
}

// WithRand injects a *rand.Rand. Panics on nil; prefer WithSeed for
// reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("simulate: WithRand(nil)")
	}
	return func(c *simConfig) {
		c.src = r
	}
}

// WithSeed creates a fresh seeded source (deterministic).
func WithSeed(seed int64) Option {
	return func(c *simConfig) {
		c.src = core.NewSource(seed)
	}
}
