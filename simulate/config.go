// SPDX-License-Identifier: MIT

package simulate

import (
	"github.com/katalvlaran/uzone/core"
)

// Deterministic defaults.
const (
	DefaultDrift        = 0.0
	DefaultHorizon      = 1.0
	DefaultInitialPrice = 100.0
)

// simConfig aggregates the knobs of one GBM run.
type simConfig struct {
	drift   float64
	horizon float64
	x0      float64
	src     core.Source // nil until resolved
}

// newSimConfig applies opts over the defaults; last option wins. A missing
// source is resolved to a clock-seeded one.
func newSimConfig(opts ...Option) simConfig {
	cfg := simConfig{
		drift:   DefaultDrift,
		horizon: DefaultHorizon,
		x0:      DefaultInitialPrice,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.src == nil {
		cfg.src = core.ClockSource()
	}

	return cfg
}
