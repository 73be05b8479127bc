// SPDX-License-Identifier: MIT

package zone

import (
	"math/rand/v2"

	"github.com/katalvlaran/uzone/core"
)

// DefaultJumpSize is the jump size of the reference model.
const DefaultJumpSize = 1

// Option customizes Detect.
type Option func(*detectConfig)

type detectConfig struct {
	sizer JumpSizer
	src   core.Source
}

func newDetectConfig(opts ...Option) detectConfig {
	cfg := detectConfig{sizer: ConstantJump(DefaultJumpSize)}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.src == nil {
		cfg.src = core.ClockSource()
	}
	return cfg
}

// WithJumpSizer replaces the jump-size law. Panics on nil.
func WithJumpSizer(s JumpSizer) Option {
	if s == nil {
		panic("zone: WithJumpSizer(nil)")
	}
	return func(c *detectConfig) {
		c.sizer = s
	}
}

// WithSource injects the stream used by random jump sizers. Panics on nil.
func WithSource(src core.Source) Option {
	if src == nil {
		panic("zone: WithSource(nil)")
	}
	return func(c *detectConfig) {
		c.src = src
	}
}

// WithRand injects a *rand.Rand. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("zone: WithRand(nil)")
	}
	return func(c *detectConfig) {
		c.src = r
	}
}

// WithSeed seeds a fresh source.
func WithSeed(seed int64) Option {
	return func(c *detectConfig) {
		c.src = core.NewSource(seed)
	}
}
