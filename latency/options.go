// SPDX-License-Identifier: MIT

package latency

import (
	"math/rand/v2"

	"github.com/katalvlaran/uzone/core"
)

// Option customizes Sample.
type Option func(*sampleConfig)

type sampleConfig struct {
	mode Mode
	dist Distribution
	src  core.Source
}

func newSampleConfig(opts ...Option) sampleConfig {
	cfg := sampleConfig{
		mode: DefaultMode,
		dist: DefaultBeta(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.src == nil {
		cfg.src = core.ClockSource()
	}
	return cfg
}

// WithMode selects the posting mode. Unknown modes are reported by Sample.
func WithMode(m Mode) Option {
	return func(c *sampleConfig) {
		c.mode = m
	}
}

// WithDistribution replaces the latency law used by ModeBeta. Panics on nil.
func WithDistribution(d Distribution) Option {
	if d == nil {
		panic("latency: WithDistribution(nil)")
	}
	return func(c *sampleConfig) {
		c.dist = d
	}
}

// WithSource injects the random stream. Panics on nil.
func WithSource(src core.Source) Option {
	if src == nil {
		panic("latency: WithSource(nil)")
	}
	return func(c *sampleConfig) {
		c.src = src
	}
}

// WithRand injects a *rand.Rand. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("latency: WithRand(nil)")
	}
	return func(c *sampleConfig) {
		c.src = r
	}
}

// WithSeed seeds a fresh source.
func WithSeed(seed int64) Option {
	return func(c *sampleConfig) {
		c.src = core.NewSource(seed)
	}
}
