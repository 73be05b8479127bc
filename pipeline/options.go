// SPDX-License-Identifier: MIT

package pipeline

import (
	"io"
	"math/rand/v2"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/uzone/core"
	"github.com/katalvlaran/uzone/latency"
	"github.com/katalvlaran/uzone/observed"
	"github.com/katalvlaran/uzone/zone"
)

// Option customizes New.
type Option func(*settings)

type settings struct {
	src       core.Source
	sizer     zone.JumpSizer
	dist      latency.Distribution
	precision int
	log       logrus.FieldLogger
}

func newSettings(opts ...Option) settings {
	s := settings{
		sizer:     zone.ConstantJump(zone.DefaultJumpSize),
		dist:      latency.DefaultBeta(),
		precision: observed.DefaultPrecision,
	}
	for _, opt := range opts {
		opt(&s)
	}
	if s.src == nil {
		s.src = core.ClockSource()
	}
	if s.log == nil {
		s.log = discardLogger()
	}
	return s
}

// WithSource injects the single random stream of the pipeline. Panics on nil.
func WithSource(src core.Source) Option {
	if src == nil {
		panic("pipeline: WithSource(nil)")
	}
	return func(s *settings) {
		s.src = src
	}
}

// WithRand injects a *rand.Rand. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("pipeline: WithRand(nil)")
	}
	return func(s *settings) {
		s.src = r
	}
}

// WithSeed seeds a fresh source.
func WithSeed(seed int64) Option {
	return func(s *settings) {
		s.src = core.NewSource(seed)
	}
}

// WithJumpSizer replaces the jump-size law. Panics on nil.
func WithJumpSizer(j zone.JumpSizer) Option {
	if j == nil {
		panic("pipeline: WithJumpSizer(nil)")
	}
	return func(s *settings) {
		s.sizer = j
	}
}

// WithLatency replaces the latency law used by latency.ModeBeta. Panics on nil.
func WithLatency(d latency.Distribution) Option {
	if d == nil {
		panic("pipeline: WithLatency(nil)")
	}
	return func(s *settings) {
		s.dist = d
	}
}

// WithPrecision sets the tape decimals. Panics on negative.
func WithPrecision(d int) Option {
	if d < 0 {
		panic("pipeline: WithPrecision(d<0)")
	}
	return func(s *settings) {
		s.precision = d
	}
}

// WithLogger routes stage logs to l. Panics on nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("pipeline: WithLogger(nil)")
	}
	return func(s *settings) {
		s.log = l
	}
}

func discardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
