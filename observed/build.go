// SPDX-License-Identifier: MIT
// Package: uzone/observed
//
// build.go: slot-based forward fill of the observed tape.
//
// Contract:
//   • Build(n, seq, jumpIndex, opts...) → ObservedPath of length n.
//   • Every slot is set before return; a leftover unset slot is reported as
//     core.ErrState rather than returned as a zero price.
//   • Inputs are never mutated.

package observed

import (
	"math"

	"github.com/katalvlaran/uzone/core"
)

// MethodBuild is the canonical name used in Build errors.
const MethodBuild = "Build"

// DefaultPrecision is the number of decimals kept on the tape.
const DefaultPrecision = 2

// Option customizes Build.
type Option func(*buildConfig)

type buildConfig struct {
	precision int
}

// WithPrecision sets the number of decimals kept (≥ 0). Panics on negative.
func WithPrecision(d int) Option {
	if d < 0 {
		panic("observed: WithPrecision(d<0)")
	}
	return func(c *buildConfig) {
		c.precision = d
	}
}

// slot is one tape entry during construction.
type slot struct {
	value float64
	set   bool
}

// Build places Levels[j] at jumpIndex[j], forward-fills the gaps and rounds.
func Build(n int, seq core.CrossingSequence, jumpIndex []int, opts ...Option) (core.ObservedPath, error) {
	if seq.Len() == 0 {
		return nil, core.Errorf(MethodBuild, core.ErrState, "crossing sequence not computed")
	}
	if n < 1 {
		return nil, core.Errorf(MethodBuild, core.ErrInvalidParameter, "n must be ≥ 1, got %d", n)
	}
	if len(seq.Levels) != seq.Len() {
		return nil, core.Errorf(MethodBuild, core.ErrInvalidParameter,
			"levels/tau length mismatch %d != %d", len(seq.Levels), seq.Len())
	}
	if len(jumpIndex) != seq.Intervals() {
		return nil, core.Errorf(MethodBuild, core.ErrInvalidParameter,
			"need %d jump indices, got %d", seq.Intervals(), len(jumpIndex))
	}

	cfg := buildConfig{precision: DefaultPrecision}
	for _, opt := range opts {
		opt(&cfg)
	}

	slots := make([]slot, n)
	slots[0] = slot{value: seq.Levels[0], set: true}
	for j, idx := range jumpIndex {
		if idx < 0 || idx >= n {
			return nil, core.Errorf(MethodBuild, core.ErrInvalidParameter,
				"jump index %d of interval %d outside [0,%d)", idx, j, n)
		}
		slots[idx] = slot{value: seq.Levels[j], set: true}
	}

	for i := 1; i < n; i++ {
		if !slots[i].set {
			slots[i] = slot{value: slots[i-1].value, set: slots[i-1].set}
		}
	}

	scale := math.Pow(10, float64(cfg.precision))
	p := make(core.ObservedPath, n)
	for i, s := range slots {
		if !s.set {
			return nil, core.Errorf(MethodBuild, core.ErrState, "slot %d left unset", i)
		}
		p[i] = Round(s.value, scale)
	}

	return p, nil
}

// Round rounds v to the grid 1/scale, half away from zero.
func Round(v, scale float64) float64 {
	return math.Round(v*scale) / scale
}
