// SPDX-License-Identifier: MIT
// Package: uzone/latency
//
// sample.go: one posting index per crossing interval.
//
// Contract:
//   • Sample(tau, opts...) returns len(tau)-1 indices (none for len(tau) ≤ 1).
//   • Every index lies in [tau[j], tau[j+1]], so the result is non-decreasing.
//   • ModeLeft and ModeRight consume no randomness; ModeBeta consumes exactly
//     what the Distribution draws, once per interval, in order.

package latency

import (
	"math"

	"github.com/katalvlaran/uzone/core"
)

// MethodSample is the canonical name used in Sample errors.
const MethodSample = "Sample"

// validator is implemented by distributions that can reject their parameters.
type validator interface {
	Validate() error
}

// Sample returns the posting index of each interval (tau[j], tau[j+1]).
func Sample(tau []int, opts ...Option) ([]int, error) {
	cfg := newSampleConfig(opts...)

	if !cfg.mode.Valid() {
		return nil, core.Errorf(MethodSample, core.ErrInvalidParameter, "unknown jump mode %q", cfg.mode)
	}
	if v, ok := cfg.dist.(validator); ok && cfg.mode == ModeBeta {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}
	for j := 1; j < len(tau); j++ {
		if tau[j] <= tau[j-1] {
			return nil, core.Errorf(MethodSample, core.ErrInvalidParameter,
				"tau not strictly increasing at %d: %d after %d", j, tau[j], tau[j-1])
		}
	}
	if len(tau) < 2 {
		return []int{}, nil
	}

	out := make([]int, len(tau)-1)
	for j := range out {
		a, b := tau[j], tau[j+1]
		switch cfg.mode {
		case ModeLeft:
			out[j] = a
		case ModeRight:
			out[j] = b
		default:
			u := cfg.dist.Draw(cfg.src)
			if !(u >= 0) { // also catches NaN
				u = 0
			} else if u > 1 {
				u = 1
			}
			out[j] = clamp(int(math.Round(float64(a)+u*float64(b-a))), a, b)
		}
	}

	return out, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
