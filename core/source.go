// SPDX-License-Identifier: MIT

package core

import (
	"math/rand/v2"
	"time"
)

// Source is the random stream consumed by stochastic stages.
// *rand.Rand from math/rand/v2 satisfies it, and so does any Source handed
// to gonum's distuv samplers through their Src field.
type Source interface {
	// Uint64 returns 64 uniformly distributed bits.
	Uint64() uint64
	// Float64 returns a uniform draw in [0,1).
	Float64() float64
	// NormFloat64 returns a standard normal draw.
	NormFloat64() float64
}

// NewSource returns a PCG-backed *rand.Rand. Equal seeds give equal streams.
func NewSource(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// ClockSource returns a *rand.Rand seeded from the wall clock, used when the
// caller did not inject a source.
func ClockSource() *rand.Rand {
	return NewSource(time.Now().UnixNano())
}
