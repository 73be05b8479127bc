// SPDX-License-Identifier: MIT
// Package: uzone/latency
//
// distribution.go: latency laws on [0,1].
//
// Beta draws come from gonum's stat/distuv with the given Source as Src;
// no package-level randomness is touched.

package latency

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/uzone/core"
)

// MethodBeta is the canonical name used in Beta validation errors.
const MethodBeta = "Beta"

// Default Beta shapes: mass skewed toward the start of the interval.
const (
	DefaultBetaA = 2.0
	DefaultBetaB = 5.0
)

// Distribution draws the relative posting position u ∈ [0,1].
type Distribution interface {
	Draw(src core.Source) float64
}

// Beta is the Beta(A, B) law.
type Beta struct {
	A, B float64
}

// DefaultBeta returns Beta(2,5).
func DefaultBeta() Beta {
	return Beta{A: DefaultBetaA, B: DefaultBetaB}
}

// Validate checks both shapes are finite and > 0.
func (b Beta) Validate() error {
	if !(b.A > 0) || math.IsInf(b.A, 1) || !(b.B > 0) || math.IsInf(b.B, 1) {
		return core.Errorf(MethodBeta, core.ErrInvalidParameter, "shapes must be > 0, got (%v, %v)", b.A, b.B)
	}
	return nil
}

// Mean returns A/(A+B).
func (b Beta) Mean() float64 {
	return b.A / (b.A + b.B)
}

// Draw implements Distribution by handing src to distuv.Beta, so the draw
// consumes the caller's stream. Call Validate first; distuv panics on
// non-positive shapes.
func (b Beta) Draw(src core.Source) float64 {
	return distuv.Beta{Alpha: b.A, Beta: b.B, Src: src}.Rand()
}

// Uniform is the flat law on [0,1).
type Uniform struct{}

// Draw implements Distribution.
func (Uniform) Draw(src core.Source) float64 {
	return src.Float64()
}
