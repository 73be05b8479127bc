// SPDX-License-Identifier: MIT
// Package: uzone/zone
//
// jumpsize.go: pluggable jump-size laws.
//
// Contract:
//   • Draw returns the number of ticks L ≥ 1 of the next level change.
//   • Implementations must take all randomness from the given Source so
//     seeded runs stay reproducible.

package zone

import (
	"github.com/katalvlaran/uzone/core"
)

// MethodWeightedJump is the canonical name used in NewWeightedJump errors.
const MethodWeightedJump = "NewWeightedJump"

// JumpSizer draws the jump size L (in ticks) for the next zone.
type JumpSizer interface {
	Draw(src core.Source) int
}

// ConstantJump always returns the same size. ConstantJump(1) is the default.
type ConstantJump int

// Draw implements JumpSizer without consuming randomness.
func (c ConstantJump) Draw(core.Source) int {
	return int(c)
}

// WeightedJump draws L from a finite discrete law.
type WeightedJump struct {
	sizes []int
	cum   []float64 // cumulative normalized weights, cum[len-1] == 1
}

// NewWeightedJump builds the law P(L = sizes[i]) ∝ weights[i].
// Sizes must be ≥ 1, weights ≥ 0 with a positive sum.
func NewWeightedJump(sizes []int, weights []float64) (*WeightedJump, error) {
	if len(sizes) == 0 || len(sizes) != len(weights) {
		return nil, core.Errorf(MethodWeightedJump, core.ErrInvalidParameter,
			"need equal non-empty sizes and weights, got %d and %d", len(sizes), len(weights))
	}

	var total float64
	for i := range sizes {
		if sizes[i] < 1 {
			return nil, core.Errorf(MethodWeightedJump, core.ErrInvalidParameter, "size[%d] = %d < 1", i, sizes[i])
		}
		if !(weights[i] >= 0) {
			return nil, core.Errorf(MethodWeightedJump, core.ErrInvalidParameter, "weight[%d] = %v < 0", i, weights[i])
		}
		total += weights[i]
	}
	if !(total > 0) {
		return nil, core.Errorf(MethodWeightedJump, core.ErrInvalidParameter, "weights sum to %v", total)
	}

	w := &WeightedJump{
		sizes: append([]int(nil), sizes...),
		cum:   make([]float64, len(weights)),
	}
	var acc float64
	for i := range weights {
		acc += weights[i] / total
		w.cum[i] = acc
	}
	w.cum[len(w.cum)-1] = 1

	return w, nil
}

// Draw implements JumpSizer with one uniform draw.
func (w *WeightedJump) Draw(src core.Source) int {
	u := src.Float64()
	for i, c := range w.cum {
		if u < c {
			return w.sizes[i]
		}
	}
	return w.sizes[len(w.sizes)-1]
}
