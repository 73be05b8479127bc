// SPDX-License-Identifier: MIT
// Package: uzone/core
//
// types.go: sequences produced once per pipeline run.
//
// Ownership:
//   • Every value below is built once by its stage and never mutated in place
//     afterwards; accessors that hand data to callers return copies.
//   • A CrossingSequence is derived from exactly one PricePath.

package core

import (
	"math"
)

const (
	// MethodTimeGrid is the canonical name used in NewTimeGrid errors.
	MethodTimeGrid = "NewTimeGrid"
	// MethodCrossingSequence is the canonical name used in Validate errors.
	MethodCrossingSequence = "CrossingSequence.Validate"

	// MinSteps is the smallest grid that still has one increment.
	MinSteps = 2
)

// TimeGrid holds n instants with uniform spacing dt = T/n, t[0] = 0.
type TimeGrid []float64

// NewTimeGrid builds t[i] = i·T/n for i = 0..n-1, so t[n-1] = T - dt.
func NewTimeGrid(n int, horizon float64) (TimeGrid, error) {
	if n < MinSteps {
		return nil, Errorf(MethodTimeGrid, ErrInvalidParameter, "n must be ≥ %d, got %d", MinSteps, n)
	}
	if !(horizon > 0) || math.IsInf(horizon, 0) {
		return nil, Errorf(MethodTimeGrid, ErrInvalidParameter, "horizon must be finite and > 0, got %v", horizon)
	}

	dt := horizon / float64(n)
	grid := make(TimeGrid, n)
	for i := range grid {
		grid[i] = float64(i) * dt
	}

	return grid, nil
}

// Step returns the grid spacing, or 0 for grids shorter than two points.
func (g TimeGrid) Step() float64 {
	if len(g) < MinSteps {
		return 0
	}
	return g[1] - g[0]
}

// PricePath is the efficient price sampled on a TimeGrid.
type PricePath []float64

// CrossingEvent marks that the efficient price left the uncertainty zone
// anchored at the previous grid level at Index, and the tape moved to Level.
type CrossingEvent struct {
	Index int
	Level float64
}

// CrossingSequence is the ordered list of exits of one price path.
//
// Tau[0] is always 0 and Levels[0] the initial grid level. Sizes[j] is the
// jump size L active while the price sits in the zone entered at Tau[j];
// the band half-width of that interval is alpha·(Sizes[j] − 0.5 + eta).
type CrossingSequence struct {
	Tau    []int
	Levels []float64
	Sizes  []int
}

// Len returns the number of recorded levels, including the initial one.
func (s CrossingSequence) Len() int {
	return len(s.Tau)
}

// Intervals returns the number of closed intervals (Tau[j], Tau[j+1]).
func (s CrossingSequence) Intervals() int {
	if len(s.Tau) == 0 {
		return 0
	}
	return len(s.Tau) - 1
}

// Events returns the sequence as CrossingEvent values. Event 0 is the seed
// level at index 0, not a crossing.
func (s CrossingSequence) Events() []CrossingEvent {
	events := make([]CrossingEvent, len(s.Tau))
	for j := range s.Tau {
		events[j] = CrossingEvent{Index: s.Tau[j], Level: s.Levels[j]}
	}
	return events
}

// Clone returns a deep copy.
func (s CrossingSequence) Clone() CrossingSequence {
	return CrossingSequence{
		Tau:    append([]int(nil), s.Tau...),
		Levels: append([]float64(nil), s.Levels...),
		Sizes:  append([]int(nil), s.Sizes...),
	}
}

// Validate checks the structural invariants: non-empty, parallel slices of
// equal length, Tau[0] == 0, Tau strictly increasing, every size ≥ 1.
func (s CrossingSequence) Validate() error {
	if len(s.Tau) == 0 {
		return Errorf(MethodCrossingSequence, ErrState, "sequence is empty")
	}
	if len(s.Levels) != len(s.Tau) || len(s.Sizes) != len(s.Tau) {
		return Errorf(MethodCrossingSequence, ErrInvalidParameter,
			"length mismatch tau=%d levels=%d sizes=%d", len(s.Tau), len(s.Levels), len(s.Sizes))
	}
	if s.Tau[0] != 0 {
		return Errorf(MethodCrossingSequence, ErrInvalidParameter, "tau[0] must be 0, got %d", s.Tau[0])
	}
	for j := 1; j < len(s.Tau); j++ {
		if s.Tau[j] <= s.Tau[j-1] {
			return Errorf(MethodCrossingSequence, ErrInvalidParameter,
				"tau not strictly increasing at %d: %d after %d", j, s.Tau[j], s.Tau[j-1])
		}
	}
	for j, L := range s.Sizes {
		if L < 1 {
			return Errorf(MethodCrossingSequence, ErrInvalidParameter, "size[%d] = %d < 1", j, L)
		}
	}

	return nil
}

// ObservedPath is the tick-constrained tape on the simulation grid.
type ObservedPath []float64

// Finite reports the first non-finite entry of xs, or -1 when all are finite.
func Finite(xs []float64) int {
	for i, v := range xs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return i
		}
	}
	return -1
}
