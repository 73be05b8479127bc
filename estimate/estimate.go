// SPDX-License-Identifier: MIT

package estimate

import (
	"errors"
	"math"

	"github.com/montanaflynn/stats"

	"github.com/katalvlaran/uzone/core"
	"github.com/katalvlaran/uzone/zone"
)

// ErrInsufficientData is returned when a tape has too few changes to
// support the requested statistic.
var ErrInsufficientData = errors.New("estimate: insufficient data")

// Canonical method names used in estimate errors.
const (
	MethodCount            = "Count"
	MethodAversion         = "Aversion"
	MethodImpliedEfficient = "ImpliedEfficient"
	MethodDurations        = "Durations"
	MethodRealizedVariance = "RealizedVariance"
)

// Change is one price move on the tape.
type Change struct {
	Index int
	From  float64
	To    float64
}

// Delta returns To − From.
func (c Change) Delta() float64 { return c.To - c.From }

// Ticks returns the move in whole ticks of size alpha.
func (c Change) Ticks(alpha float64) int {
	return int(math.Round(c.Delta() / alpha))
}

// Counts holds the alternation and continuation tallies of a tape.
type Counts struct {
	Alternations  int
	Continuations int
}

// Ratio returns N_c / N_a, or NaN when there are no alternations.
func (c Counts) Ratio() float64 {
	if c.Alternations == 0 {
		return math.NaN()
	}
	return float64(c.Continuations) / float64(c.Alternations)
}

// Point is an implied efficient price at a change index.
type Point struct {
	Index int
	Price float64
}

// DurationStats summarizes the gaps, in grid steps, between changes.
type DurationStats struct {
	Count  int
	Mean   float64
	Median float64
	StdDev float64
}

// Changes lists every index i ≥ 1 where p[i] != p[i-1].
func Changes(p []float64) []Change {
	out := make([]Change, 0)
	for i := 1; i < len(p); i++ {
		if p[i] != p[i-1] {
			out = append(out, Change{Index: i, From: p[i-1], To: p[i]})
		}
	}
	return out
}

// Count classifies each one-tick change against the direction of the
// change before it. Multi-tick changes set the direction but are not counted.
func Count(p []float64, alpha float64) (Counts, error) {
	if !(alpha > 0) || math.IsInf(alpha, 1) {
		return Counts{}, core.Errorf(MethodCount, core.ErrInvalidParameter, "alpha must be > 0, got %v", alpha)
	}

	var (
		c    Counts
		prev int
	)
	for _, ch := range Changes(p) {
		k := ch.Ticks(alpha)
		if k == 0 {
			continue
		}
		if prev != 0 && (k == 1 || k == -1) {
			if (k > 0) == (prev > 0) {
				c.Continuations++
			} else {
				c.Alternations++
			}
		}
		prev = k
	}
	return c, nil
}

// Aversion estimates eta as N_c / (2·N_a).
func Aversion(p []float64, alpha float64) (float64, error) {
	c, err := Count(p, alpha)
	if err != nil {
		return 0, err
	}
	if c.Alternations == 0 {
		return 0, core.Errorf(MethodAversion, ErrInsufficientData, "no alternations among %d changes", c.Continuations)
	}
	return float64(c.Continuations) / (2 * float64(c.Alternations)), nil
}

// ImpliedEfficient returns X̂ = P − alpha·(1/2 − eta)·sign(ΔP) at every change.
func ImpliedEfficient(p []float64, alpha, eta float64) ([]Point, error) {
	if err := zone.CheckParams(alpha, eta); err != nil {
		return nil, err
	}

	shift := alpha * (0.5 - eta)
	changes := Changes(p)
	out := make([]Point, len(changes))
	for i, ch := range changes {
		out[i] = Point{Index: ch.Index, Price: ch.To - shift*sign(ch.Delta())}
	}
	return out, nil
}

// Durations summarizes the gaps between consecutive changes.
func Durations(p []float64) (DurationStats, error) {
	changes := Changes(p)
	if len(changes) < 2 {
		return DurationStats{}, core.Errorf(MethodDurations, ErrInsufficientData, "need 2 changes, got %d", len(changes))
	}

	gaps := make(stats.Float64Data, len(changes)-1)
	for i := 1; i < len(changes); i++ {
		gaps[i-1] = float64(changes[i].Index - changes[i-1].Index)
	}

	mean, err := stats.Mean(gaps)
	if err != nil {
		return DurationStats{}, err
	}
	median, err := stats.Median(gaps)
	if err != nil {
		return DurationStats{}, err
	}
	sd, err := stats.StandardDeviation(gaps)
	if err != nil {
		return DurationStats{}, err
	}

	return DurationStats{Count: len(gaps), Mean: mean, Median: median, StdDev: sd}, nil
}

// RealizedVariance returns the sum of squared log returns of x.
func RealizedVariance(x []float64) (float64, error) {
	if len(x) < 2 {
		return 0, core.Errorf(MethodRealizedVariance, ErrInsufficientData, "need 2 prices, got %d", len(x))
	}

	returns := make(stats.Float64Data, len(x)-1)
	for i := 1; i < len(x); i++ {
		if !(x[i-1] > 0) || !(x[i] > 0) {
			return 0, core.Errorf(MethodRealizedVariance, core.ErrInvalidParameter,
				"non-positive price at index %d", i)
		}
		r := math.Log(x[i] / x[i-1])
		returns[i-1] = r * r
	}
	return stats.Sum(returns)
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
