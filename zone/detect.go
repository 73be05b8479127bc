// SPDX-License-Identifier: MIT
// Package: uzone/zone
//
// detect.go: exit-time scan with a hysteresis band.
//
// Contract:
//   • Detect(path, alpha, eta, opts...) → CrossingSequence with Tau[0] = 0.
//   • Tau is strictly increasing; len(Tau) == len(Levels) == len(Sizes).
//   • No index strictly inside (Tau[j], Tau[j+1]) leaves the band of zone j.
//   • A path that never leaves its first zone yields a sequence of length 1.
//
// Levels are held as integer tick counts and converted with level·alpha.

package zone

import (
	"math"

	"github.com/katalvlaran/uzone/core"
)

// MethodDetect is the canonical name used in Detect errors.
const MethodDetect = "Detect"

// MethodCheckParams is the canonical name used in CheckParams errors.
const MethodCheckParams = "CheckParams"

// MaxAversion is the exclusive upper bound of eta.
const MaxAversion = 1.0

// CheckParams validates the tick size and the aversion: alpha finite and
// > 0, eta in [0, 1).
func CheckParams(alpha, eta float64) error {
	if !(alpha > 0) || math.IsInf(alpha, 1) {
		return core.Errorf(MethodCheckParams, core.ErrInvalidParameter, "alpha must be > 0, got %v", alpha)
	}
	if !(eta >= 0 && eta < MaxAversion) {
		return core.Errorf(MethodCheckParams, core.ErrInvalidParameter, "eta must be in [0,1), got %v", eta)
	}
	return nil
}

// HalfWidth returns the band half-width alpha·(L − 0.5 + eta).
func HalfWidth(alpha, eta float64, L int) float64 {
	return alpha * (float64(L) - 0.5 + eta)
}

// InitialLevel returns the tick count of the grid value nearest to x0.
// On an exact tie the lower value wins.
func InitialLevel(x0, alpha float64) int64 {
	k := math.Floor(x0 / alpha)
	lower := math.Abs(k*alpha - x0)
	upper := math.Abs((k+1)*alpha - x0)
	if upper < lower {
		return int64(k) + 1
	}
	return int64(k)
}

// Detect scans path and records every exit from the current uncertainty zone.
func Detect(path core.PricePath, alpha, eta float64, opts ...Option) (core.CrossingSequence, error) {
	if len(path) == 0 {
		return core.CrossingSequence{}, core.Errorf(MethodDetect, core.ErrState, "no efficient price path")
	}
	if err := CheckParams(alpha, eta); err != nil {
		return core.CrossingSequence{}, err
	}
	if i := core.Finite(path); i >= 0 {
		return core.CrossingSequence{}, core.Errorf(MethodDetect, core.ErrNumericDegenerate,
			"non-finite price %v at index %d", path[i], i)
	}

	cfg := newDetectConfig(opts...)

	level := InitialLevel(path[0], alpha)
	L, err := drawSize(cfg)
	if err != nil {
		return core.CrossingSequence{}, err
	}

	seq := core.CrossingSequence{
		Tau:    []int{0},
		Levels: []float64{float64(level) * alpha},
		Sizes:  []int{L},
	}

	var (
		i     int
		last  = seq.Levels[0]
		width = HalfWidth(alpha, eta, L)
	)
	for i = 1; i < len(path); i++ {
		switch {
		case path[i] > last+width: // ascend
			level += int64(L)
		case path[i] < last-width: // descend
			level -= int64(L)
		default:
			continue
		}

		last = float64(level) * alpha
		if L, err = drawSize(cfg); err != nil {
			return core.CrossingSequence{}, err
		}
		width = HalfWidth(alpha, eta, L)

		seq.Tau = append(seq.Tau, i)
		seq.Levels = append(seq.Levels, last)
		seq.Sizes = append(seq.Sizes, L)
	}

	return seq, nil
}

func drawSize(cfg detectConfig) (int, error) {
	L := cfg.sizer.Draw(cfg.src)
	if L < 1 {
		return 0, core.Errorf(MethodDetect, core.ErrInvalidParameter, "jump size must be ≥ 1, got %d", L)
	}
	return L, nil
}
