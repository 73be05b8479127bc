// SPDX-License-Identifier: MIT
// Package: uzone/simulate
//
// gbm.go: efficient price via Euler–Maruyama GBM.
//
// Contract:
//   • GBM(sigma, n, opts...) → (grid, path) with len(grid) == len(path) == n.
//   • Invalid parameters ⇒ core.ErrInvalidParameter, nothing allocated.
//   • A non-finite or non-positive price ⇒ core.ErrNumericDegenerate with the
//     offending index; no partial path is returned.
//   • O(n) time; exactly n-1 normal draws from the source.

package simulate

import (
	"math"

	"github.com/katalvlaran/uzone/core"
)

// MethodGBM is the canonical name used in GBM errors.
const MethodGBM = "GBM"

// GBM simulates n grid points of geometric Brownian motion with volatility
// sigma under the explicit Euler scheme.
func GBM(sigma float64, n int, opts ...Option) (core.TimeGrid, core.PricePath, error) {
	cfg := newSimConfig(opts...)

	if err := validate(sigma, n, cfg); err != nil {
		return nil, nil, err
	}

	grid, err := core.NewTimeGrid(n, cfg.horizon)
	if err != nil {
		return nil, nil, err
	}

	// Precompute per-step constants once.
	dt := cfg.horizon / float64(n)
	driftTerm := cfg.drift * dt
	noiseScale := sigma * math.Sqrt(dt)

	path := make(core.PricePath, n)
	path[0] = cfg.x0

	var (
		i    int
		prev float64
		next float64
	)
	for i = 1; i < n; i++ {
		prev = path[i-1]
		next = prev + driftTerm*prev + noiseScale*prev*cfg.src.NormFloat64()
		if math.IsNaN(next) || math.IsInf(next, 0) || next <= 0 {
			return nil, nil, core.Errorf(MethodGBM, core.ErrNumericDegenerate,
				"price %v at index %d (sigma·sqrt(dt) = %v)", next, i, noiseScale)
		}
		path[i] = next
	}

	return grid, path, nil
}

// validate checks the GBM domain in a fixed order: n, horizon, sigma, x0, r.
func validate(sigma float64, n int, cfg simConfig) error {
	if n < core.MinSteps {
		return core.Errorf(MethodGBM, core.ErrInvalidParameter, "n must be ≥ %d, got %d", core.MinSteps, n)
	}
	if !isPositiveFinite(cfg.horizon) {
		return core.Errorf(MethodGBM, core.ErrInvalidParameter, "horizon must be > 0, got %v", cfg.horizon)
	}
	if !isPositiveFinite(sigma) {
		return core.Errorf(MethodGBM, core.ErrInvalidParameter, "sigma must be > 0, got %v", sigma)
	}
	if !isPositiveFinite(cfg.x0) {
		return core.Errorf(MethodGBM, core.ErrInvalidParameter, "x0 must be > 0, got %v", cfg.x0)
	}
	if math.IsNaN(cfg.drift) || math.IsInf(cfg.drift, 0) {
		return core.Errorf(MethodGBM, core.ErrInvalidParameter, "drift must be finite, got %v", cfg.drift)
	}

	return nil
}

func isPositiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
