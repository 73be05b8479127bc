// SPDX-License-Identifier: MIT

// Package simulate produces the efficient price path: an explicit
// Euler–Maruyama discretization of geometric Brownian motion.
//
//	x[0] = x0
//	x[i] = x[i-1] + r·x[i-1]·dt + σ·x[i-1]·√dt·Z_i,   dt = T/n,  Z_i ~ N(0,1)
//
// Usage:
//
//	grid, path, err := simulate.GBM(0.01, 100,
//	    simulate.WithHorizon(1),
//	    simulate.WithInitialPrice(100),
//	    simulate.WithSeed(42),
//	)
//
// Determinism:
//
//	The path is a pure function of the parameters and the injected Source.
//	Without WithSeed/WithRand/WithSource a clock-seeded source is used.
//
// Errors:
//
//   - core.ErrInvalidParameter  – n < 2, T ≤ 0, σ ≤ 0, x0 ≤ 0, non-finite r.
//   - core.ErrNumericDegenerate – the scheme produced a non-finite or ≤ 0 price.
//
// Complexity: O(n) time, O(n) memory.
package simulate
