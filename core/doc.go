// SPDX-License-Identifier: MIT

// Package core defines the data model shared by every stage of the
// uncertainty-zone tape simulator, together with the error taxonomy and the
// random-source contract.
//
// The pipeline turns one efficient price path into one observed tape:
//
//	TimeGrid, PricePath  →  CrossingSequence  →  jump indices  →  ObservedPath
//	   (simulate)              (zone)               (latency)        (observed)
//
// Types:
//
//   - TimeGrid          – n uniformly spaced instants, t[i] = i·T/n.
//   - PricePath         – efficient price sampled on the grid.
//   - CrossingEvent     – (index, grid level) where the price left its zone.
//   - CrossingSequence  – Tau/Levels/Sizes, the ordered exits of one path.
//   - ObservedPath      – right-continuous step series on the same grid.
//
// Errors (use errors.Is):
//
//   - ErrInvalidParameter – a numeric argument is outside its domain.
//   - ErrState            – a stage ran before its prerequisite produced output.
//   - ErrNumericDegenerate – the efficient price became non-finite or ≤ 0.
//
// Randomness:
//
//	Every stochastic stage draws from an injected Source. *math/rand/v2.Rand
//	satisfies it, so NewSource(seed) gives reproducible runs.
package core
