// SPDX-License-Identifier: MIT

// Package estimate recovers uncertainty-zone quantities from a price tape.
//
// A tape is any []float64 sampled on a regular grid; a change is an index
// where the value differs from its predecessor. With tick size alpha each
// change moves a whole number of ticks.
//
// Two consecutive one-tick changes form an alternation when they move in
// opposite directions and a continuation otherwise. In the model the
// efficient price sits 2·alpha·eta from the reversal barrier and alpha from
// the continuation barrier right after a change, which gives the estimator
//
//	η̂ = N_c / (2·N_a).
//
// ImpliedEfficient inverts the barrier rule at change times:
//
//	X̂ = P − alpha·(1/2 − eta)·sign(ΔP).
//
// Duration statistics use github.com/montanaflynn/stats.
package estimate
