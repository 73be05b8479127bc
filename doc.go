// SPDX-License-Identifier: MIT

// Package uzone models how a continuously moving efficient price becomes the
// discrete, tick-constrained price printed on a market tape.
//
// What is the uncertainty-zone model?
//
//	The efficient price X follows a geometric Brownian motion. The tape only
//	shows multiples of the tick alpha, and a new level is printed only when
//	X moves far enough past the last one: more than alpha·(L − 1/2 + eta),
//	where L is the jump size in ticks and eta ∈ [0,1) measures how reluctant
//	the market is to move the price. The instant at which the new level
//	reaches the tape is then chosen inside the detected interval.
//
// Pipeline:
//
//	simulate  ──▶ zone.Detect ──▶ latency.Sample ──▶ observed.Build
//	(GBM path)    (exit times)    (posting index)    (forward-filled tape)
//
// Packages:
//
//	core/     - TimeGrid, PricePath, CrossingSequence, ObservedPath, errors, Source
//	simulate/ - Euler–Maruyama GBM
//	zone/     - hysteresis-band exit detection, jump-size laws
//	latency/  - posting modes (left, right, beta) and latency laws
//	observed/ - slot-based tape construction with decimal rounding
//	pipeline/ - stateful runner Empty → PathReady → CrossingsReady → ObservedReady
//	config/   - YAML configuration, defaults, validation, logrus setup
//	estimate/ - alternations/continuations, eta estimator, implied efficient price
//	align/    - banded DTW lag between efficient path and tape
//
// Quick start:
//
//	p, _ := pipeline.New(0.2, 0.2, 1, pipeline.WithSeed(42))
//	res, err := p.Run(0.01, 100, latency.ModeBeta)
//	if err != nil { ... }
//	fmt.Println(res.Observed)
//
// All randomness flows through one injected core.Source; equal seeds give
// equal paths, crossings and tapes.
package uzone
