// SPDX-License-Identifier: MIT

// Package latency picks, for every interval between two detected crossings,
// the grid index at which the tape update is actually posted. It models
// reporting latency: the tape rarely moves at the theoretical exit instant.
//
// Modes:
//
//   - ModeBeta  ("beta", default) – u ~ D on [0,1] (Beta(2,5) by default),
//     jumpIndex = round(tau[j] + u·(tau[j+1] − tau[j])), clamped to the interval.
//   - ModeLeft  ("left")  – jumpIndex = tau[j], posted at detection.
//   - ModeRight ("right") – jumpIndex = tau[j+1], posted at the next crossing.
//
// The latency law is a Distribution (single Draw method), so alternative
// models replace Beta without touching Sample.
package latency
