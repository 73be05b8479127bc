// SPDX-License-Identifier: MIT

// Package align measures how far an observed tape trails the efficient
// price using banded Dynamic Time Warping (DTW).
//
// What is measured?
//
//	DTW pairs every efficient index i with one or more observed indices j
//	so that the summed |efficient[i] − observed[j]| is minimal. Along that
//	warping path, j − i is the reporting lag at step i. MeanLag averages it.
//
// Key features:
//   - Sakoe–Chiba band |i−j| ≤ w, stored as n×(2w+1) instead of n×n;
//     bands wider than half the series fall back to the plain matrix
//   - slope penalty to discourage stretching
//   - predecessor moves stored beside the costs, so the path is recovered
//     without re-deriving it from floating-point equalities
//   - Distance-only mode with two rolling rows
//
// Usage:
//
//	opts := align.DefaultOptions()
//	opts.Window = 20
//	res, err := align.Lag(path, tape, opts)
//	fmt.Println(res.MeanLag)
//
// Complexity:
//
//   - Time:   O(n·w)
//   - Memory: O(n·w) for Lag, O(n) for Distance
package align
