// SPDX-License-Identifier: MIT

package align

import "errors"

var (
	// ErrEmptyInput indicates one or both inputs are empty.
	ErrEmptyInput = errors.New("align: input sequences must be non-empty")

	// ErrLengthMismatch indicates the two series are not on the same grid.
	ErrLengthMismatch = errors.New("align: input sequences must have equal length")

	// ErrBadWindow indicates a negative band width.
	ErrBadWindow = errors.New("align: window must be >= 0")

	// ErrBadPenalty indicates a negative or non-finite slope penalty.
	ErrBadPenalty = errors.New("align: slope penalty must be finite and >= 0")
)

// Options configures the alignment.
//
// Fields:
//   - Window        - Sakoe–Chiba half-width w, |i−j| ≤ w.
//     0 means unconstrained (w = n−1).
//   - SlopePenalty  - cost added to every non-diagonal step.
type Options struct {
	Window       int
	SlopePenalty float64
}

// DefaultOptions returns an unconstrained alignment with no slope penalty.
func DefaultOptions() Options {
	return Options{}
}

// Coord is one cell of the warping path: efficient index I, observed index J.
type Coord struct {
	I, J int
}

// Result is the outcome of Lag.
type Result struct {
	Distance float64
	Path     []Coord
	MeanLag  float64
	MaxLag   int
}
