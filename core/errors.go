// SPDX-License-Identifier: MIT
// Package: uzone/core
//
// errors.go: sentinel errors shared by all pipeline stages.
//
// Error policy:
//   • Only package-level sentinels are exposed; branch with errors.Is.
//   • Stages attach method context with Errorf(method, ErrX, format, ...),
//     which keeps the sentinel reachable through %w.
//   • Algorithms never panic at runtime; option constructors may panic on
//     meaningless arguments (nil strategies, negative precision).

package core

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter indicates a numeric argument outside its domain:
// non-positive tick size, step count below 2, non-positive volatility,
// horizon or initial price, aversion outside [0,1), jump size below 1.
var ErrInvalidParameter = errors.New("uzone: invalid parameter")

// ErrState indicates a stage was invoked before its prerequisite stage
// produced output (e.g. crossings requested before a path exists).
var ErrState = errors.New("uzone: stage prerequisite missing")

// ErrNumericDegenerate indicates the efficient price path produced a
// non-finite or non-positive value. The explicit Euler scheme can do this
// when sigma·sqrt(dt) is large.
var ErrNumericDegenerate = errors.New("uzone: degenerate numeric value")

// Errorf wraps sentinel with a method prefix and a formatted detail:
// "<method>: <detail>: <sentinel>".
func Errorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
