// SPDX-License-Identifier: MIT

package latency

import (
	"strings"

	"github.com/katalvlaran/uzone/core"
)

// MethodParseMode is the canonical name used in ParseMode errors.
const MethodParseMode = "ParseMode"

// Mode selects where inside an interval the level change is posted.
type Mode string

const (
	// ModeBeta draws the posting instant from a Distribution.
	ModeBeta Mode = "beta"
	// ModeLeft posts at the crossing index itself.
	ModeLeft Mode = "left"
	// ModeRight posts at the next crossing index.
	ModeRight Mode = "right"
)

// DefaultMode is used when no mode is given.
const DefaultMode = ModeBeta

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	switch m {
	case ModeBeta, ModeLeft, ModeRight:
		return true
	}
	return false
}

// ParseMode maps a case-insensitive name onto a Mode. The empty string
// selects DefaultMode.
func ParseMode(s string) (Mode, error) {
	if s == "" {
		return DefaultMode, nil
	}
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", core.Errorf(MethodParseMode, core.ErrInvalidParameter, "unknown jump mode %q", s)
	}
	return m, nil
}
