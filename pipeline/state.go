// SPDX-License-Identifier: MIT

package pipeline

import (
	"github.com/katalvlaran/uzone/core"
	"github.com/katalvlaran/uzone/latency"
)

// State tags the stage a Pipeline has reached.
type State int

const (
	// Empty: nothing simulated yet.
	Empty State = iota
	// PathReady: grid and efficient path exist.
	PathReady
	// CrossingsReady: exit times and levels exist.
	CrossingsReady
	// ObservedReady: the observed tape exists.
	ObservedReady
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Empty:
		return "Empty"
	case PathReady:
		return "PathReady"
	case CrossingsReady:
		return "CrossingsReady"
	case ObservedReady:
		return "ObservedReady"
	}
	return "Unknown"
}

// stage is implemented by one struct per State.
type stage interface {
	state() State
}

type emptyStage struct{}

type pathStage struct {
	grid core.TimeGrid
	path core.PricePath
}

type crossingStage struct {
	pathStage
	seq core.CrossingSequence
}

type observedStage struct {
	crossingStage
	mode  latency.Mode
	jumps []int
	tape  core.ObservedPath
}

func (emptyStage) state() State    { return Empty }
func (pathStage) state() State     { return PathReady }
func (crossingStage) state() State { return CrossingsReady }
func (observedStage) state() State { return ObservedReady }

// pathOf returns the path data of any stage that has one.
func pathOf(s stage) (pathStage, bool) {
	switch v := s.(type) {
	case pathStage:
		return v, true
	case crossingStage:
		return v.pathStage, true
	case observedStage:
		return v.pathStage, true
	}
	return pathStage{}, false
}

// crossingsOf returns the crossing data of any stage that has one.
func crossingsOf(s stage) (crossingStage, bool) {
	switch v := s.(type) {
	case crossingStage:
		return v, true
	case observedStage:
		return v.crossingStage, true
	}
	return crossingStage{}, false
}
