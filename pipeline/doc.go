// SPDX-License-Identifier: MIT

// Package pipeline runs the three stages of the uncertainty-zone model on one
// object with an explicit stage state:
//
//	Empty ──Simulate──▶ PathReady ──DetectCrossings──▶ CrossingsReady ──ReconstructObserved──▶ ObservedReady
//
// Each state is a concrete stage value carrying only the data valid at that
// point, so a later stage cannot observe a half-built earlier one. Calling
// a stage before its prerequisite returns core.ErrState. A failed call leaves
// the current stage untouched.
//
// Simulate is always allowed and starts a fresh run with a new run ID.
// DetectCrossings may be repeated once a path exists; it discards any
// observed tape. ReconstructObserved may be repeated with different modes.
//
// All randomness flows through one injected core.Source, so a seeded
// pipeline reproduces the path, crossings and tape bit for bit.
//
// Logging goes through logrus; every entry carries run_id and stage.
package pipeline
