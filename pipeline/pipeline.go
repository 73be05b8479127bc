// SPDX-License-Identifier: MIT
// Package: uzone/pipeline
//
// pipeline.go: the stateful three-stage runner.
//
// Contract:
//   • Simulate → DetectCrossings → ReconstructObserved, each requiring the
//     previous stage; out-of-order calls return core.ErrState.
//   • On error the stage is left as it was; no partial data is stored.
//   • Accessors hand out copies, never the stored slices.
//   • Not safe for concurrent use; one Pipeline per goroutine.

package pipeline

import (
	"math"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/uzone/core"
	"github.com/katalvlaran/uzone/latency"
	"github.com/katalvlaran/uzone/observed"
	"github.com/katalvlaran/uzone/simulate"
	"github.com/katalvlaran/uzone/zone"
)

// Canonical method names used in pipeline errors.
const (
	MethodNew                 = "pipeline.New"
	MethodDetectCrossings     = "DetectCrossings"
	MethodReconstructObserved = "ReconstructObserved"
)

// Pipeline holds the model parameters and the current stage of one run.
type Pipeline struct {
	alpha   float64
	eta     float64
	horizon float64

	settings
	runID string
	stage stage
}

// Result bundles the outputs of a full run.
type Result struct {
	RunID     string
	Grid      core.TimeGrid
	Path      core.PricePath
	Crossings core.CrossingSequence
	JumpIndex []int
	Observed  core.ObservedPath
}

// New validates the model parameters: alpha is the tick size, eta the
// aversion in [0,1), horizon the terminal time T.
func New(alpha, eta, horizon float64, opts ...Option) (*Pipeline, error) {
	if err := zone.CheckParams(alpha, eta); err != nil {
		return nil, err
	}
	if !(horizon > 0) || math.IsInf(horizon, 1) {
		return nil, core.Errorf(MethodNew, core.ErrInvalidParameter, "horizon must be > 0, got %v", horizon)
	}

	return &Pipeline{
		alpha:    alpha,
		eta:      eta,
		horizon:  horizon,
		settings: newSettings(opts...),
		stage:    emptyStage{},
	}, nil
}

// Alpha returns the tick size.
func (p *Pipeline) Alpha() float64 { return p.alpha }

// Eta returns the aversion.
func (p *Pipeline) Eta() float64 { return p.eta }

// Horizon returns T.
func (p *Pipeline) Horizon() float64 { return p.horizon }

// State returns the stage reached.
func (p *Pipeline) State() State { return p.stage.state() }

// RunID identifies the current run; empty before the first Simulate.
func (p *Pipeline) RunID() string { return p.runID }

// Simulate draws a fresh efficient path of n points with volatility sigma.
// Drift and initial price are passed as simulate options (defaults r = 0,
// x0 = 100); the horizon and the random source always come from the
// pipeline. Any previous run is discarded on success.
func (p *Pipeline) Simulate(sigma float64, n int, opts ...simulate.Option) (core.TimeGrid, core.PricePath, error) {
	all := make([]simulate.Option, 0, len(opts)+2)
	all = append(all, opts...)
	all = append(all, simulate.WithHorizon(p.horizon), simulate.WithSource(p.src))

	grid, path, err := simulate.GBM(sigma, n, all...)
	if err != nil {
		p.entry("simulate").WithError(err).Warn("simulation failed")
		return nil, nil, err
	}

	p.runID = uuid.NewString()
	p.stage = pathStage{grid: grid, path: path}
	p.entry("simulate").WithFields(logrus.Fields{
		"n":     n,
		"sigma": sigma,
		"x0":    path[0],
		"last":  path[n-1],
	}).Debug("efficient path ready")

	return cloneFloats(grid), cloneFloats(path), nil
}

// DetectCrossings computes the exit times tau and observed levels of the
// current path. Requires PathReady or later.
func (p *Pipeline) DetectCrossings() (tau []int, levels []float64, err error) {
	ps, ok := pathOf(p.stage)
	if !ok {
		return nil, nil, core.Errorf(MethodDetectCrossings, core.ErrState, "no efficient price path (state %s)", p.State())
	}

	seq, err := zone.Detect(ps.path, p.alpha, p.eta, zone.WithJumpSizer(p.sizer), zone.WithSource(p.src))
	if err != nil {
		p.entry("detect").WithError(err).Warn("crossing detection failed")
		return nil, nil, err
	}

	p.stage = crossingStage{pathStage: ps, seq: seq}
	p.entry("detect").WithFields(logrus.Fields{
		"crossings": seq.Intervals(),
		"alpha":     p.alpha,
		"eta":       p.eta,
	}).Debug("crossings ready")

	cp := seq.Clone()
	return cp.Tau, cp.Levels, nil
}

// ReconstructObserved builds the observed tape with the given posting mode
// (empty means latency.ModeBeta). Requires CrossingsReady or later.
func (p *Pipeline) ReconstructObserved(mode latency.Mode) (core.ObservedPath, error) {
	cs, ok := crossingsOf(p.stage)
	if !ok {
		return nil, core.Errorf(MethodReconstructObserved, core.ErrState, "exit times not computed (state %s)", p.State())
	}
	if mode == "" {
		mode = latency.DefaultMode
	}

	jumps, err := latency.Sample(cs.seq.Tau,
		latency.WithMode(mode), latency.WithDistribution(p.dist), latency.WithSource(p.src))
	if err != nil {
		p.entry("reconstruct").WithError(err).Warn("jump time sampling failed")
		return nil, err
	}

	tape, err := observed.Build(len(cs.path), cs.seq, jumps, observed.WithPrecision(p.precision))
	if err != nil {
		p.entry("reconstruct").WithError(err).Warn("observed tape failed")
		return nil, err
	}

	p.stage = observedStage{crossingStage: cs, mode: mode, jumps: jumps, tape: tape}
	p.entry("reconstruct").WithFields(logrus.Fields{
		"mode":  string(mode),
		"jumps": len(jumps),
	}).Debug("observed tape ready")

	return cloneFloats(tape), nil
}

// Run executes all three stages in order.
func (p *Pipeline) Run(sigma float64, n int, mode latency.Mode, opts ...simulate.Option) (Result, error) {
	if _, _, err := p.Simulate(sigma, n, opts...); err != nil {
		return Result{}, err
	}
	if _, _, err := p.DetectCrossings(); err != nil {
		return Result{}, err
	}
	if _, err := p.ReconstructObserved(mode); err != nil {
		return Result{}, err
	}

	res, _ := p.Result()
	p.entry("run").WithFields(logrus.Fields{
		"n":         n,
		"crossings": res.Crossings.Intervals(),
		"mode":      string(mode),
	}).Info("run complete")

	return res, nil
}

// Grid returns a copy of the time grid, ok=false before Simulate.
func (p *Pipeline) Grid() (core.TimeGrid, bool) {
	ps, ok := pathOf(p.stage)
	return cloneFloats(ps.grid), ok
}

// Path returns a copy of the efficient path, ok=false before Simulate.
func (p *Pipeline) Path() (core.PricePath, bool) {
	ps, ok := pathOf(p.stage)
	return cloneFloats(ps.path), ok
}

// Crossings returns a copy of the crossing sequence, ok=false before
// DetectCrossings.
func (p *Pipeline) Crossings() (core.CrossingSequence, bool) {
	cs, ok := crossingsOf(p.stage)
	if !ok {
		return core.CrossingSequence{}, false
	}
	return cs.seq.Clone(), true
}

// Observed returns a copy of the tape and the mode used, ok=false before
// ReconstructObserved.
func (p *Pipeline) Observed() (core.ObservedPath, latency.Mode, bool) {
	os, ok := p.stage.(observedStage)
	if !ok {
		return nil, "", false
	}
	return cloneFloats(os.tape), os.mode, true
}

// Result returns copies of everything produced; ok=false unless the
// pipeline is ObservedReady.
func (p *Pipeline) Result() (Result, bool) {
	os, ok := p.stage.(observedStage)
	if !ok {
		return Result{}, false
	}
	return Result{
		RunID:     p.runID,
		Grid:      cloneFloats(os.grid),
		Path:      cloneFloats(os.path),
		Crossings: os.seq.Clone(),
		JumpIndex: append([]int(nil), os.jumps...),
		Observed:  cloneFloats(os.tape),
	}, true
}

func (p *Pipeline) entry(stage string) *logrus.Entry {
	return p.log.WithFields(logrus.Fields{"run_id": p.runID, "stage": stage})
}

func cloneFloats[S ~[]float64](s S) S {
	if s == nil {
		return nil
	}
	return append(S(nil), s...)
}
