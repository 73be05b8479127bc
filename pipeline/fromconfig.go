// SPDX-License-Identifier: MIT

package pipeline

import (
	"fmt"

	"github.com/katalvlaran/uzone/config"
	"github.com/katalvlaran/uzone/core"
	"github.com/katalvlaran/uzone/latency"
	"github.com/katalvlaran/uzone/simulate"
	"github.com/katalvlaran/uzone/zone"
)

// MethodFromConfig is the canonical name used in FromConfig errors.
const MethodFromConfig = "FromConfig"

// FromConfig validates cfg and builds a Pipeline from its model, jump,
// latency, observed, log and seed settings. opts are applied after the
// config-derived options and win on conflict.
func FromConfig(cfg *config.Config, opts ...Option) (*Pipeline, error) {
	if cfg == nil {
		return nil, core.Errorf(MethodFromConfig, core.ErrInvalidParameter, "nil config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	base := []Option{
		WithPrecision(cfg.Observed.Decimals()),
		WithLogger(cfg.Logger()),
		WithLatency(latency.Beta{A: cfg.Latency.BetaA, B: cfg.Latency.BetaB}),
	}
	if cfg.Simulation.Seed != nil {
		base = append(base, WithSeed(*cfg.Simulation.Seed))
	}
	if len(cfg.Jump.Sizes) == 1 {
		base = append(base, WithJumpSizer(zone.ConstantJump(cfg.Jump.Sizes[0])))
	} else {
		sizer, err := zone.NewWeightedJump(cfg.Jump.Sizes, cfg.Jump.Weights)
		if err != nil {
			return nil, err
		}
		base = append(base, WithJumpSizer(sizer))
	}

	return New(cfg.Model.Alpha, cfg.Model.Eta, cfg.Model.Horizon, append(base, opts...)...)
}

// RunConfig builds a Pipeline with FromConfig and runs all three stages
// with the simulation section and latency mode of cfg.
func RunConfig(cfg *config.Config, opts ...Option) (Result, error) {
	p, err := FromConfig(cfg, opts...)
	if err != nil {
		return Result{}, err
	}

	mode, err := latency.ParseMode(cfg.Latency.Mode)
	if err != nil {
		return Result{}, err
	}

	return p.Run(cfg.Simulation.Sigma, cfg.Simulation.Steps, mode,
		simulate.WithDrift(cfg.Simulation.Drift),
		simulate.WithInitialPrice(cfg.Simulation.InitialPrice))
}
