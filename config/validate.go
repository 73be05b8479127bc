// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/uzone/latency"
	"github.com/katalvlaran/uzone/zone"
)

// Validate checks that all required fields are set and values are valid.
// Call it after defaults are applied.
func (c *Config) Validate() error {
	if !(c.Model.Alpha > 0) || math.IsInf(c.Model.Alpha, 1) {
		return errors.New("model.alpha must be > 0")
	}
	if !(c.Model.Eta >= 0 && c.Model.Eta < zone.MaxAversion) {
		return fmt.Errorf("model.eta must be in [0,1), got %v", c.Model.Eta)
	}
	if !(c.Model.Horizon > 0) || math.IsInf(c.Model.Horizon, 1) {
		return errors.New("model.horizon must be > 0")
	}

	if !(c.Simulation.Sigma > 0) || math.IsInf(c.Simulation.Sigma, 1) {
		return errors.New("simulation.sigma must be > 0")
	}
	if c.Simulation.Steps < 2 {
		return fmt.Errorf("simulation.steps must be >= 2, got %d", c.Simulation.Steps)
	}
	if !(c.Simulation.InitialPrice > 0) || math.IsInf(c.Simulation.InitialPrice, 1) {
		return errors.New("simulation.initial_price must be > 0")
	}
	if math.IsNaN(c.Simulation.Drift) || math.IsInf(c.Simulation.Drift, 0) {
		return errors.New("simulation.drift must be finite")
	}

	mode, err := latency.ParseMode(c.Latency.Mode)
	if err != nil {
		return fmt.Errorf("latency.mode: %w", err)
	}
	if mode == latency.ModeBeta {
		if err := (latency.Beta{A: c.Latency.BetaA, B: c.Latency.BetaB}).Validate(); err != nil {
			return fmt.Errorf("latency.beta: %w", err)
		}
	}

	if err := c.Jump.validate("jump"); err != nil {
		return err
	}

	if d := c.Observed.Decimals(); d < 0 {
		return fmt.Errorf("observed.precision must be >= 0, got %d", d)
	}

	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}

	return nil
}

func (j *JumpConfig) validate(prefix string) error {
	if len(j.Sizes) == 0 {
		return fmt.Errorf("%s.sizes is required", prefix)
	}
	if len(j.Weights) != len(j.Sizes) {
		return fmt.Errorf("%s.weights (%d) must match sizes (%d)", prefix, len(j.Weights), len(j.Sizes))
	}
	if _, err := zone.NewWeightedJump(j.Sizes, j.Weights); err != nil {
		return fmt.Errorf("%s: %w", prefix, err)
	}
	return nil
}
