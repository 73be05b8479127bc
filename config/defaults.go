// SPDX-License-Identifier: MIT

package config

// Default values for optional configuration fields.
const (
	DefaultHorizon      = 1.0
	DefaultSteps        = 100
	DefaultInitialPrice = 100.0
	DefaultMode         = "beta"
	DefaultBetaA        = 2.0
	DefaultBetaB        = 5.0
	DefaultJumpSize     = 1
	DefaultPrecision    = 2
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "text"
)

// Default returns a complete configuration with the reference scenario:
// alpha 0.2, eta 0.2, sigma 0.01 over 100 steps.
func Default() *Config {
	cfg := &Config{
		Model:      ModelConfig{Alpha: 0.2, Eta: 0.2},
		Simulation: SimulationConfig{Sigma: 0.01},
	}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	// Model defaults
	if c.Model.Horizon == 0 {
		c.Model.Horizon = DefaultHorizon
	}

	// Simulation defaults
	if c.Simulation.Steps == 0 {
		c.Simulation.Steps = DefaultSteps
	}
	if c.Simulation.InitialPrice == 0 {
		c.Simulation.InitialPrice = DefaultInitialPrice
	}

	// Latency defaults
	if c.Latency.Mode == "" {
		c.Latency.Mode = DefaultMode
	}
	if c.Latency.BetaA == 0 {
		c.Latency.BetaA = DefaultBetaA
	}
	if c.Latency.BetaB == 0 {
		c.Latency.BetaB = DefaultBetaB
	}

	// Jump defaults
	if len(c.Jump.Sizes) == 0 {
		c.Jump.Sizes = []int{DefaultJumpSize}
	}
	if len(c.Jump.Weights) == 0 {
		c.Jump.Weights = make([]float64, len(c.Jump.Sizes))
		for i := range c.Jump.Weights {
			c.Jump.Weights[i] = 1
		}
	}

	// Observed defaults
	if c.Observed.Precision == nil {
		d := DefaultPrecision
		c.Observed.Precision = &d
	}

	// Log defaults
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogFormat
	}
}
