// SPDX-License-Identifier: MIT

package config

// Config is the root of a uzone YAML file.
type Config struct {
	Model      ModelConfig      `yaml:"model"`
	Simulation SimulationConfig `yaml:"simulation"`
	Latency    LatencyConfig    `yaml:"latency"`
	Jump       JumpConfig       `yaml:"jump"`
	Observed   ObservedConfig   `yaml:"observed"`
	Log        LogConfig        `yaml:"log"`
}

// ModelConfig holds the uncertainty-zone parameters.
type ModelConfig struct {
	Alpha   float64 `yaml:"alpha"`
	Eta     float64 `yaml:"eta"`
	Horizon float64 `yaml:"horizon"`
}

// SimulationConfig holds the efficient-price parameters.
type SimulationConfig struct {
	Sigma        float64 `yaml:"sigma"`
	Steps        int     `yaml:"steps"`
	Drift        float64 `yaml:"drift"`
	InitialPrice float64 `yaml:"initial_price"`
	Seed         *int64  `yaml:"seed"`
}

// LatencyConfig selects where each level change lands inside its interval.
type LatencyConfig struct {
	Mode  string  `yaml:"mode"`
	BetaA float64 `yaml:"beta_a"`
	BetaB float64 `yaml:"beta_b"`
}

// JumpConfig is a discrete law for the jump size L.
type JumpConfig struct {
	Sizes   []int     `yaml:"sizes"`
	Weights []float64 `yaml:"weights"`
}

// ObservedConfig controls the tape output. Precision is a pointer so that
// an explicit 0 (whole-number tape) is kept apart from an omitted field.
type ObservedConfig struct {
	Precision *int `yaml:"precision"`
}

// Decimals returns the configured precision, or DefaultPrecision when unset.
func (o ObservedConfig) Decimals() int {
	if o.Precision == nil {
		return DefaultPrecision
	}
	return *o.Precision
}

// LogConfig controls the logrus logger built by Logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}
