// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	yaml := `
model:
  alpha: 0.05
  eta: 0.3
  horizon: 2
simulation:
  sigma: 0.02
  steps: 500
  drift: 0.01
  initial_price: 50
  seed: 7
latency:
  mode: left
jump:
  sizes: [1, 2]
  weights: [0.8, 0.2]
observed:
  precision: 3
log:
  level: debug
  format: json
`
	path := writeTempFile(t, yaml)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 0.05, cfg.Model.Alpha)
	assert.Equal(t, 0.3, cfg.Model.Eta)
	assert.Equal(t, 2.0, cfg.Model.Horizon)
	assert.Equal(t, 500, cfg.Simulation.Steps)
	assert.Equal(t, 50.0, cfg.Simulation.InitialPrice)
	require.NotNil(t, cfg.Simulation.Seed)
	assert.Equal(t, int64(7), *cfg.Simulation.Seed)
	assert.Equal(t, "left", cfg.Latency.Mode)
	assert.Equal(t, []int{1, 2}, cfg.Jump.Sizes)
	assert.Equal(t, []float64{0.8, 0.2}, cfg.Jump.Weights)
	assert.Equal(t, 3, cfg.Observed.Decimals())
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadWithEnvSubstitution(t *testing.T) {
	t.Setenv("UZONE_TEST_SIGMA", "0.03")
	t.Setenv("UZONE_TEST_MODE", "right")

	yaml := `
model:
  alpha: 0.2
simulation:
  sigma: ${UZONE_TEST_SIGMA}
latency:
  mode: ${UZONE_TEST_MODE}
`
	path := writeTempFile(t, yaml)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.03, cfg.Simulation.Sigma)
	assert.Equal(t, "right", cfg.Latency.Mode)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: read")
}

func TestLoadBadYAML(t *testing.T) {
	path := writeTempFile(t, "model: [alpha")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: decode yaml")
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("model:\n  alhpa: 0.2\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "alhpa")
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestLoadWithDefaults(t *testing.T) {
	yaml := `
model:
  alpha: 0.2
  eta: 0.2
simulation:
  sigma: 0.01
`
	path := writeTempFile(t, yaml)

	cfg, err := LoadWithDefaults(path)
	require.NoError(t, err)

	assert.Equal(t, DefaultHorizon, cfg.Model.Horizon)
	assert.Equal(t, DefaultSteps, cfg.Simulation.Steps)
	assert.Equal(t, DefaultInitialPrice, cfg.Simulation.InitialPrice)
	assert.Nil(t, cfg.Simulation.Seed)
	assert.Equal(t, DefaultMode, cfg.Latency.Mode)
	assert.Equal(t, DefaultBetaA, cfg.Latency.BetaA)
	assert.Equal(t, DefaultBetaB, cfg.Latency.BetaB)
	assert.Equal(t, []int{DefaultJumpSize}, cfg.Jump.Sizes)
	assert.Equal(t, []float64{1}, cfg.Jump.Weights)
	require.NotNil(t, cfg.Observed.Precision)
	assert.Equal(t, DefaultPrecision, *cfg.Observed.Precision)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, DefaultLogFormat, cfg.Log.Format)
}

func TestDefaultsKeepZeroEta(t *testing.T) {
	path := writeTempFile(t, "model: {alpha: 0.1, eta: 0}\nsimulation: {sigma: 0.01}\n")

	cfg, err := LoadAndValidate(path)
	require.NoError(t, err)
	assert.Equal(t, 0.0, cfg.Model.Eta)
}

func TestLoadKeepsZeroPrecision(t *testing.T) {
	path := writeTempFile(t, "model: {alpha: 0.2}\nsimulation: {sigma: 0.01}\nobserved: {precision: 0}\n")

	cfg, err := LoadAndValidate(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.Observed.Precision)
	assert.Equal(t, 0, cfg.Observed.Decimals())
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 0.2, cfg.Model.Alpha)
	assert.Equal(t, 0.2, cfg.Model.Eta)
	assert.Equal(t, 0.01, cfg.Simulation.Sigma)
}

func TestLoadAndValidate(t *testing.T) {
	path := writeTempFile(t, "model: {alpha: 0.2, eta: 1.5}\nsimulation: {sigma: 0.01}\n")

	_, err := LoadAndValidate(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validate config: model.eta must be in [0,1)")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid config", func(*Config) {}, ""},
		{"zero alpha", func(c *Config) { c.Model.Alpha = 0 }, "model.alpha must be > 0"},
		{"negative eta", func(c *Config) { c.Model.Eta = -0.1 }, "model.eta must be in [0,1), got -0.1"},
		{"eta one", func(c *Config) { c.Model.Eta = 1 }, "model.eta must be in [0,1), got 1"},
		{"negative horizon", func(c *Config) { c.Model.Horizon = -1 }, "model.horizon must be > 0"},
		{"zero sigma", func(c *Config) { c.Simulation.Sigma = 0 }, "simulation.sigma must be > 0"},
		{"one step", func(c *Config) { c.Simulation.Steps = 1 }, "simulation.steps must be >= 2, got 1"},
		{"negative price", func(c *Config) { c.Simulation.InitialPrice = -5 }, "simulation.initial_price must be > 0"},
		{"unknown mode", func(c *Config) { c.Latency.Mode = "middle" }, "latency.mode"},
		{"bad beta", func(c *Config) { c.Latency.BetaA = -1 }, "latency.beta"},
		{"bad beta ignored in left mode", func(c *Config) { c.Latency.Mode = "left"; c.Latency.BetaA = -1 }, ""},
		{"weights mismatch", func(c *Config) { c.Jump.Weights = []float64{1, 1} }, "jump.weights (2) must match sizes (1)"},
		{"zero jump size", func(c *Config) { c.Jump.Sizes = []int{0} }, "jump: "},
		{"negative precision", func(c *Config) { d := -1; c.Observed.Precision = &d }, "observed.precision must be >= 0, got -1"},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, `log.format must be text or json, got "xml"`},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLogger(t *testing.T) {
	cfg := Default()
	cfg.Log.Level = "debug"
	cfg.Log.Format = "json"

	l := cfg.Logger()
	assert.Equal(t, logrus.DebugLevel, l.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, l.Formatter)

	cfg.Log.Level = "nonsense"
	cfg.Log.Format = "text"
	l = cfg.Logger()
	assert.Equal(t, logrus.InfoLevel, l.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, l.Formatter)
}

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}
