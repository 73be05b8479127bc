// SPDX-License-Identifier: MIT

// Package config loads uzone run settings from YAML.
//
// A file is read, ${VAR} references are expanded from the environment, and
// the result is decoded with gopkg.in/yaml.v3. LoadWithDefaults fills
// omitted fields and LoadAndValidate rejects values the model cannot use.
//
//	model:      { alpha: 0.2, eta: 0.2, horizon: 1 }
//	simulation: { sigma: 0.01, steps: 100, drift: 0, initial_price: 100, seed: 42 }
//	latency:    { mode: beta, beta_a: 2, beta_b: 5 }
//	jump:       { sizes: [1], weights: [1] }
//	observed:   { precision: 2 }
//	log:        { level: info, format: text }
//
// An omitted simulation.seed means a clock-seeded source.
package config
