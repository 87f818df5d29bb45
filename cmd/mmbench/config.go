// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the run defaults; explicit flags override its fields.
type Config struct {
	Rows   int    `yaml:"rows"`   // dataset length
	Reps   int    `yaml:"reps"`   // fills per timing mode
	Seed   int64  `yaml:"seed"`   // noise and factor seed
	Preset string `yaml:"preset"` // model preset name
	Gram   bool   `yaml:"gram"`   // compute Xᵀ·X after timing
}

// DefaultConfig returns the default run configuration.
func DefaultConfig() *Config {
	return &Config{
		Rows:   1 << 16,
		Reps:   50,
		Seed:   1337,
		Preset: "interaction",
	}
}

// LoadConfig reads a YAML config over the defaults. A missing file is not an
// error: it yields the defaults, so --config stays optional.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
