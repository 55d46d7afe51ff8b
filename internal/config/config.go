// Package config loads the lvpuzzle YAML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all lvpuzzle configuration.
type Config struct {
	Inputs   InputsConfig   `yaml:"inputs"`
	Springs  SpringsConfig  `yaml:"springs"`
	Crucible CrucibleConfig `yaml:"crucible"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// InputsConfig names the default input file of each puzzle.
type InputsConfig struct {
	Springs  string `yaml:"springs"`
	Crucible string `yaml:"crucible"`
	Bricks   string `yaml:"bricks"`
}

// SpringsConfig configures the run-fit counter.
type SpringsConfig struct {
	Unfold int `yaml:"unfold"` // copies for part 2
}

// RunBounds is a straight-run window for the crucible search.
type RunBounds struct {
	MinRun int `yaml:"min_run"`
	MaxRun int `yaml:"max_run"`
}

// CrucibleConfig holds the run bounds of both crucible parts.
type CrucibleConfig struct {
	Part1 RunBounds `yaml:"part1"`
	Part2 RunBounds `yaml:"part2"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// ValidLogLevels lists the accepted logging.level values.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Inputs: InputsConfig{
			Springs:  "input/day12.txt",
			Crucible: "input/day17.txt",
			Bricks:   "input/day22.txt",
		},
		Springs: SpringsConfig{
			Unfold: 5,
		},
		Crucible: CrucibleConfig{
			Part1: RunBounds{MinRun: 1, MaxRun: 3},
			Part2: RunBounds{MinRun: 4, MaxRun: 10},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return defaults if config file doesn't exist
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
// LVPUZZLE_INPUT_DIR re-roots relative input paths; LVPUZZLE_LOG_LEVEL
// replaces logging.level.
func (c *Config) applyEnvOverrides() {
	if dir := os.Getenv("LVPUZZLE_INPUT_DIR"); dir != "" {
		for _, p := range []*string{&c.Inputs.Springs, &c.Inputs.Crucible, &c.Inputs.Bricks} {
			if *p != "" && !filepath.IsAbs(*p) {
				*p = filepath.Join(dir, filepath.Base(*p))
			}
		}
	}
	if level := os.Getenv("LVPUZZLE_LOG_LEVEL"); level != "" {
		c.Logging.Level = strings.ToLower(level)
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Springs.Unfold < 1 {
		return fmt.Errorf("springs.unfold must be >= 1, got %d", c.Springs.Unfold)
	}
	for i, rb := range []RunBounds{c.Crucible.Part1, c.Crucible.Part2} {
		if rb.MinRun < 1 || rb.MinRun > rb.MaxRun {
			return fmt.Errorf("crucible.part%d: need 1 <= min_run <= max_run, got %d..%d", i+1, rb.MinRun, rb.MaxRun)
		}
	}

	validLevel := false
	for _, l := range ValidLogLevels {
		if c.Logging.Level == l {
			validLevel = true
			break
		}
	}
	if !validLevel {
		return fmt.Errorf("invalid logging level: %s (valid: %v)", c.Logging.Level, ValidLogLevels)
	}

	return nil
}
