// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/glmath/dense"
)

const (
	DefaultPairs      = 1000
	DefaultSeed       = 1
	DefaultWorkers    = 4
	DefaultRange      = 100.0
	DefaultIterations = 1_000_000
	DefaultBackend    = "gonum"
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "text"
)

var (
	// ErrInvalidConfig reports a config value outside its allowed range.
	ErrInvalidConfig = errors.New("glkernel: invalid config")
)

// Config is the YAML schema of --config.
type Config struct {
	Verify VerifyConfig `yaml:"verify"`
	Bench  BenchConfig  `yaml:"bench"`
	Log    LogConfig    `yaml:"log"`
}

type VerifyConfig struct {
	Pairs   int     `yaml:"pairs"`
	Seed    int64   `yaml:"seed"`
	Workers int     `yaml:"workers"`
	Range   float32 `yaml:"range"`
	Backend string  `yaml:"backend"`
}

type BenchConfig struct {
	Iterations int `yaml:"iterations"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Verify: VerifyConfig{
			Pairs:   DefaultPairs,
			Seed:    DefaultSeed,
			Workers: DefaultWorkers,
			Range:   DefaultRange,
			Backend: DefaultBackend,
		},
		Bench: BenchConfig{Iterations: DefaultIterations},
		Log:   LogConfig{Level: DefaultLogLevel, Format: DefaultLogFormat},
	}
}

// LoadConfig reads path over DefaultConfig. An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks ranges and names.
func (c Config) Validate() error {
	switch {
	case c.Verify.Pairs <= 0:
		return fmt.Errorf("%w: verify.pairs must be > 0, got %d", ErrInvalidConfig, c.Verify.Pairs)
	case c.Verify.Workers <= 0:
		return fmt.Errorf("%w: verify.workers must be > 0, got %d", ErrInvalidConfig, c.Verify.Workers)
	case !(c.Verify.Range > 0):
		return fmt.Errorf("%w: verify.range must be > 0, got %g", ErrInvalidConfig, c.Verify.Range)
	case c.Bench.Iterations <= 0:
		return fmt.Errorf("%w: bench.iterations must be > 0, got %d", ErrInvalidConfig, c.Bench.Iterations)
	}
	if _, err := dense.ParseBackend(c.Verify.Backend); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}
