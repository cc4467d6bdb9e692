// SPDX-License-Identifier: MIT

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "glkernel.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultPairs, cfg.Verify.Pairs)
	assert.Equal(t, DefaultBackend, cfg.Verify.Backend)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_OverridesDefaults(t *testing.T) {
	p := writeConfig(t, `
verify:
  pairs: 50
  backend: lu
log:
  level: debug
`)
	cfg, err := LoadConfig(p)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 50, cfg.Verify.Pairs)
	assert.Equal(t, "lu", cfg.Verify.Backend)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, DefaultWorkers, cfg.Verify.Workers, "unset keys keep defaults")
	assert.Equal(t, DefaultIterations, cfg.Bench.Iterations)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = LoadConfig(writeConfig(t, "verify:\n  pears: 3\n"))
	require.Error(t, err, "unknown keys are rejected")

	_, err = LoadConfig(writeConfig(t, "verify: [1, 2"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	for name, mutate := range map[string]func(*Config){
		"pairs":      func(c *Config) { c.Verify.Pairs = 0 },
		"workers":    func(c *Config) { c.Verify.Workers = -1 },
		"range":      func(c *Config) { c.Verify.Range = 0 },
		"iterations": func(c *Config) { c.Bench.Iterations = 0 },
		"backend":    func(c *Config) { c.Verify.Backend = "lapack" },
		"level":      func(c *Config) { c.Log.Level = "loud" },
	} {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestNewLogger(t *testing.T) {
	_, err := NewLogger(os.Stderr, "json", 0)
	require.NoError(t, err)
	_, err = NewLogger(os.Stderr, "xml", 0)
	require.ErrorIs(t, err, ErrInvalidConfig)
}
