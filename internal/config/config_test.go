package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "equity.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `
engine {
  workers               = 8
  iterations            = 250000
  antithetic            = false
  antithetic_scale      = 0.5
  checkpoints           = 20
  convergence_threshold = 0.05
  convergence_window    = 4
  device                = "gpu"
  log_level             = "debug"
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Engine.Workers)
	assert.Equal(t, 250000, cfg.Engine.Iterations)
	require.NotNil(t, cfg.Engine.Antithetic)
	assert.False(t, *cfg.Engine.Antithetic)
	assert.Equal(t, 0.5, cfg.Engine.AntitheticScale)
	assert.Equal(t, 20, cfg.Engine.Checkpoints)
	assert.Equal(t, 0.05, cfg.Engine.ConvergenceThreshold)
	assert.Equal(t, 4, cfg.Engine.ConvergenceWindow)
	assert.Equal(t, "gpu", cfg.Engine.Device)
	assert.Equal(t, "debug", cfg.Engine.LogLevel)
}

func TestLoadPartialConfigAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
engine {
  workers = 2
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Engine.Workers)
	require.NotNil(t, cfg.Engine.Antithetic)
	assert.True(t, *cfg.Engine.Antithetic)
	assert.Equal(t, 0.6, cfg.Engine.AntitheticScale)
	assert.Equal(t, 0.1, cfg.Engine.ConvergenceThreshold)
	assert.Equal(t, "auto", cfg.Engine.Device)
}

func TestLoadExplicitZeroFallsBackToDefaults(t *testing.T) {
	path := writeConfig(t, `
engine {
  antithetic_scale      = 0
  checkpoints           = 0
  convergence_threshold = 0
  convergence_window    = 0
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 0.6, cfg.Engine.AntitheticScale)
	assert.Equal(t, 10, cfg.Engine.Checkpoints)
	assert.Equal(t, 0.1, cfg.Engine.ConvergenceThreshold)
	assert.Equal(t, 3, cfg.Engine.ConvergenceWindow)
}

func TestLoadInvalidHCL(t *testing.T) {
	path := writeConfig(t, `engine { workers = `)

	_, err := Load(path)
	assert.Error(t, err)
}
