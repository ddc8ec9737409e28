package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "fs", cfg.Storage.Backend)
	assert.Equal(t, "./data", cfg.Storage.DataDir)
	assert.Equal(t, 200000, cfg.Solver.MaxNodes)
	assert.Equal(t, 2*time.Second, cfg.Solver.MaxDuration)
	assert.Equal(t, 10, cfg.Generator.Attempts)
	assert.Equal(t, 2, cfg.Hints.Budget)
}

func TestLoadFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arcanum.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
log:
  level: debug
storage:
  backend: badger
  data_dir: /tmp/arcanum
solver:
  max_nodes: 5000
  max_duration: 250ms
generator:
  attempts: 3
hints:
  budget: 1
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "badger", cfg.Storage.Backend)
	assert.Equal(t, "/tmp/arcanum", cfg.Storage.DataDir)
	assert.Equal(t, 5000, cfg.Solver.MaxNodes)
	assert.Equal(t, 250*time.Millisecond, cfg.Solver.MaxDuration)
	assert.Equal(t, 3, cfg.Generator.Attempts)
	assert.Equal(t, 1, cfg.Hints.Budget)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arcanum.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log: [unclosed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err, "a present but unparsable file must not fall back to defaults")
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("ARCANUM_LOG_LEVEL", "warn")
	t.Setenv("ARCANUM_HINT_BUDGET", "5")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 5, cfg.Hints.Budget)
}
