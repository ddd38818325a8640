package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "osascript", cfg.Bridge.OsascriptPath)
	assert.Equal(t, 30, cfg.Bridge.TimeoutSec)
	assert.Equal(t, 60, cfg.Bridge.PerspectiveTimeoutSec)
	assert.Equal(t, int64(10*1024*1024), cfg.Bridge.MaxOutputBytes)
	assert.False(t, cfg.Output.Compact)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"bridge:\n  timeout_sec: 5\noutput:\n  compact: true\nlog:\n  level: debug\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Bridge.TimeoutSec)
	// Untouched keys keep their defaults.
	assert.Equal(t, 60, cfg.Bridge.PerspectiveTimeoutSec)
	assert.True(t, cfg.Output.Compact)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bridge: [not a map"), 0o600))

	_, err := LoadConfig(path)
	require.Error(t, err)
}
