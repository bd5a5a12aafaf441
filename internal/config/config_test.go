package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), cfg)
	assert.False(t, Exists())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfg := DefaultConfig()
	cfg.General.DataFile = "/srv/pangan/data.json"
	cfg.General.DefaultTab = "fiscal"
	cfg.Appearance.Theme = "tokyo-night"
	cfg.Log.Level = "debug"
	require.NoError(t, Save(cfg))

	assert.True(t, Exists())
	assert.Equal(t, filepath.Join(dir, "pangan", "config.toml"), ConfigPath())

	got, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "pangan"), 0o755))
	require.NoError(t, os.WriteFile(ConfigPath(), []byte("[appearance]\ntheme = \"catppuccin-mocha\"\n"), 0o600))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "catppuccin-mocha", cfg.Appearance.Theme)
	assert.Equal(t, "overview", cfg.General.DefaultTab)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "pangan"), 0o755))
	require.NoError(t, os.WriteFile(ConfigPath(), []byte("[general\n"), 0o600))

	_, err := Load()
	assert.ErrorContains(t, err, "parsing config")
}

func TestDataFile_EnvOverrides(t *testing.T) {
	cfg := DefaultConfig()
	cfg.General.DataFile = "from-config.json"

	t.Setenv(DataEnv, "")
	assert.Equal(t, "from-config.json", DataFile(cfg))

	t.Setenv(DataEnv, "from-env.json")
	assert.Equal(t, "from-env.json", DataFile(cfg))
}

func TestLogPath(t *testing.T) {
	state := t.TempDir()
	t.Setenv("XDG_STATE_HOME", state)

	cfg := DefaultConfig()
	assert.Equal(t, filepath.Join(state, "pangan", "pangan.log"), LogPath(cfg))

	cfg.Log.File = "/tmp/custom.log"
	assert.Equal(t, "/tmp/custom.log", LogPath(cfg))
}
