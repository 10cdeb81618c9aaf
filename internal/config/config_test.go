package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PRAZO_DB", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.UI.Color)
	assert.Contains(t, cfg.Database.Path, "prazo.db")
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("PRAZO_DB", "")

	dir := filepath.Join(home, ".prazo")
	require.NoError(t, os.MkdirAll(dir, 0755))
	body, err := toml.Marshal(Config{
		Database: DatabaseConfig{Path: "/tmp/custom.db"},
		UI:       UIConfig{Color: false},
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), body, 0644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.db", cfg.Database.Path)
	assert.False(t, cfg.UI.Color)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PRAZO_DB", "/tmp/env.db")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/env.db", cfg.Database.Path)
}
