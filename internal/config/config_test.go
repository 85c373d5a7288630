package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "dataminder.db", cfg.DB.Path)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, "stdio", cfg.Transport.Mode)
	require.Equal(t, 8080, cfg.Server.Port)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DATAMINDER_DB_PATH", "/tmp/dm.db")
	t.Setenv("DATAMINDER_LOG_LEVEL", "debug")
	t.Setenv("DATAMINDER_TRANSPORT", "http")
	t.Setenv("DATAMINDER_SERVER_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "/tmp/dm.db", cfg.DB.Path)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "http", cfg.Transport.Mode)
	require.Equal(t, 9090, cfg.Server.Port)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("db:\n  path: file.db\nlog:\n  level: warn\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	t.Setenv("DATAMINDER_CONFIG_PATH", path)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "file.db", cfg.DB.Path)
	require.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_InvalidInput(t *testing.T) {
	t.Setenv("DATAMINDER_SERVER_PORT", "not-a-port")
	_, err := Load()
	require.Error(t, err)

	t.Setenv("DATAMINDER_SERVER_PORT", "8080")
	t.Setenv("DATAMINDER_TRANSPORT", "carrier-pigeon")
	_, err = Load()
	require.Error(t, err)
}
