// server/config/config_test.go
package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/theranotes/server/config"
)

func TestDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, "0.0.0.0:8080", cfg.Addr())
	require.Equal(t, "./data", cfg.Data.Dir)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("THERANOTES_HOST", "127.0.0.1")
	t.Setenv("THERANOTES_PORT", "9090")
	t.Setenv("THERANOTES_DATA_DIR", "/tmp/theranotes")
	t.Setenv("THERANOTES_LOG_LEVEL", "debug")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:9090", cfg.Addr())
	require.Equal(t, "/tmp/theranotes", cfg.Data.Dir)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestInvalidPort(t *testing.T) {
	t.Setenv("THERANOTES_PORT", "not-a-port")

	_, err := config.Load()
	require.Error(t, err)
}

func TestConfigFileAndEnvPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "server:\n  port: 7070\ndata:\n  dir: /srv/notes\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	t.Setenv("THERANOTES_CONFIG", path)
	t.Setenv("THERANOTES_PORT", "7171")

	cfg, err := config.Load()
	require.NoError(t, err)
	// Env beats the file; the file beats the default.
	require.Equal(t, 7171, cfg.Server.Port)
	require.Equal(t, "/srv/notes", cfg.Data.Dir)
}

func TestMissingConfigFile(t *testing.T) {
	t.Setenv("THERANOTES_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))

	_, err := config.Load()
	require.Error(t, err)
}
