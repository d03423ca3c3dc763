package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_ConfigYAML(t *testing.T) {
	path := filepath.Join("..", "..", "config.yaml")
	cfg, err := Load(path)
	require.NoError(t, err)
	require.NotEmpty(t, cfg.Database.Host)
	require.NotZero(t, cfg.RabbitMQ.Port)
	require.NotZero(t, cfg.HTTP.Port)
}

func TestLoad_EnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(path, []byte("database:\n  host: filehost\n  password: filepass\nhttp:\n  port: 3000\n"), 0o644)
	require.NoError(t, err)

	t.Setenv("DATABASE_PASSWORD", "envpass")
	t.Setenv("HTTP_PORT", "8080")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "filehost", cfg.Database.Host, "file values survive when no override is set")
	require.Equal(t, "envpass", cfg.Database.Password)
	require.Equal(t, 8080, cfg.HTTP.Port)
}

func TestLoad_EnvOverrideBadValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(path, []byte("http:\n  port: 3000\n"), 0o644)
	require.NoError(t, err)

	t.Setenv("HTTP_PORT", "not-a-port")

	_, err = Load(path)
	require.Error(t, err)
}

func TestLoad_UnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	err := os.WriteFile(path, []byte("database:\n  flavor: strawberry\n"), 0o644)
	require.NoError(t, err)

	_, err = Load(path)
	require.Error(t, err)
}
