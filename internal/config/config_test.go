package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithoutFileOrEnv(t *testing.T) {
	t.Setenv("SPARKY_CONFIG", "")
	t.Setenv("SPARKY_ADDR", "")
	t.Setenv("SPARKY_LOG_LEVEL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout.Std())
}

func TestLoad_YAMLFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sparky.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"addr: \":9090\"\nlog_level: debug\nrequest_timeout: 5s\n"), 0o644))
	t.Setenv("SPARKY_CONFIG", path)
	t.Setenv("SPARKY_ADDR", "")
	t.Setenv("SPARKY_LOG_LEVEL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout.Std())
	// untouched fields keep their defaults
	assert.Equal(t, Default().ShutdownTimeout, cfg.ShutdownTimeout)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sparky.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: \":9090\"\n"), 0o644))
	t.Setenv("SPARKY_CONFIG", path)
	t.Setenv("SPARKY_ADDR", ":7070")
	t.Setenv("SPARKY_LOG_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Addr)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_MissingNamedFileFails(t *testing.T) {
	t.Setenv("SPARKY_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_BadDurationFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sparky.yaml")
	require.NoError(t, os.WriteFile(path, []byte("request_timeout: soon\n"), 0o644))
	t.Setenv("SPARKY_CONFIG", path)

	_, err := Load()
	assert.ErrorContains(t, err, "invalid duration")
}
