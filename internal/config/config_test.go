package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, 120, cfg.MaxRequestsPerMin)
	assert.InDelta(t, 5.5, cfg.DefaultTimezone, 1e-9)
	assert.Equal(t, 1000, cfg.LogBufferSize)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("MAX_REQUESTS_PER_MIN", "30")
	t.Setenv("DEFAULT_TIMEZONE", "0")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, 30, cfg.MaxRequestsPerMin)
	assert.Zero(t, cfg.DefaultTimezone)
}

func TestLoadYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "astro.yaml")
	yaml := "port: \"9999\"\nlog_buffer_size: 50\nallowed_origins:\n  - https://astro.example\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	t.Setenv("ASTRO_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9999", cfg.Port)
	assert.Equal(t, 50, cfg.LogBufferSize)
	assert.Equal(t, []string{"https://astro.example"}, cfg.AllowedOrigins)
}

func TestLoadMissingYAMLFileErrors(t *testing.T) {
	t.Setenv("ASTRO_CONFIG", filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := Load()
	assert.Error(t, err)
}

func TestEnvWinsOverYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "astro.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: \"9999\"\n"), 0o600))

	t.Setenv("ASTRO_CONFIG", path)
	t.Setenv("PORT", "7000")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "7000", cfg.Port)
}
