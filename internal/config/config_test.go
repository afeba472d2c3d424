package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "TEMPLATES_DIR", "RASTERIZER", "EXPORT_TIMEOUT"} {
		t.Setenv(k, "")
	}
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.App.Port)
	assert.Equal(t, "templates", cfg.Templates.Dir)
	assert.Equal(t, "print", cfg.Render.Mode)
	assert.Equal(t, 60*time.Second, cfg.Render.Timeout)
}

func TestLoadConfigFileThenEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := "app:\n  port: \"8081\"\nrender:\n  mode: slice\n  timeout: 15s\ntemplates:\n  dir: /srv/tpl\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))

	t.Setenv("RASTERIZER", "print")
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.App.Port)
	assert.Equal(t, "/srv/tpl", cfg.Templates.Dir)
	assert.Equal(t, 15*time.Second, cfg.Render.Timeout)
	assert.Equal(t, "print", cfg.Render.Mode)
	assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
}
