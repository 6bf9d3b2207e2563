package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.Equal(t, "slides/env", cfg.Env.Target)
	assert.Equal(t, "conda", cfg.Env.Tool)
	assert.Equal(t, []string{"python"}, cfg.Env.Packages)
	assert.False(t, cfg.Env.Strict)
	assert.Equal(t, "environment.yml", cfg.Manifest.File)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Log.Dir)
}

func TestConfigPaths(t *testing.T) {
	assert.Equal(t, "/work/.envboot.toml", ProjectConfigPath("/work"))
	assert.Equal(t, "/home/user/.config/envboot", GlobalAppDir("/home/user/.config"))
	assert.Equal(t, "/home/user/.config/envboot/config.toml", GlobalConfigPath(GlobalAppDir("/home/user/.config")))
	assert.Equal(t, "/var/log/envboot/envboot.log", LogPath("/var/log/envboot"))
}

func TestRenderConfigTemplate(t *testing.T) {
	tmpl := RenderConfigTemplate()
	assert.Contains(t, tmpl, "[env]")
	assert.Contains(t, tmpl, `target = "slides/env"`)
	assert.Contains(t, tmpl, "[manifest]")
	assert.Contains(t, tmpl, "[log]")
}

func TestFilesystemError(t *testing.T) {
	err := &FilesystemError{Op: "ensure directory", Path: "slides/env", Err: ErrNotDirectory}
	assert.Contains(t, err.Error(), "ensure directory slides/env")
	assert.ErrorIs(t, err, ErrNotDirectory)
}
