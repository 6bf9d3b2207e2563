package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/runoshun/envboot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_InitProjectConfig(t *testing.T) {
	workDir := t.TempDir()
	m := NewManagerWithGlobalDir(workDir, t.TempDir())

	assert.False(t, m.GetProjectConfigInfo().Exists)
	require.NoError(t, m.InitProjectConfig())

	info := m.GetProjectConfigInfo()
	assert.True(t, info.Exists)
	assert.Equal(t, domain.ProjectConfigPath(workDir), info.Path)

	content, err := os.ReadFile(info.Path)
	require.NoError(t, err)
	assert.Equal(t, domain.RenderConfigTemplate(), string(content))
}

func TestManager_InitProjectConfig_AlreadyExists(t *testing.T) {
	workDir := t.TempDir()
	m := NewManagerWithGlobalDir(workDir, t.TempDir())
	require.NoError(t, m.InitProjectConfig())

	err := m.InitProjectConfig()
	assert.ErrorIs(t, err, domain.ErrConfigExists)
}

func TestManager_InitGlobalConfig(t *testing.T) {
	globalDir := filepath.Join(t.TempDir(), "envboot")
	m := NewManagerWithGlobalDir(t.TempDir(), globalDir)

	require.NoError(t, m.InitGlobalConfig())

	info := m.GetGlobalConfigInfo()
	assert.True(t, info.Exists)
	assert.Equal(t, filepath.Join(globalDir, domain.ConfigFileName), info.Path)
}

func TestManager_InitGlobalConfig_NoDir(t *testing.T) {
	m := NewManagerWithGlobalDir(t.TempDir(), "")

	assert.Equal(t, domain.ConfigInfo{}, m.GetGlobalConfigInfo())
	assert.Error(t, m.InitGlobalConfig())
}

func TestTemplateLoadsAsDefaults(t *testing.T) {
	workDir := t.TempDir()
	require.NoError(t, NewManagerWithGlobalDir(workDir, "").InitProjectConfig())

	cfg, err := NewLoaderWithGlobalDir(workDir, "").Load()
	require.NoError(t, err)

	assert.Empty(t, cfg.Warnings)
	assert.Equal(t, domain.NewDefaultConfig(), cfg)
}
