//go:build unit

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	cfg := Config{ProjectRoot: "/project", OutputDir: "/project/out"}
	assert.NoError(t, cfg.Validate())

	cfg = Config{OutputDir: "/project/out"}
	assert.ErrorIs(t, cfg.Validate(), ErrProjectRootEmpty)

	cfg = Config{ProjectRoot: "/project"}
	assert.ErrorIs(t, cfg.Validate(), ErrOutputDirEmpty)
}

func TestConfig_Normalize(t *testing.T) {
	cfg := Config{
		ProjectRoot:  "/project",
		OutputDir:    "reports",
		AssetCatalog: "App/Assets.xcassets",
		ResourceFolders: []ResourceFolder{
			{Path: "Sounds", Label: "audio"},
			{Path: "/abs/Fonts"},
		},
	}

	require.NoError(t, cfg.Normalize())
	assert.Equal(t, "/project", cfg.ProjectRoot)
	assert.Equal(t, "/project/reports", cfg.OutputDir)
	assert.Equal(t, "/project/App/Assets.xcassets", cfg.AssetCatalog)
	assert.Equal(t, "/project/Sounds", cfg.ResourceFolders[0].Path)
	assert.Equal(t, "/abs/Fonts", cfg.ResourceFolders[1].Path)
}

func TestManager_GetConfig(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "test-config-*")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	configPath := filepath.Join(tmpDir, "config.yaml")
	content := `project_root: /project
output_dir: /project/out
gitignore_filter: true
detect_unused: true
resource_folders:
  - path: Sounds
    label: audio
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	manager := NewManager(configPath)
	cfg, err := manager.GetConfig()
	require.NoError(t, err)
	assert.Equal(t, "/project", cfg.ProjectRoot)
	assert.True(t, cfg.GitignoreFilter)
	assert.True(t, cfg.DetectUnused)
	require.Len(t, cfg.ResourceFolders, 1)
	assert.Equal(t, "audio", cfg.ResourceFolders[0].Label)
}

func TestManager_GetConfig_NotFound(t *testing.T) {
	manager := NewManager("/nonexistent/config.yaml")
	_, err := manager.GetConfig()
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestManager_GetConfig_ParseError(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "test-config-*")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	configPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("project_root: [broken"), 0644))

	manager := NewManager(configPath)
	_, err = manager.GetConfig()
	assert.ErrorIs(t, err, ErrConfigFileParse)
}

func TestManager_GetConfigWithFallback(t *testing.T) {
	manager := NewManager(filepath.Join(os.TempDir(), "does-not-exist", "config.yaml"))
	cfg, err := manager.GetConfigWithFallback()
	require.NoError(t, err)
	assert.Equal(t, ".", cfg.ProjectRoot)
	assert.True(t, cfg.GitignoreFilter)
	assert.False(t, cfg.DetectUnused)
}

func TestManager_SaveConfig(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "test-config-*")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	configPath := filepath.Join(tmpDir, "config.yaml")
	manager := NewManager(configPath)

	cfg := Config{ProjectRoot: "/project", OutputDir: "/project/out"}
	require.NoError(t, manager.SaveConfig(cfg))

	loaded, err := manager.GetConfig()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)

	// Invalid configuration is rejected before writing
	err = manager.SaveConfig(Config{})
	assert.Error(t, err)
}

func TestStaticManager(t *testing.T) {
	cfg := Config{ProjectRoot: "/project", OutputDir: "/project/out", GitignoreFilter: true}
	manager := NewStaticManager(cfg)

	got, err := manager.GetConfig()
	require.NoError(t, err)
	assert.Equal(t, cfg, got)

	got, err = manager.GetConfigWithFallback()
	require.NoError(t, err)
	assert.Equal(t, cfg, got)

	assert.Empty(t, manager.GetConfigPath())
	assert.ErrorIs(t, manager.SaveConfig(cfg), ErrStaticConfigReadOnly)
}
