package config

import (
	"path/filepath"
)

// ResourceFolder designates an extra folder to catalog, with an optional
// category label override. Without a label, resources are grouped by extension.
type ResourceFolder struct {
	Path  string `yaml:"path"`
	Label string `yaml:"label,omitempty"`
}

// Config represents the analyzer run configuration.
type Config struct {
	ProjectRoot     string           `yaml:"project_root"`
	OutputDir       string           `yaml:"output_dir"`
	GitignoreFilter bool             `yaml:"gitignore_filter"`
	DetectUnused    bool             `yaml:"detect_unused"`
	AssetCatalog    string           `yaml:"asset_catalog,omitempty"`
	ResourceFolders []ResourceFolder `yaml:"resource_folders,omitempty"`
}

// Validate validates the configuration values.
func (c *Config) Validate() error {
	if c.ProjectRoot == "" {
		return ErrProjectRootEmpty
	}
	if c.OutputDir == "" {
		return ErrOutputDirEmpty
	}
	return nil
}

// Normalize makes the configured paths absolute, relative to the project root.
func (c *Config) Normalize() error {
	root, err := filepath.Abs(c.ProjectRoot)
	if err != nil {
		return err
	}
	c.ProjectRoot = root

	if !filepath.IsAbs(c.OutputDir) {
		c.OutputDir = filepath.Join(root, c.OutputDir)
	}
	if c.AssetCatalog != "" && !filepath.IsAbs(c.AssetCatalog) {
		c.AssetCatalog = filepath.Join(root, c.AssetCatalog)
	}
	for i := range c.ResourceFolders {
		if !filepath.IsAbs(c.ResourceFolders[i].Path) {
			c.ResourceFolders[i].Path = filepath.Join(root, c.ResourceFolders[i].Path)
		}
	}
	return nil
}
