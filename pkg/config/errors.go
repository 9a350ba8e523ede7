package config

import "errors"

// Error definitions for config package.
var (
	// Configuration file errors.
	ErrConfigFileParse = errors.New("failed to parse config file")
	// Configuration validation errors.
	ErrProjectRootEmpty = errors.New("project_root cannot be empty")
	ErrOutputDirEmpty   = errors.New("output_dir cannot be empty")
	// Configuration initialization errors.
	ErrConfigNotFound = errors.New("configuration file not found")
	// Static configuration errors.
	ErrStaticConfigReadOnly = errors.New("static configuration cannot be saved")
)
