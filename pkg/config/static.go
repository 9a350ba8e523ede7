package config

// staticManager serves a fixed, already-resolved configuration. It backs
// command-line runs where file values have been merged with flag overrides
// before the pipeline starts.
type staticManager struct {
	cfg Config
}

// NewStaticManager creates a Manager that always returns the given config.
func NewStaticManager(cfg Config) Manager {
	return &staticManager{cfg: cfg}
}

// GetConfig returns the embedded configuration.
func (m *staticManager) GetConfig() (Config, error) {
	return m.cfg, nil
}

// GetConfigWithFallback returns the embedded configuration.
func (m *staticManager) GetConfigWithFallback() (Config, error) {
	return m.cfg, nil
}

// SaveConfig is not supported for a static configuration.
func (m *staticManager) SaveConfig(_ Config) error {
	return ErrStaticConfigReadOnly
}

// GetConfigPath returns an empty path; a static config has no backing file.
func (m *staticManager) GetConfigPath() string {
	return ""
}

// SetConfigPath is a no-op; a static config has no backing file.
func (m *staticManager) SetConfigPath(_ string) {}

// DefaultConfig returns the default configuration.
func (m *staticManager) DefaultConfig() Config {
	return Config{
		ProjectRoot:     ".",
		OutputDir:       ".",
		GitignoreFilter: true,
		DetectUnused:    false,
	}
}
