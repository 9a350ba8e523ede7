// Package scanner orchestrates the analysis pipeline: file collection,
// declaration extraction, resource cataloging and unused-resource detection.
package scanner

import (
	"fmt"

	"github.com/xcscan/xcscan/pkg/catalog"
	"github.com/xcscan/xcscan/pkg/collector"
	"github.com/xcscan/xcscan/pkg/config"
	"github.com/xcscan/xcscan/pkg/dependencies"
	"github.com/xcscan/xcscan/pkg/extractor"
	"github.com/xcscan/xcscan/pkg/logger"
	"github.com/xcscan/xcscan/pkg/report"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=scanner.go -destination=mocks/scanner.gen.go -package=mocks

// Scanner interface provides project analysis functionality.
type Scanner interface {
	// ScanFiles collects the filtered file list, or reloads the cached one.
	ScanFiles(cached bool) ([]collector.ProjectPath, error)
	// ExtractTypes extracts the declared type inventory from the file list.
	ExtractTypes(files []collector.ProjectPath) extractor.Inventory
	// BuildCatalog enumerates the project's resource catalog.
	BuildCatalog() (catalog.Catalog, error)
	// FindUnused returns cataloged resource names absent from the corpus.
	FindUnused(cat catalog.Catalog, files []collector.ProjectPath) []string
	// Run executes the pipeline and writes the requested artifacts.
	Run(opts RunOpts) error
	// SetLogger sets the logger for this Scanner instance.
	SetLogger(logger logger.Logger)
}

// RunOpts selects which stages of the pipeline a run executes.
type RunOpts struct {
	// Cached reloads filtered_files.json instead of walking the tree.
	// Cached runs rewrite neither the file nor the object artifact.
	Cached bool
	// Resources enumerates the catalog and writes filtered_resources.json.
	Resources bool
	// Unused cross-references resources and writes unused_assets.json.
	// Implies Resources.
	Unused bool
}

// NewScannerParams contains parameters for creating a new Scanner instance.
type NewScannerParams struct {
	Dependencies *dependencies.Dependencies
}

type realScanner struct {
	deps *dependencies.Dependencies
}

// NewScanner creates a new Scanner instance.
func NewScanner(params NewScannerParams) (Scanner, error) {
	deps := params.Dependencies
	if deps == nil {
		deps = dependencies.New()
	}
	if err := deps.Validate(); err != nil {
		return nil, err
	}

	return &realScanner{
		deps: deps,
	}, nil
}

// VerbosePrint logs a formatted message using the current logger.
func (s *realScanner) VerbosePrint(msg string, args ...interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Logf(msg, args...)
	}
}

// SetLogger sets the logger for this Scanner instance.
func (s *realScanner) SetLogger(logger logger.Logger) {
	s.deps.Logger = logger
}

// getConfig gets the configuration from the config manager, normalized to
// absolute paths.
func (s *realScanner) getConfig() (config.Config, error) {
	cfg, err := s.deps.Config.GetConfigWithFallback()
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.Normalize(); err != nil {
		return config.Config{}, fmt.Errorf("failed to normalize configuration paths: %w", err)
	}
	return cfg, nil
}

// writer builds the artifact writer for the configured output directory.
func (s *realScanner) writer(cfg config.Config) report.Writer {
	return s.deps.WriterProvider(report.NewWriterParams{
		FS:        s.deps.FS,
		Logger:    s.deps.Logger,
		OutputDir: cfg.OutputDir,
	})
}
