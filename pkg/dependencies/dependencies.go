// Package dependencies provides a centralized dependency container for the
// xcscan application. This package follows Go idioms for dependency injection
// by grouping related dependencies together and providing a fluent API for
// configuration.
package dependencies

import (
	"errors"

	"github.com/xcscan/xcscan/pkg/analyzer"
	"github.com/xcscan/xcscan/pkg/catalog"
	"github.com/xcscan/xcscan/pkg/collector"
	"github.com/xcscan/xcscan/pkg/config"
	"github.com/xcscan/xcscan/pkg/extractor"
	"github.com/xcscan/xcscan/pkg/fs"
	"github.com/xcscan/xcscan/pkg/logger"
	"github.com/xcscan/xcscan/pkg/report"
)

// Validation errors for missing dependencies.
var (
	ErrFSMissing                = errors.New("fs dependency is required but not set")
	ErrConfigMissing            = errors.New("config dependency is required but not set")
	ErrLoggerMissing            = errors.New("logger dependency is required but not set")
	ErrCollectorProviderMissing = errors.New("collector provider dependency is required but not set")
	ErrExtractorProviderMissing = errors.New("extractor provider dependency is required but not set")
	ErrCatalogerProviderMissing = errors.New("cataloger provider dependency is required but not set")
	ErrAnalyzerProviderMissing  = errors.New("analyzer provider dependency is required but not set")
	ErrWriterProviderMissing    = errors.New("report writer provider dependency is required but not set")
)

// Dependencies holds shared dependencies across the application.
// This follows the Go idiom of grouping related data together.
type Dependencies struct {
	FS                fs.FS
	Logger            logger.Logger
	Config            config.Manager
	CollectorProvider collector.Provider
	ExtractorProvider extractor.Provider
	CatalogerProvider catalog.Provider
	AnalyzerProvider  analyzer.Provider
	WriterProvider    report.Provider
}

// New creates a new Dependencies instance with sensible defaults.
// This follows Go's convention of New* functions for constructors.
func New() *Dependencies {
	return &Dependencies{
		FS:                fs.NewFS(),
		Logger:            logger.NewNoopLogger(),
		CollectorProvider: collector.NewCollector,
		ExtractorProvider: extractor.NewExtractor,
		CatalogerProvider: catalog.NewCataloger,
		AnalyzerProvider:  analyzer.NewAnalyzer,
		WriterProvider:    report.NewWriter,
		// Note: Config is intentionally left nil as it requires a config path
	}
}

// WithFS sets the filesystem and returns the instance for chaining.
func (d *Dependencies) WithFS(fs fs.FS) *Dependencies {
	d.FS = fs
	return d
}

// WithLogger sets the logger and returns the instance for chaining.
func (d *Dependencies) WithLogger(logger logger.Logger) *Dependencies {
	d.Logger = logger
	return d
}

// WithConfig sets the config manager and returns the instance for chaining.
func (d *Dependencies) WithConfig(cfg config.Manager) *Dependencies {
	d.Config = cfg
	return d
}

// WithCollectorProvider sets the collector provider and returns the instance for chaining.
func (d *Dependencies) WithCollectorProvider(provider collector.Provider) *Dependencies {
	d.CollectorProvider = provider
	return d
}

// WithExtractorProvider sets the extractor provider and returns the instance for chaining.
func (d *Dependencies) WithExtractorProvider(provider extractor.Provider) *Dependencies {
	d.ExtractorProvider = provider
	return d
}

// WithCatalogerProvider sets the cataloger provider and returns the instance for chaining.
func (d *Dependencies) WithCatalogerProvider(provider catalog.Provider) *Dependencies {
	d.CatalogerProvider = provider
	return d
}

// WithAnalyzerProvider sets the analyzer provider and returns the instance for chaining.
func (d *Dependencies) WithAnalyzerProvider(provider analyzer.Provider) *Dependencies {
	d.AnalyzerProvider = provider
	return d
}

// WithWriterProvider sets the report writer provider and returns the instance for chaining.
func (d *Dependencies) WithWriterProvider(provider report.Provider) *Dependencies {
	d.WriterProvider = provider
	return d
}

// Validate checks that all required dependencies are set.
func (d *Dependencies) Validate() error {
	if d.FS == nil {
		return ErrFSMissing
	}
	if d.Logger == nil {
		return ErrLoggerMissing
	}
	if d.Config == nil {
		return ErrConfigMissing
	}
	if d.CollectorProvider == nil {
		return ErrCollectorProviderMissing
	}
	if d.ExtractorProvider == nil {
		return ErrExtractorProviderMissing
	}
	if d.CatalogerProvider == nil {
		return ErrCatalogerProviderMissing
	}
	if d.AnalyzerProvider == nil {
		return ErrAnalyzerProviderMissing
	}
	if d.WriterProvider == nil {
		return ErrWriterProviderMissing
	}
	return nil
}
