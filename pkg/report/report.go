// Package report writes the analyzer's JSON artifacts and reads back the
// cached file list.
package report

import (
	"github.com/xcscan/xcscan/pkg/catalog"
	"github.com/xcscan/xcscan/pkg/collector"
	"github.com/xcscan/xcscan/pkg/extractor"
	"github.com/xcscan/xcscan/pkg/fs"
	"github.com/xcscan/xcscan/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=report.go -destination=mocks/report.gen.go -package=mocks

// Artifact file names; the contract with downstream tooling.
const (
	FilesArtifact     = "filtered_files.json"
	ObjectsArtifact   = "filtered_objects.json"
	ResourcesArtifact = "filtered_resources.json"
	UnusedArtifact    = "unused_assets.json"
)

// Writer interface provides artifact persistence.
type Writer interface {
	// WriteFiles writes filtered_files.json from the collected list.
	WriteFiles(files []collector.ProjectPath) error

	// WriteObjects writes filtered_objects.json from the type inventory.
	WriteObjects(inv extractor.Inventory) error

	// WriteResources writes filtered_resources.json from the catalog.
	WriteResources(cat catalog.Catalog) error

	// WriteUnused writes unused_assets.json from the unused name list.
	WriteUnused(names []string) error

	// ReadFiles loads a previously written filtered_files.json, restoring
	// file kinds from the extensions.
	ReadFiles() ([]collector.ProjectPath, error)
}

// Provider creates a Writer from its parameters; used to substitute
// implementations in tests.
type Provider func(params NewWriterParams) Writer

// NewWriterParams contains parameters for creating a new Writer instance.
type NewWriterParams struct {
	FS        fs.FS
	Logger    logger.Logger
	OutputDir string
}

type realWriter struct {
	fs        fs.FS
	logger    logger.Logger
	outputDir string
}

// NewWriter creates a new Writer instance.
func NewWriter(params NewWriterParams) Writer {
	l := params.Logger
	if l == nil {
		l = logger.NewNoopLogger()
	}
	return &realWriter{
		fs:        params.FS,
		logger:    l,
		outputDir: params.OutputDir,
	}
}
