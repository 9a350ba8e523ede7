// Package extractor extracts declared type names from project source files.
//
// Extraction is lexical: regex and token scanning, not compilation. The
// known misclassification cases (a bare Swift class name in an Interface
// Builder file reads as Objective-C, dynamically built names are invisible)
// are accepted behavior.
package extractor

import (
	"github.com/xcscan/xcscan/pkg/collector"
	"github.com/xcscan/xcscan/pkg/fs"
	"github.com/xcscan/xcscan/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=extractor.go -destination=mocks/extractor.gen.go -package=mocks

// Extractor interface provides type declaration extraction.
type Extractor interface {
	// Extract reads every source and interface file and returns the
	// deduplicated type inventory. Unreadable files are skipped.
	Extract(files []collector.ProjectPath) Inventory
}

// Provider creates an Extractor from its parameters; used to substitute
// implementations in tests.
type Provider func(params NewExtractorParams) Extractor

// NewExtractorParams contains parameters for creating a new Extractor instance.
type NewExtractorParams struct {
	FS     fs.FS
	Logger logger.Logger
}

// kindExtractor extracts declarations from one file's content.
// One implementation exists per supported FileKind.
type kindExtractor interface {
	extract(content string, b *inventoryBuilder)
}

type realExtractor struct {
	fs     fs.FS
	logger logger.Logger
	kinds  map[collector.FileKind]kindExtractor
}

// NewExtractor creates a new Extractor instance.
func NewExtractor(params NewExtractorParams) Extractor {
	l := params.Logger
	if l == nil {
		l = logger.NewNoopLogger()
	}
	objc := &objcExtractor{}
	return &realExtractor{
		fs:     params.FS,
		logger: l,
		kinds: map[collector.FileKind]kindExtractor{
			collector.KindSourceHeader:     objc,
			collector.KindSourceImpl:       objc,
			collector.KindSwiftSource:      &swiftExtractor{},
			collector.KindInterfaceBuilder: &interfaceBuilderExtractor{},
		},
	}
}

// Extract reads every source and interface file and returns the inventory.
func (e *realExtractor) Extract(files []collector.ProjectPath) Inventory {
	b := newInventoryBuilder()
	for _, file := range files {
		ke, ok := e.kinds[file.Kind]
		if !ok {
			continue
		}
		content, err := e.fs.ReadFile(file.Path)
		if err != nil {
			e.logger.Logf("Skipping unreadable file %s: %v", file.Path, err)
			continue
		}
		ke.extract(string(content), b)
	}
	return b.build()
}
