// Package analyzer classifies cataloged resources as used or unused by
// textual occurrence in the retained source corpus.
//
// The check is a substring test, deliberately: a resource whose name is a
// substring of another used identifier is reported used (false negative),
// and a resource referenced through a dynamically built name is reported
// unused (false positive). Both are accepted properties of the lexical
// approach, not defects.
package analyzer

import (
	"runtime"

	"github.com/xcscan/xcscan/pkg/catalog"
	"github.com/xcscan/xcscan/pkg/collector"
	"github.com/xcscan/xcscan/pkg/fs"
	"github.com/xcscan/xcscan/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=analyzer.go -destination=mocks/analyzer.gen.go -package=mocks

// Analyzer interface provides unused-resource detection.
type Analyzer interface {
	// FindUnused returns the cataloged resource names that occur nowhere
	// in the text of the given files, in catalog encounter order.
	FindUnused(cat catalog.Catalog, files []collector.ProjectPath) []string
}

// Provider creates an Analyzer from its parameters; used to substitute
// implementations in tests.
type Provider func(params NewAnalyzerParams) Analyzer

// NewAnalyzerParams contains parameters for creating a new Analyzer instance.
type NewAnalyzerParams struct {
	FS     fs.FS
	Logger logger.Logger
	// Workers bounds the per-resource scan fan-out; defaults to GOMAXPROCS.
	Workers int
}

type realAnalyzer struct {
	fs      fs.FS
	logger  logger.Logger
	workers int
}

// NewAnalyzer creates a new Analyzer instance.
func NewAnalyzer(params NewAnalyzerParams) Analyzer {
	l := params.Logger
	if l == nil {
		l = logger.NewNoopLogger()
	}
	workers := params.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &realAnalyzer{
		fs:      params.FS,
		logger:  l,
		workers: workers,
	}
}
