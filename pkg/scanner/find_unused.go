package scanner

import (
	"github.com/xcscan/xcscan/pkg/analyzer"
	"github.com/xcscan/xcscan/pkg/catalog"
	"github.com/xcscan/xcscan/pkg/collector"
)

// FindUnused returns cataloged resource names absent from the corpus.
func (s *realScanner) FindUnused(cat catalog.Catalog, files []collector.ProjectPath) []string {
	a := s.deps.AnalyzerProvider(analyzer.NewAnalyzerParams{
		FS:     s.deps.FS,
		Logger: s.deps.Logger,
	})
	unused := a.FindUnused(cat, files)
	s.VerbosePrint("Found %d unused resources", len(unused))
	return unused
}
