package scanner

import (
	"github.com/xcscan/xcscan/pkg/collector"
	"github.com/xcscan/xcscan/pkg/extractor"
)

// ExtractTypes extracts the declared type inventory from the file list.
func (s *realScanner) ExtractTypes(files []collector.ProjectPath) extractor.Inventory {
	e := s.deps.ExtractorProvider(extractor.NewExtractorParams{
		FS:     s.deps.FS,
		Logger: s.deps.Logger,
	})
	inv := e.Extract(files)
	s.VerbosePrint("Extracted %d Objective-C and %d Swift class declarations",
		len(inv.ObjectiveC), len(inv.Swift.Classes))
	return inv
}
