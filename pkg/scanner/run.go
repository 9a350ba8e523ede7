package scanner

import (
	"github.com/xcscan/xcscan/pkg/catalog"
	"github.com/xcscan/xcscan/pkg/collector"
)

// Run executes the pipeline and writes the requested artifacts.
//
// Any error is returned before the artifact it would have fed is written, so
// a failing run never leaves a partially refreshed output directory beyond
// the artifacts already completed.
func (s *realScanner) Run(opts RunOpts) error {
	cfg, err := s.getConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	w := s.writer(cfg)

	// A resources-only run never touches the file list; everything else
	// starts from it.
	needFiles := !opts.Resources || opts.Unused

	var files []collector.ProjectPath
	if needFiles {
		files, err = s.ScanFiles(opts.Cached)
		if err != nil {
			return err
		}
		if !opts.Cached {
			if err := w.WriteFiles(files); err != nil {
				return err
			}
			if err := w.WriteObjects(s.ExtractTypes(files)); err != nil {
				return err
			}
		}
	}

	var cat catalog.Catalog
	if opts.Resources || opts.Unused {
		cat, err = s.BuildCatalog()
		if err != nil {
			return err
		}
		if err := w.WriteResources(cat); err != nil {
			return err
		}
	}

	if opts.Unused {
		if err := w.WriteUnused(s.FindUnused(cat, files)); err != nil {
			return err
		}
	}

	return nil
}
