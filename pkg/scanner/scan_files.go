package scanner

import (
	"github.com/xcscan/xcscan/pkg/collector"
)

// ScanFiles collects the filtered file list, or reloads the cached one.
func (s *realScanner) ScanFiles(cached bool) ([]collector.ProjectPath, error) {
	cfg, err := s.getConfig()
	if err != nil {
		return nil, err
	}

	if cached {
		files, err := s.writer(cfg).ReadFiles()
		if err != nil {
			return nil, err
		}
		s.VerbosePrint("Loaded %d cached files", len(files))
		return files, nil
	}

	c := s.deps.CollectorProvider(collector.NewCollectorParams{
		FS:            s.deps.FS,
		Logger:        s.deps.Logger,
		Root:          cfg.ProjectRoot,
		IgnoreEnabled: cfg.GitignoreFilter,
	})
	files, err := c.Collect()
	if err != nil {
		return nil, err
	}
	s.VerbosePrint("Collected %d files from %s", len(files), cfg.ProjectRoot)
	return files, nil
}
