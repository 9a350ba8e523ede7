package report

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/xcscan/xcscan/pkg/collector"
)

// ReadFiles loads a previously written filtered_files.json, restoring file
// kinds from the extensions. Used to skip re-collection on cached runs.
func (w *realWriter) ReadFiles() ([]collector.ProjectPath, error) {
	path := filepath.Join(w.outputDir, FilesArtifact)
	data, err := w.fs.ReadFile(path)
	if err != nil {
		if w.fs.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrCachedFilesNotFound, path)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var paths []string
	if err := json.Unmarshal(data, &paths); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrArtifactParse, path, err)
	}

	files := make([]collector.ProjectPath, 0, len(paths))
	for _, p := range paths {
		files = append(files, collector.ProjectPath{Path: p, Kind: collector.KindForPath(p)})
	}
	return files, nil
}
