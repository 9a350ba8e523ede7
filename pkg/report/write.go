package report

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/xcscan/xcscan/pkg/catalog"
	"github.com/xcscan/xcscan/pkg/collector"
	"github.com/xcscan/xcscan/pkg/extractor"
)

// WriteFiles writes filtered_files.json from the collected list.
func (w *realWriter) WriteFiles(files []collector.ProjectPath) error {
	paths := make([]string, 0, len(files))
	for _, f := range files {
		paths = append(paths, f.Path)
	}
	return w.write(FilesArtifact, paths)
}

// WriteObjects writes filtered_objects.json from the type inventory.
func (w *realWriter) WriteObjects(inv extractor.Inventory) error {
	return w.write(ObjectsArtifact, inv)
}

// WriteResources writes filtered_resources.json from the catalog.
func (w *realWriter) WriteResources(cat catalog.Catalog) error {
	if cat.Others == nil {
		cat.Others = map[string][]string{}
	}
	if cat.Imagesets == nil {
		cat.Imagesets = []string{}
	}
	return w.write(ResourcesArtifact, cat)
}

// WriteUnused writes unused_assets.json from the unused name list.
func (w *realWriter) WriteUnused(names []string) error {
	if names == nil {
		names = []string{}
	}
	return w.write(UnusedArtifact, names)
}

// write marshals v with four-space indentation and writes it atomically.
func (w *realWriter) write(name string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", name, err)
	}
	path := filepath.Join(w.outputDir, name)
	if err := w.fs.WriteFileAtomic(path, data, 0644); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrArtifactWrite, path, err)
	}
	w.logger.Logf("Wrote %s", path)
	return nil
}
