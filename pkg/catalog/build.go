package catalog

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	assetCatalogSuffix = ".xcassets"
	imagesetSuffix     = ".imageset"
)

// Build enumerates image sets and extra-folder resources.
func (c *realCataloger) Build() Catalog {
	imagesets := newOrderedSet()
	for _, catalogPath := range c.assetCatalogs() {
		c.collectImagesets(catalogPath, imagesets)
	}

	others := make(map[string][]string)
	sets := make(map[string]*orderedSet)
	for _, folder := range c.folders {
		path, ok := c.resolveFolder(folder.Path)
		if !ok {
			continue
		}
		c.collectFolder(path, folder.Label, sets)
	}
	for label, set := range sets {
		others[label] = set.list()
	}

	return Catalog{Imagesets: imagesets.list(), Others: others}
}

// assetCatalogs returns the catalog directories to enumerate: the configured
// path when set, otherwise every *.xcassets directory under the root.
func (c *realCataloger) assetCatalogs() []string {
	if c.assetCatalog != "" {
		exists, err := c.fs.Exists(c.assetCatalog)
		if err != nil || !exists {
			c.logger.Logf("Asset catalog %s not found, skipping", c.assetCatalog)
			return nil
		}
		return []string{c.assetCatalog}
	}

	var catalogs []string
	c.findCatalogDirs(c.root, &catalogs)
	return catalogs
}

func (c *realCataloger) findCatalogDirs(dir string, catalogs *[]string) {
	entries, err := c.fs.ReadDir(dir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		if !entry.IsDir() || entry.Type()&os.ModeSymlink != 0 {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if strings.HasSuffix(entry.Name(), assetCatalogSuffix) {
			*catalogs = append(*catalogs, path)
			continue
		}
		c.findCatalogDirs(path, catalogs)
	}
}

// collectImagesets walks a catalog recursively; only leaf image-set
// directories contribute, with the suffix stripped from the name.
func (c *realCataloger) collectImagesets(dir string, imagesets *orderedSet) {
	entries, err := c.fs.ReadDir(dir)
	if err != nil {
		c.logger.Logf("Skipping unreadable catalog directory %s: %v", dir, err)
		return
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasSuffix(name, imagesetSuffix) {
			imagesets.add(strings.TrimSuffix(name, imagesetSuffix))
			continue
		}
		c.collectImagesets(filepath.Join(dir, name), imagesets)
	}
}

// resolveFolder validates an extra resource folder. A path that is a file
// resolves to its parent directory; a missing path contributes nothing.
func (c *realCataloger) resolveFolder(path string) (string, bool) {
	exists, err := c.fs.Exists(path)
	if err != nil || !exists {
		c.logger.Logf("Resource folder %s not found, skipping", path)
		return "", false
	}
	isDir, err := c.fs.IsDir(path)
	if err != nil {
		return "", false
	}
	if !isDir {
		return filepath.Dir(path), true
	}
	return path, true
}

// collectFolder walks a folder recursively, adding every regular file's base
// name under its category: the override label when set, the file extension
// otherwise.
func (c *realCataloger) collectFolder(dir, label string, sets map[string]*orderedSet) {
	entries, err := c.fs.ReadDir(dir)
	if err != nil {
		c.logger.Logf("Skipping unreadable resource folder %s: %v", dir, err)
		return
	}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() {
			c.collectFolder(filepath.Join(dir, name), label, sets)
			continue
		}
		if entry.Type()&os.ModeSymlink != 0 || strings.HasPrefix(name, ".") {
			continue
		}
		ext := filepath.Ext(name)
		if ext == "" {
			continue
		}
		base := stripScaleSuffix(strings.TrimSuffix(name, ext))
		if base == "" {
			continue
		}
		category := label
		if category == "" {
			category = strings.TrimPrefix(ext, ".")
		}
		set, ok := sets[category]
		if !ok {
			set = newOrderedSet()
			sets[category] = set
		}
		set.add(base)
	}
}

// stripScaleSuffix drops the @2x/@3x display-scale suffix so that variants
// of one image share a single resource name.
func stripScaleSuffix(name string) string {
	for _, suffix := range []string{"@2x", "@3x"} {
		if strings.HasSuffix(name, suffix) {
			return strings.TrimSuffix(name, suffix)
		}
	}
	return name
}
