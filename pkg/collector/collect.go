package collector

import (
	"fmt"
	"os"
	"path/filepath"
)

// ignoreFileName is the rule file consulted when ignore filtering is enabled.
const ignoreFileName = ".gitignore"

// Collect walks the project root and returns the filtered file list.
func (c *realCollector) Collect() ([]ProjectPath, error) {
	isDir, err := c.fs.IsDir(c.root)
	if err != nil || !isDir {
		return nil, fmt.Errorf("%w: %s", ErrProjectRootNotFound, c.root)
	}

	var files []ProjectPath
	c.walk(c.root, "", &files)
	return files, nil
}

// walk processes one directory. Errors below the root are logged and the
// walk continues; a partially readable project still yields results.
func (c *realCollector) walk(absDir, relDir string, files *[]ProjectPath) {
	entries, err := c.fs.ReadDir(absDir)
	if err != nil {
		c.logger.Logf("Skipping unreadable directory %s: %v", absDir, err)
		return
	}

	// Rules declared in this directory apply to everything beneath it and
	// take precedence over rules inherited from parent directories.
	if c.ignoreEnabled {
		for _, entry := range entries {
			if !entry.IsDir() && entry.Name() == ignoreFileName {
				c.matcher.AddFile(filepath.Join(absDir, ignoreFileName), relDir)
				break
			}
		}
	}

	for _, entry := range entries {
		name := entry.Name()
		abs := filepath.Join(absDir, name)
		rel := name
		if relDir != "" {
			rel = relDir + "/" + name
		}

		// Symlinks are never followed; a symlinked directory could cycle.
		if entry.Type()&os.ModeSymlink != 0 {
			continue
		}

		if entry.IsDir() {
			if c.ignoreEnabled && c.matcher.Match(rel, true) {
				c.logger.Logf("Ignoring directory %s", rel)
				continue
			}
			c.walk(abs, rel, files)
			continue
		}

		kind := KindForPath(name)
		if kind == KindOther {
			continue
		}
		if c.ignoreEnabled && c.matcher.Match(rel, false) {
			c.logger.Logf("Ignoring file %s", rel)
			continue
		}
		*files = append(*files, ProjectPath{Path: abs, Kind: kind})
	}
}
