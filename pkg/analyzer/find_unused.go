package analyzer

import (
	"strings"
	"sync"

	"github.com/xcscan/xcscan/pkg/catalog"
	"github.com/xcscan/xcscan/pkg/collector"
)

// FindUnused returns the cataloged resource names with zero textual
// occurrences across the corpus, in catalog encounter order.
func (a *realAnalyzer) FindUnused(cat catalog.Catalog, files []collector.ProjectPath) []string {
	corpus := a.loadCorpus(files)
	names := dedup(cat.Flatten())

	// Each worker writes disjoint indices; no locking needed.
	used := make([]bool, len(names))
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < a.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				used[i] = occursIn(corpus, names[i])
			}
		}()
	}
	for i := range names {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	unused := []string{}
	for i, name := range names {
		if !used[i] {
			a.logger.Logf("Unused resource: %s", name)
			unused = append(unused, name)
		}
	}
	return unused
}

// loadCorpus reads the text of every retained file. Unreadable files are
// skipped; a partially readable corpus still produces a result.
func (a *realAnalyzer) loadCorpus(files []collector.ProjectPath) []string {
	corpus := make([]string, 0, len(files))
	for _, file := range files {
		content, err := a.fs.ReadFile(file.Path)
		if err != nil {
			a.logger.Logf("Skipping unreadable file %s: %v", file.Path, err)
			continue
		}
		corpus = append(corpus, string(content))
	}
	return corpus
}

func occursIn(corpus []string, name string) bool {
	for _, text := range corpus {
		if strings.Contains(text, name) {
			return true
		}
	}
	return false
}

// dedup drops repeated names while keeping first-encounter order; the same
// name may appear in several categories but gets a single verdict.
func dedup(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}
