package ignore

import "strings"

// AddFile parses an ignore file and appends its rules, scoped to baseRel.
// Unreadable files are skipped so that a broken ignore file never aborts a run.
func (r *realRuleSet) AddFile(path string, baseRel string) {
	data, err := r.fs.ReadFile(path)
	if err != nil {
		r.logger.Logf("Skipping unreadable ignore file %s: %v", path, err)
		return
	}
	r.AddPatterns(baseRel, strings.Split(string(data), "\n"))
}

// AddPatterns appends raw patterns scoped to baseRel.
func (r *realRuleSet) AddPatterns(baseRel string, patterns []string) {
	for _, line := range patterns {
		if rl, ok := r.compile(baseRel, line); ok {
			r.rules = append(r.rules, rl)
		}
	}
}
