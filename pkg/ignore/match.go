package ignore

import "strings"

// Match reports whether a project-relative path is excluded by the rules.
// Rules are evaluated in insertion order and the last matching rule decides,
// so negation patterns and rules from nested ignore files take precedence.
func (r *realRuleSet) Match(relPath string, isDir bool) bool {
	excluded := false
	for _, rl := range r.rules {
		if rl.dirOnly && !isDir {
			continue
		}
		target, ok := scope(rl.baseRel, relPath)
		if !ok {
			continue
		}
		if rl.anchored {
			if rl.g.Match(target) {
				excluded = !rl.negate
			}
			continue
		}
		if rl.g.Match(base(target)) {
			excluded = !rl.negate
		}
	}
	return excluded
}

// scope rebases relPath onto the rule file's directory.
// Rules from a nested ignore file only apply below that directory.
func scope(baseRel, relPath string) (string, bool) {
	if baseRel == "" {
		return relPath, true
	}
	prefix := baseRel + "/"
	if !strings.HasPrefix(relPath, prefix) {
		return "", false
	}
	return strings.TrimPrefix(relPath, prefix), true
}

func base(relPath string) string {
	if i := strings.LastIndexByte(relPath, '/'); i >= 0 {
		return relPath[i+1:]
	}
	return relPath
}
