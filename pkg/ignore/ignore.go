// Package ignore provides gitignore-style rule matching for project traversal.
package ignore

import (
	"strings"

	"github.com/gobwas/glob"
	"github.com/xcscan/xcscan/pkg/fs"
	"github.com/xcscan/xcscan/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=ignore.go -destination=mocks/ignore.gen.go -package=mocks

// Matcher interface provides ignore-rule matching against project-relative paths.
type Matcher interface {
	// AddFile parses an ignore file and appends its rules, scoped to baseRel.
	// Unreadable files and malformed patterns are skipped, never fatal.
	AddFile(path string, baseRel string)

	// AddPatterns appends raw patterns scoped to baseRel.
	AddPatterns(baseRel string, patterns []string)

	// Match reports whether a project-relative path is excluded by the rules.
	Match(relPath string, isDir bool) bool

	// RuleCount returns the number of compiled rules.
	RuleCount() int
}

// rule is a single compiled ignore pattern.
type rule struct {
	negate   bool
	dirOnly  bool
	anchored bool
	baseRel  string
	g        glob.Glob
}

type realRuleSet struct {
	fs     fs.FS
	logger logger.Logger
	rules  []rule
}

// NewRuleSetParams contains parameters for creating a new rule set.
type NewRuleSetParams struct {
	FS     fs.FS
	Logger logger.Logger
}

// NewRuleSet creates a new empty Matcher instance.
func NewRuleSet(params NewRuleSetParams) Matcher {
	l := params.Logger
	if l == nil {
		l = logger.NewNoopLogger()
	}
	return &realRuleSet{
		fs:     params.FS,
		logger: l,
	}
}

// RuleCount returns the number of compiled rules.
func (r *realRuleSet) RuleCount() int {
	return len(r.rules)
}

// compile turns a single ignore-file line into a rule.
// Returns ok=false for blanks, comments and patterns that do not compile.
func (r *realRuleSet) compile(baseRel, line string) (rule, bool) {
	pattern := strings.TrimSpace(line)
	if pattern == "" || strings.HasPrefix(pattern, "#") {
		return rule{}, false
	}

	var rl rule
	rl.baseRel = baseRel

	if strings.HasPrefix(pattern, "!") {
		rl.negate = true
		pattern = pattern[1:]
	}
	if strings.HasSuffix(pattern, "/") {
		rl.dirOnly = true
		pattern = strings.TrimSuffix(pattern, "/")
	}
	if strings.HasPrefix(pattern, "/") {
		rl.anchored = true
		pattern = strings.TrimPrefix(pattern, "/")
	} else if strings.Contains(pattern, "/") {
		// A separator anywhere in the pattern anchors it to the rule file's directory.
		rl.anchored = true
	}
	if pattern == "" {
		return rule{}, false
	}

	var g glob.Glob
	var err error
	if rl.anchored {
		g, err = glob.Compile(pattern, '/')
	} else {
		g, err = glob.Compile(pattern)
	}
	if err != nil {
		r.logger.Logf("%v %q: %v", ErrPatternCompile, line, err)
		return rule{}, false
	}
	rl.g = g
	return rl, true
}
