package ignore

import "errors"

// Error definitions for ignore package.
var (
	// Ignore pattern compilation errors.
	ErrPatternCompile = errors.New("cannot compile ignore pattern")
)
