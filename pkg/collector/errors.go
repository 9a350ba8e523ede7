package collector

import "errors"

// Error definitions for collector package.
var (
	// Project root errors.
	ErrProjectRootNotFound = errors.New("project root is not an existing directory")
)
