package report

import "errors"

// Error definitions for report package.
var (
	// Artifact write errors.
	ErrArtifactWrite = errors.New("failed to write artifact")
	// Cached file list errors.
	ErrCachedFilesNotFound = errors.New("cached file list not found, run a scan first")
	ErrArtifactParse       = errors.New("failed to parse artifact")
)
