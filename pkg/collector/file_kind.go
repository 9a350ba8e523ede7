package collector

import (
	"path/filepath"
	"strings"
)

// FileKind classifies a collected file by its role in an iOS project.
type FileKind int

// FileKind values for the supported extension allow-list.
const (
	KindOther FileKind = iota
	KindSourceHeader
	KindSourceImpl
	KindSwiftSource
	KindInterfaceBuilder
)

// String returns a human-readable name for the file kind.
func (k FileKind) String() string {
	switch k {
	case KindSourceHeader:
		return "header"
	case KindSourceImpl:
		return "implementation"
	case KindSwiftSource:
		return "swift"
	case KindInterfaceBuilder:
		return "interface-builder"
	default:
		return "other"
	}
}

// KindForPath maps a file path to its FileKind via the extension allow-list.
func KindForPath(path string) FileKind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".h":
		return KindSourceHeader
	case ".m":
		return KindSourceImpl
	case ".swift":
		return KindSwiftSource
	case ".xib", ".nib", ".storyboard":
		return KindInterfaceBuilder
	default:
		return KindOther
	}
}

// ProjectPath is an absolute file path tagged with its kind.
type ProjectPath struct {
	Path string
	Kind FileKind
}
