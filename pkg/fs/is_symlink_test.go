//go:build integration

package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_IsSymlink(t *testing.T) {
	fs := NewFS()

	tmpDir, err := os.MkdirTemp("", "test-symlink-*")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	realDir := filepath.Join(tmpDir, "Sources")
	require.NoError(t, os.Mkdir(realDir, 0755))

	link := filepath.Join(tmpDir, "SourcesLink")
	require.NoError(t, os.Symlink(realDir, link))

	isLink, err := fs.IsSymlink(link)
	assert.NoError(t, err)
	assert.True(t, isLink)

	isLink, err = fs.IsSymlink(realDir)
	assert.NoError(t, err)
	assert.False(t, isLink)

	// Lstat failure on a missing path
	_, err = fs.IsSymlink(filepath.Join(tmpDir, "missing"))
	assert.Error(t, err)
}
