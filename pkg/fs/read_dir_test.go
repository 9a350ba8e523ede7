//go:build integration

package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_ReadDir(t *testing.T) {
	fs := NewFS()

	tmpDir, err := os.MkdirTemp("", "test-readdir-*")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "b.swift"), []byte(""), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "a.swift"), []byte(""), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, "c"), 0755))

	entries, err := fs.ReadDir(tmpDir)
	assert.NoError(t, err)
	require.Len(t, entries, 3)

	// os.ReadDir guarantees name order; the collector relies on it
	assert.Equal(t, "a.swift", entries[0].Name())
	assert.Equal(t, "b.swift", entries[1].Name())
	assert.Equal(t, "c", entries[2].Name())
	assert.True(t, entries[2].IsDir())

	_, err = fs.ReadDir(filepath.Join(tmpDir, "missing"))
	assert.Error(t, err)
	assert.True(t, fs.IsNotExist(err))
}
