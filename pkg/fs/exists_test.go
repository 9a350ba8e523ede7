//go:build integration

package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_Exists(t *testing.T) {
	fs := NewFS()

	tmpDir, err := os.MkdirTemp("", "test-exists-*")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	existingFile := filepath.Join(tmpDir, "present.swift")
	err = os.WriteFile(existingFile, []byte("class Present {}"), 0644)
	require.NoError(t, err)

	exists, err := fs.Exists(existingFile)
	assert.NoError(t, err)
	assert.True(t, exists)

	exists, err = fs.Exists(filepath.Join(tmpDir, "missing.swift"))
	assert.NoError(t, err)
	assert.False(t, exists)

	exists, err = fs.Exists(tmpDir)
	assert.NoError(t, err)
	assert.True(t, exists)
}
