//go:build integration

package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_WriteFileAtomic(t *testing.T) {
	fs := NewFS()

	tmpDir, err := os.MkdirTemp("", "test-atomic-*")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	target := filepath.Join(tmpDir, "reports", "filtered_files.json")

	// Parent directory is created on demand
	err = fs.WriteFileAtomic(target, []byte("[]"), 0644)
	assert.NoError(t, err)

	data, err := os.ReadFile(target)
	assert.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	// Overwrite keeps the final content only
	err = fs.WriteFileAtomic(target, []byte(`["a"]`), 0644)
	assert.NoError(t, err)

	data, err = os.ReadFile(target)
	assert.NoError(t, err)
	assert.Equal(t, `["a"]`, string(data))

	// No temporary files are left behind
	entries, err := os.ReadDir(filepath.Dir(target))
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
}
