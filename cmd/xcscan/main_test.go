//go:build unit

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xcscan/xcscan/pkg/config"
)

func TestParseFolderSpecs(t *testing.T) {
	folders, err := parseFolderSpecs([]string{"Sounds", "fonts=Resources/Fonts"})

	assert.NoError(t, err)
	assert.Equal(t, []config.ResourceFolder{
		{Path: "Sounds"},
		{Path: "Resources/Fonts", Label: "fonts"},
	}, folders)
}

func TestParseFolderSpecs_Invalid(t *testing.T) {
	for _, spec := range []string{"", "=path", "label="} {
		_, err := parseFolderSpecs([]string{spec})
		assert.Error(t, err, spec)
	}
}

func TestNewScanner_BuildsFromConfig(t *testing.T) {
	s, err := newScanner(config.Config{
		ProjectRoot: ".",
		OutputDir:   ".",
	})

	assert.NoError(t, err)
	assert.NotNil(t, s)
}
