//go:build integration

package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xcscan/xcscan/pkg/config"
	"github.com/xcscan/xcscan/pkg/fs"
	"github.com/xcscan/xcscan/pkg/logger"
)

func makeDirs(t *testing.T, root string, dirs ...string) {
	t.Helper()
	for _, dir := range dirs {
		require.NoError(t, os.MkdirAll(filepath.Join(root, filepath.FromSlash(dir)), 0755))
	}
}

func makeFiles(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, file := range files {
		path := filepath.Join(root, filepath.FromSlash(file))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	}
}

func build(t *testing.T, params NewCatalogerParams) Catalog {
	t.Helper()
	if params.FS == nil {
		params.FS = fs.NewFS()
	}
	params.Logger = logger.NewNoopLogger()
	return NewCataloger(params).Build()
}

func TestBuild_ImagesetsFromDiscoveredCatalogs(t *testing.T) {
	tmpDir := t.TempDir()
	makeDirs(t, tmpDir,
		"App/Images.xcassets/Icon.imageset",
		"App/Images.xcassets/Logo.imageset",
		"App/Images.xcassets/Buttons/Close.imageset",
		"App/Images.xcassets/Colors.colorset",
	)
	makeFiles(t, tmpDir,
		"App/Images.xcassets/Icon.imageset/icon@2x.png",
		"App/Images.xcassets/Icon.imageset/Contents.json",
	)

	cat := build(t, NewCatalogerParams{Root: tmpDir})

	// Nested folders are traversed; only leaf image sets count,
	// with the suffix stripped. Encounter order is walk order.
	assert.Equal(t, []string{"Close", "Icon", "Logo"}, cat.Imagesets)
	assert.Empty(t, cat.Others)
}

func TestBuild_PinnedAssetCatalog(t *testing.T) {
	tmpDir := t.TempDir()
	makeDirs(t, tmpDir,
		"A.xcassets/One.imageset",
		"B.xcassets/Two.imageset",
	)

	cat := build(t, NewCatalogerParams{
		Root:         tmpDir,
		AssetCatalog: filepath.Join(tmpDir, "A.xcassets"),
	})

	assert.Equal(t, []string{"One"}, cat.Imagesets)
}

func TestBuild_MissingCatalogContributesNothing(t *testing.T) {
	tmpDir := t.TempDir()

	cat := build(t, NewCatalogerParams{
		Root:         tmpDir,
		AssetCatalog: filepath.Join(tmpDir, "Missing.xcassets"),
	})

	assert.Empty(t, cat.Imagesets)
}

func TestBuild_ExtraFoldersByExtension(t *testing.T) {
	tmpDir := t.TempDir()
	makeFiles(t, tmpDir,
		"Sounds/chime.wav",
		"Sounds/alert.wav",
		"Sounds/intro.mp3",
		"Sounds/Deep/echo.wav",
	)

	cat := build(t, NewCatalogerParams{
		Root:    tmpDir,
		Folders: []config.ResourceFolder{{Path: filepath.Join(tmpDir, "Sounds")}},
	})

	assert.Equal(t, []string{"echo", "alert", "chime"}, cat.Others["wav"])
	assert.Equal(t, []string{"intro"}, cat.Others["mp3"])
}

func TestBuild_ExtraFolderWithLabelOverride(t *testing.T) {
	tmpDir := t.TempDir()
	makeFiles(t, tmpDir, "Audio/chime.wav", "Music/theme.mp3")

	cat := build(t, NewCatalogerParams{
		Root: tmpDir,
		Folders: []config.ResourceFolder{
			{Path: filepath.Join(tmpDir, "Audio"), Label: "sounds"},
			{Path: filepath.Join(tmpDir, "Music"), Label: "sounds"},
		},
	})

	// Folders sharing a label merge into one category
	assert.Equal(t, []string{"chime", "theme"}, cat.Others["sounds"])
}

func TestBuild_ScaleSuffixStripped(t *testing.T) {
	tmpDir := t.TempDir()
	makeFiles(t, tmpDir,
		"Images/banner.png",
		"Images/banner@2x.png",
		"Images/banner@3x.png",
	)

	cat := build(t, NewCatalogerParams{
		Root:    tmpDir,
		Folders: []config.ResourceFolder{{Path: filepath.Join(tmpDir, "Images")}},
	})

	assert.Equal(t, []string{"banner"}, cat.Others["png"])
}

func TestBuild_FilePathResolvesToParent(t *testing.T) {
	tmpDir := t.TempDir()
	makeFiles(t, tmpDir, "Fonts/Custom.ttf", "Fonts/Other.ttf")

	cat := build(t, NewCatalogerParams{
		Root:    tmpDir,
		Folders: []config.ResourceFolder{{Path: filepath.Join(tmpDir, "Fonts", "Custom.ttf")}},
	})

	assert.Equal(t, []string{"Custom", "Other"}, cat.Others["ttf"])
}

func TestBuild_MissingFolderContributesNothing(t *testing.T) {
	tmpDir := t.TempDir()

	cat := build(t, NewCatalogerParams{
		Root:    tmpDir,
		Folders: []config.ResourceFolder{{Path: filepath.Join(tmpDir, "Nope")}},
	})

	assert.Empty(t, cat.Others)
}

func TestFlatten_StableOrder(t *testing.T) {
	cat := Catalog{
		Imagesets: []string{"Icon", "Logo"},
		Others: map[string][]string{
			"wav": {"chime"},
			"mp3": {"theme"},
		},
	}

	assert.Equal(t, []string{"Icon", "Logo", "theme", "chime"}, cat.Flatten())
}
