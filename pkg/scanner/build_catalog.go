package scanner

import (
	"github.com/xcscan/xcscan/pkg/catalog"
)

// BuildCatalog enumerates the project's resource catalog.
func (s *realScanner) BuildCatalog() (catalog.Catalog, error) {
	cfg, err := s.getConfig()
	if err != nil {
		return catalog.Catalog{}, err
	}

	c := s.deps.CatalogerProvider(catalog.NewCatalogerParams{
		FS:           s.deps.FS,
		Logger:       s.deps.Logger,
		Root:         cfg.ProjectRoot,
		AssetCatalog: cfg.AssetCatalog,
		Folders:      cfg.ResourceFolders,
	})
	cat := c.Build()
	s.VerbosePrint("Cataloged %d imagesets and %d extra categories",
		len(cat.Imagesets), len(cat.Others))
	return cat, nil
}
