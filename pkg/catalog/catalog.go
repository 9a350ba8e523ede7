// Package catalog enumerates named resources from asset catalogs and
// designated resource folders.
package catalog

import (
	"sort"

	"github.com/xcscan/xcscan/pkg/config"
	"github.com/xcscan/xcscan/pkg/fs"
	"github.com/xcscan/xcscan/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=catalog.go -destination=mocks/catalog.gen.go -package=mocks

// Catalog is the resource inventory of a project. Name order within a
// category is encounter order; names are deduplicated per category.
type Catalog struct {
	Imagesets []string            `json:"imagesets"`
	Others    map[string][]string `json:"others"`
}

// Flatten returns every resource name: image sets first, then the other
// categories by sorted label. The order is stable across runs.
func (c Catalog) Flatten() []string {
	names := make([]string, 0, len(c.Imagesets))
	names = append(names, c.Imagesets...)

	labels := make([]string, 0, len(c.Others))
	for label := range c.Others {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	for _, label := range labels {
		names = append(names, c.Others[label]...)
	}
	return names
}

// Cataloger interface provides resource catalog construction.
type Cataloger interface {
	// Build enumerates image sets and extra-folder resources. Missing
	// catalog or folder paths contribute nothing; Build never fails.
	Build() Catalog
}

// Provider creates a Cataloger from its parameters; used to substitute
// implementations in tests.
type Provider func(params NewCatalogerParams) Cataloger

// NewCatalogerParams contains parameters for creating a new Cataloger instance.
type NewCatalogerParams struct {
	FS           fs.FS
	Logger       logger.Logger
	Root         string
	AssetCatalog string
	Folders      []config.ResourceFolder
}

type realCataloger struct {
	fs           fs.FS
	logger       logger.Logger
	root         string
	assetCatalog string
	folders      []config.ResourceFolder
}

// NewCataloger creates a new Cataloger instance.
func NewCataloger(params NewCatalogerParams) Cataloger {
	l := params.Logger
	if l == nil {
		l = logger.NewNoopLogger()
	}
	return &realCataloger{
		fs:           params.FS,
		logger:       l,
		root:         params.Root,
		assetCatalog: params.AssetCatalog,
		folders:      params.Folders,
	}
}
