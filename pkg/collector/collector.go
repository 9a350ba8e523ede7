// Package collector walks a project tree and collects developer-authored files.
package collector

import (
	"github.com/xcscan/xcscan/pkg/fs"
	"github.com/xcscan/xcscan/pkg/ignore"
	"github.com/xcscan/xcscan/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=collector.go -destination=mocks/collector.gen.go -package=mocks

// Collector interface provides project file collection.
type Collector interface {
	// Collect walks the project root and returns the filtered file list
	// in deterministic pre-order, children sorted by name.
	Collect() ([]ProjectPath, error)
}

// Provider creates a Collector from its parameters; used to substitute
// implementations in tests.
type Provider func(params NewCollectorParams) Collector

// NewCollectorParams contains parameters for creating a new Collector instance.
type NewCollectorParams struct {
	FS            fs.FS
	Logger        logger.Logger
	Matcher       ignore.Matcher
	Root          string
	IgnoreEnabled bool
}

type realCollector struct {
	fs            fs.FS
	logger        logger.Logger
	matcher       ignore.Matcher
	root          string
	ignoreEnabled bool
}

// NewCollector creates a new Collector instance.
func NewCollector(params NewCollectorParams) Collector {
	l := params.Logger
	if l == nil {
		l = logger.NewNoopLogger()
	}
	m := params.Matcher
	if m == nil {
		m = ignore.NewRuleSet(ignore.NewRuleSetParams{FS: params.FS, Logger: l})
	}
	return &realCollector{
		fs:            params.FS,
		logger:        l,
		matcher:       m,
		root:          params.Root,
		ignoreEnabled: params.IgnoreEnabled,
	}
}
