//go:build unit

package dependencies

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xcscan/xcscan/pkg/config"
)

func TestNew_Defaults(t *testing.T) {
	deps := New()

	assert.NotNil(t, deps.FS)
	assert.NotNil(t, deps.Logger)
	assert.NotNil(t, deps.CollectorProvider)
	assert.NotNil(t, deps.ExtractorProvider)
	assert.NotNil(t, deps.CatalogerProvider)
	assert.NotNil(t, deps.AnalyzerProvider)
	assert.NotNil(t, deps.WriterProvider)
	assert.Nil(t, deps.Config)
}

func TestValidate_MissingConfig(t *testing.T) {
	deps := New()
	assert.ErrorIs(t, deps.Validate(), ErrConfigMissing)
}

func TestValidate_Complete(t *testing.T) {
	deps := New().WithConfig(config.NewManager("/test/config.yaml"))
	assert.NoError(t, deps.Validate())
}

func TestValidate_MissingFS(t *testing.T) {
	deps := New().WithConfig(config.NewManager("/test/config.yaml")).WithFS(nil)
	assert.ErrorIs(t, deps.Validate(), ErrFSMissing)
}
