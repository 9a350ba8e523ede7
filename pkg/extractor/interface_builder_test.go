//go:build unit

package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func extractIB(content string) Inventory {
	b := newInventoryBuilder()
	(&interfaceBuilderExtractor{}).extract(content, b)
	return b.build()
}

func TestInterfaceBuilder_BareNameIsObjectiveC(t *testing.T) {
	content := `<?xml version="1.0" encoding="UTF-8"?>
<document>
  <viewController customClass="LoginViewController"/>
</document>`
	inv := extractIB(content)
	assert.Equal(t, []string{"LoginViewController"}, inv.ObjectiveC)
	assert.Empty(t, inv.Swift.Classes)
}

func TestInterfaceBuilder_QualifiedNameIsSwift(t *testing.T) {
	content := `<document>
  <viewController customClass="MyApp.ProfileViewController"/>
</document>`
	inv := extractIB(content)
	assert.Empty(t, inv.ObjectiveC)
	assert.Equal(t, []string{"ProfileViewController"}, inv.Swift.Classes)
}

func TestInterfaceBuilder_MultipleAndNested(t *testing.T) {
	content := `<document>
  <scene>
    <tableView customClass="HistoryTable"/>
    <cell customClass="MyApp.HistoryCell"/>
    <view customClass="HistoryTable"/>
  </scene>
</document>`
	inv := extractIB(content)
	assert.Equal(t, []string{"HistoryTable"}, inv.ObjectiveC)
	assert.Equal(t, []string{"HistoryCell"}, inv.Swift.Classes)
}

func TestInterfaceBuilder_MalformedXMLBestEffort(t *testing.T) {
	content := `<document>
  <view customClass="Recovered"/>
  <broken`
	inv := extractIB(content)
	assert.Equal(t, []string{"Recovered"}, inv.ObjectiveC)
}

func TestInterfaceBuilder_InvalidIdentifierDropped(t *testing.T) {
	content := `<document><view customClass="Not-An-Identifier"/></document>`
	inv := extractIB(content)
	assert.Empty(t, inv.ObjectiveC)
	assert.Empty(t, inv.Swift.Classes)
}
