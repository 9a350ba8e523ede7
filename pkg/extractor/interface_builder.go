package extractor

import (
	"encoding/xml"
	"strings"
)

// interfaceBuilderExtractor extracts custom class names from Interface
// Builder XML (xib, nib, storyboard). A module-qualified value is treated as
// a Swift class and reduced to its last component; a bare name defaults to
// Objective-C. The heuristic misreads bare Swift names; that trade-off is
// kept as documented behavior.
type interfaceBuilderExtractor struct{}

func (x *interfaceBuilderExtractor) extract(content string, b *inventoryBuilder) {
	decoder := xml.NewDecoder(strings.NewReader(content))
	for {
		token, err := decoder.Token()
		if err != nil {
			// Malformed XML ends extraction for this file; whatever was
			// found before the error still counts.
			return
		}
		start, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		for _, attr := range start.Attr {
			if attr.Name.Local != "customClass" {
				continue
			}
			name := attr.Value
			if dot := strings.LastIndexByte(name, '.'); dot >= 0 {
				b.addSwiftClass(name[dot+1:])
			} else {
				b.addObjC(name)
			}
		}
	}
}
