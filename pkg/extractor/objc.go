package extractor

import "regexp"

var (
	// The superclass colon keeps class extensions `@interface Foo ()`
	// and categories `@interface Foo (Bar)` out of the match.
	objcInterfaceRe = regexp.MustCompile(`@interface\s+([A-Za-z_][A-Za-z0-9_]*)\s*:`)

	// The optional parenthesis capture detects category implementations,
	// which only reopen an existing class and are not declarations.
	objcImplementationRe = regexp.MustCompile(`@implementation\s+([A-Za-z_][A-Za-z0-9_]*)\s*(\()?`)
)

// objcExtractor extracts class declarations from Objective-C headers and
// implementations. Plain C structs are never reported: the inventory has no
// slot for them and untagged or anonymous structs cannot be disambiguated.
type objcExtractor struct{}

func (x *objcExtractor) extract(content string, b *inventoryBuilder) {
	for _, m := range objcInterfaceRe.FindAllStringSubmatch(content, -1) {
		b.addObjC(m[1])
	}
	for _, m := range objcImplementationRe.FindAllStringSubmatch(content, -1) {
		if m[2] != "" {
			continue
		}
		b.addObjC(m[1])
	}
}
