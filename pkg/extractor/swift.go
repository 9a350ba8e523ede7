package extractor

import "regexp"

var (
	swiftClassRe  = regexp.MustCompile(`(?:^|[\s{(])class\s+([A-Za-z_][A-Za-z0-9_]*)`)
	swiftStructRe = regexp.MustCompile(`(?:^|[\s{(])struct\s+([A-Za-z_][A-Za-z0-9_]*)`)

	// Words that may legally follow the `class` keyword without naming a type.
	swiftMemberKeywords = map[string]struct{}{
		"func": {}, "var": {}, "let": {}, "init": {}, "deinit": {}, "subscript": {},
	}
)

// swiftExtractor extracts class and struct declarations from Swift sources.
// Nested declarations are captured and flattened; access modifiers before the
// keyword and generics or inheritance clauses after the name are irrelevant
// to the match.
type swiftExtractor struct{}

func (x *swiftExtractor) extract(content string, b *inventoryBuilder) {
	for _, m := range swiftClassRe.FindAllStringSubmatch(content, -1) {
		// `class func` and friends declare members, not types
		if _, reserved := swiftMemberKeywords[m[1]]; reserved {
			continue
		}
		b.addSwiftClass(m[1])
	}
	for _, m := range swiftStructRe.FindAllStringSubmatch(content, -1) {
		b.addSwiftStruct(m[1])
	}
}
