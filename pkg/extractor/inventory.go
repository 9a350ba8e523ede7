package extractor

import (
	"regexp"
	"sort"
)

// SwiftInventory groups Swift declarations by kind.
type SwiftInventory struct {
	Classes []string `json:"classes"`
	Structs []string `json:"structs"`
}

// Inventory is the deduplicated type inventory of a project,
// grouped by language then declaration kind.
type Inventory struct {
	ObjectiveC []string       `json:"Objective-C"`
	Swift      SwiftInventory `json:"Swift"`
}

var identifierRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// inventoryBuilder accumulates declarations, deduplicating per (language, kind).
type inventoryBuilder struct {
	objc         map[string]struct{}
	swiftClasses map[string]struct{}
	swiftStructs map[string]struct{}
}

func newInventoryBuilder() *inventoryBuilder {
	return &inventoryBuilder{
		objc:         make(map[string]struct{}),
		swiftClasses: make(map[string]struct{}),
		swiftStructs: make(map[string]struct{}),
	}
}

// addObjC records an Objective-C class name; invalid identifiers are dropped.
func (b *inventoryBuilder) addObjC(name string) {
	if identifierRe.MatchString(name) {
		b.objc[name] = struct{}{}
	}
}

// addSwiftClass records a Swift class name; invalid identifiers are dropped.
func (b *inventoryBuilder) addSwiftClass(name string) {
	if identifierRe.MatchString(name) {
		b.swiftClasses[name] = struct{}{}
	}
}

// addSwiftStruct records a Swift struct name; invalid identifiers are dropped.
func (b *inventoryBuilder) addSwiftStruct(name string) {
	if identifierRe.MatchString(name) {
		b.swiftStructs[name] = struct{}{}
	}
}

// build returns the sorted inventory. Slices are never nil so that the
// JSON artifact always carries arrays.
func (b *inventoryBuilder) build() Inventory {
	return Inventory{
		ObjectiveC: sortedKeys(b.objc),
		Swift: SwiftInventory{
			Classes: sortedKeys(b.swiftClasses),
			Structs: sortedKeys(b.swiftStructs),
		},
	}
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
