//go:build unit

package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func extractObjC(content string) []string {
	b := newInventoryBuilder()
	(&objcExtractor{}).extract(content, b)
	return b.build().ObjectiveC
}

func TestObjC_InterfaceDeclaration(t *testing.T) {
	names := extractObjC("@interface Foo : NSObject\n@end\n")
	assert.Equal(t, []string{"Foo"}, names)
}

func TestObjC_ImplementationDeclaration(t *testing.T) {
	names := extractObjC("@implementation Foo\n@end\n")
	assert.Equal(t, []string{"Foo"}, names)
}

func TestObjC_InterfaceAndImplementationDeduplicated(t *testing.T) {
	content := "@interface Foo : NSObject\n@end\n@implementation Foo\n@end\n"
	assert.Equal(t, []string{"Foo"}, extractObjC(content))
}

func TestObjC_CategoryExcluded(t *testing.T) {
	content := "@interface Foo (Networking)\n@end\n@implementation Foo (Networking)\n@end\n"
	assert.Empty(t, extractObjC(content))
}

func TestObjC_ClassExtensionExcluded(t *testing.T) {
	assert.Empty(t, extractObjC("@interface Foo ()\n@end\n"))
}

func TestObjC_PlainStructNotReported(t *testing.T) {
	content := "struct Point { int x; int y; };\ntypedef struct { int v; } Wrapped;\n"
	assert.Empty(t, extractObjC(content))
}

func TestObjC_MultipleDeclarations(t *testing.T) {
	content := `
@interface AppDelegate : UIResponder <UIApplicationDelegate>
@end

@interface LoginViewController : UIViewController
@end

@implementation SceneDelegate
@end
`
	assert.Equal(t, []string{"AppDelegate", "LoginViewController", "SceneDelegate"}, extractObjC(content))
}
