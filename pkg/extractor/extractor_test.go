//go:build unit

package extractor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xcscan/xcscan/pkg/collector"
	fsmocks "github.com/xcscan/xcscan/pkg/fs/mocks"
	"github.com/xcscan/xcscan/pkg/logger"
	"go.uber.org/mock/gomock"
)

func TestExtract_AcrossFileKinds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := fsmocks.NewMockFS(ctrl)
	mockFS.EXPECT().ReadFile("/p/Foo.h").Return([]byte("@interface Foo : NSObject\n@end"), nil)
	mockFS.EXPECT().ReadFile("/p/Foo.m").Return([]byte("@implementation Foo\n@end"), nil)
	mockFS.EXPECT().ReadFile("/p/Bar.swift").Return([]byte("struct Bar {}"), nil)
	mockFS.EXPECT().ReadFile("/p/Main.xib").Return([]byte(`<doc><view customClass="App.BarView"/></doc>`), nil)

	e := NewExtractor(NewExtractorParams{FS: mockFS, Logger: logger.NewNoopLogger()})
	inv := e.Extract([]collector.ProjectPath{
		{Path: "/p/Foo.h", Kind: collector.KindSourceHeader},
		{Path: "/p/Foo.m", Kind: collector.KindSourceImpl},
		{Path: "/p/Bar.swift", Kind: collector.KindSwiftSource},
		{Path: "/p/Main.xib", Kind: collector.KindInterfaceBuilder},
	})

	// Foo declared twice, reported once
	assert.Equal(t, []string{"Foo"}, inv.ObjectiveC)
	assert.Equal(t, []string{"BarView"}, inv.Swift.Classes)
	assert.Equal(t, []string{"Bar"}, inv.Swift.Structs)
}

func TestExtract_UnreadableFileSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := fsmocks.NewMockFS(ctrl)
	mockFS.EXPECT().ReadFile("/p/Bad.swift").Return(nil, errors.New("encoding error"))
	mockFS.EXPECT().ReadFile("/p/Good.swift").Return([]byte("class Good {}"), nil)

	e := NewExtractor(NewExtractorParams{FS: mockFS, Logger: logger.NewNoopLogger()})
	inv := e.Extract([]collector.ProjectPath{
		{Path: "/p/Bad.swift", Kind: collector.KindSwiftSource},
		{Path: "/p/Good.swift", Kind: collector.KindSwiftSource},
	})

	assert.Equal(t, []string{"Good"}, inv.Swift.Classes)
}

func TestExtract_EmptyInputYieldsEmptyArrays(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	e := NewExtractor(NewExtractorParams{FS: fsmocks.NewMockFS(ctrl), Logger: logger.NewNoopLogger()})
	inv := e.Extract(nil)

	assert.NotNil(t, inv.ObjectiveC)
	assert.NotNil(t, inv.Swift.Classes)
	assert.NotNil(t, inv.Swift.Structs)
	assert.Empty(t, inv.ObjectiveC)
}

func TestExtract_OtherKindIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No ReadFile expectation: KindOther must never be read
	e := NewExtractor(NewExtractorParams{FS: fsmocks.NewMockFS(ctrl), Logger: logger.NewNoopLogger()})
	inv := e.Extract([]collector.ProjectPath{{Path: "/p/notes.txt", Kind: collector.KindOther}})

	assert.Empty(t, inv.ObjectiveC)
}
