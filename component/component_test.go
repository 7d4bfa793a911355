package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nikand.dev/go/wasmenc"
	"nikand.dev/go/wasmenc/internal/binread"
)

func TestComponentEmpty(tb *testing.T) {
	exp := []byte{0x00, 'a', 's', 'm', 0x0a, 0x00, 0x01, 0x00}

	assert.Equal(tb, exp, New().Finish())

	var c Component
	assert.Equal(tb, exp, c.Bytes())
}

func TestComponentFrames(tb *testing.T) {
	var d binread.Reader

	var types wasmenc.TypeSection
	types.Function(nil, nil)

	m := wasmenc.NewModule().Section(&types)

	var imports ImportSection
	imports.Import("f", TypeRefFunc(0))

	var exports ExportSection
	exports.Export("run", SortFunc, 0).Export("mem", CoreSortMemory.Sort(), 0)

	inner := New()

	bin := New().
		Section(wasmenc.CustomSection{Name: "meta"}).
		Section(ModuleSection{Module: m}).
		Section(&imports).
		Section(NestedComponentSection{Component: inner}).
		Section(&exports).
		Finish()

	version, frames, err := d.Frames(bin)
	require.NoError(tb, err)
	assert.Equal(tb, uint32(0x0001000a), version)
	require.Len(tb, frames, 5)

	assert.Equal(tb, byte(IDCoreCustom), frames[0].ID)
	assert.Equal(tb, byte(IDCoreModule), frames[1].ID)
	assert.Equal(tb, byte(IDImport), frames[2].ID)
	assert.Equal(tb, byte(IDComponent), frames[3].ID)
	assert.Equal(tb, byte(IDExport), frames[4].ID)

	assert.Equal(tb, m.Bytes(), []byte(frames[1].Data))
	assert.Equal(tb, inner.Bytes(), []byte(frames[3].Data))

	n, err := frames[4].Count()
	assert.NoError(tb, err)
	assert.Equal(tb, 2, n)

	assert.Equal(tb, []byte{0x02, 0x03, 'r', 'u', 'n', 0x01, 0x00, 0x03, 'm', 'e', 'm', 0x00, 0x02, 0x00}, []byte(frames[4].Data))
}

func TestSort(tb *testing.T) {
	assert.Equal(tb, []byte{0x01}, SortFunc.Encode(nil))
	assert.Equal(tb, []byte{0x05}, SortInstance.Encode(nil))
	assert.Equal(tb, []byte{0x00, 0x00}, CoreSortFunc.Sort().Encode(nil))
	assert.Equal(tb, []byte{0x00, 0x11}, CoreSortModule.Sort().Encode(nil))
	assert.Equal(tb, []byte{0x12}, CoreSortInstance.Encode(nil))

	assert.True(tb, CoreSortTable.Sort().IsCore())
	assert.False(tb, SortType.IsCore())

	assert.Equal(tb, "core memory", CoreSortMemory.Sort().String())
	assert.Equal(tb, "value", SortValue.String())
}
