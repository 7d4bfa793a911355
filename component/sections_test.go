package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoreInstanceSection(tb *testing.T) {
	var s CoreInstanceSection
	s.Instantiate(0, []CoreInstantiationArg{{Name: "env", Instance: 1}})
	s.ExportItems([]CoreExport{{Name: "f", Sort: CoreSortFunc, Index: 2}})

	assert.Equal(tb, uint32(2), s.Len())
	assert.Equal(tb, []byte{
		0x02, 0x10, 0x02,
		0x00, 0x00, 0x01, 0x03, 'e', 'n', 'v', 0x12, 0x01,
		0x01, 0x01, 0x01, 'f', 0x00, 0x02,
	}, s.Encode(nil))
}

func TestCoreAliasSection(tb *testing.T) {
	var s CoreAliasSection
	s.InstanceExport(0, CoreSortMemory, "mem").Outer(1, CoreSortType, 4)

	assert.Equal(tb, []byte{
		0x03, 0x0c, 0x02,
		0x02, 0x00, 0x00, 0x03, 'm', 'e', 'm',
		0x10, 0x01, 0x01, 0x04,
	}, s.Encode(nil))
}

func TestAliasSection(tb *testing.T) {
	var s AliasSection
	s.InstanceExport(1, SortFunc, "f")
	s.InstanceExport(0, CoreSortFunc.Sort(), "g")
	s.Outer(2, SortComponent, 0)

	assert.Equal(tb, uint32(3), s.Len())
	assert.Equal(tb, []byte{
		0x07, 0x10, 0x03,
		0x01, 0x00, 0x01, 0x01, 'f',
		0x00, 0x00, 0x01, 0x00, 0x01, 'g',
		0x04, 0x02, 0x02, 0x00,
	}, s.Encode(nil))
}

func TestInstanceSection(tb *testing.T) {
	var s InstanceSection
	s.Instantiate(1, []InstantiationArg{{Name: "a", Sort: SortInstance, Index: 0}})
	s.ExportItems([]Export{{Name: "m", Sort: CoreSortModule.Sort(), Index: 3}})

	assert.Equal(tb, []byte{
		0x06, 0x0f, 0x02,
		0x00, 0x01, 0x01, 0x01, 'a', 0x05, 0x00,
		0x01, 0x01, 0x01, 'm', 0x00, 0x11, 0x03,
	}, s.Encode(nil))
}

func TestCanonicalFunctionSection(tb *testing.T) {
	var s CanonicalFunctionSection
	s.Lift(3, 1, UTF8, OptionMemory(0), OptionRealloc(2), OptionPostReturn(4))
	s.Lower(0, CompactUTF16)

	assert.Equal(tb, uint32(2), s.Len())
	assert.Equal(tb, []byte{
		0x09, 0x12, 0x02,
		0x00, 0x00, 0x03, 0x04, 0x00, 0x03, 0x00, 0x04, 0x02, 0x05, 0x04, 0x01,
		0x01, 0x00, 0x00, 0x01, 0x02,
	}, s.Encode(nil))
}

func TestStartSection(tb *testing.T) {
	assert.Equal(tb, []byte{0x0a, 0x04, 0x02, 0x02, 0x00, 0x01}, StartSection{Function: 2, Args: []uint32{0, 1}}.Encode(nil))
	assert.Equal(tb, []byte{0x0a, 0x02, 0x00, 0x00}, StartSection{}.Encode(nil))
}

func TestRawSections(tb *testing.T) {
	var a, b ImportSection

	a.Import("x", TypeRefValue{Type: Bool})
	b.Raw(1, []byte{0x01, 'x', 0x02, 0x7f})

	assert.Equal(tb, a.Encode(nil), b.Encode(nil))
	assert.Equal(tb, a.Len(), b.Len())
}
