package wasmenc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nikand.dev/go/wasmenc/internal/binread"
)

func TestSectionLen(tb *testing.T) {
	var s FunctionSection

	assert.True(tb, s.IsEmpty())
	assert.Equal(tb, uint32(0), s.Len())

	for i := 0; i < 5; i++ {
		s.Function(uint32(i))
	}

	assert.False(tb, s.IsEmpty())
	assert.Equal(tb, uint32(5), s.Len())

	s.Raw(2, []byte{0x00, 0x01})
	assert.Equal(tb, uint32(7), s.Len())
}

func TestSectionFrame(tb *testing.T) {
	var d binread.Reader

	for _, tc := range []struct {
		name string
		s    Section
		n    int
	}{
		{"type", (&TypeSection{}).
			Function(nil, nil).
			Function([]ValType{I32, I64}, []ValType{F32}), 2},
		{"import", (&ImportSection{}).
			Import("env", "f", EntityFunc(0)).
			Import("env", "mem", MemoryType{Minimum: 1}).
			Import("env", "g", GlobalType{ValType: I32}), 3},
		{"function", (&FunctionSection{}).Function(0), 1},
		{"table", (&TableSection{}).Table(TableType{ElementType: FuncRef, Minimum: 1}), 1},
		{"memory", (&MemorySection{}).Memory(MemoryType{Minimum: 1}), 1},
		{"global", (&GlobalSection{}).
			Global(GlobalType{ValType: I32, Mutable: true}, I32Const(1)).
			Global(GlobalType{ValType: F64}, F64Const(2)), 2},
		{"export", (&ExportSection{}).Export("f", ExportFunc, 0), 1},
		{"element", (&ElementSection{}).Passive(FuncRef, 1, 2), 1},
		{"code", (&CodeSection{}).Function(NewFunction(nil).Instruction(End)), 1},
		{"data", (&DataSection{}).Passive([]byte("abc")).Passive(nil), 2},
		{"tag", (&TagSection{}).Tag(TagType{FuncType: 1}), 1},
		{"empty", &ExportSection{}, 0},
	} {
		tc := tc

		tb.Run(tc.name, func(tb *testing.T) {
			b := tc.s.Encode(nil)

			id, data, i, err := d.Section(b, 0)
			require.NoError(tb, err)
			assert.Equal(tb, len(b), i)
			assert.Equal(tb, tc.s.ID(), id)

			n, j, err := d.Int(data, 0)
			require.NoError(tb, err)
			assert.Equal(tb, tc.n, n)
			assert.Equal(tb, Uint32Len(uint32(tc.n)), j)
		})
	}
}

func TestSectionBytes(tb *testing.T) {
	tb.Run("Type", func(tb *testing.T) {
		var s TypeSection
		s.Function([]ValType{I32, I32}, []ValType{I32})

		assert.Equal(tb, []byte{0x01, 0x07, 0x01, 0x60, 0x02, 0x7f, 0x7f, 0x01, 0x7f}, s.Encode(nil))
	})

	tb.Run("Import", func(tb *testing.T) {
		var s ImportSection
		s.Import("a", "b", EntityFunc(1))

		assert.Equal(tb, []byte{0x02, 0x07, 0x01, 0x01, 'a', 0x01, 'b', 0x00, 0x01}, s.Encode(nil))
	})

	tb.Run("Global", func(tb *testing.T) {
		var s GlobalSection
		s.Global(GlobalType{ValType: I32, Mutable: true}, I32Const(42))

		assert.Equal(tb, []byte{0x06, 0x06, 0x01, 0x7f, 0x01, 0x41, 0x2a, 0x0b}, s.Encode(nil))
	})

	tb.Run("Export", func(tb *testing.T) {
		var s ExportSection
		s.Export("add", ExportFunc, 0)

		assert.Equal(tb, []byte{0x07, 0x07, 0x01, 0x03, 'a', 'd', 'd', 0x00, 0x00}, s.Encode(nil))
	})

	tb.Run("Start", func(tb *testing.T) {
		assert.Equal(tb, []byte{0x08, 0x02, 0x80, 0x01}, StartSection{Function: 128}.Encode(nil))
	})

	tb.Run("DataCount", func(tb *testing.T) {
		assert.Equal(tb, []byte{0x0c, 0x01, 0x03}, DataCountSection{Count: 3}.Encode(nil))
	})

	tb.Run("Code", func(tb *testing.T) {
		var s CodeSection
		s.Function(NewFunctionWithLocals(I32, I32, I64).Instructions(LocalGet(0), Drop, End))

		assert.Equal(tb, []byte{
			0x0a, 0x0b, 0x01,
			0x09,
			0x02, 0x02, 0x7f, 0x01, 0x7e,
			0x20, 0x00, 0x1a, 0x0b,
		}, s.Encode(nil))
	})

	tb.Run("RawBody", func(tb *testing.T) {
		var a, b CodeSection

		a.Function(NewFunction(nil).Instruction(End))
		b.RawBody([]byte{0x00, 0x0b})

		assert.Equal(tb, a.Encode(nil), b.Encode(nil))
	})

	tb.Run("Memory", func(tb *testing.T) {
		limit := uint64(2)

		var s MemorySection
		s.Memory(MemoryType{Minimum: 1})
		s.Memory(MemoryType{Minimum: 1, Maximum: &limit, Shared: true})
		s.Memory(MemoryType{Minimum: 1, Memory64: true})

		assert.Equal(tb, []byte{0x05, 0x08, 0x03, 0x00, 0x01, 0x03, 0x01, 0x02, 0x04, 0x01}, s.Encode(nil))
	})

	tb.Run("Table", func(tb *testing.T) {
		limit := uint32(10)

		var s TableSection
		s.Table(TableType{ElementType: ExternRef, Minimum: 1, Maximum: &limit})

		assert.Equal(tb, []byte{0x04, 0x05, 0x01, 0x6f, 0x01, 0x01, 0x0a}, s.Encode(nil))
	})

	tb.Run("Custom", func(tb *testing.T) {
		s := CustomSection{Name: "hi", Data: []byte{1, 2}}

		assert.Equal(tb, []byte{0x00, 0x05, 0x02, 'h', 'i', 1, 2}, s.Encode(nil))
	})

	tb.Run("RawSection", func(tb *testing.T) {
		s := RawSection{SectionID: byte(IDData), Data: []byte{0x00}}

		assert.Equal(tb, []byte{0x0b, 0x01, 0x00}, s.Encode(nil))
	})
}

func TestRawEscapeHatch(tb *testing.T) {
	var a, b FunctionSection

	a.Function(1).Function(2)
	b.Function(1).Raw(1, []byte{0x02})

	assert.Equal(tb, a.Encode(nil), b.Encode(nil))

	// count and payload disagree, nothing complains
	var c FunctionSection
	c.Raw(3, []byte{0x00})

	assert.Equal(tb, []byte{0x03, 0x02, 0x03, 0x00}, c.Encode(nil))
}

func TestElementSegments(tb *testing.T) {
	for _, tc := range []struct {
		name string
		seg  ElementSegment
		exp  []byte
	}{
		{"active_short", ElementSegment{Offset: I32Const(0), ElementType: FuncRef, Functions: []uint32{1}},
			[]byte{0x00, 0x41, 0x00, 0x0b, 0x01, 0x01}},
		{"passive", ElementSegment{Mode: ElementPassive, ElementType: FuncRef, Functions: []uint32{1, 2}},
			[]byte{0x01, 0x00, 0x02, 0x01, 0x02}},
		{"active_table", ElementSegment{Table: 1, Offset: I32Const(0), ElementType: FuncRef, Functions: []uint32{3}},
			[]byte{0x02, 0x01, 0x41, 0x00, 0x0b, 0x00, 0x01, 0x03}},
		{"declared", ElementSegment{Mode: ElementDeclared, ElementType: FuncRef, Functions: []uint32{0}},
			[]byte{0x03, 0x00, 0x01, 0x00}},
		{"active_short_exprs", ElementSegment{Offset: I32Const(0), ElementType: FuncRef, Expressions: []Instruction{RefFunc(0)}},
			[]byte{0x04, 0x41, 0x00, 0x0b, 0x01, 0xd2, 0x00, 0x0b}},
		{"passive_exprs", ElementSegment{Mode: ElementPassive, ElementType: ExternRef, Expressions: []Instruction{RefNull(ExternRef)}},
			[]byte{0x05, 0x6f, 0x01, 0xd0, 0x6f, 0x0b}},
		{"active_table_exprs", ElementSegment{Table: 2, Offset: GlobalGet(0), ElementType: FuncRef, Expressions: []Instruction{}},
			[]byte{0x06, 0x02, 0x23, 0x00, 0x0b, 0x70, 0x00}},
		{"declared_exprs", ElementSegment{Mode: ElementDeclared, ElementType: FuncRef, Expressions: []Instruction{RefFunc(1)}},
			[]byte{0x07, 0x70, 0x01, 0xd2, 0x01, 0x0b}},
	} {
		tc := tc

		tb.Run(tc.name, func(tb *testing.T) {
			assert.Equal(tb, tc.exp, tc.seg.Encode(nil))
		})
	}

	var s ElementSection
	s.Active(0, I32Const(0), FuncRef, 0).Passive(FuncRef).Declared(FuncRef, 1)

	assert.Equal(tb, uint32(3), s.Len())
}

func TestDataSegments(tb *testing.T) {
	for _, tc := range []struct {
		name string
		seg  DataSegment
		exp  []byte
	}{
		{"active", DataSegment{Offset: I32Const(8), Data: []byte("hi")}, []byte{0x00, 0x41, 0x08, 0x0b, 0x02, 'h', 'i'}},
		{"passive", DataSegment{Data: []byte{1}}, []byte{0x01, 0x01, 0x01}},
		{"active_memory", DataSegment{Memory: 1, Offset: I32Const(0), Data: nil}, []byte{0x02, 0x01, 0x41, 0x00, 0x0b, 0x00}},
	} {
		tc := tc

		tb.Run(tc.name, func(tb *testing.T) {
			assert.Equal(tb, tc.exp, tc.seg.Encode(nil))
		})
	}
}

func TestNameSection(tb *testing.T) {
	var d binread.Reader

	var names NameSection
	names.Module("m")
	names.Functions((&NameMap{}).Append(0, "f"))
	names.Locals((&IndirectNameMap{}).Append(0, (&NameMap{}).Append(0, "x")))

	b := names.Encode(nil)

	id, data, _, err := d.Section(b, 0)
	require.NoError(tb, err)
	assert.Equal(tb, byte(IDCustom), id)

	name, i, err := d.Name(data, 0)
	require.NoError(tb, err)
	assert.Equal(tb, "name", string(name))

	assert.Equal(tb, []byte{
		0x00, 0x02, 0x01, 'm',
		0x01, 0x04, 0x01, 0x00, 0x01, 'f',
		0x02, 0x06, 0x01, 0x00, 0x01, 0x00, 0x01, 'x',
	}, data[i:])
}

func TestDeterminism(tb *testing.T) {
	build := func() []byte {
		var types TypeSection
		types.Function([]ValType{I64}, []ValType{I64})

		var code CodeSection
		code.Function(NewFunction(nil).Instructions(LocalGet(0), I64Const(1), I64Add, End))

		return NewModule().Section(&types).Section(&code).Finish()
	}

	assert.Equal(tb, build(), build())
}
