package wasmenc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"

	"nikand.dev/go/wasmenc/internal/binread"
)

func TestModuleEmpty(tb *testing.T) {
	exp := []byte{0x00, 'a', 's', 'm', 0x01, 0x00, 0x00, 0x00}

	assert.Equal(tb, exp, NewModule().Finish())

	var m Module
	assert.Equal(tb, exp, m.Bytes())
}

func TestModuleOrder(tb *testing.T) {
	var types TypeSection
	types.Function(nil, nil)

	a := CustomSection{Name: "a", Data: []byte{1}}
	b := CustomSection{Name: "b"}

	m := NewModule().
		Section(a).
		Section(&types).
		Section(b).
		Section(a)

	var exp []byte
	exp = append(exp, Magic...)
	exp = append(exp, ModuleVersion...)
	exp = a.Encode(exp)
	exp = types.Encode(exp)
	exp = b.Encode(exp)
	exp = a.Encode(exp)

	assert.Equal(tb, exp, m.Finish())
}

func TestModuleFrames(tb *testing.T) {
	var d binread.Reader

	var types TypeSection
	types.Function(nil, nil).Function(nil, []ValType{I32})

	var funcs FunctionSection
	funcs.Function(0).Function(1).Function(1)

	bin := NewModule().
		Section(&types).
		Section(&funcs).
		Section(DataCountSection{Count: 0}).
		Finish()

	version, frames, err := d.Frames(bin)
	require.NoError(tb, err)
	assert.Equal(tb, uint32(1), version)
	require.Len(tb, frames, 3)

	for i, tc := range []struct {
		id byte
		n  int
	}{
		{byte(IDType), 2},
		{byte(IDFunction), 3},
		{byte(IDDataCount), 0},
	} {
		assert.Equal(tb, tc.id, frames[i].ID)

		n, err := frames[i].Count()
		assert.NoError(tb, err)
		assert.Equal(tb, tc.n, n, "frame %d", i)
	}

	assert.Equal(tb, 8, frames[0].Offset)
}

func TestModuleWazero(tb *testing.T) {
	ctx := context.Background()

	var types TypeSection
	types.Function([]ValType{I32, I32}, []ValType{I32})
	types.Function([]ValType{I32}, []ValType{I32})

	var funcs FunctionSection
	funcs.Function(0).Function(1)

	var tables TableSection
	tables.Table(TableType{ElementType: FuncRef, Minimum: 1})

	var mems MemorySection
	mems.Memory(MemoryType{Minimum: 1})

	var globals GlobalSection
	globals.Global(GlobalType{ValType: I32}, I32Const(42))
	globals.Global(GlobalType{ValType: I64, Mutable: true}, I64Const(-5))

	var exports ExportSection
	exports.Export("add", ExportFunc, 0)
	exports.Export("indirect", ExportFunc, 1)
	exports.Export("answer", ExportGlobal, 0)
	exports.Export("memory", ExportMemory, 0)

	var elems ElementSection
	elems.Active(0, I32Const(0), FuncRef, 0)

	var code CodeSection
	code.Function(NewFunction(nil).Instructions(
		LocalGet(0),
		LocalGet(1),
		I32Add,
		End,
	))
	code.Function(NewFunctionWithLocals(I32).Instructions(
		LocalGet(0),
		LocalSet(1),
		Block(BlockValue(I32)),
		LocalGet(1),
		GlobalGet(0),
		I32Const(0),
		CallIndirect{Type: 0},
		End,
		End,
	))

	var data DataSection
	data.Active(0, I32Const(16), []byte("hello"))

	var names NameSection
	names.Module("calc")
	names.Functions((&NameMap{}).Append(0, "add").Append(1, "indirect"))

	bin := NewModule().
		Section(&types).
		Section(&funcs).
		Section(&tables).
		Section(&mems).
		Section(&globals).
		Section(&exports).
		Section(&elems).
		Section(&code).
		Section(&data).
		Section(&names).
		Finish()

	rt := wazero.NewRuntime(ctx)
	defer rt.Close(ctx)

	compiled, err := rt.CompileModule(ctx, bin)
	require.NoError(tb, err)
	defer compiled.Close(ctx)

	assert.Equal(tb, "calc", compiled.Name())

	fs := compiled.ExportedFunctions()
	require.Contains(tb, fs, "add")
	assert.Equal(tb, []api.ValueType{api.ValueTypeI32, api.ValueTypeI32}, fs["add"].ParamTypes())
	assert.Equal(tb, []api.ValueType{api.ValueTypeI32}, fs["add"].ResultTypes())

	mod, err := rt.InstantiateModule(ctx, compiled, wazero.NewModuleConfig().WithName("calc"))
	require.NoError(tb, err)
	defer mod.Close(ctx)

	res, err := mod.ExportedFunction("add").Call(ctx, 2, 3)
	require.NoError(tb, err)
	assert.Equal(tb, []uint64{5}, res)

	res, err = mod.ExportedFunction("indirect").Call(ctx, 8)
	require.NoError(tb, err)
	assert.Equal(tb, []uint64{50}, res)

	assert.Equal(tb, uint64(42), mod.ExportedGlobal("answer").Get())

	v, ok := mod.Memory().Read(16, 5)
	require.True(tb, ok)
	assert.Equal(tb, []byte("hello"), v)
}
