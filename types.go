package wasmenc

import "fmt"

type (
	// ValType is a value type encoded as a single byte.
	ValType byte

	// BlockType is the type immediate of block, loop, if and try.
	// Use BlockEmpty, BlockValue or BlockFunc to construct it.
	BlockType struct {
		kind byte
		val  ValType
		idx  uint32
	}

	FuncType struct {
		Params  []ValType
		Results []ValType
	}

	GlobalType struct {
		ValType ValType
		Mutable bool
	}

	TableType struct {
		ElementType ValType
		Minimum     uint32
		Maximum     *uint32
	}

	MemoryType struct {
		Minimum  uint64
		Maximum  *uint64
		Memory64 bool
		Shared   bool
	}

	TagKind byte

	TagType struct {
		Kind     TagKind
		FuncType uint32
	}

	// EntityFunc is an imported function of the given type index.
	EntityFunc uint32

	// EntityType is a description of an imported item.
	// Implemented by EntityFunc, TableType, MemoryType, GlobalType and TagType.
	EntityType interface {
		EncodeEntity(b []byte) []byte
	}

	ExportKind byte

	// MemArg is the memory access immediate of loads and stores.
	// Align is the alignment exponent, not the byte count.
	MemArg struct {
		Offset uint64
		Align  uint32
		Memory uint32
	}
)

// Value types.
const (
	I32 ValType = 0x7f
	I64 ValType = 0x7e
	F32 ValType = 0x7d
	F64 ValType = 0x7c

	V128 ValType = 0x7b

	FuncRef   ValType = 0x70
	ExternRef ValType = 0x6f
)

const (
	FuncTypeHeader = 0x60

	blockEmptyByte = 0x40
)

const (
	blockEmpty = iota
	blockValue
	blockFunc
)

const (
	TagException TagKind = 0x00
)

// Export and import description kinds.
const (
	ExportFunc ExportKind = iota
	ExportTable
	ExportMemory
	ExportGlobal
	ExportTag
)

const (
	limitsHasMax   = 0x01
	limitsShared   = 0x02
	limitsMemory64 = 0x04

	memArgMultiMemory = 0x40
)

var BlockEmpty = BlockType{kind: blockEmpty}

func BlockValue(t ValType) BlockType { return BlockType{kind: blockValue, val: t} }

// BlockFunc is a block typed by the function type at type index idx.
func BlockFunc(idx uint32) BlockType { return BlockType{kind: blockFunc, idx: idx} }

func (t ValType) Encode(b []byte) []byte {
	return append(b, byte(t))
}

func (t ValType) String() string {
	switch t {
	case I32:
		return "i32"
	case I64:
		return "i64"
	case F32:
		return "f32"
	case F64:
		return "f64"
	case V128:
		return "v128"
	case FuncRef:
		return "funcref"
	case ExternRef:
		return "externref"
	}

	return fmt.Sprintf("valtype(0x%02x)", byte(t))
}

func (t BlockType) Encode(b []byte) []byte {
	switch t.kind {
	case blockValue:
		return append(b, byte(t.val))
	case blockFunc:
		return low.Int33(b, int64(t.idx))
	default:
		return append(b, blockEmptyByte)
	}
}

func (t FuncType) Encode(b []byte) []byte {
	b = append(b, FuncTypeHeader)
	b = encodeValTypes(b, t.Params)
	b = encodeValTypes(b, t.Results)

	return b
}

func (t GlobalType) Encode(b []byte) []byte {
	b = append(b, byte(t.ValType))
	return low.Bool(b, t.Mutable)
}

func (t TableType) Encode(b []byte) []byte {
	b = append(b, byte(t.ElementType))

	if t.Maximum == nil {
		b = append(b, 0)
		return low.Uint32(b, t.Minimum)
	}

	b = append(b, limitsHasMax)
	b = low.Uint32(b, t.Minimum)
	b = low.Uint32(b, *t.Maximum)

	return b
}

func (t MemoryType) Encode(b []byte) []byte {
	var flags byte

	if t.Maximum != nil {
		flags |= limitsHasMax
	}

	if t.Shared {
		flags |= limitsShared
	}

	if t.Memory64 {
		flags |= limitsMemory64
	}

	b = append(b, flags)
	b = low.Uint64(b, t.Minimum)

	if t.Maximum != nil {
		b = low.Uint64(b, *t.Maximum)
	}

	return b
}

func (t TagType) Encode(b []byte) []byte {
	b = append(b, byte(t.Kind))
	return low.Uint32(b, t.FuncType)
}

func (f EntityFunc) EncodeEntity(b []byte) []byte {
	b = append(b, byte(ExportFunc))
	return low.Uint32(b, uint32(f))
}

func (t TableType) EncodeEntity(b []byte) []byte {
	return t.Encode(append(b, byte(ExportTable)))
}

func (t MemoryType) EncodeEntity(b []byte) []byte {
	return t.Encode(append(b, byte(ExportMemory)))
}

func (t GlobalType) EncodeEntity(b []byte) []byte {
	return t.Encode(append(b, byte(ExportGlobal)))
}

func (t TagType) EncodeEntity(b []byte) []byte {
	return t.Encode(append(b, byte(ExportTag)))
}

func (m MemArg) Encode(b []byte) []byte {
	if m.Memory == 0 {
		b = low.Uint32(b, m.Align)
		return low.Uint64(b, m.Offset)
	}

	b = low.Uint32(b, m.Align|memArgMultiMemory)
	b = low.Uint32(b, m.Memory)
	b = low.Uint64(b, m.Offset)

	return b
}

func encodeValTypes(b []byte, ts []ValType) []byte {
	b = low.Int(b, len(ts))

	for _, t := range ts {
		b = append(b, byte(t))
	}

	return b
}
