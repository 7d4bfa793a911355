package wasmenc

type (
	// MiscOp is a 0xfc prefixed instruction without immediates.
	MiscOp uint32

	MemoryInit struct {
		Data   uint32
		Memory uint32
	}

	DataDrop uint32

	MemoryCopy struct {
		Dst uint32
		Src uint32
	}

	// MemoryFill carries the memory index.
	MemoryFill uint32

	TableInit struct {
		Elem  uint32
		Table uint32
	}

	ElemDrop uint32

	TableCopy struct {
		Dst uint32
		Src uint32
	}

	TableGrow uint32
	TableSize uint32
	TableFill uint32
)

// Non-trapping float-to-int conversions.
const (
	I32TruncSatF32S MiscOp = 0x00
	I32TruncSatF32U MiscOp = 0x01
	I32TruncSatF64S MiscOp = 0x02
	I32TruncSatF64U MiscOp = 0x03
	I64TruncSatF32S MiscOp = 0x04
	I64TruncSatF32U MiscOp = 0x05
	I64TruncSatF64S MiscOp = 0x06
	I64TruncSatF64U MiscOp = 0x07
)

const (
	miscMemoryInit = 0x08
	miscDataDrop   = 0x09
	miscMemoryCopy = 0x0a
	miscMemoryFill = 0x0b
	miscTableInit  = 0x0c
	miscElemDrop   = 0x0d
	miscTableCopy  = 0x0e
	miscTableGrow  = 0x0f
	miscTableSize  = 0x10
	miscTableFill  = 0x11
)

func (op MiscOp) Encode(b []byte) []byte { return prefixed(b, PrefixMisc, uint32(op)) }

func (x MemoryInit) Encode(b []byte) []byte {
	b = prefixed(b, PrefixMisc, miscMemoryInit)
	b = low.Uint32(b, x.Data)
	return low.Uint32(b, x.Memory)
}

func (x DataDrop) Encode(b []byte) []byte {
	return low.Uint32(prefixed(b, PrefixMisc, miscDataDrop), uint32(x))
}

func (x MemoryCopy) Encode(b []byte) []byte {
	b = prefixed(b, PrefixMisc, miscMemoryCopy)
	b = low.Uint32(b, x.Dst)
	return low.Uint32(b, x.Src)
}

func (x MemoryFill) Encode(b []byte) []byte {
	return low.Uint32(prefixed(b, PrefixMisc, miscMemoryFill), uint32(x))
}

func (x TableInit) Encode(b []byte) []byte {
	b = prefixed(b, PrefixMisc, miscTableInit)
	b = low.Uint32(b, x.Elem)
	return low.Uint32(b, x.Table)
}

func (x ElemDrop) Encode(b []byte) []byte {
	return low.Uint32(prefixed(b, PrefixMisc, miscElemDrop), uint32(x))
}

func (x TableCopy) Encode(b []byte) []byte {
	b = prefixed(b, PrefixMisc, miscTableCopy)
	b = low.Uint32(b, x.Dst)
	return low.Uint32(b, x.Src)
}

func (x TableGrow) Encode(b []byte) []byte {
	return low.Uint32(prefixed(b, PrefixMisc, miscTableGrow), uint32(x))
}

func (x TableSize) Encode(b []byte) []byte {
	return low.Uint32(prefixed(b, PrefixMisc, miscTableSize), uint32(x))
}

func (x TableFill) Encode(b []byte) []byte {
	return low.Uint32(prefixed(b, PrefixMisc, miscTableFill), uint32(x))
}
