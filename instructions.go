package wasmenc

import "fmt"

type (
	// Instruction is a single instruction with its immediates.
	// Encode appends the opcode bytes followed by the immediates.
	Instruction interface {
		Encode(b []byte) []byte
	}

	// Opcode is a single byte opcode.
	// Exported Opcode constants are instructions without immediates.
	Opcode byte
)

// Instructions without immediates.
const (
	Unreachable Opcode = 0x00
	Nop         Opcode = 0x01

	Else     Opcode = 0x05
	End      Opcode = 0x0b
	Return   Opcode = 0x0f
	CatchAll Opcode = 0x19

	Drop   Opcode = 0x1a
	Select Opcode = 0x1b

	I32Eqz Opcode = 0x45
	I32Eq  Opcode = 0x46
	I32Ne  Opcode = 0x47
	I32LtS Opcode = 0x48
	I32LtU Opcode = 0x49
	I32GtS Opcode = 0x4a
	I32GtU Opcode = 0x4b
	I32LeS Opcode = 0x4c
	I32LeU Opcode = 0x4d
	I32GeS Opcode = 0x4e
	I32GeU Opcode = 0x4f

	I64Eqz Opcode = 0x50
	I64Eq  Opcode = 0x51
	I64Ne  Opcode = 0x52
	I64LtS Opcode = 0x53
	I64LtU Opcode = 0x54
	I64GtS Opcode = 0x55
	I64GtU Opcode = 0x56
	I64LeS Opcode = 0x57
	I64LeU Opcode = 0x58
	I64GeS Opcode = 0x59
	I64GeU Opcode = 0x5a

	F32Eq Opcode = 0x5b
	F32Ne Opcode = 0x5c
	F32Lt Opcode = 0x5d
	F32Gt Opcode = 0x5e
	F32Le Opcode = 0x5f
	F32Ge Opcode = 0x60

	F64Eq Opcode = 0x61
	F64Ne Opcode = 0x62
	F64Lt Opcode = 0x63
	F64Gt Opcode = 0x64
	F64Le Opcode = 0x65
	F64Ge Opcode = 0x66

	I32Clz    Opcode = 0x67
	I32Ctz    Opcode = 0x68
	I32Popcnt Opcode = 0x69
	I32Add    Opcode = 0x6a
	I32Sub    Opcode = 0x6b
	I32Mul    Opcode = 0x6c
	I32DivS   Opcode = 0x6d
	I32DivU   Opcode = 0x6e
	I32RemS   Opcode = 0x6f
	I32RemU   Opcode = 0x70
	I32And    Opcode = 0x71
	I32Or     Opcode = 0x72
	I32Xor    Opcode = 0x73
	I32Shl    Opcode = 0x74
	I32ShrS   Opcode = 0x75
	I32ShrU   Opcode = 0x76
	I32Rotl   Opcode = 0x77
	I32Rotr   Opcode = 0x78

	I64Clz    Opcode = 0x79
	I64Ctz    Opcode = 0x7a
	I64Popcnt Opcode = 0x7b
	I64Add    Opcode = 0x7c
	I64Sub    Opcode = 0x7d
	I64Mul    Opcode = 0x7e
	I64DivS   Opcode = 0x7f
	I64DivU   Opcode = 0x80
	I64RemS   Opcode = 0x81
	I64RemU   Opcode = 0x82
	I64And    Opcode = 0x83
	I64Or     Opcode = 0x84
	I64Xor    Opcode = 0x85
	I64Shl    Opcode = 0x86
	I64ShrS   Opcode = 0x87
	I64ShrU   Opcode = 0x88
	I64Rotl   Opcode = 0x89
	I64Rotr   Opcode = 0x8a

	F32Abs      Opcode = 0x8b
	F32Neg      Opcode = 0x8c
	F32Ceil     Opcode = 0x8d
	F32Floor    Opcode = 0x8e
	F32Trunc    Opcode = 0x8f
	F32Nearest  Opcode = 0x90
	F32Sqrt     Opcode = 0x91
	F32Add      Opcode = 0x92
	F32Sub      Opcode = 0x93
	F32Mul      Opcode = 0x94
	F32Div      Opcode = 0x95
	F32Min      Opcode = 0x96
	F32Max      Opcode = 0x97
	F32Copysign Opcode = 0x98

	F64Abs      Opcode = 0x99
	F64Neg      Opcode = 0x9a
	F64Ceil     Opcode = 0x9b
	F64Floor    Opcode = 0x9c
	F64Trunc    Opcode = 0x9d
	F64Nearest  Opcode = 0x9e
	F64Sqrt     Opcode = 0x9f
	F64Add      Opcode = 0xa0
	F64Sub      Opcode = 0xa1
	F64Mul      Opcode = 0xa2
	F64Div      Opcode = 0xa3
	F64Min      Opcode = 0xa4
	F64Max      Opcode = 0xa5
	F64Copysign Opcode = 0xa6

	I32WrapI64        Opcode = 0xa7
	I32TruncF32S      Opcode = 0xa8
	I32TruncF32U      Opcode = 0xa9
	I32TruncF64S      Opcode = 0xaa
	I32TruncF64U      Opcode = 0xab
	I64ExtendI32S     Opcode = 0xac
	I64ExtendI32U     Opcode = 0xad
	I64TruncF32S      Opcode = 0xae
	I64TruncF32U      Opcode = 0xaf
	I64TruncF64S      Opcode = 0xb0
	I64TruncF64U      Opcode = 0xb1
	F32ConvertI32S    Opcode = 0xb2
	F32ConvertI32U    Opcode = 0xb3
	F32ConvertI64S    Opcode = 0xb4
	F32ConvertI64U    Opcode = 0xb5
	F32DemoteF64      Opcode = 0xb6
	F64ConvertI32S    Opcode = 0xb7
	F64ConvertI32U    Opcode = 0xb8
	F64ConvertI64S    Opcode = 0xb9
	F64ConvertI64U    Opcode = 0xba
	F64PromoteF32     Opcode = 0xbb
	I32ReinterpretF32 Opcode = 0xbc
	I64ReinterpretF64 Opcode = 0xbd
	F32ReinterpretI32 Opcode = 0xbe
	F64ReinterpretI64 Opcode = 0xbf

	I32Extend8S  Opcode = 0xc0
	I32Extend16S Opcode = 0xc1
	I64Extend8S  Opcode = 0xc2
	I64Extend16S Opcode = 0xc3
	I64Extend32S Opcode = 0xc4

	RefIsNull Opcode = 0xd1
)

// Opcodes of instructions with immediates.
const (
	opBlock    Opcode = 0x02
	opLoop     Opcode = 0x03
	opIf       Opcode = 0x04
	opTry      Opcode = 0x06
	opCatch    Opcode = 0x07
	opThrow    Opcode = 0x08
	opRethrow  Opcode = 0x09
	opBr       Opcode = 0x0c
	opBrIf     Opcode = 0x0d
	opBrTable  Opcode = 0x0e
	opDelegate Opcode = 0x18

	opCall               Opcode = 0x10
	opCallIndirect       Opcode = 0x11
	opReturnCall         Opcode = 0x12
	opReturnCallIndirect Opcode = 0x13

	opTypedSelect Opcode = 0x1c

	opLocalGet  Opcode = 0x20
	opLocalSet  Opcode = 0x21
	opLocalTee  Opcode = 0x22
	opGlobalGet Opcode = 0x23
	opGlobalSet Opcode = 0x24
	opTableGet  Opcode = 0x25
	opTableSet  Opcode = 0x26

	opI32Load    Opcode = 0x28
	opI64Load    Opcode = 0x29
	opF32Load    Opcode = 0x2a
	opF64Load    Opcode = 0x2b
	opI32Load8S  Opcode = 0x2c
	opI32Load8U  Opcode = 0x2d
	opI32Load16S Opcode = 0x2e
	opI32Load16U Opcode = 0x2f
	opI64Load8S  Opcode = 0x30
	opI64Load8U  Opcode = 0x31
	opI64Load16S Opcode = 0x32
	opI64Load16U Opcode = 0x33
	opI64Load32S Opcode = 0x34
	opI64Load32U Opcode = 0x35
	opI32Store   Opcode = 0x36
	opI64Store   Opcode = 0x37
	opF32Store   Opcode = 0x38
	opF64Store   Opcode = 0x39
	opI32Store8  Opcode = 0x3a
	opI32Store16 Opcode = 0x3b
	opI64Store8  Opcode = 0x3c
	opI64Store16 Opcode = 0x3d
	opI64Store32 Opcode = 0x3e

	opMemorySize Opcode = 0x3f
	opMemoryGrow Opcode = 0x40

	opI32Const Opcode = 0x41
	opI64Const Opcode = 0x42
	opF32Const Opcode = 0x43
	opF64Const Opcode = 0x44

	opRefNull Opcode = 0xd0
	opRefFunc Opcode = 0xd2

	PrefixMisc   Opcode = 0xfc
	PrefixSIMD   Opcode = 0xfd
	PrefixAtomic Opcode = 0xfe
)

type (
	Block BlockType
	Loop  BlockType
	If    BlockType
	Try   BlockType

	Catch    uint32
	Throw    uint32
	Rethrow  uint32
	Delegate uint32

	Br   uint32
	BrIf uint32

	BrTable struct {
		Labels  []uint32
		Default uint32
	}

	Call uint32

	CallIndirect struct {
		Type  uint32
		Table uint32
	}

	ReturnCall uint32

	ReturnCallIndirect struct {
		Type  uint32
		Table uint32
	}

	// TypedSelect is select with an explicit result type.
	TypedSelect ValType

	LocalGet  uint32
	LocalSet  uint32
	LocalTee  uint32
	GlobalGet uint32
	GlobalSet uint32
	TableGet  uint32
	TableSet  uint32

	I32Load    MemArg
	I64Load    MemArg
	F32Load    MemArg
	F64Load    MemArg
	I32Load8S  MemArg
	I32Load8U  MemArg
	I32Load16S MemArg
	I32Load16U MemArg
	I64Load8S  MemArg
	I64Load8U  MemArg
	I64Load16S MemArg
	I64Load16U MemArg
	I64Load32S MemArg
	I64Load32U MemArg
	I32Store   MemArg
	I64Store   MemArg
	F32Store   MemArg
	F64Store   MemArg
	I32Store8  MemArg
	I32Store16 MemArg
	I64Store8  MemArg
	I64Store16 MemArg
	I64Store32 MemArg

	// MemorySize and MemoryGrow carry the memory index.
	MemorySize uint32
	MemoryGrow uint32

	I32Const int32
	I64Const int64
	F32Const float32
	F64Const float64

	// RefNull carries the reference type of the null.
	RefNull ValType
	RefFunc uint32
)

func (op Opcode) Encode(b []byte) []byte { return append(b, byte(op)) }

func (x Block) Encode(b []byte) []byte { return BlockType(x).Encode(append(b, byte(opBlock))) }
func (x Loop) Encode(b []byte) []byte  { return BlockType(x).Encode(append(b, byte(opLoop))) }
func (x If) Encode(b []byte) []byte    { return BlockType(x).Encode(append(b, byte(opIf))) }
func (x Try) Encode(b []byte) []byte   { return BlockType(x).Encode(append(b, byte(opTry))) }

func (x Catch) Encode(b []byte) []byte    { return index(b, opCatch, uint32(x)) }
func (x Throw) Encode(b []byte) []byte    { return index(b, opThrow, uint32(x)) }
func (x Rethrow) Encode(b []byte) []byte  { return index(b, opRethrow, uint32(x)) }
func (x Delegate) Encode(b []byte) []byte { return index(b, opDelegate, uint32(x)) }

func (x Br) Encode(b []byte) []byte   { return index(b, opBr, uint32(x)) }
func (x BrIf) Encode(b []byte) []byte { return index(b, opBrIf, uint32(x)) }

func (x BrTable) Encode(b []byte) []byte {
	b = append(b, byte(opBrTable))
	b = low.Int(b, len(x.Labels))

	for _, l := range x.Labels {
		b = low.Uint32(b, l)
	}

	return low.Uint32(b, x.Default)
}

func (x Call) Encode(b []byte) []byte { return index(b, opCall, uint32(x)) }

func (x CallIndirect) Encode(b []byte) []byte {
	b = index(b, opCallIndirect, x.Type)
	return low.Uint32(b, x.Table)
}

func (x ReturnCall) Encode(b []byte) []byte { return index(b, opReturnCall, uint32(x)) }

func (x ReturnCallIndirect) Encode(b []byte) []byte {
	b = index(b, opReturnCallIndirect, x.Type)
	return low.Uint32(b, x.Table)
}

func (x TypedSelect) Encode(b []byte) []byte {
	return append(b, byte(opTypedSelect), 1, byte(x))
}

func (x LocalGet) Encode(b []byte) []byte  { return index(b, opLocalGet, uint32(x)) }
func (x LocalSet) Encode(b []byte) []byte  { return index(b, opLocalSet, uint32(x)) }
func (x LocalTee) Encode(b []byte) []byte  { return index(b, opLocalTee, uint32(x)) }
func (x GlobalGet) Encode(b []byte) []byte { return index(b, opGlobalGet, uint32(x)) }
func (x GlobalSet) Encode(b []byte) []byte { return index(b, opGlobalSet, uint32(x)) }
func (x TableGet) Encode(b []byte) []byte  { return index(b, opTableGet, uint32(x)) }
func (x TableSet) Encode(b []byte) []byte  { return index(b, opTableSet, uint32(x)) }

func (x I32Load) Encode(b []byte) []byte    { return MemArg(x).Encode(append(b, byte(opI32Load))) }
func (x I64Load) Encode(b []byte) []byte    { return MemArg(x).Encode(append(b, byte(opI64Load))) }
func (x F32Load) Encode(b []byte) []byte    { return MemArg(x).Encode(append(b, byte(opF32Load))) }
func (x F64Load) Encode(b []byte) []byte    { return MemArg(x).Encode(append(b, byte(opF64Load))) }
func (x I32Load8S) Encode(b []byte) []byte  { return MemArg(x).Encode(append(b, byte(opI32Load8S))) }
func (x I32Load8U) Encode(b []byte) []byte  { return MemArg(x).Encode(append(b, byte(opI32Load8U))) }
func (x I32Load16S) Encode(b []byte) []byte { return MemArg(x).Encode(append(b, byte(opI32Load16S))) }
func (x I32Load16U) Encode(b []byte) []byte { return MemArg(x).Encode(append(b, byte(opI32Load16U))) }
func (x I64Load8S) Encode(b []byte) []byte  { return MemArg(x).Encode(append(b, byte(opI64Load8S))) }
func (x I64Load8U) Encode(b []byte) []byte  { return MemArg(x).Encode(append(b, byte(opI64Load8U))) }
func (x I64Load16S) Encode(b []byte) []byte { return MemArg(x).Encode(append(b, byte(opI64Load16S))) }
func (x I64Load16U) Encode(b []byte) []byte { return MemArg(x).Encode(append(b, byte(opI64Load16U))) }
func (x I64Load32S) Encode(b []byte) []byte { return MemArg(x).Encode(append(b, byte(opI64Load32S))) }
func (x I64Load32U) Encode(b []byte) []byte { return MemArg(x).Encode(append(b, byte(opI64Load32U))) }
func (x I32Store) Encode(b []byte) []byte   { return MemArg(x).Encode(append(b, byte(opI32Store))) }
func (x I64Store) Encode(b []byte) []byte   { return MemArg(x).Encode(append(b, byte(opI64Store))) }
func (x F32Store) Encode(b []byte) []byte   { return MemArg(x).Encode(append(b, byte(opF32Store))) }
func (x F64Store) Encode(b []byte) []byte   { return MemArg(x).Encode(append(b, byte(opF64Store))) }
func (x I32Store8) Encode(b []byte) []byte  { return MemArg(x).Encode(append(b, byte(opI32Store8))) }
func (x I32Store16) Encode(b []byte) []byte { return MemArg(x).Encode(append(b, byte(opI32Store16))) }
func (x I64Store8) Encode(b []byte) []byte  { return MemArg(x).Encode(append(b, byte(opI64Store8))) }
func (x I64Store16) Encode(b []byte) []byte { return MemArg(x).Encode(append(b, byte(opI64Store16))) }
func (x I64Store32) Encode(b []byte) []byte { return MemArg(x).Encode(append(b, byte(opI64Store32))) }

func (x MemorySize) Encode(b []byte) []byte { return index(b, opMemorySize, uint32(x)) }
func (x MemoryGrow) Encode(b []byte) []byte { return index(b, opMemoryGrow, uint32(x)) }

func (x I32Const) Encode(b []byte) []byte { return low.Int32(append(b, byte(opI32Const)), int32(x)) }
func (x I64Const) Encode(b []byte) []byte { return low.Int64(append(b, byte(opI64Const)), int64(x)) }

func (x F32Const) Encode(b []byte) []byte {
	return low.Float32(append(b, byte(opF32Const)), float32(x))
}

func (x F64Const) Encode(b []byte) []byte {
	return low.Float64(append(b, byte(opF64Const)), float64(x))
}

func (x RefNull) Encode(b []byte) []byte { return append(b, byte(opRefNull), byte(x)) }
func (x RefFunc) Encode(b []byte) []byte { return index(b, opRefFunc, uint32(x)) }

func index(b []byte, op Opcode, idx uint32) []byte {
	b = append(b, byte(op))
	return low.Uint32(b, idx)
}

func prefixed(b []byte, prefix Opcode, sub uint32) []byte {
	b = append(b, byte(prefix))
	return low.Uint32(b, sub)
}

func (op Opcode) String() string {
	if n := opNames[op]; n != "" {
		return n
	}

	return fmt.Sprintf("%02x", int(op))
}

var opNames = [256]string{
	Unreachable: "unreachable",
	Nop:         "nop",

	opBlock:    "block",
	opLoop:     "loop",
	opIf:       "if",
	Else:       "else",
	opTry:      "try",
	opCatch:    "catch",
	opThrow:    "throw",
	opRethrow:  "rethrow",
	End:        "end",
	opBr:       "br",
	opBrIf:     "br_if",
	opBrTable:  "br_table",
	Return:     "return",
	opDelegate: "delegate",
	CatchAll:   "catch_all",

	opCall:               "call",
	opCallIndirect:       "call_indirect",
	opReturnCall:         "return_call",
	opReturnCallIndirect: "return_call_indirect",

	Drop:          "drop",
	Select:        "select",
	opTypedSelect: "select_t",

	opLocalGet:  "local.get",
	opLocalSet:  "local.set",
	opLocalTee:  "local.tee",
	opGlobalGet: "global.get",
	opGlobalSet: "global.set",
	opTableGet:  "table.get",
	opTableSet:  "table.set",

	opI32Load:    "i32.load",
	opI64Load:    "i64.load",
	opF32Load:    "f32.load",
	opF64Load:    "f64.load",
	opI32Load8S:  "i32.load8_s",
	opI32Load8U:  "i32.load8_u",
	opI32Load16S: "i32.load16_s",
	opI32Load16U: "i32.load16_u",
	opI64Load8S:  "i64.load8_s",
	opI64Load8U:  "i64.load8_u",
	opI64Load16S: "i64.load16_s",
	opI64Load16U: "i64.load16_u",
	opI64Load32S: "i64.load32_s",
	opI64Load32U: "i64.load32_u",
	opI32Store:   "i32.store",
	opI64Store:   "i64.store",
	opF32Store:   "f32.store",
	opF64Store:   "f64.store",
	opI32Store8:  "i32.store8",
	opI32Store16: "i32.store16",
	opI64Store8:  "i64.store8",
	opI64Store16: "i64.store16",
	opI64Store32: "i64.store32",

	opMemorySize: "memory.size",
	opMemoryGrow: "memory.grow",

	opI32Const: "i32.const",
	opI64Const: "i64.const",
	opF32Const: "f32.const",
	opF64Const: "f64.const",

	I32Eqz: "i32.eqz",
	I32Eq:  "i32.eq",
	I32Ne:  "i32.ne",
	I32LtS: "i32.lt_s",
	I32LtU: "i32.lt_u",
	I32GtS: "i32.gt_s",
	I32GtU: "i32.gt_u",
	I32LeS: "i32.le_s",
	I32LeU: "i32.le_u",
	I32GeS: "i32.ge_s",
	I32GeU: "i32.ge_u",

	I64Eqz: "i64.eqz",
	I64Eq:  "i64.eq",
	I64Ne:  "i64.ne",
	I64LtS: "i64.lt_s",
	I64LtU: "i64.lt_u",
	I64GtS: "i64.gt_s",
	I64GtU: "i64.gt_u",
	I64LeS: "i64.le_s",
	I64LeU: "i64.le_u",
	I64GeS: "i64.ge_s",
	I64GeU: "i64.ge_u",

	F32Eq: "f32.eq",
	F32Ne: "f32.ne",
	F32Lt: "f32.lt",
	F32Gt: "f32.gt",
	F32Le: "f32.le",
	F32Ge: "f32.ge",

	F64Eq: "f64.eq",
	F64Ne: "f64.ne",
	F64Lt: "f64.lt",
	F64Gt: "f64.gt",
	F64Le: "f64.le",
	F64Ge: "f64.ge",

	I32Clz:    "i32.clz",
	I32Ctz:    "i32.ctz",
	I32Popcnt: "i32.popcnt",
	I32Add:    "i32.add",
	I32Sub:    "i32.sub",
	I32Mul:    "i32.mul",
	I32DivS:   "i32.div_s",
	I32DivU:   "i32.div_u",
	I32RemS:   "i32.rem_s",
	I32RemU:   "i32.rem_u",
	I32And:    "i32.and",
	I32Or:     "i32.or",
	I32Xor:    "i32.xor",
	I32Shl:    "i32.shl",
	I32ShrS:   "i32.shr_s",
	I32ShrU:   "i32.shr_u",
	I32Rotl:   "i32.rotl",
	I32Rotr:   "i32.rotr",

	I64Clz:    "i64.clz",
	I64Ctz:    "i64.ctz",
	I64Popcnt: "i64.popcnt",
	I64Add:    "i64.add",
	I64Sub:    "i64.sub",
	I64Mul:    "i64.mul",
	I64DivS:   "i64.div_s",
	I64DivU:   "i64.div_u",
	I64RemS:   "i64.rem_s",
	I64RemU:   "i64.rem_u",
	I64And:    "i64.and",
	I64Or:     "i64.or",
	I64Xor:    "i64.xor",
	I64Shl:    "i64.shl",
	I64ShrS:   "i64.shr_s",
	I64ShrU:   "i64.shr_u",
	I64Rotl:   "i64.rotl",
	I64Rotr:   "i64.rotr",

	F32Abs:      "f32.abs",
	F32Neg:      "f32.neg",
	F32Ceil:     "f32.ceil",
	F32Floor:    "f32.floor",
	F32Trunc:    "f32.trunc",
	F32Nearest:  "f32.nearest",
	F32Sqrt:     "f32.sqrt",
	F32Add:      "f32.add",
	F32Sub:      "f32.sub",
	F32Mul:      "f32.mul",
	F32Div:      "f32.div",
	F32Min:      "f32.min",
	F32Max:      "f32.max",
	F32Copysign: "f32.copysign",

	F64Abs:      "f64.abs",
	F64Neg:      "f64.neg",
	F64Ceil:     "f64.ceil",
	F64Floor:    "f64.floor",
	F64Trunc:    "f64.trunc",
	F64Nearest:  "f64.nearest",
	F64Sqrt:     "f64.sqrt",
	F64Add:      "f64.add",
	F64Sub:      "f64.sub",
	F64Mul:      "f64.mul",
	F64Div:      "f64.div",
	F64Min:      "f64.min",
	F64Max:      "f64.max",
	F64Copysign: "f64.copysign",

	I32WrapI64:        "i32.wrap_i64",
	I32TruncF32S:      "i32.trunc_f32_s",
	I32TruncF32U:      "i32.trunc_f32_u",
	I32TruncF64S:      "i32.trunc_f64_s",
	I32TruncF64U:      "i32.trunc_f64_u",
	I64ExtendI32S:     "i64.extend_i32_s",
	I64ExtendI32U:     "i64.extend_i32_u",
	I64TruncF32S:      "i64.trunc_f32_s",
	I64TruncF32U:      "i64.trunc_f32_u",
	I64TruncF64S:      "i64.trunc_f64_s",
	I64TruncF64U:      "i64.trunc_f64_u",
	F32ConvertI32S:    "f32.convert_i32_s",
	F32ConvertI32U:    "f32.convert_i32_u",
	F32ConvertI64S:    "f32.convert_i64_s",
	F32ConvertI64U:    "f32.convert_i64_u",
	F32DemoteF64:      "f32.demote_f64",
	F64ConvertI32S:    "f64.convert_i32_s",
	F64ConvertI32U:    "f64.convert_i32_u",
	F64ConvertI64S:    "f64.convert_i64_s",
	F64ConvertI64U:    "f64.convert_i64_u",
	F64PromoteF32:     "f64.promote_f32",
	I32ReinterpretF32: "i32.reinterpret_f32",
	I64ReinterpretF64: "i64.reinterpret_f64",
	F32ReinterpretI32: "f32.reinterpret_i32",
	F64ReinterpretI64: "f64.reinterpret_i64",

	I32Extend8S:  "i32.extend8_s",
	I32Extend16S: "i32.extend16_s",
	I64Extend8S:  "i64.extend8_s",
	I64Extend16S: "i64.extend16_s",
	I64Extend32S: "i64.extend32_s",

	opRefNull: "ref.null",
	RefIsNull: "ref.is_null",
	opRefFunc: "ref.func",

	PrefixMisc:   "misc",
	PrefixSIMD:   "simd",
	PrefixAtomic: "atomic",
}
