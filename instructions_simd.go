package wasmenc

type (
	// SIMDOp is a 0xfd prefixed vector instruction without immediates.
	SIMDOp uint32

	V128Load        MemArg
	V128Load8x8S    MemArg
	V128Load8x8U    MemArg
	V128Load16x4S   MemArg
	V128Load16x4U   MemArg
	V128Load32x2S   MemArg
	V128Load32x2U   MemArg
	V128Load8Splat  MemArg
	V128Load16Splat MemArg
	V128Load32Splat MemArg
	V128Load64Splat MemArg
	V128Store       MemArg
	V128Load32Zero  MemArg
	V128Load64Zero  MemArg

	// V128Const is a 128-bit constant in little-endian byte order.
	V128Const [16]byte

	// I8x16Shuffle holds 16 lane indices.
	I8x16Shuffle [16]byte

	I8x16ExtractLaneS uint8
	I8x16ExtractLaneU uint8
	I8x16ReplaceLane  uint8
	I16x8ExtractLaneS uint8
	I16x8ExtractLaneU uint8
	I16x8ReplaceLane  uint8
	I32x4ExtractLane  uint8
	I32x4ReplaceLane  uint8
	I64x2ExtractLane  uint8
	I64x2ReplaceLane  uint8
	F32x4ExtractLane  uint8
	F32x4ReplaceLane  uint8
	F64x2ExtractLane  uint8
	F64x2ReplaceLane  uint8

	// MemLane is the immediate of load and store lane instructions.
	MemLane struct {
		MemArg MemArg
		Lane   uint8
	}

	V128Load8Lane   MemLane
	V128Load16Lane  MemLane
	V128Load32Lane  MemLane
	V128Load64Lane  MemLane
	V128Store8Lane  MemLane
	V128Store16Lane MemLane
	V128Store32Lane MemLane
	V128Store64Lane MemLane
)

const (
	simdV128Load        = 0x00
	simdV128Load8x8S    = 0x01
	simdV128Load8x8U    = 0x02
	simdV128Load16x4S   = 0x03
	simdV128Load16x4U   = 0x04
	simdV128Load32x2S   = 0x05
	simdV128Load32x2U   = 0x06
	simdV128Load8Splat  = 0x07
	simdV128Load16Splat = 0x08
	simdV128Load32Splat = 0x09
	simdV128Load64Splat = 0x0a
	simdV128Store       = 0x0b
	simdV128Const       = 0x0c
	simdI8x16Shuffle    = 0x0d

	simdI8x16ExtractLaneS = 0x15
	simdI8x16ExtractLaneU = 0x16
	simdI8x16ReplaceLane  = 0x17
	simdI16x8ExtractLaneS = 0x18
	simdI16x8ExtractLaneU = 0x19
	simdI16x8ReplaceLane  = 0x1a
	simdI32x4ExtractLane  = 0x1b
	simdI32x4ReplaceLane  = 0x1c
	simdI64x2ExtractLane  = 0x1d
	simdI64x2ReplaceLane  = 0x1e
	simdF32x4ExtractLane  = 0x1f
	simdF32x4ReplaceLane  = 0x20
	simdF64x2ExtractLane  = 0x21
	simdF64x2ReplaceLane  = 0x22

	simdV128Load8Lane   = 0x54
	simdV128Load16Lane  = 0x55
	simdV128Load32Lane  = 0x56
	simdV128Load64Lane  = 0x57
	simdV128Store8Lane  = 0x58
	simdV128Store16Lane = 0x59
	simdV128Store32Lane = 0x5a
	simdV128Store64Lane = 0x5b
	simdV128Load32Zero  = 0x5c
	simdV128Load64Zero  = 0x5d
)

// Vector instructions without immediates.
const (
	I8x16Swizzle SIMDOp = 0x0e
	I8x16Splat   SIMDOp = 0x0f
	I16x8Splat   SIMDOp = 0x10
	I32x4Splat   SIMDOp = 0x11
	I64x2Splat   SIMDOp = 0x12
	F32x4Splat   SIMDOp = 0x13
	F64x2Splat   SIMDOp = 0x14

	I8x16Eq  SIMDOp = 0x23
	I8x16Ne  SIMDOp = 0x24
	I8x16LtS SIMDOp = 0x25
	I8x16LtU SIMDOp = 0x26
	I8x16GtS SIMDOp = 0x27
	I8x16GtU SIMDOp = 0x28
	I8x16LeS SIMDOp = 0x29
	I8x16LeU SIMDOp = 0x2a
	I8x16GeS SIMDOp = 0x2b
	I8x16GeU SIMDOp = 0x2c

	I16x8Eq  SIMDOp = 0x2d
	I16x8Ne  SIMDOp = 0x2e
	I16x8LtS SIMDOp = 0x2f
	I16x8LtU SIMDOp = 0x30
	I16x8GtS SIMDOp = 0x31
	I16x8GtU SIMDOp = 0x32
	I16x8LeS SIMDOp = 0x33
	I16x8LeU SIMDOp = 0x34
	I16x8GeS SIMDOp = 0x35
	I16x8GeU SIMDOp = 0x36

	I32x4Eq  SIMDOp = 0x37
	I32x4Ne  SIMDOp = 0x38
	I32x4LtS SIMDOp = 0x39
	I32x4LtU SIMDOp = 0x3a
	I32x4GtS SIMDOp = 0x3b
	I32x4GtU SIMDOp = 0x3c
	I32x4LeS SIMDOp = 0x3d
	I32x4LeU SIMDOp = 0x3e
	I32x4GeS SIMDOp = 0x3f
	I32x4GeU SIMDOp = 0x40

	F32x4Eq SIMDOp = 0x41
	F32x4Ne SIMDOp = 0x42
	F32x4Lt SIMDOp = 0x43
	F32x4Gt SIMDOp = 0x44
	F32x4Le SIMDOp = 0x45
	F32x4Ge SIMDOp = 0x46

	F64x2Eq SIMDOp = 0x47
	F64x2Ne SIMDOp = 0x48
	F64x2Lt SIMDOp = 0x49
	F64x2Gt SIMDOp = 0x4a
	F64x2Le SIMDOp = 0x4b
	F64x2Ge SIMDOp = 0x4c

	V128Not       SIMDOp = 0x4d
	V128And       SIMDOp = 0x4e
	V128AndNot    SIMDOp = 0x4f
	V128Or        SIMDOp = 0x50
	V128Xor       SIMDOp = 0x51
	V128Bitselect SIMDOp = 0x52
	V128AnyTrue   SIMDOp = 0x53

	F32x4DemoteF64x2Zero SIMDOp = 0x5e
	F64x2PromoteLowF32x4 SIMDOp = 0x5f

	I8x16Abs          SIMDOp = 0x60
	I8x16Neg          SIMDOp = 0x61
	I8x16Popcnt       SIMDOp = 0x62
	I8x16AllTrue      SIMDOp = 0x63
	I8x16Bitmask      SIMDOp = 0x64
	I8x16NarrowI16x8S SIMDOp = 0x65
	I8x16NarrowI16x8U SIMDOp = 0x66
	F32x4Ceil         SIMDOp = 0x67
	F32x4Floor        SIMDOp = 0x68
	F32x4Trunc        SIMDOp = 0x69
	F32x4Nearest      SIMDOp = 0x6a
	I8x16Shl          SIMDOp = 0x6b
	I8x16ShrS         SIMDOp = 0x6c
	I8x16ShrU         SIMDOp = 0x6d
	I8x16Add          SIMDOp = 0x6e
	I8x16AddSatS      SIMDOp = 0x6f
	I8x16AddSatU      SIMDOp = 0x70
	I8x16Sub          SIMDOp = 0x71
	I8x16SubSatS      SIMDOp = 0x72
	I8x16SubSatU      SIMDOp = 0x73
	F64x2Ceil         SIMDOp = 0x74
	F64x2Floor        SIMDOp = 0x75
	I8x16MinS         SIMDOp = 0x76
	I8x16MinU         SIMDOp = 0x77
	I8x16MaxS         SIMDOp = 0x78
	I8x16MaxU         SIMDOp = 0x79
	F64x2Trunc        SIMDOp = 0x7a
	I8x16AvgrU        SIMDOp = 0x7b

	I16x8ExtAddPairwiseI8x16S SIMDOp = 0x7c
	I16x8ExtAddPairwiseI8x16U SIMDOp = 0x7d
	I32x4ExtAddPairwiseI16x8S SIMDOp = 0x7e
	I32x4ExtAddPairwiseI16x8U SIMDOp = 0x7f

	I16x8Abs              SIMDOp = 0x80
	I16x8Neg              SIMDOp = 0x81
	I16x8Q15MulrSatS      SIMDOp = 0x82
	I16x8AllTrue          SIMDOp = 0x83
	I16x8Bitmask          SIMDOp = 0x84
	I16x8NarrowI32x4S     SIMDOp = 0x85
	I16x8NarrowI32x4U     SIMDOp = 0x86
	I16x8ExtendLowI8x16S  SIMDOp = 0x87
	I16x8ExtendHighI8x16S SIMDOp = 0x88
	I16x8ExtendLowI8x16U  SIMDOp = 0x89
	I16x8ExtendHighI8x16U SIMDOp = 0x8a
	I16x8Shl              SIMDOp = 0x8b
	I16x8ShrS             SIMDOp = 0x8c
	I16x8ShrU             SIMDOp = 0x8d
	I16x8Add              SIMDOp = 0x8e
	I16x8AddSatS          SIMDOp = 0x8f
	I16x8AddSatU          SIMDOp = 0x90
	I16x8Sub              SIMDOp = 0x91
	I16x8SubSatS          SIMDOp = 0x92
	I16x8SubSatU          SIMDOp = 0x93
	F64x2Nearest          SIMDOp = 0x94
	I16x8Mul              SIMDOp = 0x95
	I16x8MinS             SIMDOp = 0x96
	I16x8MinU             SIMDOp = 0x97
	I16x8MaxS             SIMDOp = 0x98
	I16x8MaxU             SIMDOp = 0x99
	I16x8AvgrU            SIMDOp = 0x9b
	I16x8ExtMulLowI8x16S  SIMDOp = 0x9c
	I16x8ExtMulHighI8x16S SIMDOp = 0x9d
	I16x8ExtMulLowI8x16U  SIMDOp = 0x9e
	I16x8ExtMulHighI8x16U SIMDOp = 0x9f

	I32x4Abs              SIMDOp = 0xa0
	I32x4Neg              SIMDOp = 0xa1
	I32x4AllTrue          SIMDOp = 0xa3
	I32x4Bitmask          SIMDOp = 0xa4
	I32x4ExtendLowI16x8S  SIMDOp = 0xa7
	I32x4ExtendHighI16x8S SIMDOp = 0xa8
	I32x4ExtendLowI16x8U  SIMDOp = 0xa9
	I32x4ExtendHighI16x8U SIMDOp = 0xaa
	I32x4Shl              SIMDOp = 0xab
	I32x4ShrS             SIMDOp = 0xac
	I32x4ShrU             SIMDOp = 0xad
	I32x4Add              SIMDOp = 0xae
	I32x4Sub              SIMDOp = 0xb1
	I32x4Mul              SIMDOp = 0xb5
	I32x4MinS             SIMDOp = 0xb6
	I32x4MinU             SIMDOp = 0xb7
	I32x4MaxS             SIMDOp = 0xb8
	I32x4MaxU             SIMDOp = 0xb9
	I32x4DotI16x8S        SIMDOp = 0xba
	I32x4ExtMulLowI16x8S  SIMDOp = 0xbc
	I32x4ExtMulHighI16x8S SIMDOp = 0xbd
	I32x4ExtMulLowI16x8U  SIMDOp = 0xbe
	I32x4ExtMulHighI16x8U SIMDOp = 0xbf

	I64x2Abs              SIMDOp = 0xc0
	I64x2Neg              SIMDOp = 0xc1
	I64x2AllTrue          SIMDOp = 0xc3
	I64x2Bitmask          SIMDOp = 0xc4
	I64x2ExtendLowI32x4S  SIMDOp = 0xc7
	I64x2ExtendHighI32x4S SIMDOp = 0xc8
	I64x2ExtendLowI32x4U  SIMDOp = 0xc9
	I64x2ExtendHighI32x4U SIMDOp = 0xca
	I64x2Shl              SIMDOp = 0xcb
	I64x2ShrS             SIMDOp = 0xcc
	I64x2ShrU             SIMDOp = 0xcd
	I64x2Add              SIMDOp = 0xce
	I64x2Sub              SIMDOp = 0xd1
	I64x2Mul              SIMDOp = 0xd5
	I64x2Eq               SIMDOp = 0xd6
	I64x2Ne               SIMDOp = 0xd7
	I64x2LtS              SIMDOp = 0xd8
	I64x2GtS              SIMDOp = 0xd9
	I64x2LeS              SIMDOp = 0xda
	I64x2GeS              SIMDOp = 0xdb
	I64x2ExtMulLowI32x4S  SIMDOp = 0xdc
	I64x2ExtMulHighI32x4S SIMDOp = 0xdd
	I64x2ExtMulLowI32x4U  SIMDOp = 0xde
	I64x2ExtMulHighI32x4U SIMDOp = 0xdf

	F32x4Abs  SIMDOp = 0xe0
	F32x4Neg  SIMDOp = 0xe1
	F32x4Sqrt SIMDOp = 0xe3
	F32x4Add  SIMDOp = 0xe4
	F32x4Sub  SIMDOp = 0xe5
	F32x4Mul  SIMDOp = 0xe6
	F32x4Div  SIMDOp = 0xe7
	F32x4Min  SIMDOp = 0xe8
	F32x4Max  SIMDOp = 0xe9
	F32x4PMin SIMDOp = 0xea
	F32x4PMax SIMDOp = 0xeb

	F64x2Abs  SIMDOp = 0xec
	F64x2Neg  SIMDOp = 0xed
	F64x2Sqrt SIMDOp = 0xef
	F64x2Add  SIMDOp = 0xf0
	F64x2Sub  SIMDOp = 0xf1
	F64x2Mul  SIMDOp = 0xf2
	F64x2Div  SIMDOp = 0xf3
	F64x2Min  SIMDOp = 0xf4
	F64x2Max  SIMDOp = 0xf5
	F64x2PMin SIMDOp = 0xf6
	F64x2PMax SIMDOp = 0xf7

	I32x4TruncSatF32x4S     SIMDOp = 0xf8
	I32x4TruncSatF32x4U     SIMDOp = 0xf9
	F32x4ConvertI32x4S      SIMDOp = 0xfa
	F32x4ConvertI32x4U      SIMDOp = 0xfb
	I32x4TruncSatF64x2SZero SIMDOp = 0xfc
	I32x4TruncSatF64x2UZero SIMDOp = 0xfd
	F64x2ConvertLowI32x4S   SIMDOp = 0xfe
	F64x2ConvertLowI32x4U   SIMDOp = 0xff
)

func (op SIMDOp) Encode(b []byte) []byte { return prefixed(b, PrefixSIMD, uint32(op)) }

func (x V128Load) Encode(b []byte) []byte        { return simdMem(b, simdV128Load, MemArg(x)) }
func (x V128Load8x8S) Encode(b []byte) []byte    { return simdMem(b, simdV128Load8x8S, MemArg(x)) }
func (x V128Load8x8U) Encode(b []byte) []byte    { return simdMem(b, simdV128Load8x8U, MemArg(x)) }
func (x V128Load16x4S) Encode(b []byte) []byte   { return simdMem(b, simdV128Load16x4S, MemArg(x)) }
func (x V128Load16x4U) Encode(b []byte) []byte   { return simdMem(b, simdV128Load16x4U, MemArg(x)) }
func (x V128Load32x2S) Encode(b []byte) []byte   { return simdMem(b, simdV128Load32x2S, MemArg(x)) }
func (x V128Load32x2U) Encode(b []byte) []byte   { return simdMem(b, simdV128Load32x2U, MemArg(x)) }
func (x V128Load8Splat) Encode(b []byte) []byte  { return simdMem(b, simdV128Load8Splat, MemArg(x)) }
func (x V128Load16Splat) Encode(b []byte) []byte { return simdMem(b, simdV128Load16Splat, MemArg(x)) }
func (x V128Load32Splat) Encode(b []byte) []byte { return simdMem(b, simdV128Load32Splat, MemArg(x)) }
func (x V128Load64Splat) Encode(b []byte) []byte { return simdMem(b, simdV128Load64Splat, MemArg(x)) }
func (x V128Store) Encode(b []byte) []byte       { return simdMem(b, simdV128Store, MemArg(x)) }
func (x V128Load32Zero) Encode(b []byte) []byte  { return simdMem(b, simdV128Load32Zero, MemArg(x)) }
func (x V128Load64Zero) Encode(b []byte) []byte  { return simdMem(b, simdV128Load64Zero, MemArg(x)) }

func (x V128Const) Encode(b []byte) []byte {
	return append(prefixed(b, PrefixSIMD, simdV128Const), x[:]...)
}

func (x I8x16Shuffle) Encode(b []byte) []byte {
	return append(prefixed(b, PrefixSIMD, simdI8x16Shuffle), x[:]...)
}

func (x I8x16ExtractLaneS) Encode(b []byte) []byte { return simdLane(b, simdI8x16ExtractLaneS, uint8(x)) }
func (x I8x16ExtractLaneU) Encode(b []byte) []byte { return simdLane(b, simdI8x16ExtractLaneU, uint8(x)) }
func (x I8x16ReplaceLane) Encode(b []byte) []byte  { return simdLane(b, simdI8x16ReplaceLane, uint8(x)) }
func (x I16x8ExtractLaneS) Encode(b []byte) []byte { return simdLane(b, simdI16x8ExtractLaneS, uint8(x)) }
func (x I16x8ExtractLaneU) Encode(b []byte) []byte { return simdLane(b, simdI16x8ExtractLaneU, uint8(x)) }
func (x I16x8ReplaceLane) Encode(b []byte) []byte  { return simdLane(b, simdI16x8ReplaceLane, uint8(x)) }
func (x I32x4ExtractLane) Encode(b []byte) []byte  { return simdLane(b, simdI32x4ExtractLane, uint8(x)) }
func (x I32x4ReplaceLane) Encode(b []byte) []byte  { return simdLane(b, simdI32x4ReplaceLane, uint8(x)) }
func (x I64x2ExtractLane) Encode(b []byte) []byte  { return simdLane(b, simdI64x2ExtractLane, uint8(x)) }
func (x I64x2ReplaceLane) Encode(b []byte) []byte  { return simdLane(b, simdI64x2ReplaceLane, uint8(x)) }
func (x F32x4ExtractLane) Encode(b []byte) []byte  { return simdLane(b, simdF32x4ExtractLane, uint8(x)) }
func (x F32x4ReplaceLane) Encode(b []byte) []byte  { return simdLane(b, simdF32x4ReplaceLane, uint8(x)) }
func (x F64x2ExtractLane) Encode(b []byte) []byte  { return simdLane(b, simdF64x2ExtractLane, uint8(x)) }
func (x F64x2ReplaceLane) Encode(b []byte) []byte  { return simdLane(b, simdF64x2ReplaceLane, uint8(x)) }

func (x V128Load8Lane) Encode(b []byte) []byte   { return MemLane(x).encode(b, simdV128Load8Lane) }
func (x V128Load16Lane) Encode(b []byte) []byte  { return MemLane(x).encode(b, simdV128Load16Lane) }
func (x V128Load32Lane) Encode(b []byte) []byte  { return MemLane(x).encode(b, simdV128Load32Lane) }
func (x V128Load64Lane) Encode(b []byte) []byte  { return MemLane(x).encode(b, simdV128Load64Lane) }
func (x V128Store8Lane) Encode(b []byte) []byte  { return MemLane(x).encode(b, simdV128Store8Lane) }
func (x V128Store16Lane) Encode(b []byte) []byte { return MemLane(x).encode(b, simdV128Store16Lane) }
func (x V128Store32Lane) Encode(b []byte) []byte { return MemLane(x).encode(b, simdV128Store32Lane) }
func (x V128Store64Lane) Encode(b []byte) []byte { return MemLane(x).encode(b, simdV128Store64Lane) }

func (x MemLane) encode(b []byte, sub uint32) []byte {
	b = simdMem(b, sub, x.MemArg)
	return append(b, x.Lane)
}

func simdMem(b []byte, sub uint32, m MemArg) []byte {
	return m.Encode(prefixed(b, PrefixSIMD, sub))
}

func simdLane(b []byte, sub uint32, lane uint8) []byte {
	return append(prefixed(b, PrefixSIMD, sub), lane)
}
