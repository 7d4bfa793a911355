package wasmenc

type (
	MemoryAtomicNotify     MemArg
	MemoryAtomicWait32     MemArg
	MemoryAtomicWait64     MemArg
	I32AtomicLoad          MemArg
	I64AtomicLoad          MemArg
	I32AtomicLoad8U        MemArg
	I32AtomicLoad16U       MemArg
	I64AtomicLoad8U        MemArg
	I64AtomicLoad16U       MemArg
	I64AtomicLoad32U       MemArg
	I32AtomicStore         MemArg
	I64AtomicStore         MemArg
	I32AtomicStore8        MemArg
	I32AtomicStore16       MemArg
	I64AtomicStore8        MemArg
	I64AtomicStore16       MemArg
	I64AtomicStore32       MemArg
	I32AtomicRmwAdd        MemArg
	I64AtomicRmwAdd        MemArg
	I32AtomicRmw8AddU      MemArg
	I32AtomicRmw16AddU     MemArg
	I64AtomicRmw8AddU      MemArg
	I64AtomicRmw16AddU     MemArg
	I64AtomicRmw32AddU     MemArg
	I32AtomicRmwSub        MemArg
	I64AtomicRmwSub        MemArg
	I32AtomicRmw8SubU      MemArg
	I32AtomicRmw16SubU     MemArg
	I64AtomicRmw8SubU      MemArg
	I64AtomicRmw16SubU     MemArg
	I64AtomicRmw32SubU     MemArg
	I32AtomicRmwAnd        MemArg
	I64AtomicRmwAnd        MemArg
	I32AtomicRmw8AndU      MemArg
	I32AtomicRmw16AndU     MemArg
	I64AtomicRmw8AndU      MemArg
	I64AtomicRmw16AndU     MemArg
	I64AtomicRmw32AndU     MemArg
	I32AtomicRmwOr         MemArg
	I64AtomicRmwOr         MemArg
	I32AtomicRmw8OrU       MemArg
	I32AtomicRmw16OrU      MemArg
	I64AtomicRmw8OrU       MemArg
	I64AtomicRmw16OrU      MemArg
	I64AtomicRmw32OrU      MemArg
	I32AtomicRmwXor        MemArg
	I64AtomicRmwXor        MemArg
	I32AtomicRmw8XorU      MemArg
	I32AtomicRmw16XorU     MemArg
	I64AtomicRmw8XorU      MemArg
	I64AtomicRmw16XorU     MemArg
	I64AtomicRmw32XorU     MemArg
	I32AtomicRmwXchg       MemArg
	I64AtomicRmwXchg       MemArg
	I32AtomicRmw8XchgU     MemArg
	I32AtomicRmw16XchgU    MemArg
	I64AtomicRmw8XchgU     MemArg
	I64AtomicRmw16XchgU    MemArg
	I64AtomicRmw32XchgU    MemArg
	I32AtomicRmwCmpxchg    MemArg
	I64AtomicRmwCmpxchg    MemArg
	I32AtomicRmw8CmpxchgU  MemArg
	I32AtomicRmw16CmpxchgU MemArg
	I64AtomicRmw8CmpxchgU  MemArg
	I64AtomicRmw16CmpxchgU MemArg
	I64AtomicRmw32CmpxchgU MemArg

	// AtomicFence is atomic.fence, its only immediate is a reserved zero byte.
	AtomicFence struct{}
)

const atomicFence = 0x03

func (AtomicFence) Encode(b []byte) []byte { return append(prefixed(b, PrefixAtomic, atomicFence), 0x00) }

func (x MemoryAtomicNotify) Encode(b []byte) []byte     { return atomic(b, 0x00, MemArg(x)) }
func (x MemoryAtomicWait32) Encode(b []byte) []byte     { return atomic(b, 0x01, MemArg(x)) }
func (x MemoryAtomicWait64) Encode(b []byte) []byte     { return atomic(b, 0x02, MemArg(x)) }
func (x I32AtomicLoad) Encode(b []byte) []byte          { return atomic(b, 0x10, MemArg(x)) }
func (x I64AtomicLoad) Encode(b []byte) []byte          { return atomic(b, 0x11, MemArg(x)) }
func (x I32AtomicLoad8U) Encode(b []byte) []byte        { return atomic(b, 0x12, MemArg(x)) }
func (x I32AtomicLoad16U) Encode(b []byte) []byte       { return atomic(b, 0x13, MemArg(x)) }
func (x I64AtomicLoad8U) Encode(b []byte) []byte        { return atomic(b, 0x14, MemArg(x)) }
func (x I64AtomicLoad16U) Encode(b []byte) []byte       { return atomic(b, 0x15, MemArg(x)) }
func (x I64AtomicLoad32U) Encode(b []byte) []byte       { return atomic(b, 0x16, MemArg(x)) }
func (x I32AtomicStore) Encode(b []byte) []byte         { return atomic(b, 0x17, MemArg(x)) }
func (x I64AtomicStore) Encode(b []byte) []byte         { return atomic(b, 0x18, MemArg(x)) }
func (x I32AtomicStore8) Encode(b []byte) []byte        { return atomic(b, 0x19, MemArg(x)) }
func (x I32AtomicStore16) Encode(b []byte) []byte       { return atomic(b, 0x1a, MemArg(x)) }
func (x I64AtomicStore8) Encode(b []byte) []byte        { return atomic(b, 0x1b, MemArg(x)) }
func (x I64AtomicStore16) Encode(b []byte) []byte       { return atomic(b, 0x1c, MemArg(x)) }
func (x I64AtomicStore32) Encode(b []byte) []byte       { return atomic(b, 0x1d, MemArg(x)) }
func (x I32AtomicRmwAdd) Encode(b []byte) []byte        { return atomic(b, 0x1e, MemArg(x)) }
func (x I64AtomicRmwAdd) Encode(b []byte) []byte        { return atomic(b, 0x1f, MemArg(x)) }
func (x I32AtomicRmw8AddU) Encode(b []byte) []byte      { return atomic(b, 0x20, MemArg(x)) }
func (x I32AtomicRmw16AddU) Encode(b []byte) []byte     { return atomic(b, 0x21, MemArg(x)) }
func (x I64AtomicRmw8AddU) Encode(b []byte) []byte      { return atomic(b, 0x22, MemArg(x)) }
func (x I64AtomicRmw16AddU) Encode(b []byte) []byte     { return atomic(b, 0x23, MemArg(x)) }
func (x I64AtomicRmw32AddU) Encode(b []byte) []byte     { return atomic(b, 0x24, MemArg(x)) }
func (x I32AtomicRmwSub) Encode(b []byte) []byte        { return atomic(b, 0x25, MemArg(x)) }
func (x I64AtomicRmwSub) Encode(b []byte) []byte        { return atomic(b, 0x26, MemArg(x)) }
func (x I32AtomicRmw8SubU) Encode(b []byte) []byte      { return atomic(b, 0x27, MemArg(x)) }
func (x I32AtomicRmw16SubU) Encode(b []byte) []byte     { return atomic(b, 0x28, MemArg(x)) }
func (x I64AtomicRmw8SubU) Encode(b []byte) []byte      { return atomic(b, 0x29, MemArg(x)) }
func (x I64AtomicRmw16SubU) Encode(b []byte) []byte     { return atomic(b, 0x2a, MemArg(x)) }
func (x I64AtomicRmw32SubU) Encode(b []byte) []byte     { return atomic(b, 0x2b, MemArg(x)) }
func (x I32AtomicRmwAnd) Encode(b []byte) []byte        { return atomic(b, 0x2c, MemArg(x)) }
func (x I64AtomicRmwAnd) Encode(b []byte) []byte        { return atomic(b, 0x2d, MemArg(x)) }
func (x I32AtomicRmw8AndU) Encode(b []byte) []byte      { return atomic(b, 0x2e, MemArg(x)) }
func (x I32AtomicRmw16AndU) Encode(b []byte) []byte     { return atomic(b, 0x2f, MemArg(x)) }
func (x I64AtomicRmw8AndU) Encode(b []byte) []byte      { return atomic(b, 0x30, MemArg(x)) }
func (x I64AtomicRmw16AndU) Encode(b []byte) []byte     { return atomic(b, 0x31, MemArg(x)) }
func (x I64AtomicRmw32AndU) Encode(b []byte) []byte     { return atomic(b, 0x32, MemArg(x)) }
func (x I32AtomicRmwOr) Encode(b []byte) []byte         { return atomic(b, 0x33, MemArg(x)) }
func (x I64AtomicRmwOr) Encode(b []byte) []byte         { return atomic(b, 0x34, MemArg(x)) }
func (x I32AtomicRmw8OrU) Encode(b []byte) []byte       { return atomic(b, 0x35, MemArg(x)) }
func (x I32AtomicRmw16OrU) Encode(b []byte) []byte      { return atomic(b, 0x36, MemArg(x)) }
func (x I64AtomicRmw8OrU) Encode(b []byte) []byte       { return atomic(b, 0x37, MemArg(x)) }
func (x I64AtomicRmw16OrU) Encode(b []byte) []byte      { return atomic(b, 0x38, MemArg(x)) }
func (x I64AtomicRmw32OrU) Encode(b []byte) []byte      { return atomic(b, 0x39, MemArg(x)) }
func (x I32AtomicRmwXor) Encode(b []byte) []byte        { return atomic(b, 0x3a, MemArg(x)) }
func (x I64AtomicRmwXor) Encode(b []byte) []byte        { return atomic(b, 0x3b, MemArg(x)) }
func (x I32AtomicRmw8XorU) Encode(b []byte) []byte      { return atomic(b, 0x3c, MemArg(x)) }
func (x I32AtomicRmw16XorU) Encode(b []byte) []byte     { return atomic(b, 0x3d, MemArg(x)) }
func (x I64AtomicRmw8XorU) Encode(b []byte) []byte      { return atomic(b, 0x3e, MemArg(x)) }
func (x I64AtomicRmw16XorU) Encode(b []byte) []byte     { return atomic(b, 0x3f, MemArg(x)) }
func (x I64AtomicRmw32XorU) Encode(b []byte) []byte     { return atomic(b, 0x40, MemArg(x)) }
func (x I32AtomicRmwXchg) Encode(b []byte) []byte       { return atomic(b, 0x41, MemArg(x)) }
func (x I64AtomicRmwXchg) Encode(b []byte) []byte       { return atomic(b, 0x42, MemArg(x)) }
func (x I32AtomicRmw8XchgU) Encode(b []byte) []byte     { return atomic(b, 0x43, MemArg(x)) }
func (x I32AtomicRmw16XchgU) Encode(b []byte) []byte    { return atomic(b, 0x44, MemArg(x)) }
func (x I64AtomicRmw8XchgU) Encode(b []byte) []byte     { return atomic(b, 0x45, MemArg(x)) }
func (x I64AtomicRmw16XchgU) Encode(b []byte) []byte    { return atomic(b, 0x46, MemArg(x)) }
func (x I64AtomicRmw32XchgU) Encode(b []byte) []byte    { return atomic(b, 0x47, MemArg(x)) }
func (x I32AtomicRmwCmpxchg) Encode(b []byte) []byte    { return atomic(b, 0x48, MemArg(x)) }
func (x I64AtomicRmwCmpxchg) Encode(b []byte) []byte    { return atomic(b, 0x49, MemArg(x)) }
func (x I32AtomicRmw8CmpxchgU) Encode(b []byte) []byte  { return atomic(b, 0x4a, MemArg(x)) }
func (x I32AtomicRmw16CmpxchgU) Encode(b []byte) []byte { return atomic(b, 0x4b, MemArg(x)) }
func (x I64AtomicRmw8CmpxchgU) Encode(b []byte) []byte  { return atomic(b, 0x4c, MemArg(x)) }
func (x I64AtomicRmw16CmpxchgU) Encode(b []byte) []byte { return atomic(b, 0x4d, MemArg(x)) }
func (x I64AtomicRmw32CmpxchgU) Encode(b []byte) []byte { return atomic(b, 0x4e, MemArg(x)) }

func atomic(b []byte, sub uint32, m MemArg) []byte {
	return m.Encode(prefixed(b, PrefixAtomic, sub))
}
