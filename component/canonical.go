package component

type (
	CanonicalFunctionSection struct {
		vector
	}

	// CanonicalOption is a canonical ABI option:
	// StringEncoding, OptionMemory, OptionRealloc or OptionPostReturn.
	CanonicalOption interface {
		encodeOption(b []byte) []byte
	}

	StringEncoding byte

	// OptionMemory is the core memory used for lifting and lowering.
	OptionMemory uint32

	// OptionRealloc is the core realloc function.
	OptionRealloc uint32

	// OptionPostReturn is the core function called after a lifted call returns.
	OptionPostReturn uint32
)

const (
	UTF8         StringEncoding = 0x00
	UTF16        StringEncoding = 0x01
	CompactUTF16 StringEncoding = 0x02
)

const (
	optionMemory     = 0x03
	optionRealloc    = 0x04
	optionPostReturn = 0x05
)

const (
	canonLift  = 0x00
	canonLower = 0x01
)

// Lift defines a component function of type typeIndex from a core function.
func (s *CanonicalFunctionSection) Lift(coreFunc, typeIndex uint32, opts ...CanonicalOption) *CanonicalFunctionSection {
	s.bytes = append(s.bytes, canonLift, 0x00)
	s.bytes = low.Uint32(s.bytes, coreFunc)
	s.bytes = encodeOptions(s.bytes, opts)
	s.bytes = low.Uint32(s.bytes, typeIndex)
	s.n++

	return s
}

// Lower defines a core function from a component function.
func (s *CanonicalFunctionSection) Lower(function uint32, opts ...CanonicalOption) *CanonicalFunctionSection {
	s.bytes = append(s.bytes, canonLower, 0x00)
	s.bytes = low.Uint32(s.bytes, function)
	s.bytes = encodeOptions(s.bytes, opts)
	s.n++

	return s
}

// Raw appends n pre-encoded canonical functions. The data is not checked against n.
func (s *CanonicalFunctionSection) Raw(n uint32, data []byte) *CanonicalFunctionSection {
	s.raw(n, data)
	return s
}

func (s *CanonicalFunctionSection) ID() byte { return byte(IDCanonicalFunction) }

func (s *CanonicalFunctionSection) Encode(b []byte) []byte {
	return s.encode(b, IDCanonicalFunction)
}

func (e StringEncoding) encodeOption(b []byte) []byte { return append(b, byte(e)) }

func (o OptionMemory) encodeOption(b []byte) []byte {
	b = append(b, optionMemory)
	return low.Uint32(b, uint32(o))
}

func (o OptionRealloc) encodeOption(b []byte) []byte {
	b = append(b, optionRealloc)
	return low.Uint32(b, uint32(o))
}

func (o OptionPostReturn) encodeOption(b []byte) []byte {
	b = append(b, optionPostReturn)
	return low.Uint32(b, uint32(o))
}

func encodeOptions(b []byte, opts []CanonicalOption) []byte {
	b = low.Int(b, len(opts))

	for _, o := range opts {
		b = o.encodeOption(b)
	}

	return b
}
