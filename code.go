package wasmenc

type (
	CodeSection struct {
		vector
	}

	// Local is a run of Count locals of the same type.
	Local struct {
		Count uint32
		Type  ValType
	}

	// Function is a function body under construction.
	// The caller is responsible for the final End instruction.
	Function struct {
		bytes []byte
	}
)

func NewFunction(locals []Local) *Function {
	f := &Function{}

	f.bytes = low.Int(f.bytes, len(locals))

	for _, l := range locals {
		f.bytes = low.Uint32(f.bytes, l.Count)
		f.bytes = append(f.bytes, byte(l.Type))
	}

	return f
}

// NewFunctionWithLocals groups consecutive locals of the same type.
func NewFunctionWithLocals(types ...ValType) *Function {
	var locals []Local

	for _, t := range types {
		if n := len(locals); n != 0 && locals[n-1].Type == t {
			locals[n-1].Count++
			continue
		}

		locals = append(locals, Local{Count: 1, Type: t})
	}

	return NewFunction(locals)
}

func (f *Function) Instruction(i Instruction) *Function {
	f.bytes = i.Encode(f.bytes)
	return f
}

func (f *Function) Instructions(is ...Instruction) *Function {
	for _, i := range is {
		f.bytes = i.Encode(f.bytes)
	}

	return f
}

// Raw appends pre-encoded instruction bytes.
func (f *Function) Raw(code []byte) *Function {
	f.bytes = append(f.bytes, code...)
	return f
}

// ByteLen is the size of the body, locals included.
func (f *Function) ByteLen() int { return len(f.bytes) }

func (f *Function) Encode(b []byte) []byte {
	b = low.Size(b, len(f.bytes))
	return append(b, f.bytes...)
}

func (s *CodeSection) Function(f *Function) *CodeSection {
	s.bytes = f.Encode(s.bytes)
	s.n++

	return s
}

// RawBody adds a pre-encoded function body (locals and code) prefixing it with its size.
func (s *CodeSection) RawBody(body []byte) *CodeSection {
	s.bytes = low.Size(s.bytes, len(body))
	s.bytes = append(s.bytes, body...)
	s.n++

	return s
}

// Raw appends n pre-encoded entries. The data is not checked against n.
func (s *CodeSection) Raw(n uint32, data []byte) *CodeSection {
	s.raw(n, data)
	return s
}

func (s *CodeSection) ID() byte               { return byte(IDCode) }
func (s *CodeSection) Encode(b []byte) []byte { return s.encode(b, IDCode) }
