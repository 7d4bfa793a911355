package wasmenc

type (
	ElementSection struct {
		vector
	}

	ElementMode byte

	// ElementSegment is a table initializer.
	//
	// Either Functions or Expressions is used. Expressions win when not nil,
	// each one is a constant instruction terminated by an implicit End.
	ElementSegment struct {
		Mode ElementMode

		// Table and Offset are used by active segments only.
		Table  uint32
		Offset Instruction

		ElementType ValType

		Functions   []uint32
		Expressions []Instruction
	}
)

const (
	ElementActive ElementMode = iota
	ElementPassive
	ElementDeclared
)

const (
	elemFlagPassiveOrDeclared = 0x01
	elemFlagExplicitTable     = 0x02
	elemFlagDeclared          = 0x02
	elemFlagExpressions       = 0x04

	elemKindFuncRef = 0x00
)

// Active adds an active segment of function indices.
func (s *ElementSection) Active(table uint32, offset Instruction, t ValType, funcs ...uint32) *ElementSection {
	return s.Segment(ElementSegment{
		Mode:        ElementActive,
		Table:       table,
		Offset:      offset,
		ElementType: t,
		Functions:   funcs,
	})
}

func (s *ElementSection) Passive(t ValType, funcs ...uint32) *ElementSection {
	return s.Segment(ElementSegment{
		Mode:        ElementPassive,
		ElementType: t,
		Functions:   funcs,
	})
}

func (s *ElementSection) Declared(t ValType, funcs ...uint32) *ElementSection {
	return s.Segment(ElementSegment{
		Mode:        ElementDeclared,
		ElementType: t,
		Functions:   funcs,
	})
}

func (s *ElementSection) Segment(seg ElementSegment) *ElementSection {
	s.bytes = seg.Encode(s.bytes)
	s.n++

	return s
}

// Raw appends n pre-encoded entries. The data is not checked against n.
func (s *ElementSection) Raw(n uint32, data []byte) *ElementSection {
	s.raw(n, data)
	return s
}

func (s *ElementSection) ID() byte               { return byte(IDElement) }
func (s *ElementSection) Encode(b []byte) []byte { return s.encode(b, IDElement) }

// Encode appends the segment. The flags field is derived from the mode,
// the table and the element representation.
func (seg ElementSegment) Encode(b []byte) []byte {
	exprs := seg.Expressions != nil

	var flags byte

	if exprs {
		flags |= elemFlagExpressions
	}

	// The short active form implies table 0 and funcref elements.
	short := seg.Mode == ElementActive && seg.Table == 0 && seg.ElementType == FuncRef

	switch seg.Mode {
	case ElementPassive:
		flags |= elemFlagPassiveOrDeclared
	case ElementDeclared:
		flags |= elemFlagPassiveOrDeclared | elemFlagDeclared
	default:
		if !short {
			flags |= elemFlagExplicitTable
		}
	}

	b = low.Uint32(b, uint32(flags))

	if seg.Mode == ElementActive {
		if !short {
			b = low.Uint32(b, seg.Table)
		}

		b = seg.Offset.Encode(b)
		b = End.Encode(b)
	}

	if !short {
		if exprs {
			b = append(b, byte(seg.ElementType))
		} else {
			b = append(b, elemKindFuncRef)
		}
	}

	if exprs {
		b = low.Int(b, len(seg.Expressions))

		for _, e := range seg.Expressions {
			b = e.Encode(b)
			b = End.Encode(b)
		}

		return b
	}

	b = low.Int(b, len(seg.Functions))

	for _, f := range seg.Functions {
		b = low.Uint32(b, f)
	}

	return b
}
