package wasmenc

type (
	// NameSection is the "name" custom section.
	// Subsections are written in the order they are added,
	// the binary format expects module, functions, locals.
	NameSection struct {
		bytes []byte
	}

	// NameMap maps indices to names. Indices must be added in increasing order.
	NameMap struct {
		vector
	}

	// IndirectNameMap maps indices to name maps, such as function to its local names.
	IndirectNameMap struct {
		vector
	}
)

const (
	nameSubModule   = 0x00
	nameSubFunction = 0x01
	nameSubLocal    = 0x02
)

const nameSectionName = "name"

func (s *NameSection) Module(name string) *NameSection {
	var sub []byte
	sub = low.Name(sub, name)

	return s.subsection(nameSubModule, sub)
}

func (s *NameSection) Functions(m *NameMap) *NameSection {
	return s.subsection(nameSubFunction, m.encodeMap(nil))
}

func (s *NameSection) Locals(m *IndirectNameMap) *NameSection {
	return s.subsection(nameSubLocal, m.encodeMap(nil))
}

// Raw adds a pre-encoded subsection.
func (s *NameSection) Raw(id byte, data []byte) *NameSection {
	return s.subsection(id, data)
}

func (s *NameSection) subsection(id byte, data []byte) *NameSection {
	s.bytes = append(s.bytes, id)
	s.bytes = low.Size(s.bytes, len(data))
	s.bytes = append(s.bytes, data...)

	return s
}

func (s *NameSection) ID() byte { return byte(IDCustom) }

func (s *NameSection) Encode(b []byte) []byte {
	return CustomSection{Name: nameSectionName, Data: s.bytes}.Encode(b)
}

func (m *NameMap) Append(index uint32, name string) *NameMap {
	m.bytes = low.Uint32(m.bytes, index)
	m.bytes = low.Name(m.bytes, name)
	m.n++

	return m
}

func (m *IndirectNameMap) Append(index uint32, names *NameMap) *IndirectNameMap {
	m.bytes = low.Uint32(m.bytes, index)
	m.bytes = names.encodeMap(m.bytes)
	m.n++

	return m
}

func (v *vector) encodeMap(b []byte) []byte {
	b = low.Uint32(b, v.n)
	return append(b, v.bytes...)
}
