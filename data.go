package wasmenc

type (
	DataSection struct {
		vector
	}

	// DataSegment is a memory initializer. Offset is nil for passive segments.
	DataSegment struct {
		Memory uint32
		Offset Instruction
		Data   []byte
	}
)

const (
	dataActive         = 0x00
	dataPassive        = 0x01
	dataActiveExplicit = 0x02
)

func (s *DataSection) Active(memory uint32, offset Instruction, data []byte) *DataSection {
	return s.Segment(DataSegment{Memory: memory, Offset: offset, Data: data})
}

func (s *DataSection) Passive(data []byte) *DataSection {
	return s.Segment(DataSegment{Data: data})
}

func (s *DataSection) Segment(seg DataSegment) *DataSection {
	s.bytes = seg.Encode(s.bytes)
	s.n++

	return s
}

// Raw appends n pre-encoded entries. The data is not checked against n.
func (s *DataSection) Raw(n uint32, data []byte) *DataSection {
	s.raw(n, data)
	return s
}

func (s *DataSection) ID() byte               { return byte(IDData) }
func (s *DataSection) Encode(b []byte) []byte { return s.encode(b, IDData) }

func (seg DataSegment) Encode(b []byte) []byte {
	switch {
	case seg.Offset == nil:
		b = append(b, dataPassive)
	case seg.Memory == 0:
		b = append(b, dataActive)
		b = seg.Offset.Encode(b)
		b = End.Encode(b)
	default:
		b = append(b, dataActiveExplicit)
		b = low.Uint32(b, seg.Memory)
		b = seg.Offset.Encode(b)
		b = End.Encode(b)
	}

	return low.Bytes(b, seg.Data)
}
