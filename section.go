package wasmenc

import "fmt"

type (
	// Section is an encodable module (or component) section.
	//
	// Encode appends the id byte, the u32 payload size and the payload.
	Section interface {
		ID() byte
		Encode(b []byte) []byte
	}

	SectionID byte

	// RawSection is a section with a pre-encoded payload.
	RawSection struct {
		SectionID byte
		Data      []byte
	}

	CustomSection struct {
		Name string
		Data []byte
	}

	// ErrSizeOverflow is the panic value of encoding a payload larger than u32 can describe.
	ErrSizeOverflow struct {
		Size int
	}

	// vector is the payload of a section made of counted entries.
	vector struct {
		bytes []byte
		n     uint32
	}
)

// Section ids.
const (
	IDCustom SectionID = iota
	IDType
	IDImport
	IDFunction
	IDTable
	IDMemory
	IDGlobal
	IDExport
	IDStart
	IDElement
	IDCode
	IDData
	IDDataCount
	IDTag

	sectionNext
)

func init() {
	if sectionNext != 14 {
		panic(sectionNext)
	}
}

// Len is the number of entries added.
func (v *vector) Len() uint32 { return v.n }

func (v *vector) IsEmpty() bool { return v.n == 0 }

func (v *vector) raw(n uint32, data []byte) {
	v.bytes = append(v.bytes, data...)
	v.n += n
}

func (v *vector) encode(b []byte, id SectionID) []byte {
	b = append(b, byte(id))
	b = low.Size(b, Uint32Len(v.n)+len(v.bytes))
	b = low.Uint32(b, v.n)

	return append(b, v.bytes...)
}

func (s RawSection) ID() byte { return s.SectionID }

func (s RawSection) Encode(b []byte) []byte {
	b = append(b, s.SectionID)
	b = low.Size(b, len(s.Data))

	return append(b, s.Data...)
}

func (s CustomSection) ID() byte { return byte(IDCustom) }

func (s CustomSection) Encode(b []byte) []byte {
	b = append(b, byte(IDCustom))
	b = low.Size(b, Uint32Len(uint32(len(s.Name)))+len(s.Name)+len(s.Data))
	b = low.Name(b, s.Name)

	return append(b, s.Data...)
}

func (id SectionID) String() string {
	if int(id) < len(sectionNames) {
		return sectionNames[id]
	}

	return fmt.Sprintf("section(%d)", byte(id))
}

var sectionNames = [...]string{
	IDCustom:    "custom",
	IDType:      "type",
	IDImport:    "import",
	IDFunction:  "function",
	IDTable:     "table",
	IDMemory:    "memory",
	IDGlobal:    "global",
	IDExport:    "export",
	IDStart:     "start",
	IDElement:   "element",
	IDCode:      "code",
	IDData:      "data",
	IDDataCount: "datacount",
	IDTag:       "tag",
}

func (e ErrSizeOverflow) Error() string {
	return fmt.Sprintf("payload size overflows u32: %d", e.Size)
}
