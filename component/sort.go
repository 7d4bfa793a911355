package component

import "nikand.dev/go/wasmenc"

type (
	// Sort is the kind of an item in a component index space.
	// Core sorts are converted with CoreSort.Sort.
	Sort uint16

	// CoreSort is the kind of an item in a core index space.
	CoreSort byte

	vector struct {
		bytes []byte
		n     uint32
	}
)

const coreSort Sort = 0x100

const (
	SortFunc      Sort = 0x01
	SortValue     Sort = 0x02
	SortType      Sort = 0x03
	SortComponent Sort = 0x04
	SortInstance  Sort = 0x05
)

const (
	CoreSortFunc     CoreSort = 0x00
	CoreSortTable    CoreSort = 0x01
	CoreSortMemory   CoreSort = 0x02
	CoreSortGlobal   CoreSort = 0x03
	CoreSortType     CoreSort = 0x10
	CoreSortModule   CoreSort = 0x11
	CoreSortInstance CoreSort = 0x12
)

var low wasmenc.LowEncoder

func (s CoreSort) Sort() Sort { return coreSort | Sort(s) }

func (s Sort) IsCore() bool { return s&coreSort != 0 }

func (s Sort) Encode(b []byte) []byte {
	if s.IsCore() {
		return append(b, 0x00, byte(s))
	}

	return append(b, byte(s))
}

func (s CoreSort) Encode(b []byte) []byte {
	return append(b, byte(s))
}

func (s Sort) String() string {
	if s.IsCore() {
		return "core " + CoreSort(s).String()
	}

	switch s {
	case SortFunc:
		return "func"
	case SortValue:
		return "value"
	case SortType:
		return "type"
	case SortComponent:
		return "component"
	case SortInstance:
		return "instance"
	}

	return "unknown"
}

func (s CoreSort) String() string {
	switch s {
	case CoreSortFunc:
		return "func"
	case CoreSortTable:
		return "table"
	case CoreSortMemory:
		return "memory"
	case CoreSortGlobal:
		return "global"
	case CoreSortType:
		return "type"
	case CoreSortModule:
		return "module"
	case CoreSortInstance:
		return "instance"
	}

	return "unknown"
}

func (v *vector) Len() uint32 { return v.n }

func (v *vector) IsEmpty() bool { return v.n == 0 }

func (v *vector) raw(n uint32, data []byte) {
	v.bytes = append(v.bytes, data...)
	v.n += n
}

func (v *vector) encode(b []byte, id SectionID) []byte {
	b = append(b, byte(id))
	b = low.Size(b, wasmenc.Uint32Len(v.n)+len(v.bytes))
	b = low.Uint32(b, v.n)

	return append(b, v.bytes...)
}

// encodeVec writes the count and the entries without a section frame.
func (v *vector) encodeVec(b []byte) []byte {
	b = low.Uint32(b, v.n)
	return append(b, v.bytes...)
}

// payload wraps a non-vector payload into a section frame.
func payload(b []byte, id SectionID, data []byte) []byte {
	b = append(b, byte(id))
	b = low.Size(b, len(data))

	return append(b, data...)
}
