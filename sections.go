package wasmenc

type (
	// TypeSection holds function signatures. Zero value is an empty section.
	TypeSection struct {
		vector
	}

	ImportSection struct {
		vector
	}

	// FunctionSection declares type indices of functions defined in the code section.
	FunctionSection struct {
		vector
	}

	TableSection struct {
		vector
	}

	MemorySection struct {
		vector
	}

	GlobalSection struct {
		vector
	}

	ExportSection struct {
		vector
	}

	TagSection struct {
		vector
	}

	StartSection struct {
		Function uint32
	}

	// DataCountSection declares the number of data segments ahead of the code section.
	DataCountSection struct {
		Count uint32
	}
)

func (s *TypeSection) Function(params, results []ValType) *TypeSection {
	return s.FuncType(FuncType{Params: params, Results: results})
}

func (s *TypeSection) FuncType(t FuncType) *TypeSection {
	s.bytes = t.Encode(s.bytes)
	s.n++

	return s
}

// Raw appends n pre-encoded entries. The data is not checked against n.
func (s *TypeSection) Raw(n uint32, data []byte) *TypeSection {
	s.raw(n, data)
	return s
}

func (s *TypeSection) ID() byte               { return byte(IDType) }
func (s *TypeSection) Encode(b []byte) []byte { return s.encode(b, IDType) }

func (s *ImportSection) Import(module, field string, t EntityType) *ImportSection {
	s.bytes = low.Name(s.bytes, module)
	s.bytes = low.Name(s.bytes, field)
	s.bytes = t.EncodeEntity(s.bytes)
	s.n++

	return s
}

// Raw appends n pre-encoded entries. The data is not checked against n.
func (s *ImportSection) Raw(n uint32, data []byte) *ImportSection {
	s.raw(n, data)
	return s
}

func (s *ImportSection) ID() byte               { return byte(IDImport) }
func (s *ImportSection) Encode(b []byte) []byte { return s.encode(b, IDImport) }

func (s *FunctionSection) Function(typeIndex uint32) *FunctionSection {
	s.bytes = low.Uint32(s.bytes, typeIndex)
	s.n++

	return s
}

// Raw appends n pre-encoded entries. The data is not checked against n.
func (s *FunctionSection) Raw(n uint32, data []byte) *FunctionSection {
	s.raw(n, data)
	return s
}

func (s *FunctionSection) ID() byte               { return byte(IDFunction) }
func (s *FunctionSection) Encode(b []byte) []byte { return s.encode(b, IDFunction) }

func (s *TableSection) Table(t TableType) *TableSection {
	s.bytes = t.Encode(s.bytes)
	s.n++

	return s
}

// Raw appends n pre-encoded entries. The data is not checked against n.
func (s *TableSection) Raw(n uint32, data []byte) *TableSection {
	s.raw(n, data)
	return s
}

func (s *TableSection) ID() byte               { return byte(IDTable) }
func (s *TableSection) Encode(b []byte) []byte { return s.encode(b, IDTable) }

func (s *MemorySection) Memory(t MemoryType) *MemorySection {
	s.bytes = t.Encode(s.bytes)
	s.n++

	return s
}

// Raw appends n pre-encoded entries. The data is not checked against n.
func (s *MemorySection) Raw(n uint32, data []byte) *MemorySection {
	s.raw(n, data)
	return s
}

func (s *MemorySection) ID() byte               { return byte(IDMemory) }
func (s *MemorySection) Encode(b []byte) []byte { return s.encode(b, IDMemory) }

// Global defines a global initialized by init. The terminating End is appended.
func (s *GlobalSection) Global(t GlobalType, init Instruction) *GlobalSection {
	s.bytes = t.Encode(s.bytes)
	s.bytes = init.Encode(s.bytes)
	s.bytes = End.Encode(s.bytes)
	s.n++

	return s
}

// Raw appends n pre-encoded entries. The data is not checked against n.
func (s *GlobalSection) Raw(n uint32, data []byte) *GlobalSection {
	s.raw(n, data)
	return s
}

func (s *GlobalSection) ID() byte               { return byte(IDGlobal) }
func (s *GlobalSection) Encode(b []byte) []byte { return s.encode(b, IDGlobal) }

func (s *ExportSection) Export(name string, kind ExportKind, index uint32) *ExportSection {
	s.bytes = low.Name(s.bytes, name)
	s.bytes = append(s.bytes, byte(kind))
	s.bytes = low.Uint32(s.bytes, index)
	s.n++

	return s
}

// Raw appends n pre-encoded entries. The data is not checked against n.
func (s *ExportSection) Raw(n uint32, data []byte) *ExportSection {
	s.raw(n, data)
	return s
}

func (s *ExportSection) ID() byte               { return byte(IDExport) }
func (s *ExportSection) Encode(b []byte) []byte { return s.encode(b, IDExport) }

func (s *TagSection) Tag(t TagType) *TagSection {
	s.bytes = t.Encode(s.bytes)
	s.n++

	return s
}

// Raw appends n pre-encoded entries. The data is not checked against n.
func (s *TagSection) Raw(n uint32, data []byte) *TagSection {
	s.raw(n, data)
	return s
}

func (s *TagSection) ID() byte               { return byte(IDTag) }
func (s *TagSection) Encode(b []byte) []byte { return s.encode(b, IDTag) }

func (s StartSection) ID() byte { return byte(IDStart) }

func (s StartSection) Encode(b []byte) []byte {
	b = append(b, byte(IDStart))
	b = low.Size(b, Uint32Len(s.Function))

	return low.Uint32(b, s.Function)
}

func (s DataCountSection) ID() byte { return byte(IDDataCount) }

func (s DataCountSection) Encode(b []byte) []byte {
	b = append(b, byte(IDDataCount))
	b = low.Size(b, Uint32Len(s.Count))

	return low.Uint32(b, s.Count)
}
