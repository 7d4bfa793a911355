package component

type (
	// NestedComponentSection embeds a component into another one.
	NestedComponentSection struct {
		Component *Component
	}

	InstanceSection struct {
		vector
	}

	// InstantiationArg passes an item to a component import named Name.
	InstantiationArg struct {
		Name  string
		Sort  Sort
		Index uint32
	}

	Export struct {
		Name  string
		Sort  Sort
		Index uint32
	}

	AliasSection struct {
		vector
	}

	ImportSection struct {
		vector
	}

	ExportSection struct {
		vector
	}

	// StartSection calls a component function with value arguments.
	StartSection struct {
		Function uint32
		Args     []uint32
	}
)

const (
	instantiate = 0x00
	fromExports = 0x01
)

const (
	aliasExport     = 0x00
	aliasCoreExport = 0x01
	aliasOuter      = 0x02
)

func (s NestedComponentSection) ID() byte { return byte(IDComponent) }

func (s NestedComponentSection) Encode(b []byte) []byte {
	return payload(b, IDComponent, s.Component.Bytes())
}

func (s *InstanceSection) Instantiate(component uint32, args []InstantiationArg) *InstanceSection {
	s.bytes = append(s.bytes, instantiate)
	s.bytes = low.Uint32(s.bytes, component)
	s.bytes = low.Int(s.bytes, len(args))

	for _, a := range args {
		s.bytes = low.Name(s.bytes, a.Name)
		s.bytes = a.Sort.Encode(s.bytes)
		s.bytes = low.Uint32(s.bytes, a.Index)
	}

	s.n++

	return s
}

func (s *InstanceSection) ExportItems(exports []Export) *InstanceSection {
	s.bytes = append(s.bytes, fromExports)
	s.bytes = low.Int(s.bytes, len(exports))

	for _, e := range exports {
		s.bytes = low.Name(s.bytes, e.Name)
		s.bytes = e.Sort.Encode(s.bytes)
		s.bytes = low.Uint32(s.bytes, e.Index)
	}

	s.n++

	return s
}

// Raw appends n pre-encoded instances. The data is not checked against n.
func (s *InstanceSection) Raw(n uint32, data []byte) *InstanceSection {
	s.raw(n, data)
	return s
}

func (s *InstanceSection) ID() byte               { return byte(IDInstance) }
func (s *InstanceSection) Encode(b []byte) []byte { return s.encode(b, IDInstance) }

// InstanceExport aliases an export of an instance.
// Core sorts alias exports of core instances.
func (s *AliasSection) InstanceExport(instance uint32, sort Sort, name string) *AliasSection {
	s.bytes = sort.Encode(s.bytes)

	if sort.IsCore() {
		s.bytes = append(s.bytes, aliasCoreExport)
	} else {
		s.bytes = append(s.bytes, aliasExport)
	}

	s.bytes = low.Uint32(s.bytes, instance)
	s.bytes = low.Name(s.bytes, name)
	s.n++

	return s
}

// Outer aliases an item of the component count levels up.
func (s *AliasSection) Outer(count uint32, sort Sort, index uint32) *AliasSection {
	s.bytes = encodeAliasOuter(s.bytes, count, sort, index)
	s.n++

	return s
}

// Raw appends n pre-encoded aliases. The data is not checked against n.
func (s *AliasSection) Raw(n uint32, data []byte) *AliasSection {
	s.raw(n, data)
	return s
}

func (s *AliasSection) ID() byte               { return byte(IDAlias) }
func (s *AliasSection) Encode(b []byte) []byte { return s.encode(b, IDAlias) }

func (s *ImportSection) Import(name string, ref TypeRef) *ImportSection {
	s.bytes = low.Name(s.bytes, name)
	s.bytes = ref.encodeTypeRef(s.bytes)
	s.n++

	return s
}

// Raw appends n pre-encoded imports. The data is not checked against n.
func (s *ImportSection) Raw(n uint32, data []byte) *ImportSection {
	s.raw(n, data)
	return s
}

func (s *ImportSection) ID() byte               { return byte(IDImport) }
func (s *ImportSection) Encode(b []byte) []byte { return s.encode(b, IDImport) }

func (s *ExportSection) Export(name string, sort Sort, index uint32) *ExportSection {
	s.bytes = low.Name(s.bytes, name)
	s.bytes = sort.Encode(s.bytes)
	s.bytes = low.Uint32(s.bytes, index)
	s.n++

	return s
}

// Raw appends n pre-encoded exports. The data is not checked against n.
func (s *ExportSection) Raw(n uint32, data []byte) *ExportSection {
	s.raw(n, data)
	return s
}

func (s *ExportSection) ID() byte               { return byte(IDExport) }
func (s *ExportSection) Encode(b []byte) []byte { return s.encode(b, IDExport) }

func (s StartSection) ID() byte { return byte(IDStart) }

func (s StartSection) Encode(b []byte) []byte {
	var p []byte

	p = low.Uint32(p, s.Function)
	p = low.Int(p, len(s.Args))

	for _, a := range s.Args {
		p = low.Uint32(p, a)
	}

	return payload(b, IDStart, p)
}
