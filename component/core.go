package component

import "nikand.dev/go/wasmenc"

type (
	// ModuleSection embeds a core module.
	ModuleSection struct {
		Module *wasmenc.Module
	}

	// CoreType is a core type definition: CoreFuncType or *ModuleType.
	CoreType interface {
		encodeCoreType(b []byte) []byte
	}

	CoreFuncType wasmenc.FuncType

	// ModuleType describes imports and exports of a core module.
	ModuleType struct {
		vector
	}

	CoreTypeSection struct {
		vector
	}

	CoreInstanceSection struct {
		vector
	}

	// CoreInstantiationArg passes a core instance as an import module named Name.
	CoreInstantiationArg struct {
		Name     string
		Instance uint32
	}

	CoreExport struct {
		Name  string
		Sort  CoreSort
		Index uint32
	}

	CoreAliasSection struct {
		vector
	}
)

const (
	coreTypeFunc   = 0x60
	coreTypeModule = 0x50
)

const (
	moduleDeclImport = 0x00
	moduleDeclType   = 0x01
	moduleDeclAlias  = 0x02
	moduleDeclExport = 0x03
)

const (
	coreInstantiate = 0x00
	coreFromExports = 0x01
)

const (
	coreAliasExport = 0x00
	coreAliasOuter  = 0x01
)

func (s ModuleSection) ID() byte { return byte(IDCoreModule) }

func (s ModuleSection) Encode(b []byte) []byte {
	return payload(b, IDCoreModule, s.Module.Bytes())
}

func (t CoreFuncType) encodeCoreType(b []byte) []byte {
	return wasmenc.FuncType(t).Encode(b)
}

func (t *ModuleType) encodeCoreType(b []byte) []byte {
	b = append(b, coreTypeModule)
	return t.encodeVec(b)
}

func (t *ModuleType) Import(module, field string, ty wasmenc.EntityType) *ModuleType {
	t.bytes = append(t.bytes, moduleDeclImport)
	t.bytes = low.Name(t.bytes, module)
	t.bytes = low.Name(t.bytes, field)
	t.bytes = ty.EncodeEntity(t.bytes)
	t.n++

	return t
}

// Function declares a function type local to the module type.
func (t *ModuleType) Function(params, results []wasmenc.ValType) *ModuleType {
	t.bytes = append(t.bytes, moduleDeclType)
	t.bytes = wasmenc.FuncType{Params: params, Results: results}.Encode(t.bytes)
	t.n++

	return t
}

// AliasOuterType declares an alias of a type of an enclosing component.
func (t *ModuleType) AliasOuterType(count, index uint32) *ModuleType {
	t.bytes = append(t.bytes, moduleDeclAlias)
	t.bytes = encodeCoreAliasOuter(t.bytes, count, CoreSortType, index)
	t.n++

	return t
}

func (t *ModuleType) Export(name string, ty wasmenc.EntityType) *ModuleType {
	t.bytes = append(t.bytes, moduleDeclExport)
	t.bytes = low.Name(t.bytes, name)
	t.bytes = ty.EncodeEntity(t.bytes)
	t.n++

	return t
}

func (s *CoreTypeSection) Function(params, results []wasmenc.ValType) *CoreTypeSection {
	return s.Type(CoreFuncType{Params: params, Results: results})
}

func (s *CoreTypeSection) Module(t *ModuleType) *CoreTypeSection {
	return s.Type(t)
}

func (s *CoreTypeSection) Type(t CoreType) *CoreTypeSection {
	s.bytes = t.encodeCoreType(s.bytes)
	s.n++

	return s
}

// Raw appends n pre-encoded core types. The data is not checked against n.
func (s *CoreTypeSection) Raw(n uint32, data []byte) *CoreTypeSection {
	s.raw(n, data)
	return s
}

func (s *CoreTypeSection) ID() byte               { return byte(IDCoreType) }
func (s *CoreTypeSection) Encode(b []byte) []byte { return s.encode(b, IDCoreType) }

// Instantiate instantiates a core module with the instances given as imports.
func (s *CoreInstanceSection) Instantiate(module uint32, args []CoreInstantiationArg) *CoreInstanceSection {
	s.bytes = append(s.bytes, coreInstantiate)
	s.bytes = low.Uint32(s.bytes, module)
	s.bytes = low.Int(s.bytes, len(args))

	for _, a := range args {
		s.bytes = low.Name(s.bytes, a.Name)
		s.bytes = append(s.bytes, byte(CoreSortInstance))
		s.bytes = low.Uint32(s.bytes, a.Instance)
	}

	s.n++

	return s
}

// ExportItems creates an instance from existing core items.
func (s *CoreInstanceSection) ExportItems(exports []CoreExport) *CoreInstanceSection {
	s.bytes = append(s.bytes, coreFromExports)
	s.bytes = low.Int(s.bytes, len(exports))

	for _, e := range exports {
		s.bytes = low.Name(s.bytes, e.Name)
		s.bytes = e.Sort.Encode(s.bytes)
		s.bytes = low.Uint32(s.bytes, e.Index)
	}

	s.n++

	return s
}

// Raw appends n pre-encoded core instances. The data is not checked against n.
func (s *CoreInstanceSection) Raw(n uint32, data []byte) *CoreInstanceSection {
	s.raw(n, data)
	return s
}

func (s *CoreInstanceSection) ID() byte               { return byte(IDCoreInstance) }
func (s *CoreInstanceSection) Encode(b []byte) []byte { return s.encode(b, IDCoreInstance) }

// InstanceExport aliases an export of a core instance.
func (s *CoreAliasSection) InstanceExport(instance uint32, sort CoreSort, name string) *CoreAliasSection {
	s.bytes = sort.Encode(s.bytes)
	s.bytes = append(s.bytes, coreAliasExport)
	s.bytes = low.Uint32(s.bytes, instance)
	s.bytes = low.Name(s.bytes, name)
	s.n++

	return s
}

// Outer aliases a core item of the component count levels up.
func (s *CoreAliasSection) Outer(count uint32, sort CoreSort, index uint32) *CoreAliasSection {
	s.bytes = encodeCoreAliasOuter(s.bytes, count, sort, index)
	s.n++

	return s
}

// Raw appends n pre-encoded core aliases. The data is not checked against n.
func (s *CoreAliasSection) Raw(n uint32, data []byte) *CoreAliasSection {
	s.raw(n, data)
	return s
}

func (s *CoreAliasSection) ID() byte               { return byte(IDCoreAlias) }
func (s *CoreAliasSection) Encode(b []byte) []byte { return s.encode(b, IDCoreAlias) }

func encodeCoreAliasOuter(b []byte, count uint32, sort CoreSort, index uint32) []byte {
	b = sort.Encode(b)
	b = append(b, coreAliasOuter)
	b = low.Uint32(b, count)

	return low.Uint32(b, index)
}
