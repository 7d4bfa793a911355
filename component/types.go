package component

type (
	// ValType is a component value type: PrimitiveValType or TypeIndex.
	ValType interface {
		encodeValType(b []byte) []byte
	}

	PrimitiveValType byte

	// TypeIndex refers to a defined type in the component type index space.
	TypeIndex uint32

	NamedType struct {
		Name string
		Type ValType
	}

	// Case is a variant case. Type is nil for cases without a payload.
	Case struct {
		Name    string
		Type    ValType
		Refines *uint32
	}

	TypeSection struct {
		vector
	}

	// TypeEncoder writes exactly one type definition.
	// It is returned by Type methods which already counted the entry,
	// so exactly one of its methods must be called.
	TypeEncoder struct {
		b *[]byte
	}

	ComponentType struct {
		decls
	}

	InstanceType struct {
		decls
	}

	decls struct {
		vector
	}

	// TypeRef describes an imported or exported item.
	// Implemented by the TypeRef* types.
	TypeRef interface {
		encodeTypeRef(b []byte) []byte
	}

	TypeRefModule    uint32
	TypeRefFunc      uint32
	TypeRefTypeEq    uint32
	TypeRefInstance  uint32
	TypeRefComponent uint32

	TypeRefValue struct {
		Type ValType
	}
)

const (
	Bool    PrimitiveValType = 0x7f
	S8      PrimitiveValType = 0x7e
	U8      PrimitiveValType = 0x7d
	S16     PrimitiveValType = 0x7c
	U16     PrimitiveValType = 0x7b
	S32     PrimitiveValType = 0x7a
	U32     PrimitiveValType = 0x79
	S64     PrimitiveValType = 0x78
	U64     PrimitiveValType = 0x77
	Float32 PrimitiveValType = 0x76
	Float64 PrimitiveValType = 0x75
	Char    PrimitiveValType = 0x74
	String  PrimitiveValType = 0x73
)

const (
	typeRecord    = 0x72
	typeVariant   = 0x71
	typeList      = 0x70
	typeTuple     = 0x6f
	typeFlags     = 0x6e
	typeEnum      = 0x6d
	typeUnion     = 0x6c
	typeOption    = 0x6b
	typeResult    = 0x6a
	typeFunc      = 0x40
	typeComponent = 0x41
	typeInstance  = 0x42
)

const (
	declCoreType = 0x00
	declType     = 0x01
	declAlias    = 0x02
	declImport   = 0x03
	declExport   = 0x04
)

const (
	externModule    = 0x00
	externFunc      = 0x01
	externValue     = 0x02
	externType      = 0x03
	externInstance  = 0x04
	externComponent = 0x05
)

func (t PrimitiveValType) encodeValType(b []byte) []byte { return append(b, byte(t)) }

func (t TypeIndex) encodeValType(b []byte) []byte { return low.Int33(b, int64(t)) }

func (t PrimitiveValType) String() string {
	switch t {
	case Bool:
		return "bool"
	case S8:
		return "s8"
	case U8:
		return "u8"
	case S16:
		return "s16"
	case U16:
		return "u16"
	case S32:
		return "s32"
	case U32:
		return "u32"
	case S64:
		return "s64"
	case U64:
		return "u64"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Char:
		return "char"
	case String:
		return "string"
	}

	return "unknown"
}

// Type starts a new type definition.
func (s *TypeSection) Type() TypeEncoder {
	s.n++
	return TypeEncoder{b: &s.bytes}
}

// Raw appends n pre-encoded type definitions. The data is not checked against n.
func (s *TypeSection) Raw(n uint32, data []byte) *TypeSection {
	s.raw(n, data)
	return s
}

func (s *TypeSection) ID() byte               { return byte(IDType) }
func (s *TypeSection) Encode(b []byte) []byte { return s.encode(b, IDType) }

func (e TypeEncoder) Primitive(t PrimitiveValType) {
	*e.b = append(*e.b, byte(t))
}

func (e TypeEncoder) Record(fields []NamedType) {
	*e.b = append(*e.b, typeRecord)
	*e.b = encodeNamed(*e.b, fields)
}

func (e TypeEncoder) Variant(cases []Case) {
	b := append(*e.b, typeVariant)
	b = low.Int(b, len(cases))

	for _, c := range cases {
		b = low.Name(b, c.Name)
		b = encodeOptional(b, c.Type)

		if c.Refines == nil {
			b = append(b, 0x00)
		} else {
			b = append(b, 0x01)
			b = low.Uint32(b, *c.Refines)
		}
	}

	*e.b = b
}

func (e TypeEncoder) List(t ValType) {
	*e.b = append(*e.b, typeList)
	*e.b = t.encodeValType(*e.b)
}

func (e TypeEncoder) Tuple(ts ...ValType) {
	*e.b = append(*e.b, typeTuple)
	*e.b = encodeValTypes(*e.b, ts)
}

func (e TypeEncoder) Flags(names ...string) {
	*e.b = append(*e.b, typeFlags)
	*e.b = encodeNames(*e.b, names)
}

func (e TypeEncoder) Enum(names ...string) {
	*e.b = append(*e.b, typeEnum)
	*e.b = encodeNames(*e.b, names)
}

func (e TypeEncoder) Union(ts ...ValType) {
	*e.b = append(*e.b, typeUnion)
	*e.b = encodeValTypes(*e.b, ts)
}

func (e TypeEncoder) Option(t ValType) {
	*e.b = append(*e.b, typeOption)
	*e.b = t.encodeValType(*e.b)
}

// Result encodes result<ok, err>. Either of them may be nil.
func (e TypeEncoder) Result(ok, err ValType) {
	*e.b = append(*e.b, typeResult)
	*e.b = encodeOptional(*e.b, ok)
	*e.b = encodeOptional(*e.b, err)
}

// Function encodes a function type with a single unnamed result.
// A nil result encodes a function returning nothing.
func (e TypeEncoder) Function(params []NamedType, result ValType) {
	*e.b = append(*e.b, typeFunc)
	*e.b = encodeNamed(*e.b, params)

	if result == nil {
		*e.b = append(*e.b, 0x01, 0x00)
		return
	}

	*e.b = append(*e.b, 0x00)
	*e.b = result.encodeValType(*e.b)
}

func (e TypeEncoder) FunctionNamedResults(params, results []NamedType) {
	*e.b = append(*e.b, typeFunc)
	*e.b = encodeNamed(*e.b, params)
	*e.b = append(*e.b, 0x01)
	*e.b = encodeNamed(*e.b, results)
}

func (e TypeEncoder) Component(t *ComponentType) {
	*e.b = append(*e.b, typeComponent)
	*e.b = t.encodeVec(*e.b)
}

func (e TypeEncoder) Instance(t *InstanceType) {
	*e.b = append(*e.b, typeInstance)
	*e.b = t.encodeVec(*e.b)
}

// CoreType adds a core type declaration.
func (d *decls) CoreType(t CoreType) {
	d.bytes = append(d.bytes, declCoreType)
	d.bytes = t.encodeCoreType(d.bytes)
	d.n++
}

// Type adds a type declaration.
func (d *decls) Type() TypeEncoder {
	d.bytes = append(d.bytes, declType)
	d.n++

	return TypeEncoder{b: &d.bytes}
}

// AliasOuter declares an alias of an item of an enclosing component.
func (d *decls) AliasOuter(count uint32, sort Sort, index uint32) {
	d.bytes = append(d.bytes, declAlias)
	d.bytes = encodeAliasOuter(d.bytes, count, sort, index)
	d.n++
}

func (d *decls) Export(name string, ref TypeRef) {
	d.bytes = append(d.bytes, declExport)
	d.bytes = low.Name(d.bytes, name)
	d.bytes = ref.encodeTypeRef(d.bytes)
	d.n++
}

// Import is only valid in component types.
func (t *ComponentType) Import(name string, ref TypeRef) {
	t.bytes = append(t.bytes, declImport)
	t.bytes = low.Name(t.bytes, name)
	t.bytes = ref.encodeTypeRef(t.bytes)
	t.n++
}

func (r TypeRefModule) encodeTypeRef(b []byte) []byte {
	b = append(b, externModule, byte(CoreSortModule))
	return low.Uint32(b, uint32(r))
}

func (r TypeRefFunc) encodeTypeRef(b []byte) []byte {
	b = append(b, externFunc)
	return low.Uint32(b, uint32(r))
}

func (r TypeRefValue) encodeTypeRef(b []byte) []byte {
	b = append(b, externValue)
	return r.Type.encodeValType(b)
}

func (r TypeRefTypeEq) encodeTypeRef(b []byte) []byte {
	b = append(b, externType, 0x00)
	return low.Uint32(b, uint32(r))
}

func (r TypeRefInstance) encodeTypeRef(b []byte) []byte {
	b = append(b, externInstance)
	return low.Uint32(b, uint32(r))
}

func (r TypeRefComponent) encodeTypeRef(b []byte) []byte {
	b = append(b, externComponent)
	return low.Uint32(b, uint32(r))
}

func encodeAliasOuter(b []byte, count uint32, sort Sort, index uint32) []byte {
	b = sort.Encode(b)
	b = append(b, aliasOuter)
	b = low.Uint32(b, count)

	return low.Uint32(b, index)
}

func encodeOptional(b []byte, t ValType) []byte {
	if t == nil {
		return append(b, 0x00)
	}

	b = append(b, 0x01)

	return t.encodeValType(b)
}

func encodeValTypes(b []byte, ts []ValType) []byte {
	b = low.Int(b, len(ts))

	for _, t := range ts {
		b = t.encodeValType(b)
	}

	return b
}

func encodeNamed(b []byte, ts []NamedType) []byte {
	b = low.Int(b, len(ts))

	for _, t := range ts {
		b = low.Name(b, t.Name)
		b = t.Type.encodeValType(b)
	}

	return b
}

func encodeNames(b []byte, names []string) []byte {
	b = low.Int(b, len(names))

	for _, n := range names {
		b = low.Name(b, n)
	}

	return b
}

