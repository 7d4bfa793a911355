package wasmenc

import "tlog.app/go/tlog"

type (
	// Module is a core module binary under construction.
	//
	// Sections are encoded in the order they are added,
	// nothing is reordered, merged or checked.
	// Zero value is an empty module.
	Module struct {
		bytes []byte
	}
)

var (
	Magic = []byte("\000asm")

	// ModuleVersion is the version field of core modules.
	ModuleVersion = []byte{0x01, 0x00, 0x00, 0x00}
)

func NewModule() *Module {
	m := &Module{}
	m.header()

	return m
}

func (m *Module) Section(s Section) *Module {
	m.header()

	st := len(m.bytes)
	m.bytes = s.Encode(m.bytes)

	tlog.V("section").Printw("module section", "id", SectionID(s.ID()), "size", len(m.bytes)-st, "offset", tlog.NextAsHex, st)

	return m
}

// Bytes returns the binary encoded so far.
// It is shared with the Module and changes after the next Section call.
func (m *Module) Bytes() []byte {
	m.header()
	return m.bytes
}

// Finish returns the binary. The Module must not be used after.
func (m *Module) Finish() []byte {
	m.header()

	b := m.bytes
	m.bytes = nil

	return b
}

func (m *Module) header() {
	if m.bytes != nil {
		return
	}

	m.bytes = make([]byte, 0, 64)
	m.bytes = append(m.bytes, Magic...)
	m.bytes = append(m.bytes, ModuleVersion...)
}
