// Package component encodes binaries of the component model:
// components that nest core modules, other components and their glue.
package component

import (
	"tlog.app/go/tlog"

	"nikand.dev/go/wasmenc"
)

type (
	// Component is a component binary under construction.
	// Sections are added with wasmenc.Section values, in order, nothing is checked.
	// Zero value is an empty component.
	Component struct {
		bytes []byte
	}

	SectionID byte
)

// Version is the version and layer fields of component binaries.
var Version = []byte{0x0a, 0x00, 0x01, 0x00}

// Section ids.
const (
	IDCoreCustom SectionID = iota
	IDCoreModule
	IDCoreInstance
	IDCoreAlias
	IDCoreType
	IDComponent
	IDInstance
	IDAlias
	IDType
	IDCanonicalFunction
	IDStart
	IDImport
	IDExport
)

func New() *Component {
	c := &Component{}
	c.header()

	return c
}

func (c *Component) Section(s wasmenc.Section) *Component {
	c.header()

	st := len(c.bytes)
	c.bytes = s.Encode(c.bytes)

	tlog.V("section").Printw("component section", "id", SectionID(s.ID()), "size", len(c.bytes)-st, "offset", tlog.NextAsHex, st)

	return c
}

// Bytes returns the binary encoded so far.
// It is shared with the Component and changes after the next Section call.
func (c *Component) Bytes() []byte {
	c.header()
	return c.bytes
}

// Finish returns the binary. The Component must not be used after.
func (c *Component) Finish() []byte {
	c.header()

	b := c.bytes
	c.bytes = nil

	return b
}

func (c *Component) header() {
	if c.bytes != nil {
		return
	}

	c.bytes = make([]byte, 0, 64)
	c.bytes = append(c.bytes, wasmenc.Magic...)
	c.bytes = append(c.bytes, Version...)
}

func (id SectionID) String() string {
	if int(id) < len(sectionNames) {
		return sectionNames[id]
	}

	return "unknown"
}

var sectionNames = [...]string{
	IDCoreCustom:        "custom",
	IDCoreModule:        "core module",
	IDCoreInstance:      "core instance",
	IDCoreAlias:         "core alias",
	IDCoreType:          "core type",
	IDComponent:         "component",
	IDInstance:          "instance",
	IDAlias:             "alias",
	IDType:              "type",
	IDCanonicalFunction: "canonical function",
	IDStart:             "start",
	IDImport:            "import",
	IDExport:            "export",
}
