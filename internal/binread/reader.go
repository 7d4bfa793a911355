// Package binread splits encoded binaries into section frames.
// It reads only what it takes to find section boundaries and entry counts.
package binread

import (
	"encoding/binary"
	stderrors "errors"
	"io"
	"math"

	"tlog.app/go/errors"
	"tlog.app/go/tlog/tlwire"
)

type (
	Reader struct{}

	Frame struct {
		ID   byte
		Data Hex

		// Offset of the id byte in the binary.
		Offset int
	}

	Hex []byte
)

var Magic = []byte("\000asm")

// Version words of the supported binaries.
const (
	ModuleVersion    = 0x00000001
	ComponentVersion = 0x0001000a
)

var (
	ErrMagic              = stderrors.New("magic mismatch")
	ErrOverflow           = stderrors.New("integer overflow")
	ErrUnexpectedEOF      = io.ErrUnexpectedEOF
	ErrUnsupportedVersion = stderrors.New("unsupported binary format version")
)

// Header checks the magic and returns the version word.
// Module and component versions are accepted.
func (d Reader) Header(b []byte) (version uint32, i int, err error) {
	if common(b, Magic) != len(Magic) {
		return 0, 0, ErrMagic
	}

	i = len(Magic)

	if i+4 > len(b) {
		return 0, i, ErrUnexpectedEOF
	}

	version = binary.LittleEndian.Uint32(b[i:])

	if version != ModuleVersion && version != ComponentVersion {
		return version, i, ErrUnsupportedVersion
	}

	i += 4

	return version, i, nil
}

// Frames returns the version word and all the sections of a module or component.
func (d Reader) Frames(b []byte) (version uint32, fs []Frame, err error) {
	version, i, err := d.Header(b)
	if err != nil {
		return 0, nil, errors.Wrap(err, "header")
	}

	for i < len(b) {
		st := i

		var f Frame

		f.ID, f.Data, i, err = d.Section(b, i)
		if err != nil {
			return version, fs, errors.Wrap(err, "section at pos 0x%x", st)
		}

		f.Offset = st
		fs = append(fs, f)
	}

	return version, fs, nil
}

func (d Reader) Section(b []byte, st int) (id byte, data []byte, i int, err error) {
	i = st

	if i+2 > len(b) {
		return 0, nil, st, ErrUnexpectedEOF
	}

	id = b[i]
	i++

	l, i, err := d.Int(b, i)
	if err != nil {
		return id, nil, st, errors.Wrap(err, "section size")
	}

	if i+l > len(b) {
		return id, nil, st, ErrUnexpectedEOF
	}

	data = b[i : i+l]
	i += l

	return id, data, i, nil
}

// Count reads the leading entry count of a vector shaped section.
func (f Frame) Count() (n int, err error) {
	var d Reader

	n, _, err = d.Int(f.Data, 0)

	return n, err
}

func (d Reader) Byte(b []byte, st int) (r byte, i int, err error) {
	if st >= len(b) {
		return 0, st, ErrUnexpectedEOF
	}

	return b[st], st + 1, nil
}

func (d Reader) Int(b []byte, st int) (l, i int, err error) {
	x, i, err := d.Uint64(b, st)
	if err != nil {
		return 0, st, err
	}

	if x > math.MaxInt32 {
		return 0, st, ErrOverflow
	}

	return int(x), i, nil
}

func (d Reader) Uint64(b []byte, st int) (v uint64, i int, err error) {
	var s uint
	i = st

	for i < len(b) {
		v |= uint64(b[i]&0x7f) << s
		i++
		s += 7

		if b[i-1]&0x80 == 0 {
			return v, i, nil
		}

		if s >= 64 {
			return 0, st, ErrOverflow
		}
	}

	return 0, st, ErrUnexpectedEOF
}

func (d Reader) Int64(b []byte, st int) (v int64, i int, err error) {
	var s uint
	i = st

	for i < len(b) {
		v |= int64(b[i]&0x7f) << s
		i++
		s += 7

		if b[i-1]&0x80 == 0 {
			if s < 64 {
				v = v << (64 - s) >> (64 - s)
			}

			return v, i, nil
		}

		if s >= 64 {
			return 0, st, ErrOverflow
		}
	}

	return 0, st, ErrUnexpectedEOF
}

func (d Reader) Name(b []byte, st int) (v []byte, i int, err error) {
	l, i, err := d.Int(b, st)
	if err != nil {
		return nil, st, err
	}

	if i+l > len(b) {
		return nil, st, ErrUnexpectedEOF
	}

	v = b[i : i+l]
	i += l

	return v, i, nil
}

func (d Reader) Float32(b []byte, st int) (v float32, i int, err error) {
	if st+4 > len(b) {
		return 0, st, ErrUnexpectedEOF
	}

	return math.Float32frombits(binary.LittleEndian.Uint32(b[st:])), st + 4, nil
}

func (d Reader) Float64(b []byte, st int) (v float64, i int, err error) {
	if st+8 > len(b) {
		return 0, st, ErrUnexpectedEOF
	}

	return math.Float64frombits(binary.LittleEndian.Uint64(b[st:])), st + 8, nil
}

func (h Hex) TlogAppend(b []byte) []byte {
	var e tlwire.Encoder

	b = e.AppendSemantic(b, tlwire.Hex)

	return e.AppendBytes(b, h)
}

func common(a, b []byte) (c int) {
	for c < len(a) && c < len(b) && a[c] == b[c] {
		c++
	}

	return
}
