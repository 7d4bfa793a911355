package wasmenc

import "math"

type (
	// LowEncoder appends primitive values in the binary format encoding.
	// All methods are append-style and never fail.
	LowEncoder struct{}
)

var low LowEncoder

func (e LowEncoder) Int(b []byte, v int) []byte {
	return e.Uint64(b, uint64(v))
}

func (e LowEncoder) Uint32(b []byte, v uint32) []byte {
	return e.Uint64(b, uint64(v))
}

func (e LowEncoder) Uint64(b []byte, v uint64) []byte {
	for {
		x := byte(v) & 0x7f
		v >>= 7

		if v != 0 {
			x |= 0x80
		}

		b = append(b, x)

		if x&0x80 == 0 {
			break
		}
	}

	return b
}

func (e LowEncoder) Int32(b []byte, v int32) []byte {
	return e.Int64(b, int64(v))
}

// Int33 encodes a signed 33-bit value, v must be in [-1<<32, 1<<32).
func (e LowEncoder) Int33(b []byte, v int64) []byte {
	return e.Int64(b, v)
}

func (e LowEncoder) Int64(b []byte, v int64) []byte {
	for {
		x := byte(v) & 0x7f
		s := byte(v) & 0x40
		v >>= 7

		if s == 0 && v != 0 || s != 0 && v != -1 {
			x |= 0x80
		}

		b = append(b, x)

		if x&0x80 == 0 {
			break
		}
	}

	return b
}

func (e LowEncoder) Float32(b []byte, v float32) []byte {
	x := math.Float32bits(v)

	return append(b, byte(x), byte(x>>8), byte(x>>16), byte(x>>24))
}

func (e LowEncoder) Float64(b []byte, v float64) []byte {
	x := math.Float64bits(v)

	return append(b, byte(x), byte(x>>8), byte(x>>16), byte(x>>24), byte(x>>32), byte(x>>40), byte(x>>48), byte(x>>56))
}

func (e LowEncoder) Name(b []byte, v string) []byte {
	b = e.Int(b, len(v))
	b = append(b, v...)

	return b
}

func (e LowEncoder) Bytes(b []byte, v []byte) []byte {
	b = e.Int(b, len(v))
	b = append(b, v...)

	return b
}

func (e LowEncoder) Bool(b []byte, v bool) []byte {
	if v {
		return append(b, 1)
	}

	return append(b, 0)
}

// Size appends a u32 length prefix.
// It panics if n does not fit, since a truncated size would corrupt the binary.
func (e LowEncoder) Size(b []byte, n int) []byte {
	if n < 0 || uint64(n) > math.MaxUint32 {
		panic(ErrSizeOverflow{Size: n})
	}

	return e.Uint64(b, uint64(n))
}

// Uint32Len is the length of v encoded by Uint32.
func Uint32Len(v uint32) (n int) {
	for {
		n++
		v >>= 7

		if v == 0 {
			return n
		}
	}
}
