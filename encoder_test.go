package wasmenc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nikand.dev/go/wasmenc/internal/binread"
)

func TestLowEncoder(tb *testing.T) {
	var (
		b []byte
		e LowEncoder
		d binread.Reader
	)

	tb.Run("Reference", func(tb *testing.T) {
		b = e.Uint64(b[:0], 624485)
		assert.Equal(tb, []byte{0xe5, 0x8e, 0x26}, b)

		b = e.Int64(b[:0], -123456)
		assert.Equal(tb, []byte{0xc0, 0xbb, 0x78}, b)
	})

	tb.Run("UnsignedLen", func(tb *testing.T) {
		for _, tc := range []struct {
			x uint64
			l int
		}{
			{0, 1},
			{1, 1},
			{127, 1},
			{128, 2},
			{16383, 2},
			{16384, 3},
			{math.MaxUint32, 5},
			{math.MaxUint64, 10},
		} {
			b = e.Uint64(b[:0], tc.x)
			assert.Len(tb, b, tc.l, "x: %v", tc.x)

			y, i, err := d.Uint64(b, 0)
			assert.NoError(tb, err)
			assert.Equal(tb, len(b), i)
			assert.Equal(tb, tc.x, y)

			if tc.x <= math.MaxUint32 {
				b = e.Uint32(b[:0], uint32(tc.x))
				assert.Len(tb, b, tc.l, "x: %v", tc.x)
				assert.Equal(tb, tc.l, Uint32Len(uint32(tc.x)))
			}
		}
	})

	tb.Run("SignedLen", func(tb *testing.T) {
		for _, tc := range []struct {
			x int64
			l int
		}{
			{0, 1},
			{1, 1},
			{63, 1},
			{64, 2},
			{-1, 1},
			{-64, 1},
			{-65, 2},
			{math.MaxInt32, 5},
			{math.MinInt32, 5},
			{-1 << 32, 5},
			{1<<32 - 1, 5},
			{math.MaxInt64, 10},
			{math.MinInt64, 10},
		} {
			b = e.Int64(b[:0], tc.x)
			assert.Len(tb, b, tc.l, "x: %v", tc.x)

			y, i, err := d.Int64(b, 0)
			assert.NoError(tb, err)
			assert.Equal(tb, len(b), i)
			assert.Equal(tb, tc.x, y, "b: %x", b)
		}
	})

	tb.Run("Int32", func(tb *testing.T) {
		for _, x := range []int32{0, 1, -1, 100, -100, 123456, math.MaxInt32, math.MinInt32} {
			b = e.Int32(b[:0], x)

			y, i, err := d.Int64(b, 0)
			assert.NoError(tb, err)
			assert.Equal(tb, len(b), i)
			assert.Equal(tb, int64(x), y)
		}
	})

	tb.Run("Int33", func(tb *testing.T) {
		b = e.Int33(b[:0], 0)
		assert.Equal(tb, []byte{0x00}, b)

		b = e.Int33(b[:0], 100)
		assert.Equal(tb, []byte{0xe4, 0x00}, b)

		b = e.Int33(b[:0], -1<<32)
		assert.Equal(tb, []byte{0x80, 0x80, 0x80, 0x80, 0x70}, b)
	})

	tb.Run("Float", func(tb *testing.T) {
		for _, x := range []float64{0, 1, -1, 100.123456, -100.123456, math.Inf(1), math.SmallestNonzeroFloat64} {
			b = e.Float64(b[:0], x)
			assert.Len(tb, b, 8)

			y, i, err := d.Float64(b, 0)
			assert.NoError(tb, err)
			assert.Equal(tb, len(b), i)
			assert.Equal(tb, x, y)
		}

		for _, x := range []float32{0, 1, -1, 100.125, -0.5} {
			b = e.Float32(b[:0], x)
			assert.Len(tb, b, 4)

			y, i, err := d.Float32(b, 0)
			assert.NoError(tb, err)
			assert.Equal(tb, len(b), i)
			assert.Equal(tb, x, y)
		}

		b = e.Float32(b[:0], 1)
		assert.Equal(tb, []byte{0x00, 0x00, 0x80, 0x3f}, b)
	})

	tb.Run("Name", func(tb *testing.T) {
		b = e.Name(b[:0], "memory")
		assert.Equal(tb, append([]byte{6}, "memory"...), b)

		v, i, err := d.Name(b, 0)
		assert.NoError(tb, err)
		assert.Equal(tb, len(b), i)
		assert.Equal(tb, "memory", string(v))

		b = e.Bytes(b[:0], nil)
		assert.Equal(tb, []byte{0}, b)

		b = e.Bool(b[:0], true)
		b = e.Bool(b, false)
		assert.Equal(tb, []byte{1, 0}, b)
	})

	tb.Run("SizeOverflow", func(tb *testing.T) {
		n := math.MaxUint32
		n++

		assert.PanicsWithValue(tb, ErrSizeOverflow{Size: n}, func() {
			e.Size(nil, n)
		})

		assert.Panics(tb, func() {
			e.Size(nil, -1)
		})

		require.NotPanics(tb, func() {
			b = e.Size(b[:0], math.MaxUint32)
		})

		assert.Equal(tb, []byte{0xff, 0xff, 0xff, 0xff, 0x0f}, b)
	})
}
