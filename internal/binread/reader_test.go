package binread

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader(tb *testing.T) {
	var d Reader

	tb.Run("Uint64", func(tb *testing.T) {
		v, i, err := d.Uint64([]byte{0xe5, 0x8e, 0x26}, 0)
		assert.NoError(tb, err)
		assert.Equal(tb, 3, i)
		assert.Equal(tb, uint64(624485), v)

		_, _, err = d.Uint64([]byte{0x80, 0x80}, 0)
		assert.ErrorIs(tb, err, ErrUnexpectedEOF)

		_, _, err = d.Uint64([]byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x01}, 0)
		assert.ErrorIs(tb, err, ErrOverflow)
	})

	tb.Run("Int64", func(tb *testing.T) {
		v, i, err := d.Int64([]byte{0xc0, 0xbb, 0x78}, 0)
		assert.NoError(tb, err)
		assert.Equal(tb, 3, i)
		assert.Equal(tb, int64(-123456), v)

		v, _, err = d.Int64([]byte{0x7f}, 0)
		assert.NoError(tb, err)
		assert.Equal(tb, int64(-1), v)
	})

	tb.Run("Int", func(tb *testing.T) {
		_, _, err := d.Int([]byte{0xff, 0xff, 0xff, 0xff, 0x0f}, 0)
		assert.ErrorIs(tb, err, ErrOverflow)
	})

	tb.Run("Name", func(tb *testing.T) {
		_, _, err := d.Name([]byte{0x05, 'a'}, 0)
		assert.ErrorIs(tb, err, ErrUnexpectedEOF)
	})
}

func TestFrames(tb *testing.T) {
	var d Reader

	bin := []byte{
		0x00, 'a', 's', 'm', 0x01, 0x00, 0x00, 0x00,
		0x01, 0x04, 0x01, 0x60, 0x00, 0x00,
		0x00, 0x03, 0x01, 'x', 0xff,
	}

	version, fs, err := d.Frames(bin)
	require.NoError(tb, err)
	assert.Equal(tb, uint32(1), version)
	require.Len(tb, fs, 2)

	assert.Equal(tb, Frame{ID: 1, Data: Hex{0x01, 0x60, 0x00, 0x00}, Offset: 8}, fs[0])
	assert.Equal(tb, Frame{ID: 0, Data: Hex{0x01, 'x', 0xff}, Offset: 14}, fs[1])

	n, err := fs[0].Count()
	assert.NoError(tb, err)
	assert.Equal(tb, 1, n)

	_, _, err = d.Frames([]byte("\000wasm"))
	assert.ErrorIs(tb, err, ErrMagic)

	_, _, err = d.Frames([]byte{0x00, 'a', 's', 'm', 0x02, 0x00, 0x00, 0x00})
	assert.ErrorIs(tb, err, ErrUnsupportedVersion)

	_, _, err = d.Frames(bin[:len(bin)-1])
	assert.ErrorIs(tb, err, ErrUnexpectedEOF)
}
