package img

import (
	"bytes"
	"encoding/binary"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func TestWriteBMPLayout(t *testing.T) {
	frame := &Frame{1, 2, []byte{1, 2, 3, 4, 5, 6}}
	data, err := EncodeBMP(frame)
	require.NoError(t, err)

	// 54 bytes of headers, two rows of 3 bytes padded to 4
	require.Len(t, data, 54+8)
	assert.Equal(t, []byte("BM"), data[:2])
	assert.Equal(t, uint32(62), binary.LittleEndian.Uint32(data[2:]))
	assert.Equal(t, uint32(54), binary.LittleEndian.Uint32(data[10:]))
	assert.Equal(t, uint32(40), binary.LittleEndian.Uint32(data[14:]))
	assert.Equal(t, uint32(1), binary.LittleEndian.Uint32(data[18:]))
	assert.Equal(t, uint32(2), binary.LittleEndian.Uint32(data[22:]))
	assert.Equal(t, uint16(24), binary.LittleEndian.Uint16(data[28:]))
	// bottom row first, blue green red
	assert.Equal(t, []byte{6, 5, 4, 0, 3, 2, 1, 0}, data[54:])
}

func TestWriteBMPMatchesXImage(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	for _, side := range []int{1, 2, 3, 5, 17} {
		frame := NewFrame(side, side)
		rnd.Read(frame.Pix)

		ours, err := EncodeBMP(frame)
		require.NoError(t, err)

		theirs := new(bytes.Buffer)
		require.NoError(t, bmp.Encode(theirs, frame.Image()))
		assert.Equal(t, theirs.Bytes(), ours, "side %d", side)

		decoded, err := DecodeBMP(ours)
		require.NoError(t, err)
		assert.Equal(t, frame, decoded)
	}
}

func TestWriteBMPEmpty(t *testing.T) {
	_, err := EncodeBMP(&Frame{})
	assert.ErrorIs(t, err, ErrEmptyFrame)
}

func TestDecodeBMPGarbage(t *testing.T) {
	_, err := DecodeBMP([]byte("BM not really"))
	assert.ErrorIs(t, err, ErrMalformedFrame)
}
