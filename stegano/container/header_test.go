package container

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adamant/stegano/bits"
)

func TestHeaderLayout(t *testing.T) {
	h := Header{Version: 0, TableBits: 32, ContentBits: 32}
	b := h.MarshalBits()
	require.Len(t, b, HeaderBits)
	assert.Equal(t, 96, HeaderBits)

	assert.Equal(t, uint8('A'), bits.ToByte(b[0:]))
	assert.Equal(t, uint8('D'), bits.ToByte(b[8:]))
	assert.Equal(t, uint8('A'), bits.ToByte(b[16:]))
	assert.Equal(t, uint8(0), bits.ToByte(b[24:]))
	assert.Equal(t, uint32(32), bits.ToDword(b[32:]))
	assert.Equal(t, uint32(32), bits.ToDword(b[64:]))
}

func TestHeaderRoundtrip(t *testing.T) {
	headers := []Header{
		{Version: 0, TableBits: 32, ContentBits: 32},
		{Version: 0, TableBits: 0, ContentBits: 0},
		{Version: 0, TableBits: 0xFFFFFFFF, ContentBits: 0xDEADBEEF},
	}
	for _, h := range headers {
		h2, err := ParseHeader(h.MarshalBits())
		require.NoError(t, err)
		assert.Equal(t, h, h2)
	}
}

func TestParseHeaderErrors(t *testing.T) {
	valid := Header{TableBits: 1, ContentBits: 2}.MarshalBits()

	badSignature := valid.Clone()
	copy(badSignature, bits.FromByte('B'))

	badVersion := valid.Clone()
	copy(badVersion[24:], bits.FromByte(1))

	testCases := []struct {
		name     string
		bits     bits.Bits
		expected error
	}{
		{"empty", nil, ErrMalformedHeader},
		{"short", valid[:40], ErrMalformedHeader},
		{"wrong signature", badSignature, ErrMalformedHeader},
		{"wrong version", badVersion, ErrUnsupportedVersion},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseHeader(tc.bits)
			assert.ErrorIs(t, err, tc.expected)
		})
	}
}

func TestHasSignature(t *testing.T) {
	h := Header{Version: Version, TableBits: 1, ContentBits: 2}
	assert.True(t, HasSignature(h.MarshalBits()))
	assert.True(t, HasSignature(h.MarshalBits()[:24]))
	assert.False(t, HasSignature(h.MarshalBits()[:23]))
	assert.False(t, HasSignature(make(bits.Bits, HeaderBits)))
	assert.False(t, HasSignature(nil))
}
