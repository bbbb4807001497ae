package huffman

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adamant/stegano/bits"
)

func TestTableMarshalRoundtrip(t *testing.T) {
	samples := []string{"hello world", "a", "ab", "console.log('Adamant')"}
	for _, sample := range samples {
		t.Run(sample, func(t *testing.T) {
			table, err := FromText([]byte(sample))
			require.NoError(t, err)

			b, err := table.MarshalBits()
			require.NoError(t, err)
			for _, bit := range b {
				assert.True(t, bit == bits.Zero || bit == bits.One)
			}

			table2, err := ParseTable(b)
			require.NoError(t, err)
			assert.True(t, table.Equal(table2))
			assert.Equal(t, table, table2)
		})
	}
}

func TestTableMarshalLayout(t *testing.T) {
	table := Table{'A': bits.Bits{1, 0, 1}}
	b, err := table.MarshalBits()
	require.NoError(t, err)
	assert.Equal(t,
		"0000000001000001"+"00000011"+"101",
		b.String())
}

func TestParseTableMalformed(t *testing.T) {
	valid, err := Table{'A': bits.Bits{1, 0}, 'B': bits.Bits{0}}.MarshalBits()
	require.NoError(t, err)

	testCases := []struct {
		name string
		bits bits.Bits
	}{
		{"truncated code", valid[:len(valid)-1]},
		{"truncated header", valid[:10]},
		{"symbol out of range", append(bits.FromWord(0x100), append(bits.FromByte(1), 0)...)},
		{"empty code", append(bits.FromWord('A'), bits.FromByte(0)...)},
		{"duplicate", append(valid.Clone(), valid...)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseTable(tc.bits)
			assert.ErrorIs(t, err, ErrMalformedTable)
		})
	}
}

func TestParseTableEmpty(t *testing.T) {
	table, err := ParseTable(nil)
	require.NoError(t, err)
	assert.Empty(t, table)
}

func TestMarshalCodeTooLong(t *testing.T) {
	table := Table{'A': make(bits.Bits, MaxCodeLength+1)}
	_, err := table.MarshalBits()
	assert.ErrorIs(t, err, ErrMalformedTable)
}

func TestContentRoundtrip(t *testing.T) {
	samples := []string{"hello world", "aaaa", "x", "\x00\xff\x00\xfe", "console.log('Adamant')"}
	for _, sample := range samples {
		t.Run(sample, func(t *testing.T) {
			table, err := FromText([]byte(sample))
			require.NoError(t, err)
			content, err := table.Encode([]byte(sample))
			require.NoError(t, err)
			decoded, err := table.Decode(content)
			require.NoError(t, err)
			assert.Equal(t, sample, string(decoded))
		})
	}
}

func TestEncodeInOrder(t *testing.T) {
	table, err := FromText([]byte("hello world"))
	require.NoError(t, err)

	expected := bits.Bits{}
	for _, c := range []byte("hello world") {
		expected = append(expected, table[c]...)
	}
	content, err := table.Encode([]byte("hello world"))
	require.NoError(t, err)
	assert.Equal(t, expected, content)
}

func TestEncodeUnknownSymbol(t *testing.T) {
	table, err := FromText([]byte("abc"))
	require.NoError(t, err)
	_, err = table.Encode([]byte("abd"))
	assert.ErrorIs(t, err, ErrUnknownSymbol)
}

func TestDecodeMalformed(t *testing.T) {
	table := Table{'a': bits.Bits{0}, 'b': bits.Bits{1, 0}, 'c': bits.Bits{1, 1}}
	decoded, err := table.Decode(bits.Bits{0, 1, 0, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, "abc", string(decoded))

	_, err = table.Decode(bits.Bits{0, 1})
	assert.ErrorIs(t, err, ErrMalformedContent)
}
