package huffman

import (
	"fmt"
	"sort"

	"adamant/stegano/bits"
)

const (
	symbolWidth = bits.WordWidth
	lengthWidth = bits.ByteWidth
	entryHeader = symbolWidth + lengthWidth

	// the length field is a single byte
	MaxCodeLength = 1<<lengthWidth - 1
)

// Table maps every symbol to its prefix code.
type Table map[byte]bits.Bits

// NewTable builds the prefix code of a histogram.
func NewTable(h Histogram) (Table, error) {
	root, err := BuildTree(h)
	if err != nil {
		return nil, err
	}
	return Codes(root), nil
}

// FromText is a shortcut for NewTable(NewHistogram(data)).
func FromText(data []byte) (Table, error) {
	return NewTable(NewHistogram(data))
}

func (t Table) Symbols() []byte {
	symbols := make([]byte, 0, len(t))
	for s := range t {
		symbols = append(symbols, s)
	}
	sort.Slice(symbols, func(i, j int) bool {
		return symbols[i] < symbols[j]
	})
	return symbols
}

func (t Table) Equal(other Table) bool {
	if len(t) != len(other) {
		return false
	}
	for s, code := range t {
		code2, ok := other[s]
		if !ok || !code.Equal(code2) {
			return false
		}
	}
	return true
}

/*
 * MarshalBits serializes the table. Each entry is
 *
 *	<symbol>	16 bit
 *	<length>	 8 bit
 *	<code>		 n bit
 *
 * entries are written in ascending symbol order.
 */
func (t Table) MarshalBits() (bits.Bits, error) {
	result := bits.Bits{}
	for _, s := range t.Symbols() {
		code := t[s]
		if len(code) == 0 || len(code) > MaxCodeLength {
			return nil, fmt.Errorf("%w: code of symbol %d is %d bits long",
				ErrMalformedTable, s, len(code))
		}
		result = append(result, bits.FromWord(uint16(s))...)
		result = append(result, bits.FromByte(uint8(len(code)))...)
		result = append(result, code...)
	}
	return result, nil
}

// ParseTable is the inverse of MarshalBits. It consumes all of b.
func ParseTable(b bits.Bits) (Table, error) {
	table := Table{}
	for offset := 0; offset < len(b); {
		if len(b)-offset < entryHeader {
			return nil, fmt.Errorf("%w: %d trailing bits at %d",
				ErrMalformedTable, len(b)-offset, offset)
		}
		symbol := bits.ToWord(b[offset:])
		size := int(bits.ToByte(b[offset+symbolWidth:]))
		offset += entryHeader

		if symbol > 0xFF {
			return nil, fmt.Errorf("%w: symbol %d out of byte range", ErrMalformedTable, symbol)
		}
		if size == 0 {
			return nil, fmt.Errorf("%w: empty code for symbol %d", ErrMalformedTable, symbol)
		}
		if len(b)-offset < size {
			return nil, fmt.Errorf("%w: code of symbol %d truncated", ErrMalformedTable, symbol)
		}
		if _, ok := table[byte(symbol)]; ok {
			return nil, fmt.Errorf("%w: duplicate symbol %d", ErrMalformedTable, symbol)
		}
		table[byte(symbol)] = b[offset : offset+size].Clone()
		offset += size
	}
	return table, nil
}
