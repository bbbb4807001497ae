package huffman

import (
	"fmt"

	"adamant/stegano/bits"
)

// Encode replaces every byte of data by its code.
func (t Table) Encode(data []byte) (bits.Bits, error) {
	result := bits.Bits{}
	for i, b := range data {
		code, ok := t[b]
		if !ok {
			return nil, fmt.Errorf("%w: byte %d at offset %d", ErrUnknownSymbol, b, i)
		}
		result = append(result, code...)
	}
	return result, nil
}

/*
 * Decode reads the content bit by bit. As the codes are prefix free,
 * a symbol is emitted as soon as the accumulated bits match a code.
 */
func (t Table) Decode(content bits.Bits) ([]byte, error) {
	lookup := make(map[string]byte, len(t))
	for s, code := range t {
		lookup[string(code)] = s
	}

	result := []byte{}
	acc := make([]byte, 0, MaxCodeLength)
	for _, bit := range content {
		acc = append(acc, bit)
		if s, ok := lookup[string(acc)]; ok {
			result = append(result, s)
			acc = acc[:0]
		} else if len(acc) > MaxCodeLength {
			return nil, fmt.Errorf("%w: no code matches %d bits", ErrMalformedContent, len(acc))
		}
	}
	if len(acc) != 0 {
		return nil, fmt.Errorf("%w: content ends inside a code (%d bits left)",
			ErrMalformedContent, len(acc))
	}
	return result, nil
}
