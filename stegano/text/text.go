package text

import (
	"errors"
	"fmt"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"
)

var ErrUnencodable = errors.New("text: character outside of Latin-1")

// FixUnicode puts s into composed form, so "e" followed by a combining
// acute accent becomes a single "é".
func FixUnicode(s string) string {
	return norm.NFC.String(s)
}

/*
 * ToBytes turns s into the single byte symbols the codec works with:
 * one byte per character, Latin-1. Characters beyond U+00FF can not be
 * carried and make the whole text fail.
 */
func ToBytes(s string, normalize bool) ([]byte, error) {
	if normalize {
		s = FixUnicode(s)
	}
	result := make([]byte, 0, len(s))
	for i, r := range s {
		b, ok := charmap.ISO8859_1.EncodeRune(r)
		if !ok {
			return nil, fmt.Errorf("%w: %U at offset %d", ErrUnencodable, r, i)
		}
		result = append(result, b)
	}
	return result, nil
}

// FromBytes is the inverse of ToBytes.
func FromBytes(data []byte) string {
	runes := make([]rune, len(data))
	for i, b := range data {
		runes[i] = charmap.ISO8859_1.DecodeByte(b)
	}
	return string(runes)
}
