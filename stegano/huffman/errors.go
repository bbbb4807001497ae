package huffman

import "errors"

var (
	// ErrInvalidInput is returned when a tree is requested for an empty histogram
	ErrInvalidInput = errors.New("huffman: empty histogram")

	// ErrUnknownSymbol is returned when the content holds a byte the table has no code for
	ErrUnknownSymbol = errors.New("huffman: symbol has no code")

	// ErrMalformedTable is returned when a serialized prefix table cannot be parsed
	ErrMalformedTable = errors.New("huffman: malformed prefix table")

	// ErrMalformedContent is returned when the content ends in the middle of a code
	ErrMalformedContent = errors.New("huffman: malformed content")
)
