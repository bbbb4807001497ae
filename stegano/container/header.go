package container

import (
	"fmt"

	"adamant/stegano/bits"
)

const (
	// each character is stored as an ASCII byte, followed by the version byte.
	Signature = "ADA"
	Version   = uint8(0)

	HeaderBits = len(Signature)*bits.ByteWidth + bits.ByteWidth + 2*bits.DwordWidth
)

/*
 * Header of the container:
 *
 *	<signature>		24 bit
 *	<version>		 8 bit
 *	<table size>		32 bit
 *	<content size>		32 bit
 *
 * sizes are in bits.
 */
type Header struct {
	Version     uint8
	TableBits   uint32
	ContentBits uint32
}

// TotalBits is the length of the whole container described by h.
func (h Header) TotalBits() int {
	return HeaderBits + int(h.TableBits) + int(h.ContentBits)
}

func (h Header) MarshalBits() bits.Bits {
	result := make(bits.Bits, 0, HeaderBits)
	for i := 0; i < len(Signature); i++ {
		result = append(result, bits.FromByte(Signature[i])...)
	}
	result = append(result, bits.FromByte(h.Version)...)
	result = append(result, bits.FromDword(h.TableBits)...)
	result = append(result, bits.FromDword(h.ContentBits)...)
	return result
}

func ParseHeader(b bits.Bits) (Header, error) {
	var h Header
	signatureBits := len(Signature) * bits.ByteWidth
	if len(b) < signatureBits+bits.ByteWidth {
		return h, fmt.Errorf("%w: %d bits", ErrMalformedHeader, len(b))
	}

	if !HasSignature(b) {
		return h, fmt.Errorf("%w: signature %q", ErrMalformedHeader, readSignature(b))
	}

	h.Version = bits.ToByte(b[signatureBits:])
	if h.Version != Version {
		return h, fmt.Errorf("%w: %d", ErrUnsupportedVersion, h.Version)
	}
	if len(b) < HeaderBits {
		return h, fmt.Errorf("%w: %d bits", ErrMalformedHeader, len(b))
	}
	offset := signatureBits + bits.ByteWidth
	h.TableBits = bits.ToDword(b[offset:])
	h.ContentBits = bits.ToDword(b[offset+bits.DwordWidth:])
	return h, nil
}

// HasSignature reports whether b starts with the container signature.
func HasSignature(b bits.Bits) bool {
	return len(b) >= len(Signature)*bits.ByteWidth && readSignature(b) == Signature
}

func readSignature(b bits.Bits) string {
	signature := make([]byte, 0, len(Signature))
	for i := 0; i < len(Signature) && (i+1)*bits.ByteWidth <= len(b); i++ {
		signature = append(signature, bits.ToByte(b[i*bits.ByteWidth:]))
	}
	return string(signature)
}
