package bits

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/icza/bitio"
)

/*
 * transform integers from/to binary form.
 * every element of Bits is either 0 or 1, most significant bit first.
 */
type Bits []uint8

const (
	Zero = uint8(0)
	One  = uint8(1)

	ByteWidth  = 8
	WordWidth  = 16
	DwordWidth = 32
)

// FromUint returns the lowest `width` bits of x, MSB first.
// higher bits are dropped (modulo 2^width).
func FromUint(x uint64, width int) Bits {
	result := make(Bits, width)
	for i := 0; i < width; i++ {
		result[i] = uint8((x >> uint(width-i-1)) & 1)
	}
	return result
}

// ToUint reads the first `width` bits of b as an unsigned integer.
// bits beyond width are ignored, missing bits count as zero.
func ToUint(b Bits, width int) uint64 {
	result := uint64(0)
	for i := 0; i < width; i++ {
		result <<= 1
		if i < len(b) && b[i] != Zero {
			result |= 1
		}
	}
	return result
}

func FromByte(x uint8) Bits {
	return FromUint(uint64(x), ByteWidth)
}

func FromWord(x uint16) Bits {
	return FromUint(uint64(x), WordWidth)
}

func FromDword(x uint32) Bits {
	return FromUint(uint64(x), DwordWidth)
}

func ToByte(b Bits) uint8 {
	return uint8(ToUint(b, ByteWidth))
}

func ToWord(b Bits) uint16 {
	return uint16(ToUint(b, WordWidth))
}

func ToDword(b Bits) uint32 {
	return uint32(ToUint(b, DwordWidth))
}

// Parse builds Bits from a string of '0' and '1'.
func Parse(s string) (Bits, error) {
	result := make(Bits, 0, len(s))
	for i, c := range s {
		switch c {
		case '0':
			result = append(result, Zero)
		case '1':
			result = append(result, One)
		default:
			return nil, fmt.Errorf("invalid bit %q at position %d", c, i)
		}
	}
	return result, nil
}

func (b Bits) String() string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, bit := range b {
		if bit == Zero {
			sb.WriteByte('0')
		} else {
			sb.WriteByte('1')
		}
	}
	return sb.String()
}

func (b Bits) Equal(other Bits) bool {
	return bytes.Equal(b, other)
}

// Clone returns a copy which does not share memory with b.
func (b Bits) Clone() Bits {
	if b == nil {
		return nil
	}
	result := make(Bits, len(b))
	copy(result, b)
	return result
}

// Pad appends zero bits until the length is a multiple of size.
func (b Bits) Pad(size int) Bits {
	if size <= 0 || len(b)%size == 0 {
		return b
	}
	return append(b, make(Bits, size-len(b)%size)...)
}

/*
 * Pack writes bits into bytes, MSB first. The last byte is padded
 * with zero bits.
 */
func Pack(b Bits) ([]byte, error) {
	buf := new(bytes.Buffer)
	w := bitio.NewWriter(buf)
	for _, bit := range b {
		if err := w.WriteBool(bit != Zero); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unpack reads n bits from data, MSB first.
func Unpack(data []byte, n int) (Bits, error) {
	if n < 0 || n > len(data)*8 {
		return nil, fmt.Errorf("cannot read %d bits from %d bytes: %w",
			n, len(data), io.ErrUnexpectedEOF)
	}
	r := bitio.NewReader(bytes.NewReader(data))
	result := make(Bits, n)
	for i := 0; i < n; i++ {
		bit, err := r.ReadBool()
		if err != nil {
			return nil, err
		}
		if bit {
			result[i] = One
		}
	}
	return result, nil
}
