package img

import (
	"bytes"
	"fmt"

	"adamant/stegano/bits"
)

type Format string

const (
	FormatBMP     = Format("bmp")
	FormatPNG     = Format("png")
	FormatGIF     = Format("gif")
	FormatJPEG    = Format("jpeg")
	FormatUnknown = Format("")
)

var magic = []struct {
	format Format
	prefix []byte
}{
	{FormatGIF, []byte("GIF")},
	{FormatPNG, []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a}},
	{FormatJPEG, []byte{0xff, 0xd8, 0xff}},
	{FormatBMP, []byte("BM")},
}

// DetectFormat looks at the magic bytes only.
func DetectFormat(data []byte) Format {
	for _, m := range magic {
		if bytes.HasPrefix(data, m.prefix) {
			return m.format
		}
	}
	return FormatUnknown
}

/*
 * DecodeImage returns the pixels of an encoded image. Lossy or palette
 * based formats would not keep the payload intact, so only bmp and png
 * are accepted.
 */
func DecodeImage(data []byte) (*Frame, error) {
	switch format := DetectFormat(data); format {
	case FormatBMP:
		return DecodeBMP(data)
	case FormatPNG:
		return DecodePNG(data)
	case FormatUnknown:
		return nil, ErrUnsupportedFormat
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// Encode writes the frame in the given format.
func Encode(f *Frame, format Format) ([]byte, error) {
	switch format {
	case FormatBMP, FormatUnknown:
		return EncodeBMP(f)
	case FormatPNG:
		return EncodePNG(f)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
}

// Hide paints b and returns it as an image file.
func Hide(b bits.Bits, layout Layout, format Format) ([]byte, error) {
	frame, err := Paint(b, layout)
	if err != nil {
		return nil, err
	}
	return Encode(frame, format)
}

// Reveal returns every bit stored in the pixels of src.
func Reveal(src Source, layout Layout) (bits.Bits, error) {
	frame, err := Resolve(src)
	if err != nil {
		return nil, err
	}
	return frame.Bits(layout)
}
