package img

import (
	"bytes"
	"fmt"
	"image/png"
)

// EncodePNG is the lossless alternative to EncodeBMP.
func EncodePNG(f *Frame) ([]byte, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, f.Image()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func DecodePNG(data []byte) (*Frame, error) {
	m, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedFrame, err)
	}
	return FrameFromImage(m), nil
}
