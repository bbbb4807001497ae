package img

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"golang.org/x/image/bmp"
)

const (
	bmpFileHeaderLen = 14
	bmpInfoHeaderLen = 40
)

// BITMAPFILEHEADER followed by BITMAPINFOHEADER, little endian.
type bmpHeader struct {
	sigBM           [2]byte
	fileSize        uint32
	reserved        [2]uint16
	pixOffset       uint32
	dibHeaderSize   uint32
	width           uint32
	height          uint32
	colorPlane      uint16
	bpp             uint16
	compression     uint32
	imageSize       uint32
	xPixelsPerMeter uint32
	yPixelsPerMeter uint32
	colorUse        uint32
	colorImportant  uint32
}

/*
 * WriteBMP stores the frame as an uncompressed 24 bit bitmap: rows bottom
 * to top, pixels in blue, green, red order, every row padded to 4 bytes.
 */
func WriteBMP(w io.Writer, f *Frame) error {
	if err := f.validate(); err != nil {
		return err
	}
	step := (BytesPerPixel*f.Width + 3) &^ 3
	imageSize := uint32(step * f.Height)

	h := &bmpHeader{
		sigBM:         [2]byte{'B', 'M'},
		fileSize:      bmpFileHeaderLen + bmpInfoHeaderLen + imageSize,
		pixOffset:     bmpFileHeaderLen + bmpInfoHeaderLen,
		dibHeaderSize: bmpInfoHeaderLen,
		width:         uint32(f.Width),
		height:        uint32(f.Height),
		colorPlane:    1,
		bpp:           PixelBits,
		imageSize:     imageSize,
	}
	if err := binary.Write(w, binary.LittleEndian, h); err != nil {
		return err
	}

	row := make([]byte, step)
	for y := f.Height - 1; y >= 0; y-- {
		src := f.Pix[y*f.Width*BytesPerPixel : (y+1)*f.Width*BytesPerPixel]
		for x := 0; x < f.Width; x++ {
			row[x*3+0] = src[x*3+2]
			row[x*3+1] = src[x*3+1]
			row[x*3+2] = src[x*3+0]
		}
		if _, err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func EncodeBMP(f *Frame) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := WriteBMP(buf, f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func DecodeBMP(data []byte) (*Frame, error) {
	m, err := bmp.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedFrame, err)
	}
	return FrameFromImage(m), nil
}
