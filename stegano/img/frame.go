package img

import (
	"fmt"
	"image"
	"image/color"

	"adamant/stegano/bits"
)

const (
	// every pixel carries one 24 bit chunk: red, green, blue.
	PixelBits     = 24
	BytesPerPixel = PixelBits / bits.ByteWidth
)

// Frame is a grid of RGB pixels, rows top to bottom.
type Frame struct {
	Width  int
	Height int
	Pix    []byte
}

func NewFrame(width, height int) *Frame {
	return &Frame{
		width,
		height,
		make([]byte, width*height*BytesPerPixel),
	}
}

func (f *Frame) validate() error {
	if f == nil || f.Width <= 0 || f.Height <= 0 {
		return ErrEmptyFrame
	}
	if len(f.Pix) != f.Width*f.Height*BytesPerPixel {
		return fmt.Errorf("%w: %d bytes for %dx%d pixels",
			ErrMalformedFrame, len(f.Pix), f.Width, f.Height)
	}
	return nil
}

// GridSide returns the side of the smallest square grid holding n bits.
func GridSide(n int) int {
	pixels := (n + PixelBits - 1) / PixelBits
	side := 1
	for side*side < pixels {
		side++
	}
	return side
}

/*
 * Paint lays b out on the smallest square grid which holds it. b is cut
 * into 24 bit chunks, one per pixel, visited in layout order; the chunk of
 * the last pixels is zero padded.
 */
func Paint(b bits.Bits, layout Layout) (*Frame, error) {
	if len(b) == 0 {
		return nil, ErrEmptyFrame
	}
	side := GridSide(len(b))
	frame := NewFrame(side, side)

	padded := b.Clone().Pad(side * side * PixelBits)
	data, err := bits.Pack(padded)
	if err != nil {
		return nil, err
	}
	for i, cell := range layout.Order(side, side) {
		copy(frame.Pix[cell*BytesPerPixel:(cell+1)*BytesPerPixel],
			data[i*BytesPerPixel:(i+1)*BytesPerPixel])
	}
	return frame, nil
}

/*
 * Bits reads the pixels back in layout order. The result holds every
 * pixel of the frame; the caller cuts it to the length it expects.
 */
func (f *Frame) Bits(layout Layout) (bits.Bits, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}
	return f.ReadBits(layout, f.Capacity())
}

// Capacity is the number of bits the frame holds.
func (f *Frame) Capacity() int {
	return f.Width * f.Height * PixelBits
}

// ReadBits reads the first n bits in layout order, touching only the
// pixels which carry them.
func (f *Frame) ReadBits(layout Layout, n int) (bits.Bits, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}
	if n < 0 || n > f.Capacity() {
		return nil, fmt.Errorf("%w: %d bits requested from %dx%d pixels",
			ErrMalformedFrame, n, f.Width, f.Height)
	}
	cells := layout.Cells(f.Width, f.Height, (n+PixelBits-1)/PixelBits)
	data := make([]byte, len(cells)*BytesPerPixel)
	for i, cell := range cells {
		copy(data[i*BytesPerPixel:(i+1)*BytesPerPixel],
			f.Pix[cell*BytesPerPixel:(cell+1)*BytesPerPixel])
	}
	return bits.Unpack(data, n)
}

// Image returns an opaque RGBA copy of the frame.
func (f *Frame) Image() *image.RGBA {
	rgba := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for i, j := 0, 0; j+BytesPerPixel <= len(f.Pix) && i < len(rgba.Pix); i, j = i+4, j+BytesPerPixel {
		rgba.Pix[i+0] = f.Pix[j+0]
		rgba.Pix[i+1] = f.Pix[j+1]
		rgba.Pix[i+2] = f.Pix[j+2]
		rgba.Pix[i+3] = 0xFF
	}
	return rgba
}

// FrameFromImage drops the alpha channel of m.
func FrameFromImage(m image.Image) *Frame {
	bounds := m.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	frame := NewFrame(width, height)

	switch m := m.(type) {
	case *image.RGBA:
		copyRGB(frame, m.Pix, m.Stride, m.PixOffset(bounds.Min.X, bounds.Min.Y))
	case *image.NRGBA:
		copyRGB(frame, m.Pix, m.Stride, m.PixOffset(bounds.Min.X, bounds.Min.Y))
	default:
		off := 0
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				c := color.NRGBAModel.Convert(m.At(x, y)).(color.NRGBA)
				frame.Pix[off+0] = c.R
				frame.Pix[off+1] = c.G
				frame.Pix[off+2] = c.B
				off += BytesPerPixel
			}
		}
	}
	return frame
}

func copyRGB(frame *Frame, pix []byte, stride, start int) {
	off := 0
	for y := 0; y < frame.Height; y++ {
		row := pix[start+y*stride:]
		for x := 0; x < frame.Width; x++ {
			frame.Pix[off+0] = row[x*4+0]
			frame.Pix[off+1] = row[x*4+1]
			frame.Pix[off+2] = row[x*4+2]
			off += BytesPerPixel
		}
	}
}
