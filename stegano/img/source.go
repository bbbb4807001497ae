package img

import (
	"fmt"
	"os"
)

/*
 * Source is where the pixels of a frame come from. It is one of
 * ImageFile, ImageData, PixelBuffer or *Frame, and is turned into a
 * Frame once by Resolve.
 */
type Source interface {
	isSource()
}

// path of an image file on disk
type ImageFile string

// content of an image file
type ImageData []byte

// PixelBuffer is a raw RGBA buffer, 4 bytes per pixel, rows top to bottom.
type PixelBuffer struct {
	Width  int
	Height int
	Pix    []byte
}

func (ImageFile) isSource()    {}
func (ImageData) isSource()    {}
func (*PixelBuffer) isSource() {}
func (*Frame) isSource()       {}

func Resolve(src Source) (*Frame, error) {
	switch s := src.(type) {
	case ImageFile:
		data, err := os.ReadFile(string(s))
		if err != nil {
			return nil, err
		}
		return DecodeImage(data)
	case ImageData:
		return DecodeImage(s)
	case *PixelBuffer:
		return s.Frame()
	case *Frame:
		if err := s.validate(); err != nil {
			return nil, err
		}
		return s, nil
	}
	return nil, fmt.Errorf("%w: source %T", ErrUnsupportedFormat, src)
}

// Frame drops the alpha channel of the buffer.
func (p *PixelBuffer) Frame() (*Frame, error) {
	if p == nil || p.Width <= 0 || p.Height <= 0 {
		return nil, ErrEmptyFrame
	}
	if len(p.Pix) != p.Width*p.Height*4 {
		return nil, fmt.Errorf("%w: %d bytes for %dx%d RGBA pixels",
			ErrMalformedFrame, len(p.Pix), p.Width, p.Height)
	}
	frame := NewFrame(p.Width, p.Height)
	copyRGB(frame, p.Pix, p.Width*4, 0)
	return frame, nil
}
