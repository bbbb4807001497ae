package codec

import (
	"errors"
	"fmt"

	"adamant/stegano/bits"
	"adamant/stegano/container"
	"adamant/stegano/huffman"
	"adamant/stegano/img"
	"adamant/stegano/text"
	"adamant/util"
)

var ErrNotAdamant = errors.New("codec: image does not carry an adamant container")

type Options struct {
	// pixel order used when encoding, tried first when decoding
	Layout img.Layout
	// image file format produced by Encode
	Format img.Format
	// strip C style comments before encoding
	StripComments bool
	// NFC normalize text before mapping it to Latin-1
	Normalize bool
}

func DefaultOptions() Options {
	return Options{
		Layout:    img.Spiral,
		Format:    img.FormatBMP,
		Normalize: true,
	}
}

/*
 * Codec turns text into images and back. It holds no state besides its
 * options, so one value may be shared between goroutines.
 */
type Codec struct {
	opts   Options
	logger *util.Logger
}

func New(opts Options, logger *util.Logger) *Codec {
	if logger == nil {
		logger = util.NopLogger()
	}
	if opts.Format == img.FormatUnknown {
		opts.Format = img.FormatBMP
	}
	return &Codec{
		opts,
		logger,
	}
}

func (c *Codec) Options() Options {
	return c.opts
}

// Prepare maps text to the bytes which get compressed.
func (c *Codec) Prepare(s string) ([]byte, error) {
	if c.opts.StripComments {
		s = text.RemoveComments(s)
	}
	return text.ToBytes(s, c.opts.Normalize)
}

// Histogram of the prepared text, most frequent symbols first.
func (c *Codec) Histogram(s string) (huffman.Histogram, error) {
	data, err := c.Prepare(s)
	if err != nil {
		return nil, err
	}
	return huffman.NewHistogram(data), nil
}

// Encode returns an image file carrying s.
func (c *Codec) Encode(s string) ([]byte, error) {
	data, err := c.Prepare(s)
	if err != nil {
		return nil, err
	}
	return c.EncodeBytes(data)
}

// EncodeBytes is Encode for data which needs no text mapping.
func (c *Codec) EncodeBytes(data []byte) ([]byte, error) {
	frame, err := c.EncodeFrame(data)
	if err != nil {
		return nil, err
	}
	return img.Encode(frame, c.opts.Format)
}

func (c *Codec) EncodeFrame(data []byte) (*img.Frame, error) {
	b, err := container.Assemble(data)
	if err != nil {
		return nil, err
	}
	frame, err := img.Paint(b, c.opts.Layout)
	if err != nil {
		return nil, err
	}
	c.logger.LogInfof("encoded %d bytes into %d bits, %dx%d pixels (%s)",
		len(data), len(b), frame.Width, frame.Height, c.opts.Layout)
	return frame, nil
}

// Decode returns the text carried by src.
func (c *Codec) Decode(src img.Source) (string, error) {
	text, _, err := c.DecodeWithInfo(src)
	return text, err
}

// DecodeWithInfo is Decode which also describes the container it read.
func (c *Codec) DecodeWithInfo(src img.Source) (string, *Info, error) {
	parsed, info, err := c.open(src)
	if err != nil {
		return "", nil, err
	}
	data, err := parsed.Decode()
	if err != nil {
		return "", nil, err
	}
	return text.FromBytes(data), info, nil
}

func (c *Codec) DecodeBytes(src img.Source) ([]byte, error) {
	parsed, _, err := c.open(src)
	if err != nil {
		return nil, err
	}
	return parsed.Decode()
}

// Info describes a container found in an image.
type Info struct {
	Layout  img.Layout
	Width   int
	Height  int
	Header  container.Header
	Symbols int
}

// Capacity is the number of bits the pixels can hold.
func (i *Info) Capacity() int {
	return i.Width * i.Height * img.PixelBits
}

// Inspect reads the container of src without decompressing its content.
func (c *Codec) Inspect(src img.Source) (*Info, error) {
	_, info, err := c.open(src)
	return info, err
}

func (c *Codec) open(src img.Source) (*container.Container, *Info, error) {
	frame, err := img.Resolve(src)
	if err != nil {
		return nil, nil, err
	}
	b, layout, err := c.locate(frame)
	if err != nil {
		return nil, nil, err
	}
	parsed, err := container.ParseContainer(b)
	if err != nil {
		return nil, nil, err
	}
	return parsed, &Info{
		Layout:  layout,
		Width:   frame.Width,
		Height:  frame.Height,
		Header:  parsed.Header,
		Symbols: len(parsed.Table),
	}, nil
}

/*
 * locate looks for the container signature in the configured layout and,
 * when it does not show up there, in the other one. Only the header pixels
 * are read while looking; the rest of the container is read once its
 * header has been checked against the size of the frame.
 */
func (c *Codec) locate(frame *img.Frame) (bits.Bits, img.Layout, error) {
	capacity := frame.Capacity()
	for _, layout := range []img.Layout{c.opts.Layout, c.opts.Layout.Other()} {
		b, err := frame.ReadBits(layout, min(container.HeaderBits, capacity))
		if err != nil {
			return nil, layout, err
		}
		if !container.HasSignature(b) {
			continue
		}
		util.DebugPrintf("container found in %s layout", layout)
		header, err := container.ParseHeader(b)
		if err != nil {
			return nil, layout, err
		}
		if header.TotalBits() > capacity {
			return nil, layout, fmt.Errorf("%w: header declares %d bits, %dx%d pixels hold %d",
				container.ErrMalformedHeader, header.TotalBits(), frame.Width, frame.Height, capacity)
		}
		b, err = frame.ReadBits(layout, header.TotalBits())
		return b, layout, err
	}
	return nil, c.opts.Layout, fmt.Errorf("%w (%dx%d pixels)",
		ErrNotAdamant, frame.Width, frame.Height)
}
