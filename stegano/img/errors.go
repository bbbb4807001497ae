package img

import "errors"

var (
	ErrUnsupportedFormat = errors.New("img: unsupported image format")
	ErrMalformedFrame    = errors.New("img: malformed frame")
	ErrEmptyFrame        = errors.New("img: empty frame")
)
