package container

import "errors"

var (
	// ErrMalformedHeader is returned when the header is too short or carries a wrong signature
	ErrMalformedHeader = errors.New("container: malformed header")

	// ErrUnsupportedVersion is returned for any format version other than 0
	ErrUnsupportedVersion = errors.New("container: unsupported version")
)
