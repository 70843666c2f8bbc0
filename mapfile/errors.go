package mapfile

import "errors"

var (
	// ErrParse wraps HCL syntax and decoding diagnostics.
	ErrParse = errors.New("mapfile: cannot parse map")

	// ErrInvalidMap indicates a well-formed file describing an invalid map.
	ErrInvalidMap = errors.New("mapfile: invalid map")
)
