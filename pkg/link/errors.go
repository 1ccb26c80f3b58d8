package link

import "errors"

var (
	// ErrTimeout indicates a receive collected fewer bytes than
	// requested within its timeout. The destination buffer keeps the
	// partial data; it must not be trusted as a complete frame.
	ErrTimeout = errors.New("receive timeout")
)
