package link

import "io"

// Transport is the byte-oriented channel beneath the protocol. It is
// opaque: writes are not confirmed, and a read attempt reports only
// how many bytes it got.
type Transport interface {
	io.Writer

	// TryRead performs one short attempt to receive up to len(p)
	// bytes into p. It returns 0 when nothing was available and never
	// blocks beyond an implementation-internal short timeout.
	TryRead(p []byte) (n int, err error)
}
