// Package frame encodes and decodes API-mode radio frames.
package frame

// API mode wraps every payload in a delimited binary frame:
//
//	byte 0:    start delimiter (0x7E)
//	bytes 1-2: length, big-endian, counting frame type through the last
//	           payload byte
//	byte 3:    frame type
//	byte 4:    frame ID
//	bytes 5..: variant fields and payload
//	last byte: checksum = 0xFF - (sum of bytes 3..N mod 256)
//
// The length field never counts the delimiter, the length bytes or the
// checksum. The checksum covers exactly the counted region.
//
// Builders are pure: they perform no I/O and touch no shared state, so
// they are safe for concurrent use. Transport is handled separately by
// the link package.
