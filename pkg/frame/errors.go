package frame

import "errors"

var (
	// ErrInvalidLength indicates the encoded frame would exceed
	// MaxFrameSize or the 16-bit length field.
	ErrInvalidLength = errors.New("invalid length")
	// ErrBadDelimiter indicates the data does not start with the
	// start delimiter.
	ErrBadDelimiter = errors.New("bad start delimiter")
	// ErrTruncated indicates the data ends before the frame does.
	ErrTruncated = errors.New("truncated frame")
	// ErrChecksumMismatch indicates the checksum does not match the
	// covered bytes.
	ErrChecksumMismatch = errors.New("checksum mismatch")
	// ErrUnexpectedType indicates the frame type does not match the
	// requested variant.
	ErrUnexpectedType = errors.New("unexpected frame type")
)
