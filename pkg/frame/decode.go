package frame

import "encoding/binary"

// Raw is one delimited frame as read off the wire, after checksum
// verification and before variant decoding.
type Raw struct {
	// Type is the frame type byte.
	Type byte
	// FrameID is the byte following the frame type.
	FrameID byte
	// Body holds the bytes after the frame ID and before the checksum.
	Body []byte
}

// DecodeRaw splits and verifies one complete frame at the start of b.
// Bytes beyond the frame are ignored, so b may be a buffer prefix.
func DecodeRaw(b []byte) (*Raw, error) {
	// Shortest frame: delimiter, length, type, frame ID, checksum.
	if len(b) < overheadLen+2 {
		return nil, ErrTruncated
	}
	if b[0] != StartDelimiter {
		return nil, ErrBadDelimiter
	}
	counted := int(binary.BigEndian.Uint16(b[1:3]))
	if counted < 2 || len(b) < counted+overheadLen {
		return nil, ErrTruncated
	}
	covered := b[3 : 3+counted]
	if !Verify(covered, b[3+counted]) {
		return nil, ErrChecksumMismatch
	}
	body := make([]byte, counted-2)
	copy(body, covered[2:])
	return &Raw{Type: covered[0], FrameID: covered[1], Body: body}, nil
}

// EncodedLen returns the total size of the frame whose first three
// bytes (delimiter and length field) are in header.
func EncodedLen(header []byte) (int, error) {
	if len(header) < 3 {
		return 0, ErrTruncated
	}
	if header[0] != StartDelimiter {
		return 0, ErrBadDelimiter
	}
	counted := int(binary.BigEndian.Uint16(header[1:3]))
	if counted < 2 || counted+overheadLen > MaxFrameSize {
		return 0, ErrInvalidLength
	}
	return counted + overheadLen, nil
}

// Bytes re-encodes the frame, delimiter through checksum.
func (r *Raw) Bytes() ([]byte, error) {
	counted := 2 + len(r.Body)
	if counted > 0xffff || counted+overheadLen > MaxFrameSize {
		return nil, ErrInvalidLength
	}
	b := make([]byte, counted+overheadLen)
	b[0] = StartDelimiter
	binary.BigEndian.PutUint16(b[1:3], uint16(counted))
	b[3] = r.Type
	b[4] = r.FrameID
	copy(b[5:], r.Body)
	b[len(b)-1] = Checksum(b[3 : len(b)-1])
	return b, nil
}

// TransmitData decodes the transmit-data fields out of the frame.
func (r *Raw) TransmitData() (*TransmitData, error) {
	if r.Type != TypeTransmitData {
		return nil, ErrUnexpectedType
	}
	if len(r.Body) < transmitHeaderLen-2 {
		return nil, ErrTruncated
	}
	f := &TransmitData{
		Addr:    binary.BigEndian.Uint64(r.Body[0:8]),
		Network: binary.BigEndian.Uint16(r.Body[8:10]),
	}
	// Two reserved bytes sit between the network address and payload.
	if payload := r.Body[12:]; len(payload) > 0 {
		f.Payload = append([]byte(nil), payload...)
	}
	return f, nil
}

// ATCommand decodes the AT-command fields out of the frame.
func (r *Raw) ATCommand() (*ATCommand, error) {
	if r.Type != TypeATCommand {
		return nil, ErrUnexpectedType
	}
	if len(r.Body) < atHeaderLen-2 {
		return nil, ErrTruncated
	}
	f := &ATCommand{Command: binary.BigEndian.Uint16(r.Body[0:2])}
	if param := r.Body[2:]; len(param) > 0 {
		f.Parameter = append([]byte(nil), param...)
	}
	return f, nil
}
