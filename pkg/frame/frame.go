package frame

import (
	"encoding/binary"
	"io"
)

// StartDelimiter marks the beginning of every API-mode frame.
const StartDelimiter byte = 0x7E

// Frame types.
const (
	// TypeTransmitData carries a payload to a destination address.
	TypeTransmitData byte = 0x10
	// TypeATCommand carries a command for the local radio module.
	TypeATCommand byte = 0x08
)

// Frame IDs stamped into the byte after the frame type.
const (
	transmitFrameID byte = 0x44
	atFrameID       byte = 0x55
)

// Field counts of the counted region (frame type through the fixed
// fields, payload excluded), as reflected by the length field.
const (
	transmitHeaderLen = 14
	atHeaderLen       = 4
)

// overheadLen is the framing around the counted region: the delimiter,
// the two length bytes and the checksum.
const overheadLen = 4

// MaxFrameSize bounds a complete encoded frame, delimiter through
// checksum. It matches the UART buffer capacity on the radio side.
const MaxFrameSize = 256

// Frame is one complete protocol unit that can be encoded for the wire.
type Frame interface {
	// Bytes returns the encoded frame, delimiter through checksum.
	Bytes() ([]byte, error)
	// WriteTo encodes the frame and writes it to w.
	WriteTo(w io.Writer) (n int, err error)
}

// Cmd converts a two-letter command name to its 16-bit code, high byte
// first: Cmd("ID") == 0x4944.
func Cmd(name string) uint16 {
	if len(name) != 2 {
		panic("frame: command name must be two letters")
	}
	return uint16(name[0])<<8 | uint16(name[1])
}

// TransmitData is the frame variant carrying a payload to a remote
// module.
type TransmitData struct {
	// Addr is the 64-bit destination address.
	Addr uint64
	// Network is the 16-bit network address.
	Network uint16
	// Payload is sent verbatim.
	Payload []byte
}

// Bytes implements Frame.
func (f *TransmitData) Bytes() ([]byte, error) {
	counted := transmitHeaderLen + len(f.Payload)
	if counted > 0xffff || counted+overheadLen > MaxFrameSize {
		return nil, ErrInvalidLength
	}
	b := make([]byte, counted+overheadLen)
	b[0] = StartDelimiter
	binary.BigEndian.PutUint16(b[1:3], uint16(counted))
	b[3] = TypeTransmitData
	b[4] = transmitFrameID
	binary.BigEndian.PutUint64(b[5:13], f.Addr)
	binary.BigEndian.PutUint16(b[13:15], f.Network)
	// b[15], b[16] are reserved and stay zero.
	copy(b[17:], f.Payload)
	b[len(b)-1] = Checksum(b[3 : len(b)-1])
	return b, nil
}

// WriteTo implements Frame.
func (f *TransmitData) WriteTo(w io.Writer) (int, error) {
	b, err := f.Bytes()
	if err != nil {
		return 0, err
	}
	return w.Write(b)
}

// ATCommand is the frame variant carrying a command for the local
// radio module.
type ATCommand struct {
	// Command is the 16-bit command code, emitted high byte first:
	// the two-letter command name in ASCII, e.g. 0x4944 for "ID".
	Command uint16
	// Parameter is the optional command parameter, sent verbatim.
	Parameter []byte
}

// Bytes implements Frame.
func (f *ATCommand) Bytes() ([]byte, error) {
	counted := atHeaderLen + len(f.Parameter)
	if counted > 0xffff || counted+overheadLen > MaxFrameSize {
		return nil, ErrInvalidLength
	}
	b := make([]byte, counted+overheadLen)
	b[0] = StartDelimiter
	binary.BigEndian.PutUint16(b[1:3], uint16(counted))
	b[3] = TypeATCommand
	b[4] = atFrameID
	binary.BigEndian.PutUint16(b[5:7], f.Command)
	copy(b[7:], f.Parameter)
	b[len(b)-1] = Checksum(b[3 : len(b)-1])
	return b, nil
}

// WriteTo implements Frame.
func (f *ATCommand) WriteTo(w io.Writer) (int, error) {
	b, err := f.Bytes()
	if err != nil {
		return 0, err
	}
	return w.Write(b)
}
