package frame

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCmd(t *testing.T) {
	require.Equal(t, uint16(0x4944), Cmd("ID"))
	require.Equal(t, uint16(0x4e49), Cmd("NI"))
	require.Panics(t, func() { Cmd("IDX") })
}

func TestFrameBytes(t *testing.T) {
	testCases := []struct {
		name   string
		frame  Frame
		expect []byte
	}{
		{
			"at command no parameter",
			&ATCommand{Command: 0x4944},
			[]byte{0x7e, 0x00, 0x04, 0x08, 0x55, 0x49, 0x44, 0x15},
		},
		{
			"at command with parameter",
			&ATCommand{Command: Cmd("ID"), Parameter: []byte{0x3b}},
			[]byte{0x7e, 0x00, 0x05, 0x08, 0x55, 0x49, 0x44, 0x3b, 0xda},
		},
		{
			"transmit data",
			&TransmitData{Addr: 0x0013a20040b21cf4, Network: 0xfffe, Payload: []byte{0x48, 0x69}},
			[]byte{
				0x7e, 0x00, 0x10, 0x10, 0x44,
				0x00, 0x13, 0xa2, 0x00, 0x40, 0xb2, 0x1c, 0xf4,
				0xff, 0xfe, 0x00, 0x00,
				0x48, 0x69, 0x46,
			},
		},
		{
			"transmit data empty payload",
			&TransmitData{Addr: 1, Network: 2},
			[]byte{
				0x7e, 0x00, 0x0e, 0x10, 0x44,
				0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01,
				0x00, 0x02, 0x00, 0x00,
				0xa8,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := tc.frame.Bytes()
			require.NoError(t, err)
			require.Equal(t, tc.expect, b)

			// length field counts frame type through payload end,
			// and the checksum identity holds over that region.
			counted := int(binary.BigEndian.Uint16(b[1:3]))
			require.Equal(t, len(b), counted+4)
			var sum byte
			for _, v := range b[3 : 3+counted] {
				sum += v
			}
			require.Equal(t, byte(0xff), sum+b[len(b)-1])

			var buf bytes.Buffer
			n, err := tc.frame.WriteTo(&buf)
			require.NoError(t, err)
			require.Equal(t, tc.expect, buf.Bytes())
			require.Equal(t, len(tc.expect), n)
		})
	}
}

func TestFrameBytesInvalidLength(t *testing.T) {
	// 14 + 238 counted bytes + 4 framing bytes hits MaxFrameSize.
	tx := &TransmitData{Payload: make([]byte, MaxFrameSize-transmitHeaderLen-overheadLen)}
	_, err := tx.Bytes()
	require.NoError(t, err)

	tx.Payload = append(tx.Payload, 0)
	_, err = tx.Bytes()
	require.Equal(t, ErrInvalidLength, err)
	_, err = tx.WriteTo(&bytes.Buffer{})
	require.Equal(t, ErrInvalidLength, err)

	at := &ATCommand{Command: Cmd("NI"), Parameter: make([]byte, MaxFrameSize)}
	_, err = at.Bytes()
	require.Equal(t, ErrInvalidLength, err)
}
