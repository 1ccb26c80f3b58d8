package frame

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	t.Run("transmit data", func(t *testing.T) {
		tx := &TransmitData{
			Addr:    0x0013a20040b21cf4,
			Network: 0xfffe,
			Payload: []byte{1, 2, 3},
		}
		b, err := tx.Bytes()
		require.NoError(t, err)
		raw, err := DecodeRaw(b)
		require.NoError(t, err)
		require.Equal(t, TypeTransmitData, raw.Type)
		got, err := raw.TransmitData()
		require.NoError(t, err)
		require.Equal(t, tx, got)
	})

	t.Run("transmit data empty payload", func(t *testing.T) {
		tx := &TransmitData{Addr: 7, Network: 9}
		b, err := tx.Bytes()
		require.NoError(t, err)
		raw, err := DecodeRaw(b)
		require.NoError(t, err)
		got, err := raw.TransmitData()
		require.NoError(t, err)
		require.Equal(t, tx, got)
	})

	t.Run("at command", func(t *testing.T) {
		at := &ATCommand{Command: Cmd("NI"), Parameter: []byte{0xab, 0xcd}}
		b, err := at.Bytes()
		require.NoError(t, err)
		raw, err := DecodeRaw(b)
		require.NoError(t, err)
		require.Equal(t, TypeATCommand, raw.Type)
		got, err := raw.ATCommand()
		require.NoError(t, err)
		require.Equal(t, at, got)
	})

	t.Run("raw re-encode", func(t *testing.T) {
		at := &ATCommand{Command: Cmd("ID")}
		b, err := at.Bytes()
		require.NoError(t, err)
		raw, err := DecodeRaw(b)
		require.NoError(t, err)
		again, err := raw.Bytes()
		require.NoError(t, err)
		require.Equal(t, b, again)
	})
}

func TestDecodeRawErrors(t *testing.T) {
	good := []byte{0x7e, 0x00, 0x04, 0x08, 0x55, 0x49, 0x44, 0x15}

	testCases := []struct {
		name   string
		data   []byte
		expect error
	}{
		{"empty", nil, ErrTruncated},
		{"too short", good[:5], ErrTruncated},
		{"bad delimiter", append([]byte{0x00}, good[1:]...), ErrBadDelimiter},
		{"length beyond data", []byte{0x7e, 0x01, 0x00, 0x08, 0x55, 0x49, 0x44, 0x15}, ErrTruncated},
		{"length below minimum", []byte{0x7e, 0x00, 0x01, 0x08, 0x55, 0x49, 0x44, 0x15}, ErrTruncated},
		{"checksum mismatch", append(append([]byte{}, good[:7]...), 0x16), ErrChecksumMismatch},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeRaw(tc.data)
			require.Equal(t, tc.expect, err)
		})
	}

	t.Run("trailing bytes ignored", func(t *testing.T) {
		raw, err := DecodeRaw(append(append([]byte{}, good...), 0xff, 0xff))
		require.NoError(t, err)
		require.Equal(t, TypeATCommand, raw.Type)
	})
}

func TestVariantErrors(t *testing.T) {
	atRaw := &Raw{Type: TypeATCommand, FrameID: 0x55, Body: []byte{0x49, 0x44}}
	_, err := atRaw.TransmitData()
	require.Equal(t, ErrUnexpectedType, err)

	txRaw := &Raw{Type: TypeTransmitData, FrameID: 0x44, Body: []byte{1, 2, 3}}
	_, err = txRaw.ATCommand()
	require.Equal(t, ErrUnexpectedType, err)
	_, err = txRaw.TransmitData()
	require.Equal(t, ErrTruncated, err)

	short := &Raw{Type: TypeATCommand, FrameID: 0x55, Body: []byte{0x49}}
	_, err = short.ATCommand()
	require.Equal(t, ErrTruncated, err)
}

func TestEncodedLen(t *testing.T) {
	n, err := EncodedLen([]byte{0x7e, 0x00, 0x04})
	require.NoError(t, err)
	require.Equal(t, 8, n)

	_, err = EncodedLen([]byte{0x7e, 0x00})
	require.Equal(t, ErrTruncated, err)
	_, err = EncodedLen([]byte{0x00, 0x00, 0x04})
	require.Equal(t, ErrBadDelimiter, err)
	_, err = EncodedLen([]byte{0x7e, 0xff, 0xff})
	require.Equal(t, ErrInvalidLength, err)
	_, err = EncodedLen([]byte{0x7e, 0x00, 0x01})
	require.Equal(t, ErrInvalidLength, err)
}
