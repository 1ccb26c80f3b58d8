package websocket

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/net/websocket"
)

func TestTransport(t *testing.T) {
	received := make(chan []byte, 1)
	srv := httptest.NewServer(websocket.Handler(func(conn *websocket.Conn) {
		conn.PayloadType = websocket.BinaryFrame
		if _, err := conn.Write([]byte{0x7e, 0x00, 0x04}); err != nil {
			return
		}
		buf := make([]byte, 16)
		n, err := conn.Read(buf)
		if err != nil {
			return
		}
		received <- buf[:n]
	}))
	defer srv.Close()

	conn, err := websocket.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), "", srv.URL)
	require.NoError(t, err)
	tr := New(conn)
	defer tr.Close()

	// Collect the server's bytes across TryRead attempts; empty
	// attempts report 0 bytes without an error.
	buf := make([]byte, 3)
	collected := 0
	deadline := time.Now().Add(2 * time.Second)
	for collected < len(buf) {
		require.True(t, time.Now().Before(deadline), "no data from server")
		n, err := tr.TryRead(buf[collected:])
		require.NoError(t, err)
		collected += n
	}
	require.Equal(t, []byte{0x7e, 0x00, 0x04}, buf)

	n, err := tr.Write([]byte{0x08, 0x55})
	require.NoError(t, err)
	require.Equal(t, 2, n)
	select {
	case got := <-received:
		require.Equal(t, []byte{0x08, 0x55}, got)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not receive the write")
	}
}
