// Package websocket adapts a websocket connection to link.Transport,
// carrying radio frames to and from a browser dashboard.
package websocket

import (
	"os"
	"time"

	"golang.org/x/net/websocket"
)

// readTimeout bounds one TryRead attempt.
const readTimeout = 5 * time.Millisecond

// Transport implements link.Transport over a websocket connection.
type Transport struct {
	conn *websocket.Conn
}

// New wraps an established connection. Frames travel as binary
// messages.
func New(conn *websocket.Conn) *Transport {
	conn.PayloadType = websocket.BinaryFrame
	return &Transport{conn: conn}
}

// Write implements io.Writer. Each call sends one binary message.
func (t *Transport) Write(p []byte) (int, error) {
	return t.conn.Write(p)
}

// TryRead implements link.Transport. One attempt is bounded by a read
// deadline; an expired deadline reports 0 bytes, not an error.
func (t *Transport) TryRead(p []byte) (int, error) {
	if err := t.conn.SetReadDeadline(time.Now().Add(readTimeout)); err != nil {
		return 0, err
	}
	n, err := t.conn.Read(p)
	if err != nil && os.IsTimeout(err) {
		return n, nil
	}
	return n, err
}

// Close closes the connection.
func (t *Transport) Close() error {
	return t.conn.Close()
}
