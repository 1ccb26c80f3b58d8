// Package serial adapts a local serial port to link.Transport.
package serial

import (
	"time"

	goserial "go.bug.st/serial"
)

// DefaultBaudRate matches the radio module's factory setting.
const DefaultBaudRate = 9600

// readTimeout bounds one TryRead attempt. Kept well under the link
// poll interval so an empty attempt returns promptly.
const readTimeout = 5 * time.Millisecond

// Port is an open serial device.
type Port struct {
	port goserial.Port
}

// Open opens the serial device at the given baud rate. baud <= 0
// selects DefaultBaudRate.
func Open(device string, baud int) (*Port, error) {
	if baud <= 0 {
		baud = DefaultBaudRate
	}
	p, err := goserial.Open(device, &goserial.Mode{BaudRate: baud})
	if err != nil {
		return nil, err
	}
	if err = p.SetReadTimeout(readTimeout); err != nil {
		p.Close()
		return nil, err
	}
	return &Port{port: p}, nil
}

// Write implements io.Writer.
func (p *Port) Write(b []byte) (int, error) {
	return p.port.Write(b)
}

// TryRead implements link.Transport. One attempt is bounded by the
// port read timeout; 0 means nothing arrived in that window.
func (p *Port) TryRead(b []byte) (int, error) {
	return p.port.Read(b)
}

// Flush discards unread input, e.g. to resynchronize on a delimiter.
func (p *Port) Flush() error {
	return p.port.ResetInputBuffer()
}

// Close closes the device.
func (p *Port) Close() error {
	return p.port.Close()
}
