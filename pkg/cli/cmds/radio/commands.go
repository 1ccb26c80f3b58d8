// Package radio provides console commands for the API-mode protocol.
package radio

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"github.com/abiosoft/ishell"

	"github.com/fieldlink/radiolink/pkg/cli/sh"
	"github.com/fieldlink/radiolink/pkg/frame"
)

func init() {
	sh.AddCmds(&ATCmd, &TxCmd, &RxCmd, &RecvCmd)
}

func timeoutArg(c *ishell.Context, pos int) (time.Duration, error) {
	if len(c.Args) > pos {
		return time.ParseDuration(c.Args[pos])
	}
	return sh.ShellFrom(c).Timeout(), nil
}

// ATCmd sends an AT command frame.
var ATCmd = ishell.Cmd{
	Name: "at",
	Help: "at <CC> [hex-parameter] - send an AT command, e.g. at ID",
	Func: sh.MustBeOpen(func(c *ishell.Context) {
		if len(c.Args) < 1 || len(c.Args[0]) != 2 {
			c.Err(fmt.Errorf("usage: at <two-letter command> [hex-parameter]"))
			return
		}
		f := &frame.ATCommand{Command: frame.Cmd(c.Args[0])}
		if len(c.Args) > 1 {
			param, err := hex.DecodeString(c.Args[1])
			if err != nil {
				c.Err(err)
				return
			}
			f.Parameter = param
		}
		if err := sh.ShellFrom(c).Link().Send(f); err != nil {
			c.Err(err)
			return
		}
		c.Println("OK")
	}),
}

// TxCmd transmits a payload to a destination address.
var TxCmd = ishell.Cmd{
	Name: "tx",
	Help: "tx <addr64-hex> <net16-hex> <hex-payload> - transmit data",
	Func: sh.MustBeOpen(func(c *ishell.Context) {
		if len(c.Args) < 3 {
			c.Err(fmt.Errorf("usage: tx <addr64-hex> <net16-hex> <hex-payload>"))
			return
		}
		addr, err := strconv.ParseUint(c.Args[0], 16, 64)
		if err != nil {
			c.Err(err)
			return
		}
		network, err := strconv.ParseUint(c.Args[1], 16, 16)
		if err != nil {
			c.Err(err)
			return
		}
		payload, err := hex.DecodeString(c.Args[2])
		if err != nil {
			c.Err(err)
			return
		}
		f := &frame.TransmitData{Addr: addr, Network: uint16(network), Payload: payload}
		if err = sh.ShellFrom(c).Link().Send(f); err != nil {
			c.Err(err)
			return
		}
		c.Println("OK")
	}),
}

// RxCmd reads a fixed number of raw bytes.
var RxCmd = ishell.Cmd{
	Name: "rx",
	Help: "rx <count> [timeout] - read raw bytes, e.g. rx 10 500ms",
	Func: sh.MustBeOpen(func(c *ishell.Context) {
		if len(c.Args) < 1 {
			c.Err(fmt.Errorf("usage: rx <count> [timeout]"))
			return
		}
		count, err := strconv.Atoi(c.Args[0])
		if err != nil {
			c.Err(err)
			return
		}
		timeout, err := timeoutArg(c, 1)
		if err != nil {
			c.Err(err)
			return
		}
		buf := make([]byte, count)
		n, err := sh.ShellFrom(c).Link().Receive(buf, timeout)
		if n > 0 {
			c.Printf("% X\n", buf[:n])
		}
		if err != nil {
			c.Err(err)
		}
	}),
}

// RecvCmd receives one complete frame and decodes it.
var RecvCmd = ishell.Cmd{
	Name: "recv",
	Help: "recv [timeout] - receive one frame and decode it",
	Func: sh.MustBeOpen(func(c *ishell.Context) {
		timeout, err := timeoutArg(c, 0)
		if err != nil {
			c.Err(err)
			return
		}
		raw, err := sh.ShellFrom(c).Link().ReceiveFrame(timeout)
		if err != nil {
			c.Err(err)
			return
		}
		switch raw.Type {
		case frame.TypeTransmitData:
			if f, err := raw.TransmitData(); err == nil {
				c.Printf("transmit-data addr=%016X network=%04X payload=% X\n",
					f.Addr, f.Network, f.Payload)
				return
			}
		case frame.TypeATCommand:
			if f, err := raw.ATCommand(); err == nil {
				c.Printf("at-command cmd=%04X parameter=% X\n", f.Command, f.Parameter)
				return
			}
		}
		c.Printf("frame type=%02X id=%02X body=% X\n", raw.Type, raw.FrameID, raw.Body)
	}),
}
