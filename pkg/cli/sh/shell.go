// Package sh provides the ishell backed interactive radio console.
package sh

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/abiosoft/ishell"

	"github.com/fieldlink/radiolink/pkg/link"
	"github.com/fieldlink/radiolink/pkg/link/serial"
)

// Config provides common options for the console.
type Config struct {
	// Device is the serial device of the radio module.
	Device string
	// Baud is the serial baud rate.
	Baud int
	// Timeout is the default receive timeout.
	Timeout time.Duration
}

var defaultConfig = Config{
	Baud:    serial.DefaultBaudRate,
	Timeout: time.Second,
}

func init() {
	if val := os.Getenv("RADIOLINK_DEVICE"); val != "" {
		defaultConfig.Device = val
	}
	if val := os.Getenv("RADIOLINK_BAUD"); val != "" {
		if baud, err := strconv.Atoi(val); err == nil {
			defaultConfig.Baud = baud
		}
	}
}

// SetupFlags sets up command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.Device, "device", defaultConfig.Device, "Serial device of the radio module.")
	flag.IntVar(&defaultConfig.Baud, "baud", defaultConfig.Baud, "Serial baud rate.")
	flag.DurationVar(&defaultConfig.Timeout, "timeout", defaultConfig.Timeout, "Default receive timeout.")
}

// NewConfig creates a Config with default configurations.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

const (
	shellKey          = "$shell"
	unconnectedPrompt = "[none] > "
)

var (
	// flags

	evalOnly bool

	// commands
	commands = []*ishell.Cmd{
		&OpenCmd,
		&CloseCmd,
	}
)

func init() {
	flag.BoolVar(&evalOnly, "e", evalOnly, "Evaluation only, no interactive shell.")
}

// AddCmds is used by other command providers during init func.
func AddCmds(cmds ...*ishell.Cmd) {
	commands = append(commands, cmds...)
}

// Shell is the interactive console, bound to at most one open port.
type Shell struct {
	Interactive bool

	Shell  *ishell.Shell
	Config *Config

	port *serial.Port
	link *link.Link
}

// New creates a new shell.
func New(conf *Config) *Shell {
	s := &Shell{
		Interactive: !evalOnly,
		Shell:       ishell.New(),
		Config:      conf,
	}
	s.Shell.Set(shellKey, s)
	s.Shell.SetPrompt(unconnectedPrompt)
	for _, cmd := range commands {
		s.Shell.AddCmd(cmd)
	}
	return s
}

// ShellFrom gets Shell from ishell context.
func ShellFrom(c *ishell.Context) *Shell {
	return c.Get(shellKey).(*Shell)
}

// MustBeOpen wraps a command func that requires an open port.
func MustBeOpen(fn func(c *ishell.Context)) func(c *ishell.Context) {
	return func(c *ishell.Context) {
		if ShellFrom(c).link == nil {
			c.Err(fmt.Errorf("no port open"))
			return
		}
		fn(c)
	}
}

// Open opens the serial device and binds a link to it. An already
// open device is closed first.
func (s *Shell) Open(device string, baud int) error {
	if err := s.Close(); err != nil {
		return err
	}
	port, err := serial.Open(device, baud)
	if err != nil {
		return err
	}
	s.port, s.link = port, link.New(port)
	s.Shell.SetPrompt("[" + device + "] > ")
	return nil
}

// Close closes the open device, if any.
func (s *Shell) Close() error {
	if s.port == nil {
		return nil
	}
	err := s.port.Close()
	s.port, s.link = nil, nil
	s.Shell.SetPrompt(unconnectedPrompt)
	return err
}

// Link returns the link over the open port, or nil.
func (s *Shell) Link() *link.Link {
	return s.link
}

// Timeout returns the default receive timeout.
func (s *Shell) Timeout() time.Duration {
	return s.Config.Timeout
}

// OpenCmd opens the radio serial port.
var OpenCmd = ishell.Cmd{
	Name: "open",
	Help: "open [device] [baud] - open the radio serial port",
	Func: func(c *ishell.Context) {
		s := ShellFrom(c)
		device, baud := s.Config.Device, s.Config.Baud
		if len(c.Args) > 0 {
			device = c.Args[0]
		}
		if len(c.Args) > 1 {
			b, err := strconv.Atoi(c.Args[1])
			if err != nil {
				c.Err(err)
				return
			}
			baud = b
		}
		if device == "" {
			c.Err(fmt.Errorf("no device specified"))
			return
		}
		if err := s.Open(device, baud); err != nil {
			c.Err(err)
			return
		}
		c.Println("open", device)
	},
}

// CloseCmd closes the open port.
var CloseCmd = ishell.Cmd{
	Name: "close",
	Help: "close - close the open port",
	Func: MustBeOpen(func(c *ishell.Context) {
		if err := ShellFrom(c).Close(); err != nil {
			c.Err(err)
		}
	}),
}

// Main is the entry of the console.
func Main() {
	flag.Parse()
	s := New(NewConfig())
	defer s.Close()
	if !s.Interactive {
		if err := s.Shell.Process(flag.Args()...); err != nil {
			os.Exit(1)
		}
		return
	}
	s.Shell.Println("radiolink console")
	s.Shell.Run()
}
