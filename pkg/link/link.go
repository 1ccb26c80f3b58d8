package link

import (
	"sync"
	"time"

	"github.com/golang/glog"

	"github.com/fieldlink/radiolink/pkg/frame"
)

// DefaultPollInterval is the wait between read attempts while a
// receive is in progress.
const DefaultPollInterval = 10 * time.Millisecond

// Link serializes access to a shared transport and drives timed
// receives over it.
type Link struct {
	// PollInterval overrides DefaultPollInterval when positive.
	PollInterval time.Duration

	transport Transport
	lock      sync.Mutex
	sleep     func(time.Duration)
}

// New creates a Link over the transport.
func New(t Transport) *Link {
	return &Link{transport: t, sleep: time.Sleep}
}

// Send encodes f and writes it to the transport. The transport lock is
// held for the duration of the write, so a send never interleaves with
// an in-progress receive.
func (l *Link) Send(f frame.Frame) error {
	b, err := f.Bytes()
	if err != nil {
		return err
	}
	return l.Write(b)
}

// Write sends raw bytes under the transport lock.
func (l *Link) Write(p []byte) error {
	l.lock.Lock()
	defer l.lock.Unlock()
	_, err := l.transport.Write(p)
	return err
}

// readState tracks one receive through its lifecycle.
type readState int

const (
	stateReading readState = iota
	stateDone
	stateTimedOut
)

// session is the transient state of one receive. elapsed is accounted
// in whole poll intervals, matching the coarse granularity promised to
// callers.
type session struct {
	dst       []byte
	collected int
	elapsed   time.Duration
	timeout   time.Duration
	state     readState
}

// Receive fills dst from the transport, polling until len(dst) bytes
// arrived or timeout elapsed. It returns the bytes collected and
// ErrTimeout if the count fell short; dst[:n] holds whatever arrived.
// The transport lock is held for the full duration of the call.
func (l *Link) Receive(dst []byte, timeout time.Duration) (int, error) {
	l.lock.Lock()
	defer l.lock.Unlock()
	return l.receive(dst, timeout)
}

// receive runs the poll loop. Callers must hold l.lock.
func (l *Link) receive(dst []byte, timeout time.Duration) (int, error) {
	interval := l.PollInterval
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	s := session{dst: dst, timeout: timeout}
	for s.state == stateReading {
		n, err := l.transport.TryRead(s.dst[s.collected:])
		if err != nil {
			return s.collected, err
		}
		s.collected += n
		glog.V(3).Infof("link: read %d bytes (%d/%d)", n, s.collected, len(s.dst))
		switch {
		case s.collected == len(s.dst):
			s.state = stateDone
		case s.elapsed >= s.timeout:
			s.state = stateTimedOut
		default:
			l.sleep(interval)
			s.elapsed += interval
		}
	}
	if s.state == stateTimedOut {
		glog.V(2).Infof("link: receive timed out after %v (%d/%d bytes)",
			s.elapsed, s.collected, len(s.dst))
		return s.collected, ErrTimeout
	}
	return s.collected, nil
}

// ReceiveFrame reads one complete frame: the delimiter and length
// field first, then the remainder announced by the length field. The
// transport lock is held across both reads so no other caller can
// split the frame. The checksum is verified before the frame is
// returned.
func (l *Link) ReceiveFrame(timeout time.Duration) (*frame.Raw, error) {
	l.lock.Lock()
	defer l.lock.Unlock()
	buf := make([]byte, frame.MaxFrameSize)
	if _, err := l.receive(buf[:3], timeout); err != nil {
		return nil, err
	}
	total, err := frame.EncodedLen(buf[:3])
	if err != nil {
		return nil, err
	}
	if _, err := l.receive(buf[3:total], timeout); err != nil {
		return nil, err
	}
	return frame.DecodeRaw(buf[:total])
}
