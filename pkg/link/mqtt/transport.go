package mqtt

import (
	"bytes"
	"context"
	"sync"
)

// Default topics of the bridge transport, relative to the queue's
// topic prefix. The bridge daemon publishes received radio bytes on
// the rx topic and forwards anything from the tx topic to the radio.
const (
	DefaultRxTopic = "rx"
	DefaultTxTopic = "tx"
)

// Transport implements link.Transport over an MQTT bridge: writes are
// published to the tx topic, and payloads arriving on the rx topic are
// buffered as a byte stream for TryRead.
type Transport struct {
	Queue   *Queue
	RxTopic string
	TxTopic string

	bufLock sync.Mutex
	buf     bytes.Buffer
}

// NewTransport creates a Transport with the default topics.
func NewTransport(q *Queue) *Transport {
	return &Transport{Queue: q, RxTopic: DefaultRxTopic, TxTopic: DefaultTxTopic}
}

// WithTopics overrides the rx/tx topics.
func (t *Transport) WithTopics(rx, tx string) *Transport {
	t.RxTopic, t.TxTopic = rx, tx
	return t
}

// Write implements io.Writer.
func (t *Transport) Write(p []byte) (int, error) {
	token := t.Queue.Pub(t.TxTopic, p)
	token.Wait()
	if err := token.Error(); err != nil {
		return 0, err
	}
	return len(p), nil
}

// TryRead implements link.Transport. It drains buffered bytes and
// never waits for the broker.
func (t *Transport) TryRead(p []byte) (int, error) {
	t.bufLock.Lock()
	defer t.bufLock.Unlock()
	if t.buf.Len() == 0 {
		return 0, nil
	}
	return t.buf.Read(p)
}

// Run implements framework.Runnable. It keeps the rx subscription
// alive until the context is canceled.
func (t *Transport) Run(ctx context.Context) error {
	sub := t.Queue.Sub(t.RxTopic, t.handleMsg)
	defer sub.Close()
	<-ctx.Done()
	return ctx.Err()
}

func (t *Transport) handleMsg(_ string, payload []byte) {
	t.bufLock.Lock()
	t.buf.Write(payload)
	t.bufLock.Unlock()
}
