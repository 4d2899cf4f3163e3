package session

import (
	"encoding/json"
	"fmt"
	"sync"
)

// Transport is the message-routing handle bound to one session. Posted
// messages go in one side and the session's stream loop drains the
// other, preserving arrival order. Transports for different sessions
// are fully independent and never block one another.
type Transport struct {
	inbound   chan json.RawMessage
	done      chan struct{}
	closeOnce sync.Once
}

// NewTransport creates a Transport with the given inbound buffer size.
func NewTransport(buffer int) *Transport {
	if buffer <= 0 {
		buffer = 32
	}
	return &Transport{
		inbound: make(chan json.RawMessage, buffer),
		done:    make(chan struct{}),
	}
}

// Deliver enqueues a message for the session's stream loop. It fails if
// the transport is closed or its buffer is full; it never blocks.
func (t *Transport) Deliver(msg json.RawMessage) error {
	select {
	case <-t.done:
		return fmt.Errorf("transport closed")
	default:
	}
	select {
	case t.inbound <- msg:
		return nil
	case <-t.done:
		return fmt.Errorf("transport closed")
	default:
		return fmt.Errorf("transport buffer full")
	}
}

// Recv returns the channel the stream loop reads inbound messages from.
func (t *Transport) Recv() <-chan json.RawMessage {
	return t.inbound
}

// Done is closed when the transport shuts down.
func (t *Transport) Done() <-chan struct{} {
	return t.done
}

// Close shuts the transport down. Safe to call more than once.
func (t *Transport) Close() {
	t.closeOnce.Do(func() {
		close(t.done)
	})
}
