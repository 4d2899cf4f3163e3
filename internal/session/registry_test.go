package session

import (
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestRegistryCreateGetClose(t *testing.T) {
	r := NewRegistry()

	s := r.Create("lk-test-key-12345678", NewTransport(8))
	if s.ID == "" {
		t.Fatal("expected non-empty session id")
	}
	if r.Count() != 1 {
		t.Errorf("expected 1 session, got %d", r.Count())
	}

	got, err := r.Get(s.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.APIKey != "lk-test-key-12345678" {
		t.Errorf("unexpected api key: %q", got.APIKey)
	}

	r.Close(s.ID)
	if r.Count() != 0 {
		t.Errorf("expected 0 sessions after close, got %d", r.Count())
	}
	if _, err := r.Get(s.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after close, got %v", err)
	}

	// Transport must be shut down so the stream loop unblocks.
	select {
	case <-s.Transport.Done():
	default:
		t.Error("expected transport closed after session close")
	}
}

func TestRegistryCloseIsIdempotent(t *testing.T) {
	r := NewRegistry()
	s := r.Create("lk-test-key-12345678", NewTransport(8))
	r.Close(s.ID)
	r.Close(s.ID)
	r.Close("never-existed")
}

func TestRegistryTouchKeepsSessionAlive(t *testing.T) {
	clock := newFakeClock()
	r := NewRegistryWithClock(clock.Now)

	s := r.Create("lk-test-key-12345678", NewTransport(8))

	clock.Advance(45 * time.Minute)
	if err := r.Touch(s.ID); err != nil {
		t.Fatalf("Touch failed: %v", err)
	}

	clock.Advance(45 * time.Minute)
	if removed := r.Sweep(IdleExpiry); removed != 0 {
		t.Errorf("touched session should survive the sweep, removed %d", removed)
	}
	if _, err := r.Get(s.ID); err != nil {
		t.Errorf("expected session still present: %v", err)
	}
}

func TestRegistrySweepRemovesIdleSessions(t *testing.T) {
	clock := newFakeClock()
	r := NewRegistryWithClock(clock.Now)

	stale := r.Create("lk-test-key-12345678", NewTransport(8))
	clock.Advance(61 * time.Minute)
	fresh := r.Create("lk-other-key-1234567", NewTransport(8))

	removed := r.Sweep(IdleExpiry)
	if removed != 1 {
		t.Fatalf("expected 1 removed, got %d", removed)
	}
	if _, err := r.Get(stale.ID); !errors.Is(err, ErrNotFound) {
		t.Error("stale session should be gone")
	}
	if _, err := r.Get(fresh.ID); err != nil {
		t.Errorf("fresh session should survive: %v", err)
	}

	select {
	case <-stale.Transport.Done():
	default:
		t.Error("swept session's transport should be closed")
	}
}

func TestRegistryTouchUnknown(t *testing.T) {
	r := NewRegistry()
	if err := r.Touch("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestTransportFIFO(t *testing.T) {
	tr := NewTransport(8)

	for _, msg := range []string{`{"id":1}`, `{"id":2}`, `{"id":3}`} {
		if err := tr.Deliver(json.RawMessage(msg)); err != nil {
			t.Fatalf("Deliver failed: %v", err)
		}
	}

	for want := 1; want <= 3; want++ {
		got := <-tr.Recv()
		var m struct {
			ID int `json:"id"`
		}
		if err := json.Unmarshal(got, &m); err != nil {
			t.Fatal(err)
		}
		if m.ID != want {
			t.Errorf("expected message %d, got %d", want, m.ID)
		}
	}
}

func TestTransportDeliverAfterClose(t *testing.T) {
	tr := NewTransport(8)
	tr.Close()
	tr.Close() // idempotent

	if err := tr.Deliver(json.RawMessage(`{}`)); err == nil {
		t.Error("expected error delivering to closed transport")
	}
}

func TestTransportBufferFull(t *testing.T) {
	tr := NewTransport(1)
	if err := tr.Deliver(json.RawMessage(`{}`)); err != nil {
		t.Fatal(err)
	}
	if err := tr.Deliver(json.RawMessage(`{}`)); err == nil {
		t.Error("expected error when buffer is full")
	}
}
