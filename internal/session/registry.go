// Package session owns the mapping from session identifiers to their
// bound credential and transport. Sessions are created when a streaming
// connection is accepted, touched on every routed message, and removed
// on disconnect or when idle past the expiry window.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/user/companyscout/internal/types"
)

// IdleExpiry is how long a session may sit without activity before a
// sweep removes it.
const IdleExpiry = time.Hour

// ErrNotFound is returned when a session id is unknown or already closed.
var ErrNotFound = errors.New("session not found")

// Session binds one streaming connection to its credential and
// message-routing transport. The credential is fixed at creation:
// messages routed to the session later always use it, never the
// posting request's own credential.
type Session struct {
	ID         types.SessionID
	APIKey     string
	Transport  *Transport
	CreatedAt  time.Time
	lastActive time.Time
}

// Registry is the owner of all live sessions. All map access goes
// through one mutex; the lock is never held across network calls.
type Registry struct {
	mu       sync.Mutex
	sessions map[types.SessionID]*Session
	now      func() time.Time
}

// NewRegistry creates an empty Registry using the wall clock.
func NewRegistry() *Registry {
	return NewRegistryWithClock(time.Now)
}

// NewRegistryWithClock creates a Registry with an injectable clock.
func NewRegistryWithClock(now func() time.Time) *Registry {
	return &Registry{
		sessions: make(map[types.SessionID]*Session),
		now:      now,
	}
}

// Create registers a new session bound to the given credential and
// transport and returns it.
func (r *Registry) Create(apiKey string, transport *Transport) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	s := &Session{
		ID:         types.NewSessionID(),
		APIKey:     apiKey,
		Transport:  transport,
		CreatedAt:  now,
		lastActive: now,
	}
	r.sessions[s.ID] = s
	return s
}

// Get returns the session for id, or ErrNotFound.
func (r *Registry) Get(id types.SessionID) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

// Touch refreshes the session's last-active time, keeping it alive.
func (r *Registry) Touch(id types.SessionID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return ErrNotFound
	}
	s.lastActive = r.now()
	return nil
}

// Close removes the session unconditionally and shuts down its
// transport. Closing an unknown id is a no-op.
func (r *Registry) Close(id types.SessionID) {
	r.mu.Lock()
	s, ok := r.sessions[id]
	if ok {
		delete(r.sessions, id)
	}
	r.mu.Unlock()

	if ok {
		s.Transport.Close()
	}
}

// Sweep removes every session idle longer than maxIdle in one pass and
// returns how many were removed. Swept transports are closed so any
// still-open stream loop unblocks.
func (r *Registry) Sweep(maxIdle time.Duration) int {
	r.mu.Lock()
	cutoff := r.now().Add(-maxIdle)
	var expired []*Session
	for id, s := range r.sessions {
		if s.lastActive.Before(cutoff) {
			expired = append(expired, s)
			delete(r.sessions, id)
		}
	}
	r.mu.Unlock()

	for _, s := range expired {
		s.Transport.Close()
	}
	return len(expired)
}

// Count returns the number of active sessions.
func (r *Registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
