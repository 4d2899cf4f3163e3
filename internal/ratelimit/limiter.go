// Package ratelimit gates free-tier requests. Callers using their own
// API key are never subject to these limits.
package ratelimit

import (
	"fmt"
	"sync"
	"time"
)

const (
	// QPSLimit is the number of requests allowed per client in any
	// trailing one-second window.
	QPSLimit = 2
	// DailyLimit is the number of requests allowed per client per
	// rolling 24-hour period.
	DailyLimit = 50

	dailyWindow = 24 * time.Hour
)

// Limiter tracks per-client request timestamps and daily counts.
// All clients' daily counters share a single reset point: the first
// check after the 24-hour window elapses clears every counter at once.
type Limiter struct {
	mu         sync.Mutex
	recent     map[string][]time.Time
	daily      map[string]int
	dailyReset time.Time
	now        func() time.Time
}

// New creates a Limiter using the wall clock.
func New() *Limiter {
	return NewWithClock(time.Now)
}

// NewWithClock creates a Limiter with an injectable clock for tests.
func NewWithClock(now func() time.Time) *Limiter {
	return &Limiter{
		recent:     make(map[string][]time.Time),
		daily:      make(map[string]int),
		dailyReset: now(),
		now:        now,
	}
}

// Check decides whether a free-tier request from clientID is allowed
// and records it if so. The check and the record are one atomic unit so
// concurrent callers cannot both slip past the limit. The reason string
// is user-facing and distinguishes the per-second from the daily cap.
func (l *Limiter) Check(clientID string) (allowed bool, reason string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	// All daily counters reset together once the window elapses.
	if now.Sub(l.dailyReset) > dailyWindow {
		l.daily = make(map[string]int)
		l.dailyReset = now
	}

	// Sliding one-second window: keep only timestamps newer than now-1s.
	cutoff := now.Add(-time.Second)
	recent := l.recent[clientID][:0]
	for _, t := range l.recent[clientID] {
		if t.After(cutoff) {
			recent = append(recent, t)
		}
	}
	l.recent[clientID] = recent

	if len(recent) >= QPSLimit {
		return false, fmt.Sprintf("Rate limit exceeded: %d requests per second. Add your own API key to remove limits.", QPSLimit)
	}
	if l.daily[clientID] >= DailyLimit {
		return false, fmt.Sprintf("Daily limit exceeded: %d requests per day. Add your own API key to remove limits.", DailyLimit)
	}

	l.recent[clientID] = append(l.recent[clientID], now)
	l.daily[clientID]++
	return true, ""
}
