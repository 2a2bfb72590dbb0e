// internal/store/memory.go
//
// In-memory session store.
//
// Characteristics:
//   - Holds *game.Session objects keyed by session ID.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Sessions idle longer than the TTL are dropped by Sweep.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/robalobadob/wordscramble/internal/game"
)

// ErrNotFound is returned by Get for unknown session IDs.
var ErrNotFound = errors.New("session not found")

// Store defines the persistence interface for player sessions.
type Store interface {
	// Get retrieves a session by ID.
	Get(ctx context.Context, id string) (*game.Session, error)

	// GetOrCreate returns the session for id, creating an empty one if needed.
	GetOrCreate(ctx context.Context, id string) (*game.Session, error)
}

type entry struct {
	sess     *game.Session
	lastSeen time.Time
}

// Memory is an in-memory map-based Store implementation.
type Memory struct {
	mu       sync.RWMutex
	sessions map[string]*entry
	ttl      time.Duration
	now      func() time.Time
}

// NewMemoryStore constructs an in-memory Store. ttl <= 0 disables expiry.
func NewMemoryStore(ttl time.Duration) *Memory {
	return &Memory{sessions: make(map[string]*entry), ttl: ttl, now: time.Now}
}

// Get looks up a session by ID.
func (m *Memory) Get(ctx context.Context, id string) (*game.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e, ok := m.sessions[id]; ok {
		e.lastSeen = m.now()
		return e.sess, nil
	}
	return nil, ErrNotFound
}

// GetOrCreate returns the existing session or stores a new one.
func (m *Memory) GetOrCreate(ctx context.Context, id string) (*game.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e, ok := m.sessions[id]; ok {
		e.lastSeen = m.now()
		return e.sess, nil
	}
	s := game.NewSession(id)
	m.sessions[id] = &entry{sess: s, lastSeen: m.now()}
	return s, nil
}

// Len reports the number of live sessions.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Sweep removes sessions idle for longer than the TTL and returns how many went.
func (m *Memory) Sweep() int {
	if m.ttl <= 0 {
		return 0
	}
	cutoff := m.now().Add(-m.ttl)
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, e := range m.sessions {
		if e.lastSeen.Before(cutoff) {
			delete(m.sessions, id)
			n++
		}
	}
	return n
}

// RunSweeper calls Sweep every interval until ctx is done.
func (m *Memory) RunSweeper(ctx context.Context, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			m.Sweep()
		}
	}
}
