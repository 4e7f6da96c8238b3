package session

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrSessionNotFound is returned for unknown or expired session ids.
var ErrSessionNotFound = errors.New("session not found")

// Manager owns the live sessions of the process. Idle sessions are
// swept after the configured TTL; their state is volatile by design.
type Manager struct {
	mu        sync.RWMutex
	sessions  map[string]*Session
	batchSize int
	ttl       time.Duration
}

// NewManager creates a session manager and starts its eviction sweep.
// A non-positive ttl disables eviction.
func NewManager(batchSize int, ttl time.Duration) *Manager {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	m := &Manager{
		sessions:  make(map[string]*Session),
		batchSize: batchSize,
		ttl:       ttl,
	}
	if ttl > 0 {
		go m.sweep()
	}
	return m
}

// Create registers a new empty session and returns it.
func (m *Manager) Create() *Session {
	s := newSession(uuid.NewString(), m.batchSize)

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	return s
}

// Get returns a live session by id, refreshing its idle timer.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()

	if !ok {
		return nil, ErrSessionNotFound
	}
	s.touch()
	return s, nil
}

// Delete discards a session and all its state.
func (m *Manager) Delete(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

// Count returns the number of live sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// sweep evicts sessions idle for longer than the TTL.
func (m *Manager) sweep() {
	ticker := time.NewTicker(m.ttl / 2)
	defer ticker.Stop()

	for range ticker.C {
		cutoff := time.Now().Add(-m.ttl)

		m.mu.Lock()
		for id, s := range m.sessions {
			if s.idleSince(cutoff) {
				delete(m.sessions, id)
				log.Printf("session %s evicted after %s idle", id, m.ttl)
			}
		}
		m.mu.Unlock()
	}
}
