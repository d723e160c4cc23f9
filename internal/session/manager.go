// Package session binds uuid-keyed editing sessions to IncrementalTokenizer
// handles, for hosts (like the HTTP server) that serve more than one
// concurrent editing session and need to address each with an opaque
// handle rather than holding the tokenizer themselves.
package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/tokviz/tokviz"
)

// Manager owns a set of independent incremental-tokenizer handles, keyed by
// session id. Each handle is itself single-session/non-reentrant (spec §5);
// the Manager only serializes access to the map of sessions, not to any one
// handle's Update calls.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*tokviz.IncrementalTokenizer
}

// NewManager creates an empty session manager.
func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*tokviz.IncrementalTokenizer)}
}

// Create starts a new session on vocabID and returns its handle id.
func (m *Manager) Create(vocabID string) (id string, err error) {
	h, err := tokviz.NewIncrementalTokenizer(vocabID)
	if err != nil {
		return "", err
	}

	id = uuid.NewString()
	m.mu.Lock()
	m.sessions[id] = h
	m.mu.Unlock()
	return id, nil
}

// Get returns the handle for id, or ok=false if no such session exists.
func (m *Manager) Get(id string) (*tokviz.IncrementalTokenizer, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	h, ok := m.sessions[id]
	return h, ok
}

// Close discards a session. Closing an unknown id is a no-op.
func (m *Manager) Close(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}
