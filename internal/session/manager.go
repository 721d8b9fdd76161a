package session

import (
	"sync"

	"sheetviz/adapters/classify"
	"sheetviz/domain/core"
)

// Manager hands out sessions keyed by ID. Sessions are independent:
// each owns its own table snapshot, so concurrent users never share
// mutable state.
type Manager struct {
	classifier *classify.Classifier

	mu       sync.RWMutex
	sessions map[core.SessionID]*Session
}

// NewManager creates a session manager
func NewManager(classifier *classify.Classifier) *Manager {
	return &Manager{
		classifier: classifier,
		sessions:   make(map[core.SessionID]*Session),
	}
}

// Get returns an existing session
func (m *Manager) Get(id core.SessionID) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

// GetOrCreate returns the session for id, creating it on first use.
// An empty id gets a freshly generated one.
func (m *Manager) GetOrCreate(id core.SessionID) *Session {
	if id == "" {
		id = core.SessionID(core.NewID())
	}

	m.mu.RLock()
	if s, ok := m.sessions[id]; ok {
		m.mu.RUnlock()
		return s
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[id]; ok {
		return s
	}
	s := NewSession(id, m.classifier)
	m.sessions[id] = s
	return s
}

// Count returns the number of live sessions
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
