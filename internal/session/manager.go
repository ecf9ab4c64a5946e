package session

import "sync"

// Manager hands out isolated Contexts keyed by session id. Only the map is
// guarded; each Context is exclusively owned by its conversation and callers
// must not share one context across sessions.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Context
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Context)}
}

func (m *Manager) Get(id string) (*Context, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sc, ok := m.sessions[id]
	return sc, ok
}

// Create registers a fresh context under a new unique id.
func (m *Manager) Create() *Context {
	sc := NewContext()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[sc.ID] = sc
	return sc
}

// GetOrCreate resolves an existing session or starts a new one when the id
// is empty or unknown (expired cookie, first contact).
func (m *Manager) GetOrCreate(id string) *Context {
	if id != "" {
		if sc, ok := m.Get(id); ok {
			return sc
		}
	}
	return m.Create()
}

// Drop forgets a session. Dropping an unknown id is a no-op.
func (m *Manager) Drop(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
