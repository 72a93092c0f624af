package cart

import "sync"

// Manager hands out one Engine per session. An engine is created on first
// use and lives until Forget (logout or explicit teardown); it is never
// shared between sessions.
type Manager struct {
	mu      sync.Mutex
	engines map[string]*Engine
}

func NewManager() *Manager {
	return &Manager{engines: make(map[string]*Engine)}
}

// Get returns the session's engine, creating it when missing.
func (m *Manager) Get(sessionID string) *Engine {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.engines[sessionID]
	if !ok {
		e = NewEngine()
		m.engines[sessionID] = e
	}
	return e
}

// Forget drops the session's engine and everything in it.
func (m *Manager) Forget(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.engines, sessionID)
}
