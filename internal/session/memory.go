package session

import (
	"context"
	"sync"
)

// MemoryStore keeps the session in process memory. It is safe for concurrent use.
type MemoryStore struct {
	mu      sync.RWMutex
	session Session
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load(_ context.Context) (Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.session.Token == "" {
		return Session{}, ErrNoSession
	}
	return m.session, nil
}

func (m *MemoryStore) Save(_ context.Context, s Session) error {
	m.mu.Lock()
	m.session = s
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Clear(_ context.Context) error {
	m.mu.Lock()
	m.session = Session{}
	m.mu.Unlock()
	return nil
}
