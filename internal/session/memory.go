package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is a map-backed Store for tests and single-node setups.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Data
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]Data)}
}

func (s *MemoryStore) Save(_ context.Context, id string, data Data, ttl time.Duration) error {
	data.ExpiresAt = time.Now().Add(ttl)
	s.mu.Lock()
	s.sessions[id] = data
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (Data, error) {
	s.mu.RLock()
	data, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return Data{}, ErrNoSession
	}
	if time.Now().After(data.ExpiresAt) {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		return Data{}, ErrNoSession
	}
	return data, nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
	return nil
}
