package game

import (
	"context"
	"sync"
)

// InMemorySessionStore — SessionPersistence без внешнего хранилища.
type InMemorySessionStore struct {
	mu sync.Mutex
	m  map[string]SessionSnapshot
}

func NewInMemorySessionStore() *InMemorySessionStore {
	return &InMemorySessionStore{
		m: make(map[string]SessionSnapshot),
	}
}

func (s *InMemorySessionStore) Save(ctx context.Context, key string, snap SessionSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = snap
	return nil
}

func (s *InMemorySessionStore) Load(ctx context.Context, key string) (SessionSnapshot, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap, ok := s.m[key]
	return snap, ok, nil
}

func (s *InMemorySessionStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, key)
	return nil
}
