package rolestore

import (
	"context"
	"fmt"
	"sync"
)

// InMemStore is a map-backed Store for tests and local development.
type InMemStore struct {
	mu    sync.RWMutex
	roles map[string]string
}

func NewInMemStore() *InMemStore {
	return &InMemStore{roles: make(map[string]string)}
}

func (s *InMemStore) Role(_ context.Context, email string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	role, ok := s.roles[email]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNoRole, email)
	}
	return role, nil
}

func (s *InMemStore) SetRole(_ context.Context, email, role string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.roles[email] = role
	return nil
}

func (s *InMemStore) DeleteRole(_ context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.roles[email]; !ok {
		return fmt.Errorf("%w: %s", ErrNoRole, email)
	}
	delete(s.roles, email)
	return nil
}

func (s *InMemStore) List(_ context.Context) (map[string]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]string, len(s.roles))
	for k, v := range s.roles {
		out[k] = v
	}
	return out, nil
}
