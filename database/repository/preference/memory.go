package preferenceRepo

import (
	"context"
	"sync"

	"nepwork/models"
)

// MemoryStore is an in-process PreferenceStore.
type MemoryStore struct {
	mu     sync.RWMutex
	roles  map[string]models.Role
	tokens map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		roles:  make(map[string]models.Role),
		tokens: make(map[string]string),
	}
}

func (s *MemoryStore) GetRole(_ context.Context, identity string) (models.Role, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	role, ok := s.roles[identity]
	return role, ok, nil
}

func (s *MemoryStore) SetRole(_ context.Context, identity string, role models.Role) error {
	if identity == "" {
		return nil
	}
	s.mu.Lock()
	s.roles[identity] = role
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) GetToken(_ context.Context, identity string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	token, ok := s.tokens[identity]
	return token, ok, nil
}

func (s *MemoryStore) SetToken(_ context.Context, identity string, token string) error {
	if identity == "" || token == "" {
		return nil
	}
	s.mu.Lock()
	s.tokens[identity] = token
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) ClearToken(_ context.Context, identity string) error {
	s.mu.Lock()
	delete(s.tokens, identity)
	s.mu.Unlock()
	return nil
}
