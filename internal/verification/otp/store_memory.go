package otp

import (
	"context"
	"sync"
	"time"

	"dsa-onboarding/pkg/platform/sentinel"
)

// MemoryStore keeps bindings in process. Expired entries are dropped lazily.
type MemoryStore struct {
	mu       sync.Mutex
	bindings map[string]Binding
	now      func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{bindings: map[string]Binding{}, now: time.Now}
}

func (s *MemoryStore) Save(_ context.Context, refID string, b Binding) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bindings[refID] = b
	return nil
}

func (s *MemoryStore) Get(_ context.Context, refID string) (Binding, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bindings[refID]
	if !ok {
		return Binding{}, sentinel.ErrNotFound
	}
	if !s.now().Before(b.ExpiresAt) {
		delete(s.bindings, refID)
		return Binding{}, sentinel.ErrExpired
	}
	return b, nil
}

func (s *MemoryStore) Delete(_ context.Context, refID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.bindings[refID]; !ok {
		return sentinel.ErrAlreadyUsed
	}
	delete(s.bindings, refID)
	return nil
}
