package session

import (
	"context"
	"sync"

	"campusconnect/internal/auth/models"
	"campusconnect/pkg/platform/sentinel"
)

// InMemoryStore is the fallback when Redis is not configured. Sessions then
// live only for the process lifetime.
type InMemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*models.Session
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{sessions: make(map[string]*models.Session)}
}

func (s *InMemoryStore) Save(_ context.Context, sess *models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *sess
	s.sessions[sess.ID] = &stored
	return nil
}

func (s *InMemoryStore) FindByID(_ context.Context, id string) (*models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if sess, ok := s.sessions[id]; ok {
		copied := *sess
		return &copied, nil
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
