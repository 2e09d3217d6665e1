package store

import (
	"context"
	"sync"

	"campusconnect/internal/auth/models"
	"campusconnect/pkg/platform/sentinel"
)

// InMemoryUserStore keeps the credential directory in process memory. It
// intentionally favors clarity over performance; registered accounts are
// process-lifetime only.
type InMemoryUserStore struct {
	mu      sync.RWMutex
	byID    map[string]*models.Credential
	byEmail map[string]*models.Credential
}

func NewInMemoryUserStore() *InMemoryUserStore {
	return &InMemoryUserStore{
		byID:    make(map[string]*models.Credential),
		byEmail: make(map[string]*models.Credential),
	}
}

func (s *InMemoryUserStore) Save(_ context.Context, cred *models.Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byEmail[cred.User.Email]; exists {
		return sentinel.ErrConflict
	}
	stored := *cred
	s.byID[cred.User.ID] = &stored
	s.byEmail[cred.User.Email] = &stored
	return nil
}

func (s *InMemoryUserStore) FindByEmail(_ context.Context, email string) (*models.Credential, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if cred, ok := s.byEmail[email]; ok {
		copied := *cred
		return &copied, nil
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemoryUserStore) FindByID(_ context.Context, id string) (*models.Credential, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if cred, ok := s.byID[id]; ok {
		copied := *cred
		return &copied, nil
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemoryUserStore) UpdateUser(_ context.Context, user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cred, ok := s.byID[user.ID]
	if !ok {
		return sentinel.ErrNotFound
	}
	// Email and role are immutable after registration.
	user.Email = cred.User.Email
	user.Role = cred.User.Role
	cred.User = user
	return nil
}
