package store

import (
	"context"
	"slices"
	"sync"

	"campusconnect/internal/directory/models"
)

type InMemoryDirectoryStore struct {
	mu       sync.RWMutex
	colleges []models.College
	clubs    []models.Club
}

func NewInMemoryDirectoryStore() *InMemoryDirectoryStore {
	return &InMemoryDirectoryStore{}
}

func (s *InMemoryDirectoryStore) Colleges(_ context.Context) ([]models.College, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.colleges), nil
}

func (s *InMemoryDirectoryStore) Clubs(_ context.Context) ([]models.Club, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.clubs), nil
}
