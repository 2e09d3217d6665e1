package store

import (
	"context"
	"slices"
	"sync"

	"campusconnect/internal/events/models"
	"campusconnect/pkg/platform/sentinel"
)

// InMemoryEventStore keeps events in process memory, newest first.
type InMemoryEventStore struct {
	mu          sync.RWMutex
	events      []models.Event
	registrants map[string]map[string]bool
}

func NewInMemoryEventStore() *InMemoryEventStore {
	return &InMemoryEventStore{
		registrants: make(map[string]map[string]bool),
	}
}

func (s *InMemoryEventStore) List(_ context.Context) ([]models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.events), nil
}

func (s *InMemoryEventStore) FindByID(_ context.Context, id string) (*models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.events {
		if s.events[i].ID == id {
			copied := s.events[i]
			return &copied, nil
		}
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemoryEventStore) Insert(_ context.Context, event *models.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append([]models.Event{*event}, s.events...)
	return nil
}

func (s *InMemoryEventStore) Register(_ context.Context, eventID, viewerID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.events, func(e models.Event) bool { return e.ID == eventID })
	if idx < 0 {
		return 0, sentinel.ErrNotFound
	}

	viewers := s.registrants[eventID]
	if viewers == nil {
		viewers = make(map[string]bool)
		s.registrants[eventID] = viewers
	}
	if viewers[viewerID] {
		return s.events[idx].Attendees, sentinel.ErrConflict
	}

	viewers[viewerID] = true
	s.events[idx].Attendees++
	return s.events[idx].Attendees, nil
}

func (s *InMemoryEventStore) Unregister(_ context.Context, eventID, viewerID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.events, func(e models.Event) bool { return e.ID == eventID })
	if idx < 0 {
		return 0, sentinel.ErrNotFound
	}

	viewers := s.registrants[eventID]
	if !viewers[viewerID] {
		return s.events[idx].Attendees, sentinel.ErrConflict
	}

	delete(viewers, viewerID)
	s.events[idx].Attendees--
	return s.events[idx].Attendees, nil
}
