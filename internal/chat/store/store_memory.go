package store

import (
	"context"
	"slices"
	"sync"

	"campusconnect/internal/chat/models"
)

// InMemoryMessageStore keeps contacts and conversation logs in process
// memory. Conversations are created lazily on first append.
type InMemoryMessageStore struct {
	mu            sync.RWMutex
	contacts      []models.Contact
	conversations map[string][]models.Message
}

func NewInMemoryMessageStore() *InMemoryMessageStore {
	return &InMemoryMessageStore{
		conversations: make(map[string][]models.Message),
	}
}

func (s *InMemoryMessageStore) Contacts(_ context.Context) ([]models.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.contacts), nil
}

func (s *InMemoryMessageStore) Messages(_ context.Context, conversationID string) ([]models.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.conversations[conversationID]), nil
}

func (s *InMemoryMessageStore) Append(_ context.Context, conversationID string, msg *models.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conversations[conversationID] = append(s.conversations[conversationID], *msg)
	return nil
}

// SetContactPreview updates the list-row summary. An unknown contact is a
// no-op: a conversation can exist without a directory entry.
func (s *InMemoryMessageStore) SetContactPreview(_ context.Context, contactID, text, timeLabel string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.contacts {
		if s.contacts[i].ID == contactID {
			s.contacts[i].LastMessage = text
			s.contacts[i].LastMessageTime = timeLabel
			break
		}
	}
	return nil
}

func (s *InMemoryMessageStore) MarkRead(_ context.Context, conversationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	msgs := s.conversations[conversationID]
	for i := range msgs {
		if msgs[i].SenderID != models.SenderSelf {
			msgs[i].IsRead = true
		}
	}
	for i := range s.contacts {
		if s.contacts[i].ID == conversationID {
			s.contacts[i].Unread = 0
			break
		}
	}
	return nil
}
