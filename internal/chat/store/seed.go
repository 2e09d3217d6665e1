package store

import (
	"time"

	"campusconnect/internal/chat/models"
)

// Seed data: three contacts and the two conversations that back the unread
// counters ("1" has one unread incoming message, "2" is fully read).
var (
	seedContacts = []models.Contact{
		{
			ID:              "1",
			Name:            "Priya Sharma",
			Avatar:          "https://images.pexels.com/photos/733872/pexels-photo-733872.jpeg?auto=compress&cs=tinysrgb&w=150",
			LastMessage:     "Are you coming to the hackathon this weekend?",
			LastMessageTime: "10:30 AM",
			Unread:          2,
			IsOnline:        true,
		},
		{
			ID:              "2",
			Name:            "Robotics Club",
			Avatar:          "https://images.pexels.com/photos/2599244/pexels-photo-2599244.jpeg?auto=compress&cs=tinysrgb&w=150",
			LastMessage:     "Meeting scheduled for tomorrow at 5 PM",
			LastMessageTime: "Yesterday",
			Unread:          0,
			IsOnline:        true,
		},
		{
			ID:              "3",
			Name:            "Vikram Mehta",
			Avatar:          "https://images.pexels.com/photos/220453/pexels-photo-220453.jpeg?auto=compress&cs=tinysrgb&w=150",
			LastMessage:     "Thanks for sharing the notes!",
			LastMessageTime: "Yesterday",
			Unread:          0,
			IsOnline:        false,
		},
	}

	seedConversations = map[string][]models.Message{
		"1": {
			{
				ID:        "101",
				SenderID:  "1",
				Text:      "Hey, how are you doing?",
				Timestamp: time.Date(2023, time.May, 15, 10, 30, 0, 0, time.UTC),
				IsRead:    true,
			},
			{
				ID:        "102",
				SenderID:  models.SenderSelf,
				Text:      "I'm good, thanks! How about you?",
				Timestamp: time.Date(2023, time.May, 15, 10, 32, 0, 0, time.UTC),
				IsRead:    true,
			},
			{
				ID:        "103",
				SenderID:  "1",
				Text:      "Are you coming to the hackathon this weekend?",
				Timestamp: time.Date(2023, time.May, 15, 10, 35, 0, 0, time.UTC),
				IsRead:    false,
			},
		},
		"2": {
			{
				ID:        "201",
				SenderID:  "2",
				Text:      "Hello everyone, we're organizing a robotics workshop next week.",
				Timestamp: time.Date(2023, time.May, 14, 15, 0, 0, 0, time.UTC),
				IsRead:    true,
			},
			{
				ID:        "202",
				SenderID:  models.SenderSelf,
				Text:      "That sounds great! What topics will be covered?",
				Timestamp: time.Date(2023, time.May, 14, 15, 5, 0, 0, time.UTC),
				IsRead:    true,
			},
		},
	}
)

// NewSeededMessageStore returns a memory store preloaded with the fixed
// contacts and conversations.
func NewSeededMessageStore() *InMemoryMessageStore {
	s := NewInMemoryMessageStore()
	s.contacts = make([]models.Contact, len(seedContacts))
	copy(s.contacts, seedContacts)
	for id, msgs := range seedConversations {
		s.conversations[id] = make([]models.Message, len(msgs))
		copy(s.conversations[id], msgs)
	}
	return s
}
