package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"campusconnect/internal/events/models"
	"campusconnect/pkg/platform/sentinel"
)

type EventStoreSuite struct {
	suite.Suite
	store *InMemoryEventStore
}

func TestEventStoreSuite(t *testing.T) {
	suite.Run(t, new(EventStoreSuite))
}

func (s *EventStoreSuite) SetupTest() {
	s.store = NewInMemoryEventStore()
	s.Require().NoError(Seed(context.Background(), s.store))
}

func (s *EventStoreSuite) TestSeedOrder() {
	events, err := s.store.List(context.Background())
	s.Require().NoError(err)
	s.Require().Len(events, 6)
	s.Equal("1", events[0].ID)
	s.Equal("6", events[5].ID)
	s.Equal(models.TypeHackathon, events[0].Type)
}

func (s *EventStoreSuite) TestInsertPrepends() {
	event := &models.Event{ID: "new", Title: "Freshers Meetup"}
	s.Require().NoError(s.store.Insert(context.Background(), event))

	events, err := s.store.List(context.Background())
	s.Require().NoError(err)
	s.Equal("new", events[0].ID)
}

func (s *EventStoreSuite) TestRegister() {
	s.Run("first registration bumps the counter", func() {
		attendees, err := s.store.Register(context.Background(), "1", "viewer-a")
		s.Require().NoError(err)
		s.Equal(241, attendees)
	})

	s.Run("double registration conflicts without moving the counter", func() {
		_, err := s.store.Register(context.Background(), "1", "viewer-a")
		s.Require().ErrorIs(err, sentinel.ErrConflict)

		event, err := s.store.FindByID(context.Background(), "1")
		s.Require().NoError(err)
		s.Equal(241, event.Attendees)
	})

	s.Run("unknown event is not found", func() {
		_, err := s.store.Register(context.Background(), "missing", "viewer-a")
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})
}

func (s *EventStoreSuite) TestUnregister() {
	s.Run("cancel restores the counter", func() {
		_, err := s.store.Register(context.Background(), "3", "viewer-a")
		s.Require().NoError(err)

		attendees, err := s.store.Unregister(context.Background(), "3", "viewer-a")
		s.Require().NoError(err)
		s.Equal(85, attendees)
	})

	s.Run("cancel without registration conflicts", func() {
		_, err := s.store.Unregister(context.Background(), "3", "viewer-b")
		s.Require().ErrorIs(err, sentinel.ErrConflict)
	})

	s.Run("register again after cancel succeeds", func() {
		_, err := s.store.Register(context.Background(), "3", "viewer-a")
		s.Require().NoError(err)
	})
}
