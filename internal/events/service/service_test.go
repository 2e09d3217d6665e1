package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"campusconnect/internal/audit"
	authmodels "campusconnect/internal/auth/models"
	"campusconnect/internal/auth/session"
	"campusconnect/internal/events/models"
	"campusconnect/internal/events/store"
	dErrors "campusconnect/pkg/domain-errors"
)

type EventServiceSuite struct {
	suite.Suite
	events    *store.InMemoryEventStore
	sessions  *session.InMemoryStore
	auditor   *audit.Publisher
	service   *Service
	sessionID string
}

func TestEventServiceSuite(t *testing.T) {
	suite.Run(t, new(EventServiceSuite))
}

func (s *EventServiceSuite) SetupTest() {
	s.events = store.NewInMemoryEventStore()
	s.Require().NoError(store.Seed(context.Background(), s.events))

	s.sessions = session.NewInMemoryStore()
	s.sessionID = "sess-1"
	s.Require().NoError(s.sessions.Save(context.Background(), &authmodels.Session{
		ID:     s.sessionID,
		UserID: "u-1",
		User:   authmodels.User{ID: "u-1", Name: "Coding Club", Role: authmodels.RoleClub},
	}))

	s.auditor = audit.NewPublisher(audit.NewInMemoryStore())
	s.service = New(s.events, s.sessions, nil, s.auditor)
}

func (s *EventServiceSuite) TestList() {
	s.Run("no filters returns everything", func() {
		events, err := s.service.List(context.Background(), "", "")
		s.Require().NoError(err)
		s.Len(events, 6)
	})

	s.Run("filters by category", func() {
		events, err := s.service.List(context.Background(), models.TypeWorkshop, "")
		s.Require().NoError(err)
		s.Require().Len(events, 2)
		s.Equal("3", events[0].ID)
		s.Equal("5", events[1].ID)
	})

	s.Run("query matches title case-insensitively", func() {
		events, err := s.service.List(context.Background(), "", "codefest")
		s.Require().NoError(err)
		s.Require().Len(events, 1)
		s.Equal("1", events[0].ID)
	})

	s.Run("query matches location and college", func() {
		events, err := s.service.List(context.Background(), "", "pilani")
		s.Require().NoError(err)
		s.Len(events, 1)
	})

	s.Run("category and query combine", func() {
		events, err := s.service.List(context.Background(), models.TypeCultural, "delhi")
		s.Require().NoError(err)
		s.Len(events, 2)
	})

	s.Run("no match yields empty list", func() {
		events, err := s.service.List(context.Background(), "", "zzzz")
		s.Require().NoError(err)
		s.Empty(events)
	})
}

func (s *EventServiceSuite) TestGet() {
	event, err := s.service.Get(context.Background(), "4")
	s.Require().NoError(err)
	s.Equal("Finance Conclave 2023", event.Title)

	_, err = s.service.Get(context.Background(), "missing")
	s.Require().Error(err)
	s.True(dErrors.Is(err, dErrors.CodeNotFound))
}

func (s *EventServiceSuite) TestCreate() {
	s.Run("prepends with organizer snapshot", func() {
		event, err := s.service.Create(context.Background(), s.sessionID, &models.CreateEventRequest{
			Title:    "Intro to Go",
			Date:     "Dec 1, 2023",
			Location: "Lecture Hall 2, IIT Delhi",
			College:  "IIT Delhi",
			Type:     models.TypeWorkshop,
		})
		s.Require().NoError(err)
		s.Equal("Coding Club", event.Organizer.Name)
		s.Zero(event.Attendees)

		events, err := s.service.List(context.Background(), "", "")
		s.Require().NoError(err)
		s.Equal(event.ID, events[0].ID)
	})

	s.Run("rejects missing fields", func() {
		_, err := s.service.Create(context.Background(), s.sessionID, &models.CreateEventRequest{
			Title: "No date",
			Type:  models.TypeSeminar,
		})
		s.Require().Error(err)
		s.True(dErrors.Is(err, dErrors.CodeBadRequest))
	})

	s.Run("rejects unknown category", func() {
		_, err := s.service.Create(context.Background(), s.sessionID, &models.CreateEventRequest{
			Title:    "Mystery",
			Date:     "Dec 2, 2023",
			Location: "Somewhere",
			Type:     "party",
		})
		s.Require().Error(err)
		s.True(dErrors.Is(err, dErrors.CodeBadRequest))
	})
}

func (s *EventServiceSuite) TestRegistration() {
	s.Run("register bumps attendees once", func() {
		result, err := s.service.Register(context.Background(), s.sessionID, "1")
		s.Require().NoError(err)
		s.True(result.Registered)
		s.Equal(241, result.Attendees)
	})

	s.Run("second register conflicts", func() {
		_, err := s.service.Register(context.Background(), s.sessionID, "1")
		s.Require().Error(err)
		s.True(dErrors.Is(err, dErrors.CodeConflict))
	})

	s.Run("cancel restores the counter", func() {
		result, err := s.service.Unregister(context.Background(), s.sessionID, "1")
		s.Require().NoError(err)
		s.False(result.Registered)
		s.Equal(240, result.Attendees)
	})

	s.Run("cancel without registration conflicts", func() {
		_, err := s.service.Unregister(context.Background(), s.sessionID, "1")
		s.Require().Error(err)
		s.True(dErrors.Is(err, dErrors.CodeConflict))
	})

	s.Run("missing session reads as unauthenticated", func() {
		_, err := s.service.Register(context.Background(), "gone", "1")
		s.Require().Error(err)
		s.True(dErrors.Is(err, dErrors.CodeUnauthorized))
	})
}

func (s *EventServiceSuite) TestAuditTrail() {
	_, err := s.service.Register(context.Background(), s.sessionID, "2")
	s.Require().NoError(err)
	_, err = s.service.Unregister(context.Background(), s.sessionID, "2")
	s.Require().NoError(err)

	events, err := s.auditor.List(context.Background(), "u-1")
	s.Require().NoError(err)
	s.Require().Len(events, 2)
	s.Equal(audit.ActionEventRegistered, events[0].Action)
	s.Equal(audit.ActionEventCancelled, events[1].Action)
}
