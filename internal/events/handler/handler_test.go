package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"

	"campusconnect/internal/audit"
	authmodels "campusconnect/internal/auth/models"
	"campusconnect/internal/auth/session"
	"campusconnect/internal/events/models"
	"campusconnect/internal/events/service"
	"campusconnect/internal/events/store"
	"campusconnect/internal/platform/logger"
	"campusconnect/internal/platform/middleware"
	dErrors "campusconnect/pkg/domain-errors"
	"campusconnect/pkg/testutil"
)

type stubValidator struct{}

func (stubValidator) ValidateToken(token string) (*middleware.JWTClaims, error) {
	if token != "valid-token" {
		return nil, errors.New("invalid token")
	}
	return &middleware.JWTClaims{UserID: "u-1", SessionID: "sess-1"}, nil
}

type EventsHandlerSuite struct {
	suite.Suite
	router *chi.Mux
}

func TestEventsHandlerSuite(t *testing.T) {
	suite.Run(t, new(EventsHandlerSuite))
}

func (s *EventsHandlerSuite) SetupTest() {
	events := store.NewInMemoryEventStore()
	s.Require().NoError(store.Seed(context.Background(), events))

	sessions := session.NewInMemoryStore()
	s.Require().NoError(sessions.Save(context.Background(), &authmodels.Session{
		ID:     "sess-1",
		UserID: "u-1",
		User:   authmodels.User{ID: "u-1", Name: "Coding Club", Role: authmodels.RoleClub},
	}))

	svc := service.New(events, sessions, nil, audit.NewPublisher(audit.NewInMemoryStore()))
	h := New(svc, logger.New(), stubValidator{})
	s.router = chi.NewRouter()
	h.Register(s.router)
}

func (s *EventsHandlerSuite) authed(req *http.Request) *http.Request {
	req.Header.Set("Authorization", "Bearer valid-token")
	return req
}

func (s *EventsHandlerSuite) TestList() {
	s.Run("returns all without filters", func() {
		req := testutil.NewRequest(s.T(), http.MethodGet, "/events")
		rr := testutil.DoRequest(s.router, req)

		testutil.AssertStatus(s.T(), rr, http.StatusOK)
		events := testutil.UnmarshalResponse[[]models.Event](s.T(), rr)
		s.Len(*events, 6)
	})

	s.Run("applies type and query filters", func() {
		req := testutil.NewRequest(s.T(), http.MethodGet, "/events?type=workshop&q=pilani")
		rr := testutil.DoRequest(s.router, req)

		events := testutil.UnmarshalResponse[[]models.Event](s.T(), rr)
		s.Require().Len(*events, 1)
		s.Equal("Robotics Competition: TechTronics", (*events)[0].Title)
	})
}

func (s *EventsHandlerSuite) TestGet() {
	s.Run("returns the event", func() {
		req := testutil.NewRequest(s.T(), http.MethodGet, "/events/2")
		rr := testutil.DoRequest(s.router, req)

		testutil.AssertStatus(s.T(), rr, http.StatusOK)
		event := testutil.UnmarshalResponse[models.Event](s.T(), rr)
		s.Equal("Annual Cultural Festival: Rendezvous", event.Title)
	})

	s.Run("unknown id renders a JSON 404", func() {
		req := testutil.NewRequest(s.T(), http.MethodGet, "/events/missing")
		rr := testutil.DoRequest(s.router, req)

		testutil.AssertStatusAndError(s.T(), rr, http.StatusNotFound, string(dErrors.CodeNotFound))
	})
}

func (s *EventsHandlerSuite) TestCreate() {
	s.Run("requires authentication", func() {
		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/events", map[string]string{"title": "x"})
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatus(s.T(), rr, http.StatusUnauthorized)
	})

	s.Run("creates with organizer snapshot", func() {
		req := s.authed(testutil.NewJSONRequest(s.T(), http.MethodPost, "/events", map[string]string{
			"title":    "Intro to Go",
			"date":     "Dec 1, 2023",
			"location": "Lecture Hall 2, IIT Delhi",
			"type":     "workshop",
		}))
		rr := testutil.DoRequest(s.router, req)

		testutil.AssertStatus(s.T(), rr, http.StatusCreated)
		event := testutil.UnmarshalResponse[models.Event](s.T(), rr)
		s.Equal("Coding Club", event.Organizer.Name)
	})

	s.Run("rejects missing fields", func() {
		req := s.authed(testutil.NewJSONRequest(s.T(), http.MethodPost, "/events", map[string]string{
			"title": "No date",
			"type":  "seminar",
		}))
		rr := testutil.DoRequest(s.router, req)

		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, string(dErrors.CodeBadRequest))
	})
}

func (s *EventsHandlerSuite) TestRegistration() {
	s.Run("register bumps attendees", func() {
		req := s.authed(testutil.NewRequest(s.T(), http.MethodPost, "/events/1/register"))
		rr := testutil.DoRequest(s.router, req)

		testutil.AssertStatus(s.T(), rr, http.StatusOK)
		result := testutil.UnmarshalResponse[models.RegistrationResult](s.T(), rr)
		s.True(result.Registered)
		s.Equal(241, result.Attendees)
	})

	s.Run("double register maps to 409", func() {
		req := s.authed(testutil.NewRequest(s.T(), http.MethodPost, "/events/1/register"))
		rr := testutil.DoRequest(s.router, req)

		testutil.AssertStatusAndError(s.T(), rr, http.StatusConflict, string(dErrors.CodeConflict))
	})

	s.Run("cancel restores the counter", func() {
		req := s.authed(testutil.NewRequest(s.T(), http.MethodDelete, "/events/1/register"))
		rr := testutil.DoRequest(s.router, req)

		testutil.AssertStatus(s.T(), rr, http.StatusOK)
		result := testutil.UnmarshalResponse[models.RegistrationResult](s.T(), rr)
		s.False(result.Registered)
		s.Equal(240, result.Attendees)
	})

	s.Run("cancel without registration maps to 409", func() {
		req := s.authed(testutil.NewRequest(s.T(), http.MethodDelete, "/events/1/register"))
		rr := testutil.DoRequest(s.router, req)

		testutil.AssertStatusAndError(s.T(), rr, http.StatusConflict, string(dErrors.CodeConflict))
	})
}
