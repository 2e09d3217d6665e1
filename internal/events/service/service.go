// Package service implements the event operations over an EventStore.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"

	"campusconnect/internal/audit"
	authmodels "campusconnect/internal/auth/models"
	"campusconnect/internal/events/models"
	"campusconnect/internal/platform/metrics"
	dErrors "campusconnect/pkg/domain-errors"
	"campusconnect/pkg/platform/sentinel"
)

var tracer = otel.Tracer("campusconnect/internal/events")

type EventStore interface {
	List(ctx context.Context) ([]models.Event, error)
	FindByID(ctx context.Context, id string) (*models.Event, error)
	Insert(ctx context.Context, event *models.Event) error
	Register(ctx context.Context, eventID, viewerID string) (int, error)
	Unregister(ctx context.Context, eventID, viewerID string) (int, error)
}

// SessionReader resolves the organizer snapshot and the registering viewer.
type SessionReader interface {
	FindByID(ctx context.Context, id string) (*authmodels.Session, error)
}

type Service struct {
	events   EventStore
	sessions SessionReader
	metrics  *metrics.Metrics
	auditor  *audit.Publisher
}

func New(events EventStore, sessions SessionReader, m *metrics.Metrics, auditor *audit.Publisher) *Service {
	return &Service{
		events:   events,
		sessions: sessions,
		metrics:  m,
		auditor:  auditor,
	}
}

// List returns events filtered by category and by a case-insensitive
// substring query. An empty or unknown category means no category filter.
func (s *Service) List(ctx context.Context, eventType models.EventType, query string) ([]models.Event, error) {
	events, err := s.events.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]models.Event, 0, len(events))
	for i := range events {
		if eventType != "" && eventType != "all" && events[i].Type != eventType {
			continue
		}
		if !events[i].Matches(query) {
			continue
		}
		filtered = append(filtered, events[i])
	}
	return filtered, nil
}

// Get returns a single event by id.
func (s *Service) Get(ctx context.Context, id string) (*models.Event, error) {
	event, err := s.events.FindByID(ctx, id)
	if errors.Is(err, sentinel.ErrNotFound) {
		return nil, dErrors.New(dErrors.CodeNotFound, "event not found")
	}
	if err != nil {
		return nil, fmt.Errorf("find event: %w", err)
	}
	return event, nil
}

// Create validates and prepends a new event organized by the session user.
func (s *Service) Create(ctx context.Context, sessionID string, req *models.CreateEventRequest) (*models.Event, error) {
	ctx, span := tracer.Start(ctx, "events.Create")
	defer span.End()

	if req == nil {
		return nil, dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	sess, err := s.session(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	event := &models.Event{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		Date:        req.Date,
		Time:        req.Time,
		Location:    req.Location,
		College:     req.College,
		Organizer: models.Organizer{
			ID:     sess.User.ID,
			Name:   sess.User.Name,
			Avatar: sess.User.Avatar,
		},
		Type:      req.Type,
		DateBadge: req.DateBadge,
		CreatedAt: time.Now(),
	}
	if err := s.events.Insert(ctx, event); err != nil {
		return nil, fmt.Errorf("insert event: %w", err)
	}
	return event, nil
}

// Register adds the viewer to the event. Registering twice without a cancel
// in between is a conflict.
func (s *Service) Register(ctx context.Context, sessionID, eventID string) (*models.RegistrationResult, error) {
	sess, err := s.session(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	attendees, err := s.events.Register(ctx, eventID, sess.User.ID)
	if errors.Is(err, sentinel.ErrNotFound) {
		return nil, dErrors.New(dErrors.CodeNotFound, "event not found")
	}
	if errors.Is(err, sentinel.ErrConflict) {
		return nil, dErrors.New(dErrors.CodeConflict, "already registered")
	}
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	if s.metrics != nil {
		s.metrics.EventRegistrations.Inc()
	}
	s.emit(ctx, audit.Event{UserID: sess.User.ID, Action: audit.ActionEventRegistered, Subject: eventID})
	return &models.RegistrationResult{EventID: eventID, Registered: true, Attendees: attendees}, nil
}

// Unregister cancels the viewer's registration. Cancelling without a prior
// registration is a conflict.
func (s *Service) Unregister(ctx context.Context, sessionID, eventID string) (*models.RegistrationResult, error) {
	sess, err := s.session(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	attendees, err := s.events.Unregister(ctx, eventID, sess.User.ID)
	if errors.Is(err, sentinel.ErrNotFound) {
		return nil, dErrors.New(dErrors.CodeNotFound, "event not found")
	}
	if errors.Is(err, sentinel.ErrConflict) {
		return nil, dErrors.New(dErrors.CodeConflict, "not registered")
	}
	if err != nil {
		return nil, fmt.Errorf("unregister: %w", err)
	}

	s.emit(ctx, audit.Event{UserID: sess.User.ID, Action: audit.ActionEventCancelled, Subject: eventID})
	return &models.RegistrationResult{EventID: eventID, Registered: false, Attendees: attendees}, nil
}

func (s *Service) session(ctx context.Context, sessionID string) (*authmodels.Session, error) {
	sess, err := s.sessions.FindByID(ctx, sessionID)
	if errors.Is(err, sentinel.ErrNotFound) {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "session expired")
	}
	if err != nil {
		return nil, fmt.Errorf("find session: %w", err)
	}
	return sess, nil
}

func (s *Service) emit(ctx context.Context, event audit.Event) {
	if s.auditor == nil {
		return
	}
	_ = s.auditor.Emit(ctx, event)
}
