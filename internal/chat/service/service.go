// Package service implements chat over a MessageStore.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"

	"campusconnect/internal/audit"
	authmodels "campusconnect/internal/auth/models"
	"campusconnect/internal/chat/models"
	"campusconnect/internal/platform/metrics"
	dErrors "campusconnect/pkg/domain-errors"
	"campusconnect/pkg/platform/sentinel"
)

var tracer = otel.Tracer("campusconnect/internal/chat")

type MessageStore interface {
	Contacts(ctx context.Context) ([]models.Contact, error)
	Messages(ctx context.Context, conversationID string) ([]models.Message, error)
	Append(ctx context.Context, conversationID string, msg *models.Message) error
	SetContactPreview(ctx context.Context, contactID, text, timeLabel string) error
	MarkRead(ctx context.Context, conversationID string) error
}

type SessionReader interface {
	FindByID(ctx context.Context, id string) (*authmodels.Session, error)
}

type Service struct {
	messages MessageStore
	sessions SessionReader
	metrics  *metrics.Metrics
	auditor  *audit.Publisher
}

func New(messages MessageStore, sessions SessionReader, m *metrics.Metrics, auditor *audit.Publisher) *Service {
	return &Service{
		messages: messages,
		sessions: sessions,
		metrics:  m,
		auditor:  auditor,
	}
}

// Contacts returns the contact list, filtered by a case-insensitive
// substring on the display name when query is non-empty.
func (s *Service) Contacts(ctx context.Context, query string) ([]models.Contact, error) {
	contacts, err := s.messages.Contacts(ctx)
	if err != nil {
		return nil, err
	}
	if query == "" {
		return contacts, nil
	}

	q := strings.ToLower(query)
	filtered := make([]models.Contact, 0, len(contacts))
	for _, c := range contacts {
		if strings.Contains(strings.ToLower(c.Name), q) {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}

// Messages returns the conversation log in send order. Unknown conversations
// read as an empty list.
func (s *Service) Messages(ctx context.Context, conversationID string) ([]models.Message, error) {
	return s.messages.Messages(ctx, conversationID)
}

// Send appends an outgoing message and refreshes the contact's list-row
// preview. Outgoing messages never touch the unread counter.
func (s *Service) Send(ctx context.Context, sessionID, conversationID string, req *models.SendMessageRequest) (*models.Message, error) {
	ctx, span := tracer.Start(ctx, "chat.Send")
	defer span.End()

	if req == nil {
		return nil, dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	sess, err := s.sessions.FindByID(ctx, sessionID)
	if errors.Is(err, sentinel.ErrNotFound) {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "session expired")
	}
	if err != nil {
		return nil, fmt.Errorf("find session: %w", err)
	}

	msg := &models.Message{
		ID:        uuid.NewString(),
		SenderID:  models.SenderSelf,
		Text:      req.Text,
		Timestamp: time.Now(),
		IsRead:    false,
	}
	if err := s.messages.Append(ctx, conversationID, msg); err != nil {
		return nil, fmt.Errorf("append message: %w", err)
	}
	if err := s.messages.SetContactPreview(ctx, conversationID, req.Text, "Just now"); err != nil {
		return nil, fmt.Errorf("update preview: %w", err)
	}

	if s.metrics != nil {
		s.metrics.MessagesSent.Inc()
	}
	s.emit(ctx, audit.Event{UserID: sess.UserID, Action: audit.ActionMessageSent, Subject: conversationID})
	return msg, nil
}

// MarkAsRead flips every incoming message to read and zeroes the contact
// counter. Calling it again is a no-op.
func (s *Service) MarkAsRead(ctx context.Context, conversationID string) error {
	return s.messages.MarkRead(ctx, conversationID)
}

// UnreadCount derives the per-conversation unread total from the message
// flags. It can disagree with the contact counter until MarkAsRead runs;
// both are served deliberately.
func (s *Service) UnreadCount(ctx context.Context, conversationID string) (*models.UnreadCount, error) {
	msgs, err := s.messages.Messages(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	count := 0
	for _, m := range msgs {
		if !m.IsRead && m.SenderID != models.SenderSelf {
			count++
		}
	}
	return &models.UnreadCount{ConversationID: conversationID, Unread: count}, nil
}

// TotalUnread sums the denormalized contact counters for the badge.
func (s *Service) TotalUnread(ctx context.Context) (*models.TotalUnread, error) {
	contacts, err := s.messages.Contacts(ctx)
	if err != nil {
		return nil, err
	}
	total := 0
	for _, c := range contacts {
		total += c.Unread
	}
	return &models.TotalUnread{Unread: total}, nil
}

func (s *Service) emit(ctx context.Context, event audit.Event) {
	if s.auditor == nil {
		return
	}
	_ = s.auditor.Emit(ctx, event)
}
