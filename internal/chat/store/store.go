// Package store persists chat contacts and conversation logs.
package store

import (
	"context"

	"campusconnect/internal/chat/models"
)

// MessageStore is the storage contract for chat.
//
// Invariants:
//   - Messages returns the log in send order; unknown conversations read as
//     empty, never as an error
//   - MarkRead is idempotent: it flips every non-self message to read and
//     zeroes the contact counter
type MessageStore interface {
	Contacts(ctx context.Context) ([]models.Contact, error)
	Messages(ctx context.Context, conversationID string) ([]models.Message, error)
	Append(ctx context.Context, conversationID string, msg *models.Message) error
	SetContactPreview(ctx context.Context, contactID, text, timeLabel string) error
	MarkRead(ctx context.Context, conversationID string) error
}
