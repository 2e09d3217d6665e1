// Package store persists events and per-viewer registrations.
package store

import (
	"context"

	"campusconnect/internal/events/models"
)

// EventStore is the storage contract for events.
//
// Invariants:
//   - List returns events newest-first; Insert prepends
//   - Register/Unregister are atomic and move the attendee counter by
//     exactly one; a repeated register or a cancel without a prior
//     registration surfaces ErrConflict
type EventStore interface {
	List(ctx context.Context) ([]models.Event, error)
	FindByID(ctx context.Context, id string) (*models.Event, error)
	Insert(ctx context.Context, event *models.Event) error
	Register(ctx context.Context, eventID, viewerID string) (int, error)
	Unregister(ctx context.Context, eventID, viewerID string) (int, error)
}
