// Package session persists the authenticated user snapshot. The persisted
// copy is the server-side analog of the browser's single local-storage key:
// written on login and registration, removed on logout, and required to
// deep-equal the in-memory session user at all times.
package session

import (
	"context"

	"campusconnect/internal/auth/models"
)

type Store interface {
	Save(ctx context.Context, sess *models.Session) error
	FindByID(ctx context.Context, id string) (*models.Session, error)
	Delete(ctx context.Context, id string) error
}
