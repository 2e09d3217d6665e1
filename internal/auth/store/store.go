// Package store holds the credential directory: every registered account
// paired with its secret hash. Implementations must enforce email uniqueness
// with exact, case-sensitive matching.
package store

import (
	"context"

	"campusconnect/internal/auth/models"
)

type UserStore interface {
	// Save appends a new credential. Returns sentinel.ErrConflict (wrapped or
	// not) when the email is already registered.
	Save(ctx context.Context, cred *models.Credential) error

	// FindByEmail looks up a credential by exact email match.
	FindByEmail(ctx context.Context, email string) (*models.Credential, error)

	FindByID(ctx context.Context, id string) (*models.Credential, error)

	// UpdateUser replaces the user portion of an existing credential, leaving
	// the secret hash untouched.
	UpdateUser(ctx context.Context, user models.User) error
}
