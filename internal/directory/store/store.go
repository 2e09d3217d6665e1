// Package store holds the directory listings. The directory is reference
// data: read-only at runtime, reloaded from the seed on every start.
package store

import (
	"context"

	"campusconnect/internal/directory/models"
)

type DirectoryStore interface {
	Colleges(ctx context.Context) ([]models.College, error)
	Clubs(ctx context.Context) ([]models.Club, error)
}
