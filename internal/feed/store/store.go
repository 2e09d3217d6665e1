// Package store persists feed posts and the per-viewer like state.
package store

import (
	"context"

	"campusconnect/internal/feed/models"
)

// PostStore is the storage contract for the feed.
//
// Invariants:
//   - List returns posts most-recent-first; Insert prepends
//   - ToggleLike is atomic: a viewer's flip changes the counter by exactly one
type PostStore interface {
	List(ctx context.Context) ([]models.Post, error)
	FindByID(ctx context.Context, id string) (*models.Post, error)
	Insert(ctx context.Context, post *models.Post) error
	ToggleLike(ctx context.Context, postID, viewerID string) (*models.LikeResult, error)
	IncrementComments(ctx context.Context, postID string) (int, error)
}
