// Package models holds the feed domain types.
package models

import (
	"strings"
	"time"

	dErrors "campusconnect/pkg/domain-errors"
)

// Author is the denormalized poster snapshot embedded in every post. It is
// captured from the session user at creation time and never re-synced when
// the profile changes afterwards.
type Author struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Avatar  string `json:"avatar,omitempty"`
	Role    string `json:"role"`
	College string `json:"college,omitempty"`
}

// Post is a feed entry. Likes and Comments are counters; the per-viewer like
// state lives in the store so a viewer can flip a post at most one count.
type Post struct {
	ID         string    `json:"id"`
	Author     Author    `json:"author"`
	Content    string    `json:"content"`
	Image      string    `json:"image,omitempty"`
	TimeAgo    string    `json:"time_ago"`
	Likes      int       `json:"likes"`
	Comments   int       `json:"comments"`
	Tags       []string  `json:"tags,omitempty"`
	Visibility string    `json:"visibility"`
	CreatedAt  time.Time `json:"created_at"`
}

type CreatePostRequest struct {
	Content    string   `json:"content"`
	Image      string   `json:"image,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	Visibility string   `json:"visibility,omitempty"`
}

func (r *CreatePostRequest) Normalize() {
	r.Content = strings.TrimSpace(r.Content)
	if r.Visibility == "" {
		r.Visibility = "public"
	}
}

func (r *CreatePostRequest) Validate() error {
	if r.Content == "" {
		return dErrors.New(dErrors.CodeBadRequest, "content is required")
	}
	return nil
}

// LikeResult reports the viewer's state after a toggle.
type LikeResult struct {
	PostID string `json:"post_id"`
	Liked  bool   `json:"liked"`
	Likes  int    `json:"likes"`
}

type CommentRequest struct {
	Text string `json:"text"`
}

func (r *CommentRequest) Validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return dErrors.New(dErrors.CodeBadRequest, "text is required")
	}
	return nil
}

// CommentResult carries the updated counter. Comment bodies are not stored.
type CommentResult struct {
	PostID   string `json:"post_id"`
	Comments int    `json:"comments"`
}
