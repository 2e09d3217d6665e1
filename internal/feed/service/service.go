// Package service implements the feed operations over a PostStore.
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
	"campusconnect/internal/feed/models"
	"campusconnect/internal/platform/metrics"
	dErrors "campusconnect/pkg/domain-errors"
	"campusconnect/pkg/platform/sentinel"
)

var tracer = otel.Tracer("campusconnect/internal/feed")

type PostStore interface {
	List(ctx context.Context) ([]models.Post, error)
	FindByID(ctx context.Context, id string) (*models.Post, error)
	Insert(ctx context.Context, post *models.Post) error
	ToggleLike(ctx context.Context, postID, viewerID string) (*models.LikeResult, error)
	IncrementComments(ctx context.Context, postID string) (int, error)
}

// SessionReader resolves the author snapshot for new posts.
type SessionReader interface {
	FindByID(ctx context.Context, id string) (*authmodels.Session, error)
}

type Service struct {
	posts    PostStore
	sessions SessionReader
	metrics  *metrics.Metrics
	auditor  *audit.Publisher
}

func New(posts PostStore, sessions SessionReader, m *metrics.Metrics, auditor *audit.Publisher) *Service {
	return &Service{
		posts:    posts,
		sessions: sessions,
		metrics:  m,
		auditor:  auditor,
	}
}

// List returns the feed, most recent first.
func (s *Service) List(ctx context.Context) ([]models.Post, error) {
	return s.posts.List(ctx)
}

// Create validates and prepends a new post authored by the session user. The
// author block is a snapshot: later profile edits do not rewrite old posts.
func (s *Service) Create(ctx context.Context, sessionID string, req *models.CreatePostRequest) (*models.Post, error) {
	ctx, span := tracer.Start(ctx, "feed.Create")
	defer span.End()

	if req == nil {
		return nil, dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	author, err := s.author(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		ID:         uuid.NewString(),
		Author:     *author,
		Content:    req.Content,
		Image:      req.Image,
		TimeAgo:    "Just now",
		Tags:       req.Tags,
		Visibility: req.Visibility,
		CreatedAt:  time.Now(),
	}
	if err := s.posts.Insert(ctx, post); err != nil {
		return nil, fmt.Errorf("insert post: %w", err)
	}

	if s.metrics != nil {
		s.metrics.PostsCreated.Inc()
	}
	s.emit(ctx, audit.Event{UserID: author.ID, Action: audit.ActionPostCreated, Subject: post.ID})
	return post, nil
}

// ToggleLike flips the viewer's like on a post and returns the new state.
func (s *Service) ToggleLike(ctx context.Context, sessionID, postID string) (*models.LikeResult, error) {
	viewer, err := s.author(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	result, err := s.posts.ToggleLike(ctx, postID, viewer.ID)
	if errors.Is(err, sentinel.ErrNotFound) {
		return nil, dErrors.New(dErrors.CodeNotFound, "post not found")
	}
	if err != nil {
		return nil, fmt.Errorf("toggle like: %w", err)
	}
	return result, nil
}

// AddComment bumps the comment counter. Comment bodies are not retained.
func (s *Service) AddComment(ctx context.Context, sessionID, postID string, req *models.CommentRequest) (*models.CommentResult, error) {
	if req == nil {
		return nil, dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.author(ctx, sessionID); err != nil {
		return nil, err
	}

	count, err := s.posts.IncrementComments(ctx, postID)
	if errors.Is(err, sentinel.ErrNotFound) {
		return nil, dErrors.New(dErrors.CodeNotFound, "post not found")
	}
	if err != nil {
		return nil, fmt.Errorf("increment comments: %w", err)
	}
	return &models.CommentResult{PostID: postID, Comments: count}, nil
}

func (s *Service) author(ctx context.Context, sessionID string) (*models.Author, error) {
	sess, err := s.sessions.FindByID(ctx, sessionID)
	if errors.Is(err, sentinel.ErrNotFound) {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "session expired")
	}
	if err != nil {
		return nil, fmt.Errorf("find session: %w", err)
	}
	return &models.Author{
		ID:      sess.User.ID,
		Name:    sess.User.Name,
		Avatar:  sess.User.Avatar,
		Role:    string(sess.User.Role),
		College: sess.User.College,
	}, nil
}

func (s *Service) emit(ctx context.Context, event audit.Event) {
	if s.auditor == nil {
		return
	}
	_ = s.auditor.Emit(ctx, event)
}
