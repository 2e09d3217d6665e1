package store

import (
	"context"
	"slices"
	"sync"

	"campusconnect/internal/feed/models"
	"campusconnect/pkg/platform/sentinel"
)

// InMemoryPostStore keeps the feed in process memory, most-recent-first.
// Created posts are process-lifetime only.
type InMemoryPostStore struct {
	mu      sync.RWMutex
	posts   []models.Post
	likedBy map[string]map[string]bool
}

func NewInMemoryPostStore() *InMemoryPostStore {
	return &InMemoryPostStore{
		likedBy: make(map[string]map[string]bool),
	}
}

func (s *InMemoryPostStore) List(_ context.Context) ([]models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.posts), nil
}

func (s *InMemoryPostStore) FindByID(_ context.Context, id string) (*models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.posts {
		if s.posts[i].ID == id {
			copied := s.posts[i]
			return &copied, nil
		}
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemoryPostStore) Insert(_ context.Context, post *models.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts = append([]models.Post{*post}, s.posts...)
	return nil
}

func (s *InMemoryPostStore) ToggleLike(_ context.Context, postID, viewerID string) (*models.LikeResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.posts, func(p models.Post) bool { return p.ID == postID })
	if idx < 0 {
		return nil, sentinel.ErrNotFound
	}

	viewers := s.likedBy[postID]
	if viewers == nil {
		viewers = make(map[string]bool)
		s.likedBy[postID] = viewers
	}

	if viewers[viewerID] {
		delete(viewers, viewerID)
		s.posts[idx].Likes--
	} else {
		viewers[viewerID] = true
		s.posts[idx].Likes++
	}

	return &models.LikeResult{
		PostID: postID,
		Liked:  viewers[viewerID],
		Likes:  s.posts[idx].Likes,
	}, nil
}

func (s *InMemoryPostStore) IncrementComments(_ context.Context, postID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.posts, func(p models.Post) bool { return p.ID == postID })
	if idx < 0 {
		return 0, sentinel.ErrNotFound
	}
	s.posts[idx].Comments++
	return s.posts[idx].Comments, nil
}
