package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"campusconnect/internal/feed/models"
	"campusconnect/pkg/platform/sentinel"
)

type PostStoreSuite struct {
	suite.Suite
	store *InMemoryPostStore
}

func TestPostStoreSuite(t *testing.T) {
	suite.Run(t, new(PostStoreSuite))
}

func (s *PostStoreSuite) SetupTest() {
	s.store = NewInMemoryPostStore()
	s.Require().NoError(Seed(context.Background(), s.store))
}

func (s *PostStoreSuite) TestSeedOrder() {
	posts, err := s.store.List(context.Background())
	s.Require().NoError(err)
	s.Require().Len(posts, 5)
	s.Equal("1", posts[0].ID)
	s.Equal("5", posts[4].ID)
	s.Equal("2 hours ago", posts[0].TimeAgo)
}

func (s *PostStoreSuite) TestInsertPrepends() {
	post := &models.Post{ID: "new", Content: "hello"}
	s.Require().NoError(s.store.Insert(context.Background(), post))

	posts, err := s.store.List(context.Background())
	s.Require().NoError(err)
	s.Require().Len(posts, 6)
	s.Equal("new", posts[0].ID)
}

func (s *PostStoreSuite) TestFindByID() {
	s.Run("returns the post", func() {
		post, err := s.store.FindByID(context.Background(), "2")
		s.Require().NoError(err)
		s.Equal("Coding Club", post.Author.Name)
	})

	s.Run("unknown id is not found", func() {
		_, err := s.store.FindByID(context.Background(), "missing")
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("returned post is a copy", func() {
		post, err := s.store.FindByID(context.Background(), "1")
		s.Require().NoError(err)
		post.Content = "mutated"

		again, err := s.store.FindByID(context.Background(), "1")
		s.Require().NoError(err)
		s.NotEqual("mutated", again.Content)
	})
}

func (s *PostStoreSuite) TestToggleLike() {
	s.Run("first toggle likes, second unlikes", func() {
		liked, err := s.store.ToggleLike(context.Background(), "1", "viewer-a")
		s.Require().NoError(err)
		s.True(liked.Liked)
		s.Equal(25, liked.Likes)

		unliked, err := s.store.ToggleLike(context.Background(), "1", "viewer-a")
		s.Require().NoError(err)
		s.False(unliked.Liked)
		s.Equal(24, unliked.Likes)
	})

	s.Run("viewers are independent", func() {
		_, err := s.store.ToggleLike(context.Background(), "4", "viewer-a")
		s.Require().NoError(err)
		result, err := s.store.ToggleLike(context.Background(), "4", "viewer-b")
		s.Require().NoError(err)
		s.Equal(20, result.Likes)
	})

	s.Run("unknown post is not found", func() {
		_, err := s.store.ToggleLike(context.Background(), "missing", "viewer-a")
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})
}

func (s *PostStoreSuite) TestIncrementComments() {
	count, err := s.store.IncrementComments(context.Background(), "1")
	s.Require().NoError(err)
	s.Equal(6, count)

	_, err = s.store.IncrementComments(context.Background(), "missing")
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}
