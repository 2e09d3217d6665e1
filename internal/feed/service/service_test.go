package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"campusconnect/internal/audit"
	authmodels "campusconnect/internal/auth/models"
	"campusconnect/internal/auth/session"
	"campusconnect/internal/feed/models"
	"campusconnect/internal/feed/store"
	dErrors "campusconnect/pkg/domain-errors"
)

type FeedServiceSuite struct {
	suite.Suite
	posts     *store.InMemoryPostStore
	sessions  *session.InMemoryStore
	auditor   *audit.Publisher
	service   *Service
	sessionID string
}

func TestFeedServiceSuite(t *testing.T) {
	suite.Run(t, new(FeedServiceSuite))
}

func (s *FeedServiceSuite) SetupTest() {
	s.posts = store.NewInMemoryPostStore()
	s.Require().NoError(store.Seed(context.Background(), s.posts))

	s.sessions = session.NewInMemoryStore()
	s.sessionID = "sess-1"
	s.Require().NoError(s.sessions.Save(context.Background(), &authmodels.Session{
		ID:     s.sessionID,
		UserID: "u-1",
		User: authmodels.User{
			ID:      "u-1",
			Name:    "Asha Verma",
			Avatar:  "https://example.com/asha.jpg",
			Role:    authmodels.RoleStudent,
			College: "IIT Delhi",
		},
	}))

	s.auditor = audit.NewPublisher(audit.NewInMemoryStore())
	s.service = New(s.posts, s.sessions, nil, s.auditor)
}

func (s *FeedServiceSuite) TestCreate() {
	s.Run("prepends with author snapshot and zeroed counters", func() {
		post, err := s.service.Create(context.Background(), s.sessionID, &models.CreatePostRequest{
			Content: "First day at the robotics lab!",
			Tags:    []string{"robotics"},
		})
		s.Require().NoError(err)
		s.Equal("Asha Verma", post.Author.Name)
		s.Equal("student", post.Author.Role)
		s.Equal("Just now", post.TimeAgo)
		s.Equal("public", post.Visibility)
		s.Zero(post.Likes)
		s.Zero(post.Comments)

		posts, err := s.service.List(context.Background())
		s.Require().NoError(err)
		s.Equal(post.ID, posts[0].ID)
	})

	s.Run("rejects empty content", func() {
		_, err := s.service.Create(context.Background(), s.sessionID, &models.CreatePostRequest{
			Content: "   ",
		})
		s.Require().Error(err)
		s.True(dErrors.Is(err, dErrors.CodeBadRequest))

		posts, err := s.service.List(context.Background())
		s.Require().NoError(err)
		s.Len(posts, 6)
	})

	s.Run("rejects missing session", func() {
		_, err := s.service.Create(context.Background(), "gone", &models.CreatePostRequest{
			Content: "hello",
		})
		s.Require().Error(err)
		s.True(dErrors.Is(err, dErrors.CodeUnauthorized))
	})
}

func (s *FeedServiceSuite) TestToggleLike() {
	s.Run("flips by exactly one per viewer", func() {
		result, err := s.service.ToggleLike(context.Background(), s.sessionID, "1")
		s.Require().NoError(err)
		s.True(result.Liked)
		s.Equal(25, result.Likes)

		result, err = s.service.ToggleLike(context.Background(), s.sessionID, "1")
		s.Require().NoError(err)
		s.False(result.Liked)
		s.Equal(24, result.Likes)
	})

	s.Run("unknown post maps to 404", func() {
		_, err := s.service.ToggleLike(context.Background(), s.sessionID, "missing")
		s.Require().Error(err)
		s.True(dErrors.Is(err, dErrors.CodeNotFound))
	})
}

func (s *FeedServiceSuite) TestAddComment() {
	s.Run("increments the counter", func() {
		result, err := s.service.AddComment(context.Background(), s.sessionID, "2", &models.CommentRequest{
			Text: "Count me in!",
		})
		s.Require().NoError(err)
		s.Equal(33, result.Comments)
	})

	s.Run("rejects blank text", func() {
		_, err := s.service.AddComment(context.Background(), s.sessionID, "2", &models.CommentRequest{
			Text: " ",
		})
		s.Require().Error(err)
		s.True(dErrors.Is(err, dErrors.CodeBadRequest))
	})
}

func (s *FeedServiceSuite) TestAuditTrail() {
	post, err := s.service.Create(context.Background(), s.sessionID, &models.CreatePostRequest{
		Content: "audited",
	})
	s.Require().NoError(err)

	events, err := s.auditor.List(context.Background(), "u-1")
	s.Require().NoError(err)
	s.Require().Len(events, 1)
	s.Equal(audit.ActionPostCreated, events[0].Action)
	s.Equal(post.ID, events[0].Subject)
}
