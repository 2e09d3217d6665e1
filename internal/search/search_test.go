package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	directoryservice "campusconnect/internal/directory/service"
	directorystore "campusconnect/internal/directory/store"
	eventstore "campusconnect/internal/events/store"
	feedstore "campusconnect/internal/feed/store"
)

type SearchSuite struct {
	suite.Suite
	service *Service
}

func TestSearchSuite(t *testing.T) {
	suite.Run(t, new(SearchSuite))
}

func (s *SearchSuite) SetupTest() {
	events := eventstore.NewInMemoryEventStore()
	s.Require().NoError(eventstore.Seed(context.Background(), events))
	posts := feedstore.NewInMemoryPostStore()
	s.Require().NoError(feedstore.Seed(context.Background(), posts))

	s.service = New(
		directoryservice.New(directorystore.NewSeededDirectoryStore()),
		events,
		posts,
	)
}

func (s *SearchSuite) TestSearch() {
	s.Run("matches across sections", func() {
		results, err := s.service.Search(context.Background(), "robotics")
		s.Require().NoError(err)

		s.Empty(results.Colleges)
		s.Require().Len(results.Clubs, 1)
		s.Equal("Robotics Club", results.Clubs[0].Name)
		s.Require().Len(results.Events, 1)
		s.Equal("Robotics Competition: TechTronics", results.Events[0].Title)
		s.Empty(results.Posts)
	})

	s.Run("posts match on author name", func() {
		results, err := s.service.Search(context.Background(), "rahul")
		s.Require().NoError(err)
		s.Len(results.Posts, 2)
	})

	s.Run("empty query matches everything within caps", func() {
		results, err := s.service.Search(context.Background(), "")
		s.Require().NoError(err)
		s.Len(results.Colleges, 6)
		s.Len(results.Clubs, 6)
		s.Len(results.Events, 6)
		s.Len(results.Posts, 5)
	})

	s.Run("no match yields empty sections", func() {
		results, err := s.service.Search(context.Background(), "zzzz")
		s.Require().NoError(err)
		s.Empty(results.Colleges)
		s.Empty(results.Clubs)
		s.Empty(results.Events)
		s.Empty(results.Posts)
	})
}
