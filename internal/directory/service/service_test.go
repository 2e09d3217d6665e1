package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"campusconnect/internal/directory/store"
)

type DirectoryServiceSuite struct {
	suite.Suite
	service *Service
}

func TestDirectoryServiceSuite(t *testing.T) {
	suite.Run(t, new(DirectoryServiceSuite))
}

func (s *DirectoryServiceSuite) SetupTest() {
	s.service = New(store.NewSeededDirectoryStore())
}

func (s *DirectoryServiceSuite) TestColleges() {
	s.Run("no filters returns everything", func() {
		colleges, err := s.service.Colleges(context.Background(), "", "")
		s.Require().NoError(err)
		s.Len(colleges, 6)
	})

	s.Run("all location behaves like no filter", func() {
		colleges, err := s.service.Colleges(context.Background(), "all", "")
		s.Require().NoError(err)
		s.Len(colleges, 6)
	})

	s.Run("location filter is exact", func() {
		colleges, err := s.service.Colleges(context.Background(), "Delhi", "")
		s.Require().NoError(err)
		s.Require().Len(colleges, 2)
		s.Equal("Indian Institute of Technology Delhi", colleges[0].Name)
		s.Equal("Delhi University", colleges[1].Name)
	})

	s.Run("query matches type case-insensitively", func() {
		colleges, err := s.service.Colleges(context.Background(), "", "management")
		s.Require().NoError(err)
		s.Require().Len(colleges, 1)
		s.Equal("IIM Ahmedabad", colleges[0].Name)
	})

	s.Run("location and query combine", func() {
		colleges, err := s.service.Colleges(context.Background(), "Delhi", "engineering")
		s.Require().NoError(err)
		s.Len(colleges, 1)
	})
}

func (s *DirectoryServiceSuite) TestClubs() {
	s.Run("no filters returns everything", func() {
		clubs, err := s.service.Clubs(context.Background(), "", "")
		s.Require().NoError(err)
		s.Len(clubs, 6)
	})

	s.Run("query matches college name", func() {
		clubs, err := s.service.Clubs(context.Background(), "", "iit bombay")
		s.Require().NoError(err)
		s.Require().Len(clubs, 1)
		s.Equal("Entrepreneurship Cell", clubs[0].Name)
	})

	s.Run("query matches category", func() {
		clubs, err := s.service.Clubs(context.Background(), "", "cultural")
		s.Require().NoError(err)
		s.Len(clubs, 2)
	})

	s.Run("location filter is exact", func() {
		clubs, err := s.service.Clubs(context.Background(), "Tamil Nadu", "")
		s.Require().NoError(err)
		s.Require().Len(clubs, 1)
		s.Equal("Drama Club", clubs[0].Name)
	})

	s.Run("no match yields empty list", func() {
		clubs, err := s.service.Clubs(context.Background(), "", "chess")
		s.Require().NoError(err)
		s.Empty(clubs)
	})
}
