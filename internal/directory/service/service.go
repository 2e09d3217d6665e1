// Package service implements directory browsing over a DirectoryStore.
package service

import (
	"context"

	"campusconnect/internal/directory/models"
)

type DirectoryStore interface {
	Colleges(ctx context.Context) ([]models.College, error)
	Clubs(ctx context.Context) ([]models.Club, error)
}

type Service struct {
	directory DirectoryStore
}

func New(directory DirectoryStore) *Service {
	return &Service{directory: directory}
}

// Colleges returns the listings for one location ("all" or empty for every
// location) narrowed by a case-insensitive substring query.
func (s *Service) Colleges(ctx context.Context, location, query string) ([]models.College, error) {
	colleges, err := s.directory.Colleges(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]models.College, 0, len(colleges))
	for i := range colleges {
		if !matchLocation(location, colleges[i].Location) {
			continue
		}
		if !colleges[i].Matches(query) {
			continue
		}
		filtered = append(filtered, colleges[i])
	}
	return filtered, nil
}

// Clubs mirrors Colleges for the club listings.
func (s *Service) Clubs(ctx context.Context, location, query string) ([]models.Club, error) {
	clubs, err := s.directory.Clubs(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]models.Club, 0, len(clubs))
	for i := range clubs {
		if !matchLocation(location, clubs[i].Location) {
			continue
		}
		if !clubs[i].Matches(query) {
			continue
		}
		filtered = append(filtered, clubs[i])
	}
	return filtered, nil
}

// matchLocation is an exact match; the location filter is a fixed chip list,
// not free text.
func matchLocation(filter, location string) bool {
	return filter == "" || filter == "all" || filter == location
}
