// Package search aggregates the campus-wide search across the directory,
// events, and the feed.
package search

import (
	"context"
	"fmt"
	"strings"

	directorymodels "campusconnect/internal/directory/models"
	eventmodels "campusconnect/internal/events/models"
	feedmodels "campusconnect/internal/feed/models"
)

// Result caps: events and posts are preview sections on the results page,
// the directory sections list everything that matches.
const (
	maxEvents = 6
	maxPosts  = 5
)

type DirectoryLister interface {
	Colleges(ctx context.Context, location, query string) ([]directorymodels.College, error)
	Clubs(ctx context.Context, location, query string) ([]directorymodels.Club, error)
}

type EventLister interface {
	List(ctx context.Context) ([]eventmodels.Event, error)
}

type PostLister interface {
	List(ctx context.Context) ([]feedmodels.Post, error)
}

// Results groups the per-entity sections of one query.
type Results struct {
	Query    string                    `json:"query"`
	Colleges []directorymodels.College `json:"colleges"`
	Clubs    []directorymodels.Club    `json:"clubs"`
	Events   []eventmodels.Event       `json:"events"`
	Posts    []feedmodels.Post         `json:"posts"`
}

type Service struct {
	directory DirectoryLister
	events    EventLister
	posts     PostLister
}

func New(directory DirectoryLister, events EventLister, posts PostLister) *Service {
	return &Service{
		directory: directory,
		events:    events,
		posts:     posts,
	}
}

// Search runs the query against every section. An empty query matches
// everything, mirroring the browse pages.
func (s *Service) Search(ctx context.Context, query string) (*Results, error) {
	colleges, err := s.directory.Colleges(ctx, "", query)
	if err != nil {
		return nil, fmt.Errorf("search colleges: %w", err)
	}
	clubs, err := s.directory.Clubs(ctx, "", query)
	if err != nil {
		return nil, fmt.Errorf("search clubs: %w", err)
	}

	allEvents, err := s.events.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("search events: %w", err)
	}
	events := make([]eventmodels.Event, 0, maxEvents)
	for i := range allEvents {
		if len(events) == maxEvents {
			break
		}
		if allEvents[i].Matches(query) {
			events = append(events, allEvents[i])
		}
	}

	allPosts, err := s.posts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("search posts: %w", err)
	}
	posts := make([]feedmodels.Post, 0, maxPosts)
	for i := range allPosts {
		if len(posts) == maxPosts {
			break
		}
		if postMatches(&allPosts[i], query) {
			posts = append(posts, allPosts[i])
		}
	}

	return &Results{
		Query:    query,
		Colleges: colleges,
		Clubs:    clubs,
		Events:   events,
		Posts:    posts,
	}, nil
}

// postMatches checks content and author name only; tags are rendered but not
// searched.
func postMatches(p *feedmodels.Post, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(p.Content), q) ||
		strings.Contains(strings.ToLower(p.Author.Name), q)
}
