// Package models holds the events domain types.
package models

import (
	"strings"
	"time"

	dErrors "campusconnect/pkg/domain-errors"
)

// EventType is the category used for filtering.
type EventType string

const (
	TypeHackathon EventType = "hackathon"
	TypeCultural  EventType = "cultural"
	TypeWorkshop  EventType = "workshop"
	TypeSeminar   EventType = "seminar"
)

func (t EventType) IsValid() bool {
	switch t {
	case TypeHackathon, TypeCultural, TypeWorkshop, TypeSeminar:
		return true
	}
	return false
}

// Organizer is the denormalized host snapshot embedded in an event.
type Organizer struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

// CalendarDate is the short day/month badge rendered on event cards.
type CalendarDate struct {
	Day   string `json:"day"`
	Month string `json:"month"`
}

type Event struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Image       string       `json:"image,omitempty"`
	Date        string       `json:"date"`
	Time        string       `json:"time"`
	Location    string       `json:"location"`
	College     string       `json:"college"`
	Organizer   Organizer    `json:"organizer"`
	Attendees   int          `json:"attendees"`
	Type        EventType    `json:"type"`
	DateBadge   CalendarDate `json:"date_badge"`
	CreatedAt   time.Time    `json:"created_at"`
}

// Matches reports whether the event matches a case-insensitive substring
// query over title, description, college, location, and type.
func (e *Event) Matches(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, field := range []string{e.Title, e.Description, e.College, e.Location, string(e.Type)} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

type CreateEventRequest struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Image       string       `json:"image,omitempty"`
	Date        string       `json:"date"`
	Time        string       `json:"time"`
	Location    string       `json:"location"`
	College     string       `json:"college"`
	Type        EventType    `json:"type"`
	DateBadge   CalendarDate `json:"date_badge"`
}

func (r *CreateEventRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	r.Location = strings.TrimSpace(r.Location)
	r.College = strings.TrimSpace(r.College)
}

func (r *CreateEventRequest) Validate() error {
	if r.Title == "" || r.Date == "" || r.Location == "" {
		return dErrors.New(dErrors.CodeBadRequest, "missing required fields")
	}
	if !r.Type.IsValid() {
		return dErrors.New(dErrors.CodeBadRequest, "invalid event type")
	}
	return nil
}

// RegistrationResult reports the viewer's state after registering or
// cancelling.
type RegistrationResult struct {
	EventID    string `json:"event_id"`
	Registered bool   `json:"registered"`
	Attendees  int    `json:"attendees"`
}
