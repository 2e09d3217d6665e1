// Package models holds the campus directory types.
package models

import "strings"

type College struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Logo        string `json:"logo,omitempty"`
	Location    string `json:"location"`
	Type        string `json:"type"`
	Students    int    `json:"students"`
	Established int    `json:"established"`
}

// Matches reports whether the college matches a case-insensitive substring
// query over name, location, and type.
func (c *College) Matches(query string) bool {
	return matchesAny(query, c.Name, c.Location, c.Type)
}

type Club struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Logo        string `json:"logo,omitempty"`
	College     string `json:"college"`
	Location    string `json:"location"`
	Members     int    `json:"members"`
	Category    string `json:"category"`
	Established int    `json:"established"`
}

// Matches reports whether the club matches a case-insensitive substring
// query over name, college, and category.
func (c *Club) Matches(query string) bool {
	return matchesAny(query, c.Name, c.College, c.Category)
}

func matchesAny(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
