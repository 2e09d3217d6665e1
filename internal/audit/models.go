package audit

import "time"

// Actions recorded by the domain services.
const (
	ActionUserRegistered  = "user.registered"
	ActionUserLogin       = "user.login"
	ActionUserLogout      = "user.logout"
	ActionProfileUpdated  = "user.profile_updated"
	ActionPostCreated     = "post.created"
	ActionMessageSent     = "message.sent"
	ActionEventRegistered = "event.registered"
	ActionEventCancelled  = "event.cancelled"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	UserID    string    `json:"user_id,omitempty"`
	Action    string    `json:"action"`
	Subject   string    `json:"subject,omitempty"`
	Detail    string    `json:"detail,omitempty"`
}
