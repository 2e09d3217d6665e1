// Package models holds the chat domain types.
package models

import (
	"strings"
	"time"

	dErrors "campusconnect/pkg/domain-errors"
)

// SenderSelf marks messages written by the account owner. The viewer side of
// a conversation is single-account, so the sender column only distinguishes
// "mine" from the contact's.
const SenderSelf = "me"

// Contact is a conversation partner with its list-row summary. Unread is a
// denormalized counter maintained separately from the per-message read flags.
type Contact struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Avatar          string `json:"avatar,omitempty"`
	LastMessage     string `json:"last_message"`
	LastMessageTime string `json:"last_message_time"`
	Unread          int    `json:"unread"`
	IsOnline        bool   `json:"is_online"`
}

type Message struct {
	ID        string    `json:"id"`
	SenderID  string    `json:"sender_id"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
	IsRead    bool      `json:"is_read"`
}

type SendMessageRequest struct {
	Text string `json:"text"`
}

func (r *SendMessageRequest) Validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return dErrors.New(dErrors.CodeBadRequest, "text is required")
	}
	return nil
}

// UnreadCount reports unread messages for one conversation, derived from the
// message flags rather than the contact counter.
type UnreadCount struct {
	ConversationID string `json:"conversation_id"`
	Unread         int    `json:"unread"`
}

// TotalUnread reports the badge total, summed over the contact counters.
type TotalUnread struct {
	Unread int `json:"unread"`
}
