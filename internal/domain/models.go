// Package domain defines the core domain models for the chat backend.
package domain

import "time"

// Role values used in transcripts sent to the completion API and to clients.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Session represents one character-scoped conversation thread.
// The store assigns the identifier and creation timestamp; the character
// name is immutable after creation.
type Session struct {
	ID        string    `json:"id"`
	Character string    `json:"character_name"`
	UserID    *string   `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Message is a single turn in a session, authored by either the user or
// the assistant. Messages are append-only and ordered by CreatedAt.
type Message struct {
	ID        string    `json:"id"`
	SessionID string    `json:"chat_id"`
	Content   string    `json:"content"`
	IsUser    bool      `json:"is_user"`
	CreatedAt time.Time `json:"created_at"`
}

// Role maps the author flag to a completion-API role.
func (m Message) Role() string {
	if m.IsUser {
		return RoleUser
	}
	return RoleAssistant
}

// TranscriptMessage is the client-facing view of a message.
type TranscriptMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Transcript is the full conversation for a session, in chronological order.
type Transcript struct {
	Character string              `json:"character"`
	Messages  []TranscriptMessage `json:"messages"`
}
