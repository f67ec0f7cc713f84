// Package store persists chat sessions and messages.
package store

import (
	"context"

	"charchat/internal/domain"
)

// Store is the chat store adapter. Every operation is independent: no
// retries, no transactions spanning calls. Lookups that match nothing fail
// with *domain.NotFoundError; everything else fails with *domain.StoreError.
type Store interface {
	// CreateSession inserts a session for the given character and returns
	// the store-populated row, including the generated identifier.
	// userID may be empty, which persists as NULL.
	CreateSession(ctx context.Context, character, userID string) (*domain.Session, error)

	// GetSession retrieves a session by ID.
	GetSession(ctx context.Context, sessionID string) (*domain.Session, error)

	// ListSessions returns all sessions, newest first.
	ListSessions(ctx context.Context) ([]domain.Session, error)

	// ListMessages returns the messages of a session ascending by creation
	// timestamp. A session with no messages yields an empty slice.
	ListMessages(ctx context.Context, sessionID string) ([]domain.Message, error)

	// AppendMessage inserts one turn. No uniqueness constraint is enforced.
	AppendMessage(ctx context.Context, sessionID, content string, isUser bool) error

	// CountSessions reports the total number of sessions, used by the
	// store connectivity probe.
	CountSessions(ctx context.Context) (int, error)

	Close() error
}
