package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"charchat/internal/domain"
)

// SQLiteStore implements Store using SQLite. The store assigns identifiers
// and timestamps at insert time; callers never invent them.
type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore opens (or creates) the database at dsn and runs migrations.
func NewSQLiteStore(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// For in-memory SQLite, multiple connections create separate databases.
	// Keep a single connection to avoid schema/data disappearing across goroutines.
	if dsn == ":memory:" || strings.Contains(dsn, "mode=memory") {
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS chats (
			id TEXT PRIMARY KEY,
			character_name TEXT NOT NULL,
			user_id TEXT,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS messages (
			id TEXT PRIMARY KEY,
			chat_id TEXT NOT NULL,
			content TEXT NOT NULL,
			is_user INTEGER NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (chat_id) REFERENCES chats(id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_messages_chat ON messages(chat_id, created_at)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\n%s", err, m)
		}
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// CreateSession inserts a new session and returns the populated row.
func (s *SQLiteStore) CreateSession(ctx context.Context, character, userID string) (*domain.Session, error) {
	session := &domain.Session{
		ID:        uuid.New().String(),
		Character: character,
		CreatedAt: time.Now().UTC(),
	}
	var uid sql.NullString
	if userID != "" {
		uid = sql.NullString{String: userID, Valid: true}
		session.UserID = &userID
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO chats (id, character_name, user_id, created_at) VALUES (?, ?, ?, ?)`,
		session.ID, session.Character, uid, session.CreatedAt)
	if err != nil {
		return nil, &domain.StoreError{Op: "create session", Err: err}
	}
	return session, nil
}

// GetSession retrieves a session by ID.
func (s *SQLiteStore) GetSession(ctx context.Context, sessionID string) (*domain.Session, error) {
	var session domain.Session
	var uid sql.NullString
	err := s.db.QueryRowContext(ctx,
		`SELECT id, character_name, user_id, created_at FROM chats WHERE id = ?`,
		sessionID).Scan(&session.ID, &session.Character, &uid, &session.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, &domain.NotFoundError{Resource: "chat", ID: sessionID}
	}
	if err != nil {
		return nil, &domain.StoreError{Op: "get session", Err: err}
	}
	if uid.Valid {
		session.UserID = &uid.String
	}
	return &session, nil
}

// ListSessions returns all sessions, newest first.
func (s *SQLiteStore) ListSessions(ctx context.Context) ([]domain.Session, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, character_name, user_id, created_at FROM chats ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, &domain.StoreError{Op: "list sessions", Err: err}
	}
	defer rows.Close()

	sessions := []domain.Session{}
	for rows.Next() {
		var session domain.Session
		var uid sql.NullString
		if err := rows.Scan(&session.ID, &session.Character, &uid, &session.CreatedAt); err != nil {
			return nil, &domain.StoreError{Op: "list sessions", Err: err}
		}
		if uid.Valid {
			session.UserID = &uid.String
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.StoreError{Op: "list sessions", Err: err}
	}
	return sessions, nil
}

// ListMessages returns the messages of a session ascending by creation
// timestamp, with the id as deterministic tie-break.
func (s *SQLiteStore) ListMessages(ctx context.Context, sessionID string) ([]domain.Message, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, chat_id, content, is_user, created_at FROM messages WHERE chat_id = ? ORDER BY created_at ASC, id ASC`,
		sessionID)
	if err != nil {
		return nil, &domain.StoreError{Op: "list messages", Err: err}
	}
	defer rows.Close()

	messages := []domain.Message{}
	for rows.Next() {
		var msg domain.Message
		if err := rows.Scan(&msg.ID, &msg.SessionID, &msg.Content, &msg.IsUser, &msg.CreatedAt); err != nil {
			return nil, &domain.StoreError{Op: "list messages", Err: err}
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.StoreError{Op: "list messages", Err: err}
	}
	return messages, nil
}

// AppendMessage inserts one turn for a session.
func (s *SQLiteStore) AppendMessage(ctx context.Context, sessionID, content string, isUser bool) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO messages (id, chat_id, content, is_user, created_at) VALUES (?, ?, ?, ?, ?)`,
		uuid.New().String(), sessionID, content, isUser, time.Now().UTC())
	if err != nil {
		return &domain.StoreError{Op: "append message", Err: err}
	}
	return nil
}

// CountSessions reports the total number of sessions.
func (s *SQLiteStore) CountSessions(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM chats`).Scan(&count); err != nil {
		return 0, &domain.StoreError{Op: "count sessions", Err: err}
	}
	return count, nil
}
