package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"charchat/internal/domain"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("NewSQLiteStore failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestCreateAndGetSession(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	created, err := s.CreateSession(ctx, "Batman", "")
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected a generated session id")
	}
	if created.UserID != nil {
		t.Fatalf("expected nil user id, got %v", *created.UserID)
	}

	got, err := s.GetSession(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if got.Character != "Batman" {
		t.Fatalf("expected character Batman, got %q", got.Character)
	}
	if got.CreatedAt.IsZero() {
		t.Fatal("expected a creation timestamp")
	}
}

func TestCreateSessionWithUserID(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	created, err := s.CreateSession(ctx, "Joker", "u1")
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	got, err := s.GetSession(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if got.UserID == nil || *got.UserID != "u1" {
		t.Fatalf("expected user id u1, got %v", got.UserID)
	}
}

func TestGetSessionNotFound(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.GetSession(ctx, "missing")
	var notFound *domain.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestListMessagesOrdering(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	session, err := s.CreateSession(ctx, "Cleopatra", "")
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	for _, content := range []string{"first", "second", "third"} {
		if err := s.AppendMessage(ctx, session.ID, content, true); err != nil {
			t.Fatalf("AppendMessage failed: %v", err)
		}
		time.Sleep(2 * time.Millisecond)
	}

	messages, err := s.ListMessages(ctx, session.ID)
	if err != nil {
		t.Fatalf("ListMessages failed: %v", err)
	}
	if len(messages) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(messages))
	}
	for i, want := range []string{"first", "second", "third"} {
		if messages[i].Content != want {
			t.Fatalf("message %d: expected %q, got %q", i, want, messages[i].Content)
		}
	}
	for i := 1; i < len(messages); i++ {
		if messages[i].CreatedAt.Before(messages[i-1].CreatedAt) {
			t.Fatalf("messages out of order at %d", i)
		}
	}
}

func TestListMessagesEmpty(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	session, err := s.CreateSession(ctx, "Nani", "")
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	messages, err := s.ListMessages(ctx, session.ID)
	if err != nil {
		t.Fatalf("ListMessages failed: %v", err)
	}
	if messages == nil || len(messages) != 0 {
		t.Fatalf("expected empty slice, got %v", messages)
	}
}

func TestAppendMessageAuthorFlag(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	session, err := s.CreateSession(ctx, "Thanos", "")
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	if err := s.AppendMessage(ctx, session.ID, "hello", true); err != nil {
		t.Fatalf("AppendMessage failed: %v", err)
	}
	if err := s.AppendMessage(ctx, session.ID, "Inevitable.", false); err != nil {
		t.Fatalf("AppendMessage failed: %v", err)
	}

	messages, err := s.ListMessages(ctx, session.ID)
	if err != nil {
		t.Fatalf("ListMessages failed: %v", err)
	}
	if !messages[0].IsUser || messages[1].IsUser {
		t.Fatalf("unexpected author flags: %+v", messages)
	}
	if messages[0].Role() != domain.RoleUser || messages[1].Role() != domain.RoleAssistant {
		t.Fatalf("unexpected roles: %q, %q", messages[0].Role(), messages[1].Role())
	}
}

func TestListSessionsNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	first, err := s.CreateSession(ctx, "Napoleon", "")
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	time.Sleep(2 * time.Millisecond)
	second, err := s.CreateSession(ctx, "Superman", "")
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	sessions, err := s.ListSessions(ctx)
	if err != nil {
		t.Fatalf("ListSessions failed: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(sessions))
	}
	if sessions[0].ID != second.ID || sessions[1].ID != first.ID {
		t.Fatalf("expected newest first, got %v", sessions)
	}
}

func TestCountSessions(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	count, err := s.CountSessions(ctx)
	if err != nil {
		t.Fatalf("CountSessions failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected 0, got %d", count)
	}

	if _, err := s.CreateSession(ctx, "Batman", ""); err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	count, err = s.CountSessions(ctx)
	if err != nil {
		t.Fatalf("CountSessions failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1, got %d", count)
	}
}
