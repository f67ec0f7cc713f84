package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"charchat/internal/domain"
)

// SupabaseStore implements Store against a hosted Supabase project via its
// PostgREST interface. It only shapes requests and forwards errors; the
// remote database owns identifiers and timestamps.
type SupabaseStore struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

var _ Store = (*SupabaseStore)(nil)

// NewSupabaseStore creates a store for the project at baseURL using apiKey.
func NewSupabaseStore(baseURL, apiKey string, timeout time.Duration) *SupabaseStore {
	return &SupabaseStore{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// sessionRow is the chats table row shape.
type sessionRow struct {
	ID        string    `json:"id"`
	Character string    `json:"character_name"`
	UserID    *string   `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (r sessionRow) toDomain() domain.Session {
	return domain.Session{
		ID:        r.ID,
		Character: r.Character,
		UserID:    r.UserID,
		CreatedAt: r.CreatedAt,
	}
}

// messageRow is the messages table row shape.
type messageRow struct {
	ID        string    `json:"id"`
	SessionID string    `json:"chat_id"`
	Content   string    `json:"content"`
	IsUser    bool      `json:"is_user"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateSession inserts a chats row and returns the representation the
// database populated.
func (s *SupabaseStore) CreateSession(ctx context.Context, character, userID string) (*domain.Session, error) {
	payload := []map[string]interface{}{{
		"character_name": character,
		"user_id":        nil,
	}}
	if userID != "" {
		payload[0]["user_id"] = userID
	}

	respBody, err := s.do(ctx, http.MethodPost, "/rest/v1/chats", payload, "return=representation")
	if err != nil {
		return nil, &domain.StoreError{Op: "create session", Err: err}
	}

	var rows []sessionRow
	if err := json.Unmarshal(respBody, &rows); err != nil {
		return nil, &domain.StoreError{Op: "create session", Err: fmt.Errorf("failed to unmarshal response: %w", err)}
	}
	if len(rows) != 1 {
		return nil, &domain.StoreError{Op: "create session", Err: fmt.Errorf("expected 1 row, got %d", len(rows))}
	}
	session := rows[0].toDomain()
	return &session, nil
}

// GetSession retrieves a chats row by ID.
func (s *SupabaseStore) GetSession(ctx context.Context, sessionID string) (*domain.Session, error) {
	query := url.Values{}
	query.Set("select", "*")
	query.Set("id", "eq."+sessionID)

	respBody, err := s.do(ctx, http.MethodGet, "/rest/v1/chats?"+query.Encode(), nil, "")
	if err != nil {
		return nil, &domain.StoreError{Op: "get session", Err: err}
	}

	var rows []sessionRow
	if err := json.Unmarshal(respBody, &rows); err != nil {
		return nil, &domain.StoreError{Op: "get session", Err: fmt.Errorf("failed to unmarshal response: %w", err)}
	}
	if len(rows) == 0 {
		return nil, &domain.NotFoundError{Resource: "chat", ID: sessionID}
	}
	session := rows[0].toDomain()
	return &session, nil
}

// ListSessions returns all chats rows, newest first.
func (s *SupabaseStore) ListSessions(ctx context.Context) ([]domain.Session, error) {
	query := url.Values{}
	query.Set("select", "*")
	query.Set("order", "created_at.desc")

	respBody, err := s.do(ctx, http.MethodGet, "/rest/v1/chats?"+query.Encode(), nil, "")
	if err != nil {
		return nil, &domain.StoreError{Op: "list sessions", Err: err}
	}

	var rows []sessionRow
	if err := json.Unmarshal(respBody, &rows); err != nil {
		return nil, &domain.StoreError{Op: "list sessions", Err: fmt.Errorf("failed to unmarshal response: %w", err)}
	}
	sessions := make([]domain.Session, 0, len(rows))
	for _, r := range rows {
		sessions = append(sessions, r.toDomain())
	}
	return sessions, nil
}

// ListMessages returns the messages of a session ascending by creation
// timestamp.
func (s *SupabaseStore) ListMessages(ctx context.Context, sessionID string) ([]domain.Message, error) {
	query := url.Values{}
	query.Set("select", "*")
	query.Set("chat_id", "eq."+sessionID)
	query.Set("order", "created_at.asc")

	respBody, err := s.do(ctx, http.MethodGet, "/rest/v1/messages?"+query.Encode(), nil, "")
	if err != nil {
		return nil, &domain.StoreError{Op: "list messages", Err: err}
	}

	var rows []messageRow
	if err := json.Unmarshal(respBody, &rows); err != nil {
		return nil, &domain.StoreError{Op: "list messages", Err: fmt.Errorf("failed to unmarshal response: %w", err)}
	}
	messages := make([]domain.Message, 0, len(rows))
	for _, r := range rows {
		messages = append(messages, domain.Message{
			ID:        r.ID,
			SessionID: r.SessionID,
			Content:   r.Content,
			IsUser:    r.IsUser,
			CreatedAt: r.CreatedAt,
		})
	}
	return messages, nil
}

// AppendMessage inserts a messages row.
func (s *SupabaseStore) AppendMessage(ctx context.Context, sessionID, content string, isUser bool) error {
	payload := []map[string]interface{}{{
		"chat_id": sessionID,
		"content": content,
		"is_user": isUser,
	}}
	if _, err := s.do(ctx, http.MethodPost, "/rest/v1/messages", payload, "return=minimal"); err != nil {
		return &domain.StoreError{Op: "append message", Err: err}
	}
	return nil
}

// CountSessions asks PostgREST for an exact count without fetching rows.
func (s *SupabaseStore) CountSessions(ctx context.Context) (int, error) {
	headers := map[string]string{
		"Prefer": "count=exact",
		"Range":  "0-0",
	}
	query := url.Values{}
	query.Set("select", "id")

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/rest/v1/chats?"+query.Encode(), nil)
	if err != nil {
		return 0, &domain.StoreError{Op: "count sessions", Err: err}
	}
	s.setHeaders(httpReq)
	for k, v := range headers {
		httpReq.Header.Set(k, v)
	}

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return 0, &domain.StoreError{Op: "count sessions", Err: fmt.Errorf("failed to send request: %w", err)}
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, &domain.StoreError{Op: "count sessions", Err: fmt.Errorf("store API error [%d]", resp.StatusCode)}
	}

	// Content-Range looks like "0-0/42" or "*/0".
	contentRange := resp.Header.Get("Content-Range")
	idx := strings.LastIndex(contentRange, "/")
	if idx < 0 {
		return 0, &domain.StoreError{Op: "count sessions", Err: fmt.Errorf("missing count in Content-Range %q", contentRange)}
	}
	count, err := strconv.Atoi(contentRange[idx+1:])
	if err != nil {
		return 0, &domain.StoreError{Op: "count sessions", Err: fmt.Errorf("bad Content-Range %q: %w", contentRange, err)}
	}
	return count, nil
}

// Close is a no-op; the underlying http.Client needs no teardown.
func (s *SupabaseStore) Close() error {
	return nil
}

// do sends one PostgREST request and returns the response body, turning any
// non-2xx status into an error carrying status and body.
func (s *SupabaseStore) do(ctx context.Context, method, path string, payload interface{}, prefer string) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	s.setHeaders(httpReq)
	if prefer != "" {
		httpReq.Header.Set("Prefer", prefer)
	}

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("store API error [%d]: %s", resp.StatusCode, string(respBody))
	}
	return respBody, nil
}

func (s *SupabaseStore) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", s.apiKey)
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
}
