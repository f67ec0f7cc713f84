package domain

import (
	"errors"
	"fmt"
)

// ErrCompletionNotConfigured is returned when no completion-API credential is
// configured; the turn short-circuits before any outbound call.
var ErrCompletionNotConfigured = errors.New("completion API not configured")

// ValidationError reports bad client input.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// NotFoundError reports a lookup that matched no row.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// StoreError reports a persistence failure. A network failure after a
// successful remote write is indistinguishable from a failed write and is
// reported as a StoreError regardless.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// UpstreamError reports a non-2xx response from the completion API.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("completion API error [%d]: %s", e.Status, e.Body)
}
