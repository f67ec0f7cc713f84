package llm

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"charchat/internal/domain"
)

func TestCreateChatCompletion(t *testing.T) {
	var gotPath, gotAuth string
	var gotReq ChatCompletionRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		data, _ := io.ReadAll(r.Body)
		json.Unmarshal(data, &gotReq)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"model": "llama3-8b-8192",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "Elementary."}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 20, "completion_tokens": 2, "total_tokens": 22}
		}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "gsk_test", 5*time.Second)
	maxTokens := 40
	resp, err := c.CreateChatCompletion(context.Background(), &ChatCompletionRequest{
		Model: "llama3-8b-8192",
		Messages: []ChatMessage{
			{Role: "system", Content: "You are Sherlock Holmes."},
			{Role: "user", Content: "Who did it?"},
		},
		MaxTokens: &maxTokens,
	})
	require.NoError(t, err)

	assert.Equal(t, "/v1/chat/completions", gotPath)
	assert.Equal(t, "Bearer gsk_test", gotAuth)
	assert.Equal(t, "llama3-8b-8192", gotReq.Model)
	require.NotNil(t, gotReq.MaxTokens)
	assert.Equal(t, 40, *gotReq.MaxTokens)
	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)

	assert.Equal(t, "Elementary.", resp.Choices[0].Message.Content)
	require.NotNil(t, resp.Usage)
	assert.Equal(t, 22, resp.Usage.TotalTokens)
}

func TestCreateChatCompletionUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"rate limited"}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "gsk_test", 5*time.Second)
	_, err := c.CreateChatCompletion(context.Background(), &ChatCompletionRequest{Model: "llama3-8b-8192"})

	var upstream *domain.UpstreamError
	require.True(t, errors.As(err, &upstream), "expected UpstreamError, got %v", err)
	assert.Equal(t, http.StatusTooManyRequests, upstream.Status)
	assert.Contains(t, upstream.Body, "rate limited")
}

func TestCreateChatCompletionNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "chatcmpl-1", "choices": []}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "gsk_test", 5*time.Second)
	_, err := c.CreateChatCompletion(context.Background(), &ChatCompletionRequest{Model: "llama3-8b-8192"})
	require.Error(t, err)
}

func TestMockClientEchoesLastUserTurn(t *testing.T) {
	m := NewMockClient()
	resp, err := m.CreateChatCompletion(context.Background(), &ChatCompletionRequest{
		Model: "llama3-8b-8192",
		Messages: []ChatMessage{
			{Role: "system", Content: "You are Batman."},
			{Role: "user", Content: "Where is Gotham?"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "You said: Where is Gotham?", resp.Choices[0].Message.Content)
}
