package service

import (
	"context"
	"strings"
	"time"
	"unicode"

	"github.com/rs/zerolog/log"

	"charchat/internal/domain"
	"charchat/internal/llm"
)

// Reply post-processing bounds. Replies longer than maxReplyLen runes are cut
// back to the last whitespace boundary past minCutPos and marked with an
// ellipsis.
const (
	maxReplyLen = 100
	minCutPos   = 50
)

// Completion sampling parameters. Tuning values, not part of the client
// contract.
var (
	replyMaxTokens        = 40
	replyTemperature      = 0.5
	replyTopP             = 0.9
	replyFrequencyPenalty = 0.1
	replyPresencePenalty  = 0.1
)

// CreateChat opens a new session for the given character.
func (s *Service) CreateChat(ctx context.Context, character string) (*domain.Session, error) {
	if character == "" {
		return nil, &domain.ValidationError{Msg: "character required"}
	}
	session, err := s.store.CreateSession(ctx, character, "")
	if err != nil {
		return nil, err
	}
	log.Info().Str("chat_id", session.ID).Str("character", character).Msg("chat created")
	return session, nil
}

// GetTranscript returns the session's character and its messages in
// conversation order.
func (s *Service) GetTranscript(ctx context.Context, sessionID string) (*domain.Transcript, error) {
	session, err := s.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	messages, err := s.store.ListMessages(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	transcript := &domain.Transcript{
		Character: session.Character,
		Messages:  make([]domain.TranscriptMessage, 0, len(messages)),
	}
	for _, m := range messages {
		transcript.Messages = append(transcript.Messages, domain.TranscriptMessage{
			Role:    m.Role(),
			Content: m.Content,
		})
	}
	return transcript, nil
}

// SubmitMessage runs one chat turn: it persists the user message, asks the
// completion API for the character's reply over the full stored history, and
// persists the processed reply. The user turn is written before the outbound
// call and stays persisted even when that call fails.
func (s *Service) SubmitMessage(ctx context.Context, sessionID, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", &domain.ValidationError{Msg: "text required"}
	}

	session, err := s.store.GetSession(ctx, sessionID)
	if err != nil {
		return "", err
	}

	if err := s.store.AppendMessage(ctx, sessionID, text, true); err != nil {
		return "", err
	}

	if s.llm == nil {
		log.Error().Str("chat_id", sessionID).Msg("completion API key is missing")
		return "", domain.ErrCompletionNotConfigured
	}

	instruction := s.catalog.Instruction(session.Character)

	// Full history, not a sliding window. The read happens after the user
	// turn was written, so that turn is the last transcript entry.
	history, err := s.store.ListMessages(ctx, sessionID)
	if err != nil {
		return "", err
	}
	messages := make([]llm.ChatMessage, 0, len(history)+1)
	messages = append(messages, llm.ChatMessage{Role: domain.RoleSystem, Content: instruction})
	for _, m := range history {
		messages = append(messages, llm.ChatMessage{Role: m.Role(), Content: m.Content})
	}

	req := &llm.ChatCompletionRequest{
		Model:            s.model,
		Messages:         messages,
		MaxTokens:        &replyMaxTokens,
		Temperature:      &replyTemperature,
		TopP:             &replyTopP,
		FrequencyPenalty: &replyFrequencyPenalty,
		PresencePenalty:  &replyPresencePenalty,
	}

	start := time.Now()
	resp, err := s.llm.CreateChatCompletion(ctx, req)
	if err != nil {
		log.Error().Err(err).Str("chat_id", sessionID).Str("character", session.Character).Msg("completion call failed")
		return "", err
	}

	reply := truncateReply(strings.TrimSpace(resp.Choices[0].Message.Content))
	log.Info().
		Str("chat_id", sessionID).
		Str("character", session.Character).
		Int64("latency_ms", time.Since(start).Milliseconds()).
		Int("history", len(history)).
		Msg("completion received")

	if err := s.store.AppendMessage(ctx, sessionID, reply, false); err != nil {
		return "", err
	}
	return reply, nil
}

// ListChats returns all sessions, newest first, for the admin listing.
func (s *Service) ListChats(ctx context.Context) ([]domain.Session, error) {
	return s.store.ListSessions(ctx)
}

// StoreCount probes store connectivity and returns the session count.
func (s *Service) StoreCount(ctx context.Context) (int, error) {
	return s.store.CountSessions(ctx)
}

// truncateReply bounds a reply to maxReplyLen runes, cutting at the last
// whitespace boundary when one exists past minCutPos and appending an
// ellipsis marker. Replies within the bound pass through unchanged.
func truncateReply(reply string) string {
	runes := []rune(reply)
	if len(runes) <= maxReplyLen {
		return reply
	}

	cut := runes[:maxReplyLen]
	lastSpace := -1
	for i, r := range cut {
		if unicode.IsSpace(r) {
			lastSpace = i
		}
	}
	if lastSpace > minCutPos {
		cut = cut[:lastSpace]
	}
	return string(cut) + "..."
}
