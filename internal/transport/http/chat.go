package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"charchat/internal/domain"
)

// Client-facing failure bodies deliberately withhold internal detail; the
// detail goes to the operational log instead.
const (
	replyGenericFailure = "Error. Try again."
	replyNotConfigured  = "AI service not configured."
)

type createChatRequest struct {
	Character string `json:"character"`
}

type postMessageRequest struct {
	Text string `json:"text"`
}

// Characters returns the category-to-names catalog mapping.
// GET /api/characters
func (h *Handler) Characters(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.Characters())
}

// CreateChat opens a new session for a character.
// POST /api/chat
func (h *Handler) CreateChat(c echo.Context) error {
	var req createChatRequest
	if err := c.Bind(&req); err != nil || req.Character == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "character required"})
	}

	session, err := h.service.CreateChat(c.Request().Context(), req.Character)
	if err != nil {
		log.Error().Err(err).Str("character", req.Character).Msg("failed to create chat")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create chat"})
	}

	return c.JSON(http.StatusOK, map[string]string{"chatId": session.ID})
}

// GetChat returns a session transcript.
// GET /api/chat/:chatId
func (h *Handler) GetChat(c echo.Context) error {
	chatID := c.Param("chatId")

	transcript, err := h.service.GetTranscript(c.Request().Context(), chatID)
	if err != nil {
		var notFound *domain.NotFoundError
		if errors.As(err, &notFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "chat not found"})
		}
		log.Error().Err(err).Str("chat_id", chatID).Msg("failed to get chat")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to get chat"})
	}

	return c.JSON(http.StatusOK, transcript)
}

// PostMessage submits one user turn and returns the character's reply.
// POST /chat/:chatId/message
func (h *Handler) PostMessage(c echo.Context) error {
	chatID := c.Param("chatId")

	var req postMessageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "text required"})
	}

	reply, err := h.service.SubmitMessage(c.Request().Context(), chatID, req.Text)
	if err != nil {
		var validation *domain.ValidationError
		var notFound *domain.NotFoundError
		switch {
		case errors.As(err, &validation):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": validation.Msg})
		case errors.As(err, &notFound):
			return c.JSON(http.StatusNotFound, map[string]string{"error": "chat not found"})
		case errors.Is(err, domain.ErrCompletionNotConfigured):
			return c.JSON(http.StatusInternalServerError, map[string]string{"reply": replyNotConfigured})
		default:
			log.Error().Err(err).Str("chat_id", chatID).Msg("message turn failed")
			return c.JSON(http.StatusInternalServerError, map[string]string{"reply": replyGenericFailure})
		}
	}

	return c.JSON(http.StatusOK, map[string]string{"reply": reply})
}

// AdminListChats returns all raw session rows, newest first.
// GET /api/admin/chats
func (h *Handler) AdminListChats(c echo.Context) error {
	sessions, err := h.service.ListChats(c.Request().Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list chats")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to get chats"})
	}
	return c.JSON(http.StatusOK, sessions)
}

// StoreCheck probes store connectivity.
// GET /api/admin/storecheck
func (h *Handler) StoreCheck(c echo.Context) error {
	count, err := h.service.StoreCount(c.Request().Context())
	if err != nil {
		log.Error().Err(err).Msg("store check failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "store check failed"})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "store connection successful",
		"count":   count,
	})
}
