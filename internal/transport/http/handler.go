// Package handler provides the HTTP surface for the chat backend.
package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"charchat/internal/service"
)

// Handler handles HTTP requests.
type Handler struct {
	service *service.Service
}

// NewHandler creates a new handler.
func NewHandler(service *service.Service) *Handler {
	return &Handler{
		service: service,
	}
}

// RegisterRoutes registers the chat routes with the echo server.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/characters", h.Characters)
	e.POST("/api/chat", h.CreateChat)
	e.GET("/api/chat/:chatId", h.GetChat)
	e.POST("/chat/:chatId/message", h.PostMessage)

	// Admin/debug surface, unauthenticated.
	e.GET("/api/admin/chats", h.AdminListChats)
	e.GET("/api/admin/storecheck", h.StoreCheck)

	e.GET("/health", h.Health)
}

// Health returns health status.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"version": "0.1.0",
	})
}
