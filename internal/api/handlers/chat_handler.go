package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/virally/virally-backend/internal/api/middleware"
	"github.com/virally/virally-backend/internal/models"
	"github.com/virally/virally-backend/internal/service"
)

// ============================================
// Chat Handler
// ============================================

type ChatHandler struct {
	chatService service.ChatService
}

func (h *ChatHandler) Send(c *gin.Context) {
	userID, ok := middleware.RequireUserID(c)
	if !ok {
		return
	}
	workspaceID := c.Param("id")

	var req models.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply, err := h.chatService.Send(c.Request.Context(), workspaceID, userID, req.Content)
	if err != nil {
		respondServiceError(c, err, "Failed to send message")
		return
	}

	c.JSON(http.StatusCreated, toChatMessageResponse(reply))
}

func (h *ChatHandler) History(c *gin.Context) {
	userID, ok := middleware.RequireUserID(c)
	if !ok {
		return
	}
	workspaceID := c.Param("id")

	limit := 50
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	messages, err := h.chatService.History(c.Request.Context(), workspaceID, userID, limit)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch chat history")
		return
	}

	response := make([]models.ChatMessageResponse, len(messages))
	for i, m := range messages {
		response[i] = toChatMessageResponse(m)
	}

	c.JSON(http.StatusOK, response)
}

func (h *ChatHandler) Clear(c *gin.Context) {
	userID, ok := middleware.RequireUserID(c)
	if !ok {
		return
	}
	workspaceID := c.Param("id")

	if err := h.chatService.Clear(c.Request.Context(), workspaceID, userID); err != nil {
		respondServiceError(c, err, "Failed to clear chat")
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
