package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/virally/virally-backend/internal/api/middleware"
	"github.com/virally/virally-backend/internal/models"
	"github.com/virally/virally-backend/internal/service"
)

// ============================================
// Script Handler
// ============================================

type ScriptHandler struct {
	scriptService service.ScriptService
}

func (h *ScriptHandler) Create(c *gin.Context) {
	userID, ok := middleware.RequireUserID(c)
	if !ok {
		return
	}
	workspaceID := c.Param("id")

	var req models.CreateScriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	script, err := h.scriptService.Create(c.Request.Context(), workspaceID, userID,
		req.Title, req.Hook, req.Content, req.EventID)
	if err != nil {
		respondServiceError(c, err, "Failed to create script")
		return
	}

	c.JSON(http.StatusCreated, toScriptResponse(script))
}

func (h *ScriptHandler) List(c *gin.Context) {
	userID, ok := middleware.RequireUserID(c)
	if !ok {
		return
	}
	workspaceID := c.Param("id")

	scripts, err := h.scriptService.List(c.Request.Context(), workspaceID, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch scripts")
		return
	}

	response := make([]models.ScriptResponse, len(scripts))
	for i, s := range scripts {
		response[i] = toScriptResponse(s)
	}

	c.JSON(http.StatusOK, response)
}

func (h *ScriptHandler) Get(c *gin.Context) {
	userID, ok := middleware.RequireUserID(c)
	if !ok {
		return
	}
	scriptID := c.Param("scriptId")

	script, err := h.scriptService.Get(c.Request.Context(), scriptID, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch script")
		return
	}

	c.JSON(http.StatusOK, toScriptResponse(script))
}

func (h *ScriptHandler) Update(c *gin.Context) {
	userID, ok := middleware.RequireUserID(c)
	if !ok {
		return
	}
	scriptID := c.Param("scriptId")

	var req models.UpdateScriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	script, err := h.scriptService.Update(c.Request.Context(), scriptID, userID,
		req.Title, req.Hook, req.Content, req.Status, req.EventID)
	if err != nil {
		respondServiceError(c, err, "Failed to update script")
		return
	}

	c.JSON(http.StatusOK, toScriptResponse(script))
}

func (h *ScriptHandler) Delete(c *gin.Context) {
	userID, ok := middleware.RequireUserID(c)
	if !ok {
		return
	}
	scriptID := c.Param("scriptId")

	if err := h.scriptService.Delete(c.Request.Context(), scriptID, userID); err != nil {
		respondServiceError(c, err, "Failed to delete script")
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
