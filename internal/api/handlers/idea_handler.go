package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/virally/virally-backend/internal/api/middleware"
	"github.com/virally/virally-backend/internal/models"
	"github.com/virally/virally-backend/internal/service"
)

// ============================================
// Idea Handler
// ============================================

type IdeaHandler struct {
	ideaService service.IdeaService
}

func (h *IdeaHandler) Create(c *gin.Context) {
	userID, ok := middleware.RequireUserID(c)
	if !ok {
		return
	}
	workspaceID := c.Param("id")

	var req models.CreateIdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	idea, err := h.ideaService.Create(c.Request.Context(), workspaceID, userID, req.Title, req.Notes, req.Source)
	if err != nil {
		respondServiceError(c, err, "Failed to create idea")
		return
	}

	c.JSON(http.StatusCreated, toIdeaResponse(idea))
}

func (h *IdeaHandler) List(c *gin.Context) {
	userID, ok := middleware.RequireUserID(c)
	if !ok {
		return
	}
	workspaceID := c.Param("id")
	status := c.Query("status")

	ideas, err := h.ideaService.List(c.Request.Context(), workspaceID, userID, status)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch ideas")
		return
	}

	response := make([]models.IdeaResponse, len(ideas))
	for i, idea := range ideas {
		response[i] = toIdeaResponse(idea)
	}

	c.JSON(http.StatusOK, response)
}

func (h *IdeaHandler) Get(c *gin.Context) {
	userID, ok := middleware.RequireUserID(c)
	if !ok {
		return
	}
	ideaID := c.Param("ideaId")

	idea, err := h.ideaService.Get(c.Request.Context(), ideaID, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch idea")
		return
	}

	c.JSON(http.StatusOK, toIdeaResponse(idea))
}

func (h *IdeaHandler) Update(c *gin.Context) {
	userID, ok := middleware.RequireUserID(c)
	if !ok {
		return
	}
	ideaID := c.Param("ideaId")

	var req models.UpdateIdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	idea, err := h.ideaService.Update(c.Request.Context(), ideaID, userID, req.Title, req.Notes, req.Source, req.Status)
	if err != nil {
		respondServiceError(c, err, "Failed to update idea")
		return
	}

	c.JSON(http.StatusOK, toIdeaResponse(idea))
}

func (h *IdeaHandler) Delete(c *gin.Context) {
	userID, ok := middleware.RequireUserID(c)
	if !ok {
		return
	}
	ideaID := c.Param("ideaId")

	if err := h.ideaService.Delete(c.Request.Context(), ideaID, userID); err != nil {
		respondServiceError(c, err, "Failed to delete idea")
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

func (h *IdeaHandler) Promote(c *gin.Context) {
	userID, ok := middleware.RequireUserID(c)
	if !ok {
		return
	}
	ideaID := c.Param("ideaId")

	var req models.PromoteIdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := h.ideaService.Promote(c.Request.Context(), ideaID, userID, req.Platform)
	if err != nil {
		respondServiceError(c, err, "Failed to promote idea")
		return
	}

	c.JSON(http.StatusCreated, toEventResponse(event))
}
