package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/virally/virally-backend/internal/api/middleware"
	"github.com/virally/virally-backend/internal/models"
	"github.com/virally/virally-backend/internal/service"
)

// ============================================
// Analytics Handler
// ============================================

type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
}

func toEntryInput(req models.AnalyticsEntryRequest) service.AnalyticsEntryInput {
	return service.AnalyticsEntryInput{
		Platform:   req.Platform,
		MetricDate: req.MetricDate,
		Views:      req.Views,
		Likes:      req.Likes,
		Comments:   req.Comments,
		Shares:     req.Shares,
		Followers:  req.Followers,
		Revenue:    req.Revenue,
	}
}

func (h *AnalyticsHandler) Create(c *gin.Context) {
	userID, ok := middleware.RequireUserID(c)
	if !ok {
		return
	}
	workspaceID := c.Param("id")

	var req models.AnalyticsEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.analyticsService.Create(c.Request.Context(), workspaceID, userID, toEntryInput(req))
	if err != nil {
		respondServiceError(c, err, "Failed to create analytics entry")
		return
	}

	c.JSON(http.StatusCreated, toAnalyticsEntryResponse(entry))
}

func (h *AnalyticsHandler) List(c *gin.Context) {
	userID, ok := middleware.RequireUserID(c)
	if !ok {
		return
	}
	workspaceID := c.Param("id")

	from, ok := parseTimeQuery(c, "from")
	if !ok {
		return
	}
	to, ok := parseTimeQuery(c, "to")
	if !ok {
		return
	}

	entries, err := h.analyticsService.List(c.Request.Context(), workspaceID, userID, from, to)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch analytics entries")
		return
	}

	response := make([]models.AnalyticsEntryResponse, len(entries))
	for i, e := range entries {
		response[i] = toAnalyticsEntryResponse(e)
	}

	c.JSON(http.StatusOK, response)
}

// Summary aggregates analytics over a date range. Defaults to the last
// 30 days when no range is given.
func (h *AnalyticsHandler) Summary(c *gin.Context) {
	userID, ok := middleware.RequireUserID(c)
	if !ok {
		return
	}
	workspaceID := c.Param("id")

	fromPtr, ok := parseTimeQuery(c, "from")
	if !ok {
		return
	}
	toPtr, ok := parseTimeQuery(c, "to")
	if !ok {
		return
	}

	now := time.Now()
	from := now.AddDate(0, 0, -30)
	to := now
	if fromPtr != nil {
		from = *fromPtr
	}
	if toPtr != nil {
		to = *toPtr
	}

	summary, err := h.analyticsService.Summary(c.Request.Context(), workspaceID, userID, from, to)
	if err != nil {
		respondServiceError(c, err, "Failed to compute summary")
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *AnalyticsHandler) Update(c *gin.Context) {
	userID, ok := middleware.RequireUserID(c)
	if !ok {
		return
	}
	entryID := c.Param("entryId")

	var req models.AnalyticsEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.analyticsService.Update(c.Request.Context(), entryID, userID, toEntryInput(req))
	if err != nil {
		respondServiceError(c, err, "Failed to update analytics entry")
		return
	}

	c.JSON(http.StatusOK, toAnalyticsEntryResponse(entry))
}

func (h *AnalyticsHandler) Delete(c *gin.Context) {
	userID, ok := middleware.RequireUserID(c)
	if !ok {
		return
	}
	entryID := c.Param("entryId")

	if err := h.analyticsService.Delete(c.Request.Context(), entryID, userID); err != nil {
		respondServiceError(c, err, "Failed to delete analytics entry")
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
