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
// Calendar Handler
// ============================================

type CalendarHandler struct {
	calendarService service.CalendarService
}

// parseTimeQuery parses an RFC3339 query parameter, returning nil when absent.
func parseTimeQuery(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + " parameter"})
		return nil, false
	}
	return &t, true
}

func (h *CalendarHandler) Create(c *gin.Context) {
	userID, ok := middleware.RequireUserID(c)
	if !ok {
		return
	}
	workspaceID := c.Param("id")

	var req models.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := h.calendarService.Create(c.Request.Context(), workspaceID, userID,
		req.Title, req.Description, req.Platform, req.Status, req.ScheduledAt)
	if err != nil {
		respondServiceError(c, err, "Failed to create event")
		return
	}

	c.JSON(http.StatusCreated, toEventResponse(event))
}

func (h *CalendarHandler) List(c *gin.Context) {
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

	events, err := h.calendarService.List(c.Request.Context(), workspaceID, userID, from, to)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch events")
		return
	}

	response := make([]models.EventResponse, len(events))
	for i, e := range events {
		response[i] = toEventResponse(e)
	}

	c.JSON(http.StatusOK, response)
}

func (h *CalendarHandler) Get(c *gin.Context) {
	userID, ok := middleware.RequireUserID(c)
	if !ok {
		return
	}
	eventID := c.Param("eventId")

	event, err := h.calendarService.Get(c.Request.Context(), eventID, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch event")
		return
	}

	c.JSON(http.StatusOK, toEventResponse(event))
}

func (h *CalendarHandler) Update(c *gin.Context) {
	userID, ok := middleware.RequireUserID(c)
	if !ok {
		return
	}
	eventID := c.Param("eventId")

	var req models.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := h.calendarService.Update(c.Request.Context(), eventID, userID,
		req.Title, req.Description, req.Platform, req.Status, req.ScheduledAt)
	if err != nil {
		respondServiceError(c, err, "Failed to update event")
		return
	}

	c.JSON(http.StatusOK, toEventResponse(event))
}

func (h *CalendarHandler) Delete(c *gin.Context) {
	userID, ok := middleware.RequireUserID(c)
	if !ok {
		return
	}
	eventID := c.Param("eventId")

	if err := h.calendarService.Delete(c.Request.Context(), eventID, userID); err != nil {
		respondServiceError(c, err, "Failed to delete event")
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
