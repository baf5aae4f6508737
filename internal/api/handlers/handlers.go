package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/virally/virally-backend/internal/models"
	"github.com/virally/virally-backend/internal/repository"
	"github.com/virally/virally-backend/internal/service"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	Auth       *AuthHandler
	User       *UserHandler
	Workspace  *WorkspaceHandler
	Invitation *InvitationHandler
	Calendar   *CalendarHandler
	Idea       *IdeaHandler
	Script     *ScriptHandler
	Analytics  *AnalyticsHandler
	Chat       *ChatHandler
}

// NewHandlers creates all handlers
func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Auth:       &AuthHandler{authService: services.Auth},
		User:       &UserHandler{userService: services.User},
		Workspace:  &WorkspaceHandler{workspaceService: services.Workspace},
		Invitation: &InvitationHandler{invitationService: services.Invitation},
		Calendar:   &CalendarHandler{calendarService: services.Calendar},
		Idea:       &IdeaHandler{ideaService: services.Idea},
		Script:     &ScriptHandler{scriptService: services.Script},
		Analytics:  &AnalyticsHandler{analyticsService: services.Analytics},
		Chat:       &ChatHandler{chatService: services.Chat},
	}
}

// respondServiceError maps service sentinel errors to HTTP responses.
// Unknown errors fall through to a 500 with the provided message.
func respondServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrNotFound), errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, service.ErrAccessDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
	case errors.Is(err, service.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
	case errors.Is(err, service.ErrInvalidState):
		c.JSON(http.StatusConflict, gin.H{"error": "Operation not allowed in current state"})
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "Conflict"})
	case errors.Is(err, service.ErrInvalidRole):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role"})
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
	case errors.Is(err, service.ErrAssistantUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Assistant is unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

// ============================================
// Response Mappers
// ============================================

func toUserResponse(u *repository.User) models.UserResponse {
	return models.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Avatar:    u.Avatar,
		CreatedAt: u.CreatedAt,
	}
}

func toWorkspaceResponse(w *repository.Workspace, role string) models.WorkspaceResponse {
	return models.WorkspaceResponse{
		ID:          w.ID,
		OwnerID:     w.OwnerID,
		Name:        w.Name,
		Niche:       w.Niche,
		Description: w.Description,
		Role:        role,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
}

func toMemberResponse(m *repository.WorkspaceMember) models.WorkspaceMemberResponse {
	resp := models.WorkspaceMemberResponse{
		ID:          m.ID,
		WorkspaceID: m.WorkspaceID,
		UserID:      m.UserID,
		Role:        m.Role,
		JoinedAt:    m.JoinedAt,
	}
	if m.User != nil {
		user := toUserResponse(m.User)
		resp.User = &user
	}
	return resp
}

func toInvitationResponse(inv *repository.Invitation) models.InvitationResponse {
	return models.InvitationResponse{
		ID:          inv.ID,
		WorkspaceID: inv.WorkspaceID,
		Email:       inv.Email,
		Token:       inv.Token,
		Role:        inv.Role,
		InvitedBy:   inv.InvitedBy,
		Status:      inv.Status,
		ExpiresAt:   inv.ExpiresAt,
		CreatedAt:   inv.CreatedAt,
	}
}

func toEventResponse(e *repository.CalendarEvent) models.EventResponse {
	return models.EventResponse{
		ID:          e.ID,
		WorkspaceID: e.WorkspaceID,
		Title:       e.Title,
		Description: e.Description,
		Platform:    e.Platform,
		Status:      e.Status,
		ScheduledAt: e.ScheduledAt,
		CreatedBy:   e.CreatedBy,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func toIdeaResponse(i *repository.Idea) models.IdeaResponse {
	return models.IdeaResponse{
		ID:          i.ID,
		WorkspaceID: i.WorkspaceID,
		Title:       i.Title,
		Notes:       i.Notes,
		Source:      i.Source,
		Status:      i.Status,
		CreatedBy:   i.CreatedBy,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}

func toScriptResponse(s *repository.Script) models.ScriptResponse {
	return models.ScriptResponse{
		ID:          s.ID,
		WorkspaceID: s.WorkspaceID,
		Title:       s.Title,
		Hook:        s.Hook,
		Content:     s.Content,
		Status:      s.Status,
		EventID:     s.EventID,
		CreatedBy:   s.CreatedBy,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func toAnalyticsEntryResponse(e *repository.AnalyticsEntry) models.AnalyticsEntryResponse {
	return models.AnalyticsEntryResponse{
		ID:          e.ID,
		WorkspaceID: e.WorkspaceID,
		Platform:    e.Platform,
		MetricDate:  e.MetricDate,
		Views:       e.Views,
		Likes:       e.Likes,
		Comments:    e.Comments,
		Shares:      e.Shares,
		Followers:   e.Followers,
		Revenue:     e.Revenue,
		CreatedBy:   e.CreatedBy,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func toChatMessageResponse(m *repository.ChatMessage) models.ChatMessageResponse {
	return models.ChatMessageResponse{
		ID:          m.ID,
		WorkspaceID: m.WorkspaceID,
		UserID:      m.UserID,
		Role:        m.Role,
		Content:     m.Content,
		CreatedAt:   m.CreatedAt,
	}
}
