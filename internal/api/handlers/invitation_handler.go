package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/virally/virally-backend/internal/api/middleware"
	"github.com/virally/virally-backend/internal/models"
	"github.com/virally/virally-backend/internal/service"
)

// ============================================
// Invitation Handler
// ============================================

type InvitationHandler struct {
	invitationService service.InvitationService
}

func (h *InvitationHandler) Invite(c *gin.Context) {
	userID, ok := middleware.RequireUserID(c)
	if !ok {
		return
	}
	workspaceID := c.Param("id")

	var req models.InviteMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	inv, err := h.invitationService.Invite(c.Request.Context(), workspaceID, req.Email, req.Role, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to send invitation")
		return
	}

	c.JSON(http.StatusCreated, toInvitationResponse(inv))
}

func (h *InvitationHandler) ListByWorkspace(c *gin.Context) {
	userID, ok := middleware.RequireUserID(c)
	if !ok {
		return
	}
	workspaceID := c.Param("id")

	invitations, err := h.invitationService.ListByWorkspace(c.Request.Context(), workspaceID, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch invitations")
		return
	}

	response := make([]models.InvitationResponse, len(invitations))
	for i, inv := range invitations {
		response[i] = toInvitationResponse(inv)
	}

	c.JSON(http.StatusOK, response)
}

func (h *InvitationHandler) MyInvitations(c *gin.Context) {
	userID, ok := middleware.RequireUserID(c)
	if !ok {
		return
	}

	invitations, err := h.invitationService.MyInvitations(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch invitations")
		return
	}

	response := make([]models.InvitationResponse, len(invitations))
	for i, inv := range invitations {
		response[i] = toInvitationResponse(inv)
	}

	c.JSON(http.StatusOK, response)
}

func (h *InvitationHandler) Accept(c *gin.Context) {
	userID, ok := middleware.RequireUserID(c)
	if !ok {
		return
	}
	token := c.Param("token")

	member, err := h.invitationService.Accept(c.Request.Context(), token, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to accept invitation")
		return
	}

	c.JSON(http.StatusOK, toMemberResponse(member))
}

func (h *InvitationHandler) Decline(c *gin.Context) {
	userID, ok := middleware.RequireUserID(c)
	if !ok {
		return
	}
	token := c.Param("token")

	if err := h.invitationService.Decline(c.Request.Context(), token, userID); err != nil {
		respondServiceError(c, err, "Failed to decline invitation")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Invitation declined"})
}

func (h *InvitationHandler) Cancel(c *gin.Context) {
	userID, ok := middleware.RequireUserID(c)
	if !ok {
		return
	}
	invitationID := c.Param("invitationId")

	if err := h.invitationService.Cancel(c.Request.Context(), invitationID, userID); err != nil {
		respondServiceError(c, err, "Failed to cancel invitation")
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
