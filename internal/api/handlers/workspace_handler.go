package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/virally/virally-backend/internal/api/middleware"
	"github.com/virally/virally-backend/internal/models"
	"github.com/virally/virally-backend/internal/service"
)

// ============================================
// Workspace Handler
// ============================================

type WorkspaceHandler struct {
	workspaceService service.WorkspaceService
}

func (h *WorkspaceHandler) List(c *gin.Context) {
	userID, ok := middleware.RequireUserID(c)
	if !ok {
		return
	}

	workspaces, err := h.workspaceService.List(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch workspaces")
		return
	}

	response := make([]models.WorkspaceResponse, len(workspaces))
	for i, ws := range workspaces {
		response[i] = toWorkspaceResponse(ws, "")
	}

	c.JSON(http.StatusOK, response)
}

func (h *WorkspaceHandler) Create(c *gin.Context) {
	userID, ok := middleware.RequireUserID(c)
	if !ok {
		return
	}

	var req models.CreateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	workspace, err := h.workspaceService.Create(c.Request.Context(), userID, req.Name, req.Niche, req.Description)
	if err != nil {
		respondServiceError(c, err, "Failed to create workspace")
		return
	}

	c.JSON(http.StatusCreated, toWorkspaceResponse(workspace, service.RoleOwner))
}

func (h *WorkspaceHandler) Get(c *gin.Context) {
	userID, ok := middleware.RequireUserID(c)
	if !ok {
		return
	}
	id := c.Param("id")

	workspace, role, err := h.workspaceService.Get(c.Request.Context(), id, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch workspace")
		return
	}

	c.JSON(http.StatusOK, toWorkspaceResponse(workspace, role))
}

func (h *WorkspaceHandler) Update(c *gin.Context) {
	userID, ok := middleware.RequireUserID(c)
	if !ok {
		return
	}
	id := c.Param("id")

	var req models.UpdateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	workspace, err := h.workspaceService.Update(c.Request.Context(), id, userID, req.Name, req.Niche, req.Description)
	if err != nil {
		respondServiceError(c, err, "Failed to update workspace")
		return
	}

	c.JSON(http.StatusOK, toWorkspaceResponse(workspace, service.RoleOwner))
}

func (h *WorkspaceHandler) Delete(c *gin.Context) {
	userID, ok := middleware.RequireUserID(c)
	if !ok {
		return
	}
	id := c.Param("id")

	if err := h.workspaceService.Delete(c.Request.Context(), id, userID); err != nil {
		respondServiceError(c, err, "Failed to delete workspace")
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

func (h *WorkspaceHandler) ListMembers(c *gin.Context) {
	userID, ok := middleware.RequireUserID(c)
	if !ok {
		return
	}
	id := c.Param("id")

	members, err := h.workspaceService.ListMembers(c.Request.Context(), id, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch members")
		return
	}

	response := make([]models.WorkspaceMemberResponse, len(members))
	for i, m := range members {
		response[i] = toMemberResponse(m)
	}

	c.JSON(http.StatusOK, response)
}

func (h *WorkspaceHandler) UpdateMemberRole(c *gin.Context) {
	userID, ok := middleware.RequireUserID(c)
	if !ok {
		return
	}
	id := c.Param("id")
	targetUserID := c.Param("userId")

	var req models.UpdateMemberRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.workspaceService.UpdateMemberRole(c.Request.Context(), id, targetUserID, req.Role, userID); err != nil {
		respondServiceError(c, err, "Failed to update member role")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Member role updated"})
}

func (h *WorkspaceHandler) RemoveMember(c *gin.Context) {
	userID, ok := middleware.RequireUserID(c)
	if !ok {
		return
	}
	id := c.Param("id")
	targetUserID := c.Param("userId")

	if err := h.workspaceService.RemoveMember(c.Request.Context(), id, targetUserID, userID); err != nil {
		respondServiceError(c, err, "Failed to remove member")
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
