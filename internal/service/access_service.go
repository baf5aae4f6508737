package service

import (
	"context"

	"github.com/virally/virally-backend/internal/repository"
)

// ============================================
// Workspace Roles
// ============================================

// Role levels from highest to lowest. Owner is derived from
// workspace.OwnerID and never stored as a membership row.
const (
	RoleOwner  = "owner"
	RoleEditor = "editor"
	RoleViewer = "viewer"
)

// roleLevel returns numeric level for role comparison (higher = more permissions)
func roleLevel(role string) int {
	switch role {
	case RoleOwner:
		return 3
	case RoleEditor:
		return 2
	case RoleViewer:
		return 1
	default:
		return 0
	}
}

// hasMinimumRole checks if a role is at least the minimum required role
func hasMinimumRole(role, minRole string) bool {
	return roleLevel(role) >= roleLevel(minRole)
}

// IsAssignableRole reports whether a role may be stored in a membership
// row or invitation. Owner is excluded: it is implicit, never granted.
func IsAssignableRole(role string) bool {
	return role == RoleEditor || role == RoleViewer
}

// ============================================
// Access Service
// ============================================

// AccessService is the single decision point for "can this user touch
// this workspace, and how". Every feature service calls CheckAccess (or
// one of the Require helpers) before doing anything else.
type AccessService interface {
	// CheckAccess resolves the caller's effective role in a workspace.
	// It returns ErrNotFound when the workspace does not exist and
	// ErrAccessDenied when the user has no relationship to it.
	CheckAccess(ctx context.Context, workspaceID, userID string) (*repository.Workspace, string, error)

	// RequireEditor is CheckAccess plus a role >= editor assertion.
	RequireEditor(ctx context.Context, workspaceID, userID string) (*repository.Workspace, string, error)

	// RequireOwner is CheckAccess plus a role == owner assertion.
	RequireOwner(ctx context.Context, workspaceID, userID string) (*repository.Workspace, error)
}

type accessService struct {
	workspaceRepo repository.WorkspaceRepository
}

func NewAccessService(workspaceRepo repository.WorkspaceRepository) AccessService {
	return &accessService{workspaceRepo: workspaceRepo}
}

func (s *accessService) CheckAccess(ctx context.Context, workspaceID, userID string) (*repository.Workspace, string, error) {
	workspace, err := s.workspaceRepo.FindByID(ctx, workspaceID)
	if err != nil {
		return nil, "", err
	}
	if workspace == nil {
		return nil, "", ErrNotFound
	}

	role, err := s.effectiveRole(ctx, workspace, userID)
	if err != nil {
		return nil, "", err
	}
	if role == "" {
		return nil, "", ErrAccessDenied
	}
	return workspace, role, nil
}

// effectiveRole is the one place owner and membership roles are merged.
// The owner check short-circuits the membership lookup: owners never
// have a membership row, and a stale one is ignored.
func (s *accessService) effectiveRole(ctx context.Context, workspace *repository.Workspace, userID string) (string, error) {
	if workspace.OwnerID == userID {
		return RoleOwner, nil
	}

	member, err := s.workspaceRepo.FindMember(ctx, workspace.ID, userID)
	if err != nil {
		return "", err
	}
	if member == nil {
		return "", nil
	}
	return member.Role, nil
}

func (s *accessService) RequireEditor(ctx context.Context, workspaceID, userID string) (*repository.Workspace, string, error) {
	workspace, role, err := s.CheckAccess(ctx, workspaceID, userID)
	if err != nil {
		return nil, "", err
	}
	if !hasMinimumRole(role, RoleEditor) {
		return nil, "", ErrPermissionDenied
	}
	return workspace, role, nil
}

func (s *accessService) RequireOwner(ctx context.Context, workspaceID, userID string) (*repository.Workspace, error) {
	workspace, role, err := s.CheckAccess(ctx, workspaceID, userID)
	if err != nil {
		return nil, err
	}
	if role != RoleOwner {
		return nil, ErrPermissionDenied
	}
	return workspace, nil
}
