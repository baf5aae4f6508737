package service

import (
	"context"

	"github.com/virally/virally-backend/internal/repository"
	"github.com/virally/virally-backend/internal/socket"
)

// ============================================
// Workspace Service
// ============================================

type WorkspaceService interface {
	Create(ctx context.Context, userID, name, niche string, description *string) (*repository.Workspace, error)
	Get(ctx context.Context, id, userID string) (*repository.Workspace, string, error)
	List(ctx context.Context, userID string) ([]*repository.Workspace, error)
	Update(ctx context.Context, id, userID string, name, niche, description *string) (*repository.Workspace, error)
	Delete(ctx context.Context, id, userID string) error
	ListMembers(ctx context.Context, workspaceID, userID string) ([]*repository.WorkspaceMember, error)
	UpdateMemberRole(ctx context.Context, workspaceID, targetUserID, role, actorID string) error
	RemoveMember(ctx context.Context, workspaceID, targetUserID, actorID string) error
}

type workspaceService struct {
	workspaceRepo repository.WorkspaceRepository
	userRepo      repository.UserRepository
	access        AccessService
	broadcaster   *socket.Broadcaster
}

func NewWorkspaceService(
	workspaceRepo repository.WorkspaceRepository,
	userRepo repository.UserRepository,
	access AccessService,
	broadcaster *socket.Broadcaster,
) WorkspaceService {
	return &workspaceService{
		workspaceRepo: workspaceRepo,
		userRepo:      userRepo,
		access:        access,
		broadcaster:   broadcaster,
	}
}

// Create inserts the workspace row only. The creator's owner role is
// derived from owner_id, so no membership row is written.
func (s *workspaceService) Create(ctx context.Context, userID, name, niche string, description *string) (*repository.Workspace, error) {
	workspace := &repository.Workspace{
		OwnerID:     userID,
		Name:        name,
		Niche:       niche,
		Description: description,
	}

	if err := s.workspaceRepo.Create(ctx, workspace); err != nil {
		return nil, err
	}
	return workspace, nil
}

func (s *workspaceService) Get(ctx context.Context, id, userID string) (*repository.Workspace, string, error) {
	return s.access.CheckAccess(ctx, id, userID)
}

func (s *workspaceService) List(ctx context.Context, userID string) ([]*repository.Workspace, error) {
	return s.workspaceRepo.FindByUserID(ctx, userID)
}

func (s *workspaceService) Update(ctx context.Context, id, userID string, name, niche, description *string) (*repository.Workspace, error) {
	workspace, err := s.access.RequireOwner(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if name != nil {
		workspace.Name = *name
	}
	if niche != nil {
		workspace.Niche = *niche
	}
	if description != nil {
		workspace.Description = description
	}

	if err := s.workspaceRepo.Update(ctx, workspace); err != nil {
		return nil, err
	}

	if s.broadcaster != nil {
		s.broadcaster.WorkspaceUpdated(workspace.ID, workspace.Name)
	}
	return workspace, nil
}

func (s *workspaceService) Delete(ctx context.Context, id, userID string) error {
	if _, err := s.access.RequireOwner(ctx, id, userID); err != nil {
		return err
	}

	if err := s.workspaceRepo.DeleteCascade(ctx, id); err != nil {
		return err
	}

	if s.broadcaster != nil {
		s.broadcaster.WorkspaceDeleted(id)
	}
	return nil
}

func (s *workspaceService) ListMembers(ctx context.Context, workspaceID, userID string) ([]*repository.WorkspaceMember, error) {
	if _, _, err := s.access.CheckAccess(ctx, workspaceID, userID); err != nil {
		return nil, err
	}
	return s.workspaceRepo.FindMembers(ctx, workspaceID)
}

func (s *workspaceService) UpdateMemberRole(ctx context.Context, workspaceID, targetUserID, role, actorID string) error {
	workspace, err := s.access.RequireOwner(ctx, workspaceID, actorID)
	if err != nil {
		return err
	}
	if !IsAssignableRole(role) {
		return ErrInvalidRole
	}
	if targetUserID == workspace.OwnerID {
		return ErrInvalidState
	}

	member, err := s.workspaceRepo.FindMember(ctx, workspaceID, targetUserID)
	if err != nil {
		return err
	}
	if member == nil {
		return ErrNotFound
	}

	if err := s.workspaceRepo.UpdateMemberRole(ctx, workspaceID, targetUserID, role); err != nil {
		return err
	}

	if s.broadcaster != nil {
		s.broadcaster.MemberRoleUpdated(workspaceID, targetUserID, role)
	}
	return nil
}

func (s *workspaceService) RemoveMember(ctx context.Context, workspaceID, targetUserID, actorID string) error {
	workspace, err := s.access.RequireOwner(ctx, workspaceID, actorID)
	if err != nil {
		return err
	}
	if targetUserID == workspace.OwnerID {
		return ErrInvalidState
	}

	member, err := s.workspaceRepo.FindMember(ctx, workspaceID, targetUserID)
	if err != nil {
		return err
	}
	if member == nil {
		return ErrNotFound
	}

	if err := s.workspaceRepo.RemoveMember(ctx, workspaceID, targetUserID); err != nil {
		return err
	}

	if s.broadcaster != nil {
		s.broadcaster.MemberRemoved(workspaceID, targetUserID)
	}
	return nil
}
