package service

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/virally/virally-backend/internal/email"
	"github.com/virally/virally-backend/internal/repository"
	"github.com/virally/virally-backend/internal/socket"
)

// Invitation statuses. pending -> accepted | declined are the only
// stored transitions; cancel deletes the row outright.
const (
	InvitationPending  = "pending"
	InvitationAccepted = "accepted"
	InvitationDeclined = "declined"
)

type InvitationService interface {
	Invite(ctx context.Context, workspaceID, emailAddr, role, inviterID string) (*repository.Invitation, error)
	ListByWorkspace(ctx context.Context, workspaceID, userID string) ([]*repository.Invitation, error)
	MyInvitations(ctx context.Context, userID string) ([]*repository.Invitation, error)
	Accept(ctx context.Context, token, userID string) (*repository.WorkspaceMember, error)
	Decline(ctx context.Context, token, userID string) error
	Cancel(ctx context.Context, invitationID, actorID string) error
}

type invitationService struct {
	invRepo       repository.InvitationRepository
	workspaceRepo repository.WorkspaceRepository
	userRepo      repository.UserRepository
	access        AccessService
	emailSvc      *email.Service
	broadcaster   *socket.Broadcaster
	frontendURL   string
	defaultTTL    time.Duration
}

func NewInvitationService(
	invRepo repository.InvitationRepository,
	workspaceRepo repository.WorkspaceRepository,
	userRepo repository.UserRepository,
	access AccessService,
	emailSvc *email.Service,
	broadcaster *socket.Broadcaster,
	frontendURL string,
) InvitationService {
	return &invitationService{
		invRepo:       invRepo,
		workspaceRepo: workspaceRepo,
		userRepo:      userRepo,
		access:        access,
		emailSvc:      emailSvc,
		broadcaster:   broadcaster,
		frontendURL:   frontendURL,
		defaultTTL:    14 * 24 * time.Hour,
	}
}

func normalizeEmail(e string) string {
	return strings.ToLower(strings.TrimSpace(e))
}

func (s *invitationService) Invite(ctx context.Context, workspaceID, emailAddr, role, inviterID string) (*repository.Invitation, error) {
	workspace, err := s.access.RequireOwner(ctx, workspaceID, inviterID)
	if err != nil {
		return nil, err
	}

	if !IsAssignableRole(role) {
		return nil, ErrInvalidRole
	}

	emailAddr = normalizeEmail(emailAddr)
	if emailAddr == "" {
		return nil, ErrInvalidInput
	}

	// An email that already resolves to the owner or a member cannot be
	// invited again.
	invitee, err := s.userRepo.FindByEmail(ctx, emailAddr)
	if err != nil {
		return nil, err
	}
	if invitee != nil {
		if invitee.ID == workspace.OwnerID {
			return nil, ErrInvalidState
		}
		member, err := s.workspaceRepo.FindMember(ctx, workspaceID, invitee.ID)
		if err != nil {
			return nil, err
		}
		if member != nil {
			return nil, ErrInvalidState
		}
	}

	exists, err := s.invRepo.ExistsPending(ctx, workspaceID, emailAddr)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrInvalidState
	}

	inv := &repository.Invitation{
		WorkspaceID: workspaceID,
		Email:       emailAddr,
		Role:        role,
		InvitedBy:   inviterID,
		Status:      InvitationPending,
		ExpiresAt:   time.Now().Add(s.defaultTTL),
	}
	if err := s.invRepo.Create(ctx, inv); err != nil {
		return nil, err
	}

	if s.emailSvc != nil {
		inviterName := ""
		if inviter, _ := s.userRepo.FindByID(ctx, inviterID); inviter != nil {
			inviterName = inviter.Name
		}
		go func(inv *repository.Invitation, workspaceName, inviterName string) {
			if err := s.emailSvc.SendInvitation(inv.Email, email.InvitationData{
				WorkspaceName: workspaceName,
				InvitedBy:     inviterName,
				Role:          inv.Role,
				InviteURL:     s.frontendURL + "/invitations/" + inv.Token,
			}); err != nil {
				log.Printf("[Invitation] Failed to send email to %s: %v", inv.Email, err)
			}
		}(inv, workspace.Name, inviterName)
	}

	return inv, nil
}

func (s *invitationService) ListByWorkspace(ctx context.Context, workspaceID, userID string) ([]*repository.Invitation, error) {
	if _, err := s.access.RequireOwner(ctx, workspaceID, userID); err != nil {
		return nil, err
	}
	return s.invRepo.FindByWorkspace(ctx, workspaceID)
}

func (s *invitationService) MyInvitations(ctx context.Context, userID string) ([]*repository.Invitation, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return s.invRepo.FindPendingByEmail(ctx, user.Email)
}

// Accept transitions a pending invitation to accepted and inserts the
// membership row in one repository transaction.
func (s *invitationService) Accept(ctx context.Context, token, userID string) (*repository.WorkspaceMember, error) {
	inv, err := s.invRepo.FindByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, ErrNotFound
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if normalizeEmail(user.Email) != normalizeEmail(inv.Email) {
		return nil, ErrAccessDenied
	}

	if inv.Status != InvitationPending {
		return nil, ErrInvalidState
	}
	if time.Now().After(inv.ExpiresAt) {
		return nil, ErrInvalidState
	}

	workspace, err := s.workspaceRepo.FindByID(ctx, inv.WorkspaceID)
	if err != nil {
		return nil, err
	}
	if workspace == nil {
		return nil, ErrNotFound
	}
	if workspace.OwnerID == userID {
		return nil, ErrInvalidState
	}
	existing, err := s.workspaceRepo.FindMember(ctx, inv.WorkspaceID, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrInvalidState
	}

	member := &repository.WorkspaceMember{
		WorkspaceID: inv.WorkspaceID,
		UserID:      userID,
		Role:        inv.Role,
		InvitedBy:   &inv.InvitedBy,
	}
	if err := s.invRepo.Accept(ctx, inv, member); err != nil {
		return nil, err
	}

	if s.broadcaster != nil {
		s.broadcaster.MemberAdded(inv.WorkspaceID, userID, inv.Role)
	}
	return member, nil
}

func (s *invitationService) Decline(ctx context.Context, token, userID string) error {
	inv, err := s.invRepo.FindByToken(ctx, token)
	if err != nil {
		return err
	}
	if inv == nil {
		return ErrNotFound
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if normalizeEmail(user.Email) != normalizeEmail(inv.Email) {
		return ErrAccessDenied
	}

	if inv.Status != InvitationPending {
		return ErrInvalidState
	}

	return s.invRepo.UpdateStatus(ctx, inv.ID, InvitationDeclined)
}

// Cancel deletes a pending invitation outright (owner only).
func (s *invitationService) Cancel(ctx context.Context, invitationID, actorID string) error {
	inv, err := s.invRepo.FindByID(ctx, invitationID)
	if err != nil {
		return err
	}
	if inv == nil {
		return ErrNotFound
	}

	if _, err := s.access.RequireOwner(ctx, inv.WorkspaceID, actorID); err != nil {
		return err
	}

	if inv.Status != InvitationPending {
		return ErrInvalidState
	}

	return s.invRepo.Delete(ctx, inv.ID)
}
