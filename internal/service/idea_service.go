package service

import (
	"context"
	"strings"

	"github.com/virally/virally-backend/internal/repository"
	"github.com/virally/virally-backend/internal/socket"
	"github.com/virally/virally-backend/internal/types"
)

// ============================================
// Idea Service
// ============================================

type IdeaService interface {
	Create(ctx context.Context, workspaceID, userID, title string, notes, source *string) (*repository.Idea, error)
	Get(ctx context.Context, ideaID, userID string) (*repository.Idea, error)
	List(ctx context.Context, workspaceID, userID, status string) ([]*repository.Idea, error)
	Update(ctx context.Context, ideaID, userID string, title, notes, source, status *string) (*repository.Idea, error)
	Delete(ctx context.Context, ideaID, userID string) error
	Promote(ctx context.Context, ideaID, userID, platform string) (*repository.CalendarEvent, error)
}

type ideaService struct {
	ideaRepo     repository.IdeaRepository
	calendarRepo repository.CalendarRepository
	access       AccessService
	broadcaster  *socket.Broadcaster
}

func NewIdeaService(ideaRepo repository.IdeaRepository, calendarRepo repository.CalendarRepository, access AccessService, broadcaster *socket.Broadcaster) IdeaService {
	return &ideaService{
		ideaRepo:     ideaRepo,
		calendarRepo: calendarRepo,
		access:       access,
		broadcaster:  broadcaster,
	}
}

func (s *ideaService) Create(ctx context.Context, workspaceID, userID, title string, notes, source *string) (*repository.Idea, error) {
	if _, _, err := s.access.RequireEditor(ctx, workspaceID, userID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(title) == "" {
		return nil, ErrInvalidInput
	}

	idea := &repository.Idea{
		WorkspaceID: workspaceID,
		Title:       title,
		Notes:       notes,
		Source:      source,
		Status:      types.IdeaNew,
		CreatedBy:   userID,
	}
	if err := s.ideaRepo.Create(ctx, idea); err != nil {
		return nil, err
	}

	if s.broadcaster != nil {
		s.broadcaster.IdeaCreated(workspaceID, idea.ID, idea.Title)
	}
	return idea, nil
}

func (s *ideaService) Get(ctx context.Context, ideaID, userID string) (*repository.Idea, error) {
	idea, err := s.ideaRepo.FindByID(ctx, ideaID)
	if err != nil {
		return nil, err
	}
	if idea == nil {
		return nil, ErrNotFound
	}
	if _, _, err := s.access.CheckAccess(ctx, idea.WorkspaceID, userID); err != nil {
		return nil, err
	}
	return idea, nil
}

func (s *ideaService) List(ctx context.Context, workspaceID, userID, status string) ([]*repository.Idea, error) {
	if _, _, err := s.access.CheckAccess(ctx, workspaceID, userID); err != nil {
		return nil, err
	}
	if status != "" && !types.IsValidIdeaStatus(status) {
		return nil, ErrInvalidInput
	}
	return s.ideaRepo.FindByWorkspace(ctx, workspaceID, status)
}

func (s *ideaService) Update(ctx context.Context, ideaID, userID string, title, notes, source, status *string) (*repository.Idea, error) {
	idea, err := s.ideaRepo.FindByID(ctx, ideaID)
	if err != nil {
		return nil, err
	}
	if idea == nil {
		return nil, ErrNotFound
	}
	if _, _, err := s.access.RequireEditor(ctx, idea.WorkspaceID, userID); err != nil {
		return nil, err
	}

	// A promoted idea is frozen; its calendar event is the live copy.
	if idea.Status == types.IdeaPromoted {
		return nil, ErrInvalidState
	}

	if title != nil {
		if strings.TrimSpace(*title) == "" {
			return nil, ErrInvalidInput
		}
		idea.Title = *title
	}
	if notes != nil {
		idea.Notes = notes
	}
	if source != nil {
		idea.Source = source
	}
	if status != nil {
		if !types.IsValidIdeaStatus(*status) || *status == types.IdeaPromoted {
			return nil, ErrInvalidInput
		}
		idea.Status = *status
	}

	if err := s.ideaRepo.Update(ctx, idea); err != nil {
		return nil, err
	}

	if s.broadcaster != nil {
		s.broadcaster.IdeaUpdated(idea.WorkspaceID, idea.ID, idea.Status)
	}
	return idea, nil
}

func (s *ideaService) Delete(ctx context.Context, ideaID, userID string) error {
	idea, err := s.ideaRepo.FindByID(ctx, ideaID)
	if err != nil {
		return err
	}
	if idea == nil {
		return ErrNotFound
	}
	if _, _, err := s.access.RequireEditor(ctx, idea.WorkspaceID, userID); err != nil {
		return err
	}
	return s.ideaRepo.Delete(ctx, ideaID)
}

// Promote turns an approved idea into a calendar event and marks the
// idea promoted.
func (s *ideaService) Promote(ctx context.Context, ideaID, userID, platform string) (*repository.CalendarEvent, error) {
	idea, err := s.ideaRepo.FindByID(ctx, ideaID)
	if err != nil {
		return nil, err
	}
	if idea == nil {
		return nil, ErrNotFound
	}
	if _, _, err := s.access.RequireEditor(ctx, idea.WorkspaceID, userID); err != nil {
		return nil, err
	}

	if idea.Status == types.IdeaPromoted || idea.Status == types.IdeaRejected {
		return nil, ErrInvalidState
	}
	if !types.IsValidPlatform(platform) {
		return nil, ErrInvalidInput
	}

	event := &repository.CalendarEvent{
		WorkspaceID: idea.WorkspaceID,
		Title:       idea.Title,
		Description: idea.Notes,
		Platform:    platform,
		Status:      types.StatusIdea,
		CreatedBy:   userID,
	}
	if err := s.calendarRepo.Create(ctx, event); err != nil {
		return nil, err
	}

	idea.Status = types.IdeaPromoted
	if err := s.ideaRepo.Update(ctx, idea); err != nil {
		return nil, err
	}

	if s.broadcaster != nil {
		s.broadcaster.EventCreated(event.WorkspaceID, event.ID, event.Title)
		s.broadcaster.IdeaUpdated(idea.WorkspaceID, idea.ID, idea.Status)
	}
	return event, nil
}
