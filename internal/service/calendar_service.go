package service

import (
	"context"
	"strings"
	"time"

	"github.com/virally/virally-backend/internal/repository"
	"github.com/virally/virally-backend/internal/socket"
	"github.com/virally/virally-backend/internal/types"
)

// ============================================
// Calendar Service
// ============================================

type CalendarService interface {
	Create(ctx context.Context, workspaceID, userID, title string, description *string, platform, status string, scheduledAt *time.Time) (*repository.CalendarEvent, error)
	Get(ctx context.Context, eventID, userID string) (*repository.CalendarEvent, error)
	List(ctx context.Context, workspaceID, userID string, from, to *time.Time) ([]*repository.CalendarEvent, error)
	Update(ctx context.Context, eventID, userID string, title, description, platform, status *string, scheduledAt *time.Time) (*repository.CalendarEvent, error)
	Delete(ctx context.Context, eventID, userID string) error
}

type calendarService struct {
	calendarRepo repository.CalendarRepository
	access       AccessService
	broadcaster  *socket.Broadcaster
}

func NewCalendarService(calendarRepo repository.CalendarRepository, access AccessService, broadcaster *socket.Broadcaster) CalendarService {
	return &calendarService{
		calendarRepo: calendarRepo,
		access:       access,
		broadcaster:  broadcaster,
	}
}

func (s *calendarService) Create(ctx context.Context, workspaceID, userID, title string, description *string, platform, status string, scheduledAt *time.Time) (*repository.CalendarEvent, error) {
	if _, _, err := s.access.RequireEditor(ctx, workspaceID, userID); err != nil {
		return nil, err
	}

	if strings.TrimSpace(title) == "" {
		return nil, ErrInvalidInput
	}
	if !types.IsValidPlatform(platform) {
		return nil, ErrInvalidInput
	}
	if status == "" {
		status = types.StatusIdea
	}
	if !types.IsValidEventStatus(status) {
		return nil, ErrInvalidInput
	}

	event := &repository.CalendarEvent{
		WorkspaceID: workspaceID,
		Title:       title,
		Description: description,
		Platform:    platform,
		Status:      status,
		ScheduledAt: scheduledAt,
		CreatedBy:   userID,
	}
	if err := s.calendarRepo.Create(ctx, event); err != nil {
		return nil, err
	}

	if s.broadcaster != nil {
		s.broadcaster.EventCreated(workspaceID, event.ID, event.Title)
	}
	return event, nil
}

func (s *calendarService) Get(ctx context.Context, eventID, userID string) (*repository.CalendarEvent, error) {
	event, err := s.calendarRepo.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrNotFound
	}
	if _, _, err := s.access.CheckAccess(ctx, event.WorkspaceID, userID); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *calendarService) List(ctx context.Context, workspaceID, userID string, from, to *time.Time) ([]*repository.CalendarEvent, error) {
	if _, _, err := s.access.CheckAccess(ctx, workspaceID, userID); err != nil {
		return nil, err
	}
	return s.calendarRepo.FindByWorkspace(ctx, workspaceID, from, to)
}

func (s *calendarService) Update(ctx context.Context, eventID, userID string, title, description, platform, status *string, scheduledAt *time.Time) (*repository.CalendarEvent, error) {
	event, err := s.calendarRepo.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrNotFound
	}
	if _, _, err := s.access.RequireEditor(ctx, event.WorkspaceID, userID); err != nil {
		return nil, err
	}

	if title != nil {
		if strings.TrimSpace(*title) == "" {
			return nil, ErrInvalidInput
		}
		event.Title = *title
	}
	if description != nil {
		event.Description = description
	}
	if platform != nil {
		if !types.IsValidPlatform(*platform) {
			return nil, ErrInvalidInput
		}
		event.Platform = *platform
	}
	if status != nil {
		if !types.IsValidEventStatus(*status) {
			return nil, ErrInvalidInput
		}
		event.Status = *status
	}
	if scheduledAt != nil {
		event.ScheduledAt = scheduledAt
	}

	if err := s.calendarRepo.Update(ctx, event); err != nil {
		return nil, err
	}

	if s.broadcaster != nil {
		s.broadcaster.EventUpdated(event.WorkspaceID, event.ID, event.Status)
	}
	return event, nil
}

func (s *calendarService) Delete(ctx context.Context, eventID, userID string) error {
	event, err := s.calendarRepo.FindByID(ctx, eventID)
	if err != nil {
		return err
	}
	if event == nil {
		return ErrNotFound
	}
	if _, _, err := s.access.RequireEditor(ctx, event.WorkspaceID, userID); err != nil {
		return err
	}

	if err := s.calendarRepo.Delete(ctx, eventID); err != nil {
		return err
	}

	if s.broadcaster != nil {
		s.broadcaster.EventDeleted(event.WorkspaceID, event.ID)
	}
	return nil
}
