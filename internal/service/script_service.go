package service

import (
	"context"
	"strings"

	"github.com/virally/virally-backend/internal/repository"
	"github.com/virally/virally-backend/internal/socket"
	"github.com/virally/virally-backend/internal/types"
)

// ============================================
// Script Service
// ============================================

type ScriptService interface {
	Create(ctx context.Context, workspaceID, userID, title string, hook *string, content string, eventID *string) (*repository.Script, error)
	Get(ctx context.Context, scriptID, userID string) (*repository.Script, error)
	List(ctx context.Context, workspaceID, userID string) ([]*repository.Script, error)
	Update(ctx context.Context, scriptID, userID string, title, hook, content, status, eventID *string) (*repository.Script, error)
	Delete(ctx context.Context, scriptID, userID string) error
}

type scriptService struct {
	scriptRepo   repository.ScriptRepository
	calendarRepo repository.CalendarRepository
	access       AccessService
	broadcaster  *socket.Broadcaster
}

func NewScriptService(scriptRepo repository.ScriptRepository, calendarRepo repository.CalendarRepository, access AccessService, broadcaster *socket.Broadcaster) ScriptService {
	return &scriptService{
		scriptRepo:   scriptRepo,
		calendarRepo: calendarRepo,
		access:       access,
		broadcaster:  broadcaster,
	}
}

// eventBelongsToWorkspace guards cross-workspace event links.
func (s *scriptService) eventBelongsToWorkspace(ctx context.Context, eventID, workspaceID string) error {
	event, err := s.calendarRepo.FindByID(ctx, eventID)
	if err != nil {
		return err
	}
	if event == nil || event.WorkspaceID != workspaceID {
		return ErrInvalidInput
	}
	return nil
}

func (s *scriptService) Create(ctx context.Context, workspaceID, userID, title string, hook *string, content string, eventID *string) (*repository.Script, error) {
	if _, _, err := s.access.RequireEditor(ctx, workspaceID, userID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(title) == "" {
		return nil, ErrInvalidInput
	}
	if eventID != nil {
		if err := s.eventBelongsToWorkspace(ctx, *eventID, workspaceID); err != nil {
			return nil, err
		}
	}

	script := &repository.Script{
		WorkspaceID: workspaceID,
		Title:       title,
		Hook:        hook,
		Content:     content,
		Status:      types.ScriptDraft,
		EventID:     eventID,
		CreatedBy:   userID,
	}
	if err := s.scriptRepo.Create(ctx, script); err != nil {
		return nil, err
	}

	if s.broadcaster != nil {
		s.broadcaster.ScriptCreated(workspaceID, script.ID, script.Title)
	}
	return script, nil
}

func (s *scriptService) Get(ctx context.Context, scriptID, userID string) (*repository.Script, error) {
	script, err := s.scriptRepo.FindByID(ctx, scriptID)
	if err != nil {
		return nil, err
	}
	if script == nil {
		return nil, ErrNotFound
	}
	if _, _, err := s.access.CheckAccess(ctx, script.WorkspaceID, userID); err != nil {
		return nil, err
	}
	return script, nil
}

func (s *scriptService) List(ctx context.Context, workspaceID, userID string) ([]*repository.Script, error) {
	if _, _, err := s.access.CheckAccess(ctx, workspaceID, userID); err != nil {
		return nil, err
	}
	return s.scriptRepo.FindByWorkspace(ctx, workspaceID)
}

func (s *scriptService) Update(ctx context.Context, scriptID, userID string, title, hook, content, status, eventID *string) (*repository.Script, error) {
	script, err := s.scriptRepo.FindByID(ctx, scriptID)
	if err != nil {
		return nil, err
	}
	if script == nil {
		return nil, ErrNotFound
	}
	if _, _, err := s.access.RequireEditor(ctx, script.WorkspaceID, userID); err != nil {
		return nil, err
	}

	if title != nil {
		if strings.TrimSpace(*title) == "" {
			return nil, ErrInvalidInput
		}
		script.Title = *title
	}
	if hook != nil {
		script.Hook = hook
	}
	if content != nil {
		script.Content = *content
	}
	if status != nil {
		if !types.IsValidScriptStatus(*status) {
			return nil, ErrInvalidInput
		}
		script.Status = *status
	}
	if eventID != nil {
		if *eventID == "" {
			script.EventID = nil
		} else {
			if err := s.eventBelongsToWorkspace(ctx, *eventID, script.WorkspaceID); err != nil {
				return nil, err
			}
			script.EventID = eventID
		}
	}

	if err := s.scriptRepo.Update(ctx, script); err != nil {
		return nil, err
	}

	if s.broadcaster != nil {
		s.broadcaster.ScriptUpdated(script.WorkspaceID, script.ID, script.Status)
	}
	return script, nil
}

func (s *scriptService) Delete(ctx context.Context, scriptID, userID string) error {
	script, err := s.scriptRepo.FindByID(ctx, scriptID)
	if err != nil {
		return err
	}
	if script == nil {
		return ErrNotFound
	}
	if _, _, err := s.access.RequireEditor(ctx, script.WorkspaceID, userID); err != nil {
		return err
	}
	return s.scriptRepo.Delete(ctx, scriptID)
}
