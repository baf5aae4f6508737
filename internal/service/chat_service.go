package service

import (
	"context"
	"log"
	"strings"

	"github.com/virally/virally-backend/internal/repository"
	"github.com/virally/virally-backend/internal/socket"
)

// ============================================
// Chat Service
// ============================================

// Chat message roles stored in chat_messages.role.
const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

const chatHistoryLimit = 20

// Assistant generates a reply to a user prompt given the workspace
// context and recent conversation history.
type Assistant interface {
	Reply(ctx context.Context, workspace *repository.Workspace, history []*repository.ChatMessage, prompt string) (string, error)
}

type ChatService interface {
	Send(ctx context.Context, workspaceID, userID, content string) (*repository.ChatMessage, error)
	History(ctx context.Context, workspaceID, userID string, limit int) ([]*repository.ChatMessage, error)
	Clear(ctx context.Context, workspaceID, userID string) error
}

type chatService struct {
	chatRepo    repository.ChatRepository
	access      AccessService
	assistant   Assistant
	broadcaster *socket.Broadcaster
}

func NewChatService(chatRepo repository.ChatRepository, access AccessService, assistant Assistant, broadcaster *socket.Broadcaster) ChatService {
	return &chatService{
		chatRepo:    chatRepo,
		access:      access,
		assistant:   assistant,
		broadcaster: broadcaster,
	}
}

// Send stores the user's message, asks the assistant for a reply and
// stores that too. The user message survives even when the assistant
// call fails.
func (s *chatService) Send(ctx context.Context, workspaceID, userID, content string) (*repository.ChatMessage, error) {
	workspace, _, err := s.access.RequireEditor(ctx, workspaceID, userID)
	if err != nil {
		return nil, err
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrInvalidInput
	}

	history, err := s.chatRepo.FindByWorkspace(ctx, workspaceID, chatHistoryLimit)
	if err != nil {
		return nil, err
	}

	userMsg := &repository.ChatMessage{
		WorkspaceID: workspaceID,
		UserID:      userID,
		Role:        ChatRoleUser,
		Content:     content,
	}
	if err := s.chatRepo.Create(ctx, userMsg); err != nil {
		return nil, err
	}
	if s.broadcaster != nil {
		s.broadcaster.ChatMessage(workspaceID, userMsg.ID, ChatRoleUser)
	}

	if s.assistant == nil {
		return nil, ErrAssistantUnavailable
	}

	reply, err := s.assistant.Reply(ctx, workspace, history, content)
	if err != nil {
		log.Printf("[Chat] Assistant error for workspace %s: %v", workspaceID, err)
		return nil, ErrAssistantUnavailable
	}

	assistantMsg := &repository.ChatMessage{
		WorkspaceID: workspaceID,
		UserID:      userID,
		Role:        ChatRoleAssistant,
		Content:     reply,
	}
	if err := s.chatRepo.Create(ctx, assistantMsg); err != nil {
		return nil, err
	}
	if s.broadcaster != nil {
		s.broadcaster.ChatMessage(workspaceID, assistantMsg.ID, ChatRoleAssistant)
	}
	return assistantMsg, nil
}

func (s *chatService) History(ctx context.Context, workspaceID, userID string, limit int) ([]*repository.ChatMessage, error) {
	if _, _, err := s.access.CheckAccess(ctx, workspaceID, userID); err != nil {
		return nil, err
	}
	return s.chatRepo.FindByWorkspace(ctx, workspaceID, limit)
}

func (s *chatService) Clear(ctx context.Context, workspaceID, userID string) error {
	if _, err := s.access.RequireOwner(ctx, workspaceID, userID); err != nil {
		return err
	}
	return s.chatRepo.DeleteByWorkspace(ctx, workspaceID)
}
