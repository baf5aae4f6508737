package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatSend(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	owner := env.addUser("Ava", "ava@example.com")
	viewer := env.addUser("Mia", "mia@example.com")
	workspace := env.addWorkspace(owner.ID, "Ava Cooks")
	env.addMember(workspace.ID, viewer.ID, RoleViewer)

	t.Run("viewer cannot send", func(t *testing.T) {
		svc := NewChatService(env.chatRepo, env.access, &fakeAssistant{reply: "hi"}, nil)
		_, err := svc.Send(ctx, workspace.ID, viewer.ID, "Any hook ideas?")
		assert.ErrorIs(t, err, ErrPermissionDenied)
	})

	t.Run("blank content is rejected", func(t *testing.T) {
		svc := NewChatService(env.chatRepo, env.access, &fakeAssistant{reply: "hi"}, nil)
		_, err := svc.Send(ctx, workspace.ID, owner.ID, "   ")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("reply is stored alongside the user message", func(t *testing.T) {
		assistant := &fakeAssistant{reply: "Try a before/after opener."}
		svc := NewChatService(env.chatRepo, env.access, assistant, nil)

		msg, err := svc.Send(ctx, workspace.ID, owner.ID, "Any hook ideas?")
		require.NoError(t, err)
		assert.Equal(t, ChatRoleAssistant, msg.Role)
		assert.Equal(t, "Try a before/after opener.", msg.Content)

		history, err := svc.History(ctx, workspace.ID, owner.ID, 10)
		require.NoError(t, err)
		require.Len(t, history, 2)
		assert.Equal(t, ChatRoleUser, history[0].Role)
		assert.Equal(t, ChatRoleAssistant, history[1].Role)
	})
}

func TestChatSendAssistantFailure(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	owner := env.addUser("Ava", "ava@example.com")
	workspace := env.addWorkspace(owner.ID, "Ava Cooks")

	t.Run("assistant error keeps the user message", func(t *testing.T) {
		assistant := &fakeAssistant{err: errors.New("quota exceeded")}
		svc := NewChatService(env.chatRepo, env.access, assistant, nil)

		_, err := svc.Send(ctx, workspace.ID, owner.ID, "Any hook ideas?")
		assert.ErrorIs(t, err, ErrAssistantUnavailable)

		history, err := svc.History(ctx, workspace.ID, owner.ID, 10)
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, ChatRoleUser, history[0].Role)
	})

	t.Run("nil assistant keeps the user message too", func(t *testing.T) {
		svc := NewChatService(env.chatRepo, env.access, nil, nil)

		_, err := svc.Send(ctx, workspace.ID, owner.ID, "Still there?")
		assert.ErrorIs(t, err, ErrAssistantUnavailable)

		history, err := svc.History(ctx, workspace.ID, owner.ID, 10)
		require.NoError(t, err)
		require.Len(t, history, 2)
	})
}

func TestChatClear(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	owner := env.addUser("Ava", "ava@example.com")
	editor := env.addUser("Ben", "ben@example.com")
	workspace := env.addWorkspace(owner.ID, "Ava Cooks")
	env.addMember(workspace.ID, editor.ID, RoleEditor)

	svc := NewChatService(env.chatRepo, env.access, &fakeAssistant{reply: "sure"}, nil)
	_, err := svc.Send(ctx, workspace.ID, editor.ID, "Any hook ideas?")
	require.NoError(t, err)

	t.Run("editor cannot clear history", func(t *testing.T) {
		err := svc.Clear(ctx, workspace.ID, editor.ID)
		assert.ErrorIs(t, err, ErrPermissionDenied)
	})

	t.Run("owner clears history", func(t *testing.T) {
		require.NoError(t, svc.Clear(ctx, workspace.ID, owner.ID))

		history, err := svc.History(ctx, workspace.ID, owner.ID, 10)
		require.NoError(t, err)
		assert.Empty(t, history)
	})
}
