package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/virally/virally-backend/internal/types"
)

func newScriptTestService(env *testEnv) ScriptService {
	return NewScriptService(env.scriptRepo, env.calendarRepo, env.access, nil)
}

func TestScriptCreate(t *testing.T) {
	env := newTestEnv()
	svc := newScriptTestService(env)
	calendarSvc := newCalendarTestService(env)
	ctx := context.Background()

	owner := env.addUser("Ava", "ava@example.com")
	viewer := env.addUser("Mia", "mia@example.com")
	workspace := env.addWorkspace(owner.ID, "Ava Cooks")
	env.addMember(workspace.ID, viewer.ID, RoleViewer)

	otherOwner := env.addUser("Ben", "ben@example.com")
	otherWorkspace := env.addWorkspace(otherOwner.ID, "Ben Builds")

	event, err := calendarSvc.Create(ctx, workspace.ID, owner.ID, "Ramen night", nil, types.PlatformTikTok, "", nil)
	require.NoError(t, err)
	foreignEvent, err := calendarSvc.Create(ctx, otherWorkspace.ID, otherOwner.ID, "Shed build", nil, types.PlatformYouTube, "", nil)
	require.NoError(t, err)

	t.Run("viewer cannot create scripts", func(t *testing.T) {
		_, err := svc.Create(ctx, workspace.ID, viewer.ID, "Ramen script", nil, "body", nil)
		assert.ErrorIs(t, err, ErrPermissionDenied)
	})

	t.Run("new scripts start as draft", func(t *testing.T) {
		script, err := svc.Create(ctx, workspace.ID, owner.ID, "Ramen script", nil, "body", &event.ID)
		require.NoError(t, err)
		assert.Equal(t, types.ScriptDraft, script.Status)
		require.NotNil(t, script.EventID)
		assert.Equal(t, event.ID, *script.EventID)
	})

	t.Run("event link must stay inside the workspace", func(t *testing.T) {
		_, err := svc.Create(ctx, workspace.ID, owner.ID, "Ramen script", nil, "body", &foreignEvent.ID)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("unknown event link is rejected", func(t *testing.T) {
		bogus := "no-such-event"
		_, err := svc.Create(ctx, workspace.ID, owner.ID, "Ramen script", nil, "body", &bogus)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestScriptUpdate(t *testing.T) {
	env := newTestEnv()
	svc := newScriptTestService(env)
	calendarSvc := newCalendarTestService(env)
	ctx := context.Background()

	owner := env.addUser("Ava", "ava@example.com")
	workspace := env.addWorkspace(owner.ID, "Ava Cooks")

	event, err := calendarSvc.Create(ctx, workspace.ID, owner.ID, "Ramen night", nil, types.PlatformTikTok, "", nil)
	require.NoError(t, err)
	script, err := svc.Create(ctx, workspace.ID, owner.ID, "Ramen script", nil, "body", &event.ID)
	require.NoError(t, err)

	t.Run("status moves to final", func(t *testing.T) {
		status := types.ScriptFinal
		updated, err := svc.Update(ctx, script.ID, owner.ID, nil, nil, nil, &status, nil)
		require.NoError(t, err)
		assert.Equal(t, types.ScriptFinal, updated.Status)
	})

	t.Run("empty event id unlinks the script", func(t *testing.T) {
		unlink := ""
		updated, err := svc.Update(ctx, script.ID, owner.ID, nil, nil, nil, nil, &unlink)
		require.NoError(t, err)
		assert.Nil(t, updated.EventID)
	})

	t.Run("relink validates the workspace", func(t *testing.T) {
		otherOwner := env.addUser("Ben", "ben@example.com")
		otherWorkspace := env.addWorkspace(otherOwner.ID, "Ben Builds")
		foreign, err := calendarSvc.Create(ctx, otherWorkspace.ID, otherOwner.ID, "Shed build", nil, types.PlatformYouTube, "", nil)
		require.NoError(t, err)

		_, err = svc.Update(ctx, script.ID, owner.ID, nil, nil, nil, nil, &foreign.ID)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestScriptDelete(t *testing.T) {
	env := newTestEnv()
	svc := newScriptTestService(env)
	ctx := context.Background()

	owner := env.addUser("Ava", "ava@example.com")
	viewer := env.addUser("Mia", "mia@example.com")
	workspace := env.addWorkspace(owner.ID, "Ava Cooks")
	env.addMember(workspace.ID, viewer.ID, RoleViewer)

	script, err := svc.Create(ctx, workspace.ID, owner.ID, "Ramen script", nil, "body", nil)
	require.NoError(t, err)

	t.Run("viewer cannot delete", func(t *testing.T) {
		err := svc.Delete(ctx, script.ID, viewer.ID)
		assert.ErrorIs(t, err, ErrPermissionDenied)
	})

	t.Run("editor-level delete works", func(t *testing.T) {
		require.NoError(t, svc.Delete(ctx, script.ID, owner.ID))

		_, err := svc.Get(ctx, script.ID, owner.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
