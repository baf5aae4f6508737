package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/virally/virally-backend/internal/types"
)

func newIdeaTestService(env *testEnv) IdeaService {
	return NewIdeaService(env.ideaRepo, env.calendarRepo, env.access, nil)
}

func TestIdeaCreate(t *testing.T) {
	env := newTestEnv()
	svc := newIdeaTestService(env)
	ctx := context.Background()

	owner := env.addUser("Ava", "ava@example.com")
	viewer := env.addUser("Mia", "mia@example.com")
	workspace := env.addWorkspace(owner.ID, "Ava Cooks")
	env.addMember(workspace.ID, viewer.ID, RoleViewer)

	t.Run("viewer cannot create ideas", func(t *testing.T) {
		_, err := svc.Create(ctx, workspace.ID, viewer.ID, "One-pan breakfasts", nil, nil)
		assert.ErrorIs(t, err, ErrPermissionDenied)
	})

	t.Run("new ideas start as new", func(t *testing.T) {
		idea, err := svc.Create(ctx, workspace.ID, owner.ID, "One-pan breakfasts", nil, nil)
		require.NoError(t, err)
		assert.Equal(t, types.IdeaNew, idea.Status)
	})
}

func TestIdeaList(t *testing.T) {
	env := newTestEnv()
	svc := newIdeaTestService(env)
	ctx := context.Background()

	owner := env.addUser("Ava", "ava@example.com")
	workspace := env.addWorkspace(owner.ID, "Ava Cooks")

	idea, err := svc.Create(ctx, workspace.ID, owner.ID, "One-pan breakfasts", nil, nil)
	require.NoError(t, err)
	_, err = svc.Create(ctx, workspace.ID, owner.ID, "Grocery haul", nil, nil)
	require.NoError(t, err)

	approved := types.IdeaApproved
	_, err = svc.Update(ctx, idea.ID, owner.ID, nil, nil, nil, &approved)
	require.NoError(t, err)

	t.Run("status filter narrows the list", func(t *testing.T) {
		ideas, err := svc.List(ctx, workspace.ID, owner.ID, types.IdeaApproved)
		require.NoError(t, err)
		require.Len(t, ideas, 1)
		assert.Equal(t, idea.ID, ideas[0].ID)
	})

	t.Run("invalid status filter is rejected", func(t *testing.T) {
		_, err := svc.List(ctx, workspace.ID, owner.ID, "archived")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestIdeaPromote(t *testing.T) {
	env := newTestEnv()
	svc := newIdeaTestService(env)
	ctx := context.Background()

	owner := env.addUser("Ava", "ava@example.com")
	viewer := env.addUser("Mia", "mia@example.com")
	workspace := env.addWorkspace(owner.ID, "Ava Cooks")
	env.addMember(workspace.ID, viewer.ID, RoleViewer)

	notes := "Viewers keep asking for faster mornings"
	idea, err := svc.Create(ctx, workspace.ID, owner.ID, "One-pan breakfasts", &notes, nil)
	require.NoError(t, err)

	t.Run("viewer cannot promote", func(t *testing.T) {
		_, err := svc.Promote(ctx, idea.ID, viewer.ID, types.PlatformTikTok)
		assert.ErrorIs(t, err, ErrPermissionDenied)
	})

	t.Run("invalid platform is rejected", func(t *testing.T) {
		_, err := svc.Promote(ctx, idea.ID, owner.ID, "myspace")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("promote creates a calendar event and freezes the idea", func(t *testing.T) {
		event, err := svc.Promote(ctx, idea.ID, owner.ID, types.PlatformTikTok)
		require.NoError(t, err)
		assert.Equal(t, idea.Title, event.Title)
		require.NotNil(t, event.Description)
		assert.Equal(t, notes, *event.Description)
		assert.Equal(t, types.StatusIdea, event.Status)
		assert.Equal(t, workspace.ID, event.WorkspaceID)

		promoted, err := svc.Get(ctx, idea.ID, owner.ID)
		require.NoError(t, err)
		assert.Equal(t, types.IdeaPromoted, promoted.Status)
	})

	t.Run("promoted idea cannot be promoted again", func(t *testing.T) {
		_, err := svc.Promote(ctx, idea.ID, owner.ID, types.PlatformYouTube)
		assert.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("promoted idea cannot be edited", func(t *testing.T) {
		title := "Renamed"
		_, err := svc.Update(ctx, idea.ID, owner.ID, &title, nil, nil, nil)
		assert.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("rejected idea cannot be promoted", func(t *testing.T) {
		rejected, err := svc.Create(ctx, workspace.ID, owner.ID, "Clickbait thumbnails", nil, nil)
		require.NoError(t, err)
		status := types.IdeaRejected
		_, err = svc.Update(ctx, rejected.ID, owner.ID, nil, nil, nil, &status)
		require.NoError(t, err)

		_, err = svc.Promote(ctx, rejected.ID, owner.ID, types.PlatformTikTok)
		assert.ErrorIs(t, err, ErrInvalidState)
	})
}

func TestIdeaUpdateStatus(t *testing.T) {
	env := newTestEnv()
	svc := newIdeaTestService(env)
	ctx := context.Background()

	owner := env.addUser("Ava", "ava@example.com")
	workspace := env.addWorkspace(owner.ID, "Ava Cooks")

	idea, err := svc.Create(ctx, workspace.ID, owner.ID, "One-pan breakfasts", nil, nil)
	require.NoError(t, err)

	t.Run("promoted cannot be set directly", func(t *testing.T) {
		status := types.IdeaPromoted
		_, err := svc.Update(ctx, idea.ID, owner.ID, nil, nil, nil, &status)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("approve then reject", func(t *testing.T) {
		approved := types.IdeaApproved
		updated, err := svc.Update(ctx, idea.ID, owner.ID, nil, nil, nil, &approved)
		require.NoError(t, err)
		assert.Equal(t, types.IdeaApproved, updated.Status)

		rejected := types.IdeaRejected
		updated, err = svc.Update(ctx, idea.ID, owner.ID, nil, nil, nil, &rejected)
		require.NoError(t, err)
		assert.Equal(t, types.IdeaRejected, updated.Status)
	})
}
