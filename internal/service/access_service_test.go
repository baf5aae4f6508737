package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckAccess(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	owner := env.addUser("Ava", "ava@example.com")
	editor := env.addUser("Ben", "ben@example.com")
	viewer := env.addUser("Mia", "mia@example.com")
	outsider := env.addUser("Leo", "leo@example.com")

	workspace := env.addWorkspace(owner.ID, "Ava Cooks")
	env.addMember(workspace.ID, editor.ID, RoleEditor)
	env.addMember(workspace.ID, viewer.ID, RoleViewer)

	t.Run("owner role derived from owner_id", func(t *testing.T) {
		ws, role, err := env.access.CheckAccess(ctx, workspace.ID, owner.ID)
		require.NoError(t, err)
		assert.Equal(t, RoleOwner, role)
		assert.Equal(t, workspace.ID, ws.ID)
	})

	t.Run("stale owner membership row is ignored", func(t *testing.T) {
		// An owner should never have a membership row, but a leftover
		// one must not downgrade the derived role.
		env.addMember(workspace.ID, owner.ID, RoleViewer)
		_, role, err := env.access.CheckAccess(ctx, workspace.ID, owner.ID)
		require.NoError(t, err)
		assert.Equal(t, RoleOwner, role)
		env.workspaceRepo.RemoveMember(ctx, workspace.ID, owner.ID)
	})

	t.Run("member roles come from membership rows", func(t *testing.T) {
		_, role, err := env.access.CheckAccess(ctx, workspace.ID, editor.ID)
		require.NoError(t, err)
		assert.Equal(t, RoleEditor, role)

		_, role, err = env.access.CheckAccess(ctx, workspace.ID, viewer.ID)
		require.NoError(t, err)
		assert.Equal(t, RoleViewer, role)
	})

	t.Run("repeated checks return identical results", func(t *testing.T) {
		firstWs, firstRole, err := env.access.CheckAccess(ctx, workspace.ID, editor.ID)
		require.NoError(t, err)
		secondWs, secondRole, err := env.access.CheckAccess(ctx, workspace.ID, editor.ID)
		require.NoError(t, err)
		assert.Equal(t, firstWs.ID, secondWs.ID)
		assert.Equal(t, firstRole, secondRole)
	})

	t.Run("outsider gets access denied", func(t *testing.T) {
		_, _, err := env.access.CheckAccess(ctx, workspace.ID, outsider.ID)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("missing workspace gets not found", func(t *testing.T) {
		_, _, err := env.access.CheckAccess(ctx, "no-such-workspace", owner.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestRequireEditor(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	owner := env.addUser("Ava", "ava@example.com")
	editor := env.addUser("Ben", "ben@example.com")
	viewer := env.addUser("Mia", "mia@example.com")

	workspace := env.addWorkspace(owner.ID, "Ava Cooks")
	env.addMember(workspace.ID, editor.ID, RoleEditor)
	env.addMember(workspace.ID, viewer.ID, RoleViewer)

	t.Run("owner passes", func(t *testing.T) {
		_, role, err := env.access.RequireEditor(ctx, workspace.ID, owner.ID)
		require.NoError(t, err)
		assert.Equal(t, RoleOwner, role)
	})

	t.Run("editor passes", func(t *testing.T) {
		_, role, err := env.access.RequireEditor(ctx, workspace.ID, editor.ID)
		require.NoError(t, err)
		assert.Equal(t, RoleEditor, role)
	})

	t.Run("viewer is rejected", func(t *testing.T) {
		_, _, err := env.access.RequireEditor(ctx, workspace.ID, viewer.ID)
		assert.ErrorIs(t, err, ErrPermissionDenied)
	})
}

func TestRequireOwner(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	owner := env.addUser("Ava", "ava@example.com")
	editor := env.addUser("Ben", "ben@example.com")

	workspace := env.addWorkspace(owner.ID, "Ava Cooks")
	env.addMember(workspace.ID, editor.ID, RoleEditor)

	t.Run("owner passes", func(t *testing.T) {
		ws, err := env.access.RequireOwner(ctx, workspace.ID, owner.ID)
		require.NoError(t, err)
		assert.Equal(t, workspace.ID, ws.ID)
	})

	t.Run("editor is rejected", func(t *testing.T) {
		_, err := env.access.RequireOwner(ctx, workspace.ID, editor.ID)
		assert.ErrorIs(t, err, ErrPermissionDenied)
	})
}

func TestIsAssignableRole(t *testing.T) {
	assert.True(t, IsAssignableRole(RoleEditor))
	assert.True(t, IsAssignableRole(RoleViewer))
	assert.False(t, IsAssignableRole(RoleOwner))
	assert.False(t, IsAssignableRole("admin"))
	assert.False(t, IsAssignableRole(""))
}
