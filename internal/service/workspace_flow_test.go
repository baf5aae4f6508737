package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/virally/virally-backend/internal/types"
)

// TestCollaborationFlow walks the full membership lifecycle: a creator
// builds a workspace, invites a collaborator, the collaborator works as
// an editor, and finally loses access when removed.
func TestCollaborationFlow(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	workspaceSvc := newWorkspaceService(env)
	invitationSvc := newInvitationService(env)
	calendarSvc := newCalendarTestService(env)

	ava := env.addUser("Ava", "ava@example.com")
	ben := env.addUser("Ben", "ben@example.com")

	// Ava creates a workspace. She is the owner by owner_id alone.
	workspace, err := workspaceSvc.Create(ctx, ava.ID, "Ava Cooks", "home cooking", nil)
	require.NoError(t, err)

	// Ben has no relationship with the workspace yet.
	_, _, err = env.access.CheckAccess(ctx, workspace.ID, ben.ID)
	require.ErrorIs(t, err, ErrAccessDenied)

	// Ava invites Ben as an editor and Ben accepts.
	inv, err := invitationSvc.Invite(ctx, workspace.ID, "ben@example.com", RoleEditor, ava.ID)
	require.NoError(t, err)

	member, err := invitationSvc.Accept(ctx, inv.Token, ben.ID)
	require.NoError(t, err)
	assert.Equal(t, RoleEditor, member.Role)

	// Ben can now write content but cannot delete the workspace.
	event, err := calendarSvc.Create(ctx, workspace.ID, ben.ID, "Ramen night", nil, types.PlatformTikTok, "", nil)
	require.NoError(t, err)

	err = workspaceSvc.Delete(ctx, workspace.ID, ben.ID)
	require.ErrorIs(t, err, ErrPermissionDenied)

	// Ava demotes Ben to viewer; his writes stop working.
	require.NoError(t, workspaceSvc.UpdateMemberRole(ctx, workspace.ID, ben.ID, RoleViewer, ava.ID))

	_, err = calendarSvc.Create(ctx, workspace.ID, ben.ID, "Second event", nil, types.PlatformTikTok, "", nil)
	require.ErrorIs(t, err, ErrPermissionDenied)

	events, err := calendarSvc.List(ctx, workspace.ID, ben.ID, nil, nil)
	require.NoError(t, err)
	assert.Len(t, events, 1)

	// Ava removes Ben entirely.
	require.NoError(t, workspaceSvc.RemoveMember(ctx, workspace.ID, ben.ID, ava.ID))

	_, err = calendarSvc.Get(ctx, event.ID, ben.ID)
	assert.ErrorIs(t, err, ErrAccessDenied)

	// Ava deletes the workspace; everything stops resolving.
	require.NoError(t, workspaceSvc.Delete(ctx, workspace.ID, ava.ID))

	_, _, err = env.access.CheckAccess(ctx, workspace.ID, ava.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
