package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/virally/virally-backend/internal/repository"
)

// In-memory repository fakes. They mirror the postgres repositories'
// contract: FindX returns (nil, nil) when the row does not exist.

func memberKey(workspaceID, userID string) string {
	return workspaceID + ":" + userID
}

// ============================================
// Workspace repo fake
// ============================================

type fakeWorkspaceRepo struct {
	workspaces map[string]*repository.Workspace
	members    map[string]*repository.WorkspaceMember

	// Sibling stores cleared by DeleteCascade, wired up in newTestEnv
	// the way the SQL cascade spans every dependent table.
	invitations *fakeInvitationRepo
	calendar    *fakeCalendarRepo
	ideas       *fakeIdeaRepo
	scripts     *fakeScriptRepo
	analytics   *fakeAnalyticsRepo
	chat        *fakeChatRepo
}

func newFakeWorkspaceRepo() *fakeWorkspaceRepo {
	return &fakeWorkspaceRepo{
		workspaces: make(map[string]*repository.Workspace),
		members:    make(map[string]*repository.WorkspaceMember),
	}
}

func (r *fakeWorkspaceRepo) Create(ctx context.Context, workspace *repository.Workspace) error {
	workspace.ID = uuid.New().String()
	workspace.CreatedAt = time.Now()
	workspace.UpdatedAt = workspace.CreatedAt
	r.workspaces[workspace.ID] = workspace
	return nil
}

func (r *fakeWorkspaceRepo) FindByID(ctx context.Context, id string) (*repository.Workspace, error) {
	return r.workspaces[id], nil
}

func (r *fakeWorkspaceRepo) FindByUserID(ctx context.Context, userID string) ([]*repository.Workspace, error) {
	var out []*repository.Workspace
	for _, w := range r.workspaces {
		if w.OwnerID == userID {
			out = append(out, w)
			continue
		}
		if _, ok := r.members[memberKey(w.ID, userID)]; ok {
			out = append(out, w)
		}
	}
	return out, nil
}

func (r *fakeWorkspaceRepo) Update(ctx context.Context, workspace *repository.Workspace) error {
	workspace.UpdatedAt = time.Now()
	r.workspaces[workspace.ID] = workspace
	return nil
}

func (r *fakeWorkspaceRepo) DeleteCascade(ctx context.Context, id string) error {
	delete(r.workspaces, id)
	for key, m := range r.members {
		if m.WorkspaceID == id {
			delete(r.members, key)
		}
	}
	if r.invitations != nil {
		for invID, inv := range r.invitations.invitations {
			if inv.WorkspaceID == id {
				delete(r.invitations.invitations, invID)
			}
		}
	}
	if r.calendar != nil {
		for eventID, e := range r.calendar.events {
			if e.WorkspaceID == id {
				delete(r.calendar.events, eventID)
			}
		}
	}
	if r.ideas != nil {
		for ideaID, i := range r.ideas.ideas {
			if i.WorkspaceID == id {
				delete(r.ideas.ideas, ideaID)
			}
		}
	}
	if r.scripts != nil {
		for scriptID, s := range r.scripts.scripts {
			if s.WorkspaceID == id {
				delete(r.scripts.scripts, scriptID)
			}
		}
	}
	if r.analytics != nil {
		for entryID, e := range r.analytics.entries {
			if e.WorkspaceID == id {
				delete(r.analytics.entries, entryID)
			}
		}
	}
	if r.chat != nil {
		r.chat.DeleteByWorkspace(ctx, id)
	}
	return nil
}

func (r *fakeWorkspaceRepo) AddMember(ctx context.Context, member *repository.WorkspaceMember) error {
	member.ID = uuid.New().String()
	member.JoinedAt = time.Now()
	r.members[memberKey(member.WorkspaceID, member.UserID)] = member
	return nil
}

func (r *fakeWorkspaceRepo) FindMembers(ctx context.Context, workspaceID string) ([]*repository.WorkspaceMember, error) {
	var out []*repository.WorkspaceMember
	for _, m := range r.members {
		if m.WorkspaceID == workspaceID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeWorkspaceRepo) FindMember(ctx context.Context, workspaceID, userID string) (*repository.WorkspaceMember, error) {
	return r.members[memberKey(workspaceID, userID)], nil
}

func (r *fakeWorkspaceRepo) FindMemberUserIDs(ctx context.Context, workspaceID string) ([]string, error) {
	var out []string
	for _, m := range r.members {
		if m.WorkspaceID == workspaceID {
			out = append(out, m.UserID)
		}
	}
	return out, nil
}

func (r *fakeWorkspaceRepo) UpdateMemberRole(ctx context.Context, workspaceID, userID, role string) error {
	if m, ok := r.members[memberKey(workspaceID, userID)]; ok {
		m.Role = role
	}
	return nil
}

func (r *fakeWorkspaceRepo) RemoveMember(ctx context.Context, workspaceID, userID string) error {
	delete(r.members, memberKey(workspaceID, userID))
	return nil
}

// ============================================
// User repo fake
// ============================================

type fakeUserRepo struct {
	users         map[string]*repository.User
	refreshTokens map[string]*repository.RefreshToken

	// Injectable lookup failures for exercising store-error paths.
	findByIDErr    error
	findByEmailErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:         make(map[string]*repository.User),
		refreshTokens: make(map[string]*repository.RefreshToken),
	}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *repository.User) error {
	user.ID = uuid.New().String()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id string) (*repository.User, error) {
	if r.findByIDErr != nil {
		return nil, r.findByIDErr
	}
	return r.users[id], nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*repository.User, error) {
	if r.findByEmailErr != nil {
		return nil, r.findByEmailErr
	}
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *repository.User) error {
	user.UpdatedAt = time.Now()
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) SaveRefreshToken(ctx context.Context, token *repository.RefreshToken) error {
	token.ID = uuid.New().String()
	r.refreshTokens[token.Token] = token
	return nil
}

func (r *fakeUserRepo) FindRefreshToken(ctx context.Context, token string) (*repository.RefreshToken, error) {
	return r.refreshTokens[token], nil
}

func (r *fakeUserRepo) DeleteRefreshToken(ctx context.Context, token string) error {
	delete(r.refreshTokens, token)
	return nil
}

func (r *fakeUserRepo) DeleteUserRefreshTokens(ctx context.Context, userID string) error {
	for key, t := range r.refreshTokens {
		if t.UserID == userID {
			delete(r.refreshTokens, key)
		}
	}
	return nil
}

// ============================================
// Invitation repo fake
// ============================================

type fakeInvitationRepo struct {
	invitations   map[string]*repository.Invitation
	workspaceRepo *fakeWorkspaceRepo
}

func newFakeInvitationRepo(workspaceRepo *fakeWorkspaceRepo) *fakeInvitationRepo {
	return &fakeInvitationRepo{
		invitations:   make(map[string]*repository.Invitation),
		workspaceRepo: workspaceRepo,
	}
}

func (r *fakeInvitationRepo) Create(ctx context.Context, invitation *repository.Invitation) error {
	invitation.ID = uuid.New().String()
	if invitation.Token == "" {
		invitation.Token = uuid.New().String()
	}
	invitation.CreatedAt = time.Now()
	invitation.UpdatedAt = invitation.CreatedAt
	r.invitations[invitation.ID] = invitation
	return nil
}

func (r *fakeInvitationRepo) FindByID(ctx context.Context, id string) (*repository.Invitation, error) {
	return r.invitations[id], nil
}

func (r *fakeInvitationRepo) FindByToken(ctx context.Context, token string) (*repository.Invitation, error) {
	for _, inv := range r.invitations {
		if inv.Token == token {
			return inv, nil
		}
	}
	return nil, nil
}

func (r *fakeInvitationRepo) FindPendingByEmail(ctx context.Context, email string) ([]*repository.Invitation, error) {
	var out []*repository.Invitation
	for _, inv := range r.invitations {
		if inv.Status == InvitationPending && strings.EqualFold(inv.Email, email) {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (r *fakeInvitationRepo) FindByWorkspace(ctx context.Context, workspaceID string) ([]*repository.Invitation, error) {
	var out []*repository.Invitation
	for _, inv := range r.invitations {
		if inv.WorkspaceID == workspaceID {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (r *fakeInvitationRepo) ExistsPending(ctx context.Context, workspaceID, email string) (bool, error) {
	for _, inv := range r.invitations {
		if inv.WorkspaceID == workspaceID && inv.Status == InvitationPending && strings.EqualFold(inv.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeInvitationRepo) UpdateStatus(ctx context.Context, id, status string) error {
	if inv, ok := r.invitations[id]; ok {
		inv.Status = status
		inv.UpdatedAt = time.Now()
	}
	return nil
}

func (r *fakeInvitationRepo) Accept(ctx context.Context, invitation *repository.Invitation, member *repository.WorkspaceMember) error {
	invitation.Status = InvitationAccepted
	invitation.UpdatedAt = time.Now()
	return r.workspaceRepo.AddMember(ctx, member)
}

func (r *fakeInvitationRepo) Delete(ctx context.Context, id string) error {
	delete(r.invitations, id)
	return nil
}

func (r *fakeInvitationRepo) DeleteExpired(ctx context.Context) (int, error) {
	count := 0
	now := time.Now()
	for id, inv := range r.invitations {
		if inv.Status == InvitationPending && now.After(inv.ExpiresAt) {
			delete(r.invitations, id)
			count++
		}
	}
	return count, nil
}

// ============================================
// Calendar repo fake
// ============================================

type fakeCalendarRepo struct {
	events map[string]*repository.CalendarEvent
}

func newFakeCalendarRepo() *fakeCalendarRepo {
	return &fakeCalendarRepo{events: make(map[string]*repository.CalendarEvent)}
}

func (r *fakeCalendarRepo) Create(ctx context.Context, event *repository.CalendarEvent) error {
	event.ID = uuid.New().String()
	event.CreatedAt = time.Now()
	event.UpdatedAt = event.CreatedAt
	r.events[event.ID] = event
	return nil
}

func (r *fakeCalendarRepo) FindByID(ctx context.Context, id string) (*repository.CalendarEvent, error) {
	return r.events[id], nil
}

func (r *fakeCalendarRepo) FindByWorkspace(ctx context.Context, workspaceID string, from, to *time.Time) ([]*repository.CalendarEvent, error) {
	var out []*repository.CalendarEvent
	for _, e := range r.events {
		if e.WorkspaceID != workspaceID {
			continue
		}
		if from != nil && (e.ScheduledAt == nil || e.ScheduledAt.Before(*from)) {
			continue
		}
		if to != nil && (e.ScheduledAt == nil || e.ScheduledAt.After(*to)) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *fakeCalendarRepo) FindScheduledBetween(ctx context.Context, from, to time.Time) ([]*repository.CalendarEvent, error) {
	var out []*repository.CalendarEvent
	for _, e := range r.events {
		if e.ScheduledAt == nil {
			continue
		}
		if e.ScheduledAt.Before(from) || e.ScheduledAt.After(to) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *fakeCalendarRepo) Update(ctx context.Context, event *repository.CalendarEvent) error {
	event.UpdatedAt = time.Now()
	r.events[event.ID] = event
	return nil
}

func (r *fakeCalendarRepo) Delete(ctx context.Context, id string) error {
	delete(r.events, id)
	return nil
}

// ============================================
// Idea repo fake
// ============================================

type fakeIdeaRepo struct {
	ideas map[string]*repository.Idea
}

func newFakeIdeaRepo() *fakeIdeaRepo {
	return &fakeIdeaRepo{ideas: make(map[string]*repository.Idea)}
}

func (r *fakeIdeaRepo) Create(ctx context.Context, idea *repository.Idea) error {
	idea.ID = uuid.New().String()
	idea.CreatedAt = time.Now()
	idea.UpdatedAt = idea.CreatedAt
	r.ideas[idea.ID] = idea
	return nil
}

func (r *fakeIdeaRepo) FindByID(ctx context.Context, id string) (*repository.Idea, error) {
	return r.ideas[id], nil
}

func (r *fakeIdeaRepo) FindByWorkspace(ctx context.Context, workspaceID string, status string) ([]*repository.Idea, error) {
	var out []*repository.Idea
	for _, i := range r.ideas {
		if i.WorkspaceID != workspaceID {
			continue
		}
		if status != "" && i.Status != status {
			continue
		}
		out = append(out, i)
	}
	return out, nil
}

func (r *fakeIdeaRepo) Update(ctx context.Context, idea *repository.Idea) error {
	idea.UpdatedAt = time.Now()
	r.ideas[idea.ID] = idea
	return nil
}

func (r *fakeIdeaRepo) Delete(ctx context.Context, id string) error {
	delete(r.ideas, id)
	return nil
}

// ============================================
// Script repo fake
// ============================================

type fakeScriptRepo struct {
	scripts map[string]*repository.Script
}

func newFakeScriptRepo() *fakeScriptRepo {
	return &fakeScriptRepo{scripts: make(map[string]*repository.Script)}
}

func (r *fakeScriptRepo) Create(ctx context.Context, script *repository.Script) error {
	script.ID = uuid.New().String()
	script.CreatedAt = time.Now()
	script.UpdatedAt = script.CreatedAt
	r.scripts[script.ID] = script
	return nil
}

func (r *fakeScriptRepo) FindByID(ctx context.Context, id string) (*repository.Script, error) {
	return r.scripts[id], nil
}

func (r *fakeScriptRepo) FindByWorkspace(ctx context.Context, workspaceID string) ([]*repository.Script, error) {
	var out []*repository.Script
	for _, s := range r.scripts {
		if s.WorkspaceID == workspaceID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeScriptRepo) Update(ctx context.Context, script *repository.Script) error {
	script.UpdatedAt = time.Now()
	r.scripts[script.ID] = script
	return nil
}

func (r *fakeScriptRepo) Delete(ctx context.Context, id string) error {
	delete(r.scripts, id)
	return nil
}

// ============================================
// Analytics repo fake
// ============================================

type fakeAnalyticsRepo struct {
	entries map[string]*repository.AnalyticsEntry
}

func newFakeAnalyticsRepo() *fakeAnalyticsRepo {
	return &fakeAnalyticsRepo{entries: make(map[string]*repository.AnalyticsEntry)}
}

func (r *fakeAnalyticsRepo) Create(ctx context.Context, entry *repository.AnalyticsEntry) error {
	entry.ID = uuid.New().String()
	entry.CreatedAt = time.Now()
	entry.UpdatedAt = entry.CreatedAt
	r.entries[entry.ID] = entry
	return nil
}

func (r *fakeAnalyticsRepo) FindByID(ctx context.Context, id string) (*repository.AnalyticsEntry, error) {
	return r.entries[id], nil
}

func (r *fakeAnalyticsRepo) FindByWorkspace(ctx context.Context, workspaceID string, from, to *time.Time) ([]*repository.AnalyticsEntry, error) {
	var out []*repository.AnalyticsEntry
	for _, e := range r.entries {
		if e.WorkspaceID != workspaceID {
			continue
		}
		if from != nil && e.MetricDate.Before(*from) {
			continue
		}
		if to != nil && e.MetricDate.After(*to) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *fakeAnalyticsRepo) Summarize(ctx context.Context, workspaceID string, from, to time.Time) (*repository.AnalyticsSummary, error) {
	summary := &repository.AnalyticsSummary{
		WorkspaceID:  workspaceID,
		From:         from,
		To:           to,
		TotalRevenue: decimal.Zero,
	}
	for _, e := range r.entries {
		if e.WorkspaceID != workspaceID || e.MetricDate.Before(from) || e.MetricDate.After(to) {
			continue
		}
		summary.TotalViews += e.Views
		summary.TotalLikes += e.Likes
		summary.TotalComments += e.Comments
		summary.TotalShares += e.Shares
		summary.TotalRevenue = summary.TotalRevenue.Add(e.Revenue)
		summary.EntryCount++
	}
	return summary, nil
}

func (r *fakeAnalyticsRepo) Update(ctx context.Context, entry *repository.AnalyticsEntry) error {
	entry.UpdatedAt = time.Now()
	r.entries[entry.ID] = entry
	return nil
}

func (r *fakeAnalyticsRepo) Delete(ctx context.Context, id string) error {
	delete(r.entries, id)
	return nil
}

// ============================================
// Chat repo fake
// ============================================

type fakeChatRepo struct {
	messages []*repository.ChatMessage
}

func newFakeChatRepo() *fakeChatRepo {
	return &fakeChatRepo{}
}

func (r *fakeChatRepo) Create(ctx context.Context, message *repository.ChatMessage) error {
	message.ID = uuid.New().String()
	message.CreatedAt = time.Now()
	r.messages = append(r.messages, message)
	return nil
}

func (r *fakeChatRepo) FindByWorkspace(ctx context.Context, workspaceID string, limit int) ([]*repository.ChatMessage, error) {
	var out []*repository.ChatMessage
	for _, m := range r.messages {
		if m.WorkspaceID == workspaceID {
			out = append(out, m)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}

func (r *fakeChatRepo) DeleteByWorkspace(ctx context.Context, workspaceID string) error {
	var kept []*repository.ChatMessage
	for _, m := range r.messages {
		if m.WorkspaceID != workspaceID {
			kept = append(kept, m)
		}
	}
	r.messages = kept
	return nil
}

// ============================================
// Assistant fake
// ============================================

type fakeAssistant struct {
	reply   string
	err     error
	prompts []string
}

func (a *fakeAssistant) Reply(ctx context.Context, workspace *repository.Workspace, history []*repository.ChatMessage, prompt string) (string, error) {
	a.prompts = append(a.prompts, prompt)
	if a.err != nil {
		return "", a.err
	}
	return a.reply, nil
}

// ============================================
// Test fixture
// ============================================

type testEnv struct {
	workspaceRepo *fakeWorkspaceRepo
	userRepo      *fakeUserRepo
	invRepo       *fakeInvitationRepo
	calendarRepo  *fakeCalendarRepo
	ideaRepo      *fakeIdeaRepo
	scriptRepo    *fakeScriptRepo
	analyticsRepo *fakeAnalyticsRepo
	chatRepo      *fakeChatRepo
	access        AccessService
}

func newTestEnv() *testEnv {
	workspaceRepo := newFakeWorkspaceRepo()
	env := &testEnv{
		workspaceRepo: workspaceRepo,
		userRepo:      newFakeUserRepo(),
		invRepo:       newFakeInvitationRepo(workspaceRepo),
		calendarRepo:  newFakeCalendarRepo(),
		ideaRepo:      newFakeIdeaRepo(),
		scriptRepo:    newFakeScriptRepo(),
		analyticsRepo: newFakeAnalyticsRepo(),
		chatRepo:      newFakeChatRepo(),
		access:        NewAccessService(workspaceRepo),
	}
	workspaceRepo.invitations = env.invRepo
	workspaceRepo.calendar = env.calendarRepo
	workspaceRepo.ideas = env.ideaRepo
	workspaceRepo.scripts = env.scriptRepo
	workspaceRepo.analytics = env.analyticsRepo
	workspaceRepo.chat = env.chatRepo
	return env
}

func (e *testEnv) addUser(name, email string) *repository.User {
	user := &repository.User{Name: name, Email: email, Password: "hashed"}
	e.userRepo.Create(context.Background(), user)
	return user
}

func (e *testEnv) addWorkspace(ownerID, name string) *repository.Workspace {
	workspace := &repository.Workspace{OwnerID: ownerID, Name: name, Niche: "cooking"}
	e.workspaceRepo.Create(context.Background(), workspace)
	return workspace
}

func (e *testEnv) addMember(workspaceID, userID, role string) {
	e.workspaceRepo.AddMember(context.Background(), &repository.WorkspaceMember{
		WorkspaceID: workspaceID,
		UserID:      userID,
		Role:        role,
	})
}
