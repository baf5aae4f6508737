package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repositories struct {
	UserRepo       UserRepository
	WorkspaceRepo  WorkspaceRepository
	InvitationRepo InvitationRepository
	CalendarRepo   CalendarRepository
	IdeaRepo       IdeaRepository
	ScriptRepo     ScriptRepository
	AnalyticsRepo  AnalyticsRepository
	ChatRepo       ChatRepository
}

func NewRepositories(pool *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepo:       NewUserRepository(pool),
		WorkspaceRepo:  NewWorkspaceRepository(pool),
		InvitationRepo: NewInvitationRepository(pool),
		CalendarRepo:   NewCalendarRepository(pool),
		IdeaRepo:       NewIdeaRepository(pool),
		ScriptRepo:     NewScriptRepository(pool),
		AnalyticsRepo:  NewAnalyticsRepository(pool),
		ChatRepo:       NewChatRepository(pool),
	}
}
