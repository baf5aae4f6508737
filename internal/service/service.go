package service

import (
	"errors"

	"github.com/virally/virally-backend/internal/config"
	"github.com/virally/virally-backend/internal/db"
	"github.com/virally/virally-backend/internal/email"
	"github.com/virally/virally-backend/internal/repository"
	"github.com/virally/virally-backend/internal/socket"
)

var (
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrUserExists           = errors.New("user already exists")
	ErrUserNotFound         = errors.New("user not found")
	ErrInvalidToken         = errors.New("invalid token")
	ErrNotFound             = errors.New("resource not found")
	ErrAccessDenied         = errors.New("no access to workspace")
	ErrPermissionDenied     = errors.New("insufficient role for this action")
	ErrInvalidState         = errors.New("operation not valid in current state")
	ErrConflict             = errors.New("resource already exists")
	ErrInvalidInput         = errors.New("invalid input")
	ErrInvalidRole          = errors.New("invalid role")
	ErrAssistantUnavailable = errors.New("assistant is unavailable")
)

// ============================================
// Services Container
// ============================================

type Services struct {
	Auth        AuthService
	User        UserService
	Access      AccessService
	Workspace   WorkspaceService
	Invitation  InvitationService
	Calendar    CalendarService
	Idea        IdeaService
	Script      ScriptService
	Analytics   AnalyticsService
	Chat        ChatService
	Broadcaster *socket.Broadcaster
}

// ServiceDeps contains all dependencies needed to create services
type ServiceDeps struct {
	Config      *config.Config
	Repos       *repository.Repositories
	EmailSvc    *email.Service
	Cache       *db.RedisDB
	Assistant   Assistant
	Broadcaster *socket.Broadcaster
}

func NewServices(deps *ServiceDeps) *Services {
	accessService := NewAccessService(deps.Repos.WorkspaceRepo)

	return &Services{
		Auth:   NewAuthService(deps.Config, deps.Repos.UserRepo),
		User:   NewUserService(deps.Repos.UserRepo),
		Access: accessService,
		Workspace: NewWorkspaceService(
			deps.Repos.WorkspaceRepo,
			deps.Repos.UserRepo,
			accessService,
			deps.Broadcaster,
		),
		Invitation: NewInvitationService(
			deps.Repos.InvitationRepo,
			deps.Repos.WorkspaceRepo,
			deps.Repos.UserRepo,
			accessService,
			deps.EmailSvc,
			deps.Broadcaster,
			deps.Config.FrontendURL,
		),
		Calendar:    NewCalendarService(deps.Repos.CalendarRepo, accessService, deps.Broadcaster),
		Idea:        NewIdeaService(deps.Repos.IdeaRepo, deps.Repos.CalendarRepo, accessService, deps.Broadcaster),
		Script:      NewScriptService(deps.Repos.ScriptRepo, deps.Repos.CalendarRepo, accessService, deps.Broadcaster),
		Analytics:   NewAnalyticsService(deps.Repos.AnalyticsRepo, accessService, deps.Cache),
		Chat:        NewChatService(deps.Repos.ChatRepo, accessService, deps.Assistant, deps.Broadcaster),
		Broadcaster: deps.Broadcaster,
	}
}
