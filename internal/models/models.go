package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ============================================
// Auth DTOs
// ============================================

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

type AuthResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
}

// ============================================
// User DTOs
// ============================================

type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Avatar    *string   `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type UpdateUserRequest struct {
	Name   *string `json:"name,omitempty"`
	Avatar *string `json:"avatar,omitempty"`
}

// ============================================
// Workspace DTOs
// ============================================

type CreateWorkspaceRequest struct {
	Name        string  `json:"name" binding:"required,min=2"`
	Niche       string  `json:"niche" binding:"required"`
	Description *string `json:"description,omitempty"`
}

type UpdateWorkspaceRequest struct {
	Name        *string `json:"name,omitempty"`
	Niche       *string `json:"niche,omitempty"`
	Description *string `json:"description,omitempty"`
}

type WorkspaceResponse struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"ownerId"`
	Name        string    `json:"name"`
	Niche       string    `json:"niche"`
	Description *string   `json:"description,omitempty"`
	Role        string    `json:"role,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type WorkspaceMemberResponse struct {
	ID          string        `json:"id"`
	WorkspaceID string        `json:"workspaceId"`
	UserID      string        `json:"userId"`
	Role        string        `json:"role"`
	JoinedAt    time.Time     `json:"joinedAt"`
	User        *UserResponse `json:"user,omitempty"`
}

type UpdateMemberRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=editor viewer"`
}

// ============================================
// Invitation DTOs
// ============================================

type InviteMemberRequest struct {
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role" binding:"required,oneof=editor viewer"`
}

type InvitationResponse struct {
	ID          string    `json:"id"`
	WorkspaceID string    `json:"workspaceId"`
	Email       string    `json:"email"`
	Token       string    `json:"token"`
	Role        string    `json:"role"`
	InvitedBy   string    `json:"invitedBy"`
	Status      string    `json:"status"`
	ExpiresAt   time.Time `json:"expiresAt"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ============================================
// Calendar DTOs
// ============================================

type CreateEventRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description *string    `json:"description,omitempty"`
	Platform    string     `json:"platform" binding:"required"`
	Status      string     `json:"status,omitempty"`
	ScheduledAt *time.Time `json:"scheduledAt,omitempty"`
}

type UpdateEventRequest struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Platform    *string    `json:"platform,omitempty"`
	Status      *string    `json:"status,omitempty"`
	ScheduledAt *time.Time `json:"scheduledAt,omitempty"`
}

type EventResponse struct {
	ID          string     `json:"id"`
	WorkspaceID string     `json:"workspaceId"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Platform    string     `json:"platform"`
	Status      string     `json:"status"`
	ScheduledAt *time.Time `json:"scheduledAt,omitempty"`
	CreatedBy   string     `json:"createdBy"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// ============================================
// Idea DTOs
// ============================================

type CreateIdeaRequest struct {
	Title  string  `json:"title" binding:"required"`
	Notes  *string `json:"notes,omitempty"`
	Source *string `json:"source,omitempty"`
}

type UpdateIdeaRequest struct {
	Title  *string `json:"title,omitempty"`
	Notes  *string `json:"notes,omitempty"`
	Source *string `json:"source,omitempty"`
	Status *string `json:"status,omitempty"`
}

type PromoteIdeaRequest struct {
	Platform string `json:"platform" binding:"required"`
}

type IdeaResponse struct {
	ID          string    `json:"id"`
	WorkspaceID string    `json:"workspaceId"`
	Title       string    `json:"title"`
	Notes       *string   `json:"notes,omitempty"`
	Source      *string   `json:"source,omitempty"`
	Status      string    `json:"status"`
	CreatedBy   string    `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ============================================
// Script DTOs
// ============================================

type CreateScriptRequest struct {
	Title   string  `json:"title" binding:"required"`
	Hook    *string `json:"hook,omitempty"`
	Content string  `json:"content"`
	EventID *string `json:"eventId,omitempty"`
}

type UpdateScriptRequest struct {
	Title   *string `json:"title,omitempty"`
	Hook    *string `json:"hook,omitempty"`
	Content *string `json:"content,omitempty"`
	Status  *string `json:"status,omitempty"`
	EventID *string `json:"eventId,omitempty"`
}

type ScriptResponse struct {
	ID          string    `json:"id"`
	WorkspaceID string    `json:"workspaceId"`
	Title       string    `json:"title"`
	Hook        *string   `json:"hook,omitempty"`
	Content     string    `json:"content"`
	Status      string    `json:"status"`
	EventID     *string   `json:"eventId,omitempty"`
	CreatedBy   string    `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ============================================
// Analytics DTOs
// ============================================

type AnalyticsEntryRequest struct {
	Platform   string          `json:"platform" binding:"required"`
	MetricDate time.Time       `json:"metricDate" binding:"required"`
	Views      int64           `json:"views"`
	Likes      int64           `json:"likes"`
	Comments   int64           `json:"comments"`
	Shares     int64           `json:"shares"`
	Followers  int64           `json:"followers"`
	Revenue    decimal.Decimal `json:"revenue"`
}

type AnalyticsEntryResponse struct {
	ID          string          `json:"id"`
	WorkspaceID string          `json:"workspaceId"`
	Platform    string          `json:"platform"`
	MetricDate  time.Time       `json:"metricDate"`
	Views       int64           `json:"views"`
	Likes       int64           `json:"likes"`
	Comments    int64           `json:"comments"`
	Shares      int64           `json:"shares"`
	Followers   int64           `json:"followers"`
	Revenue     decimal.Decimal `json:"revenue"`
	CreatedBy   string          `json:"createdBy"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ============================================
// Chat DTOs
// ============================================

type SendMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

type ChatMessageResponse struct {
	ID          string    `json:"id"`
	WorkspaceID string    `json:"workspaceId"`
	UserID      string    `json:"userId"`
	Role        string    `json:"role"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"createdAt"`
}
