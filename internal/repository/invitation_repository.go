package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Invitation struct {
	ID          string
	WorkspaceID string
	Email       string
	Token       string
	Role        string
	InvitedBy   string
	Status      string // pending, accepted, declined
	ExpiresAt   time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type InvitationRepository interface {
	Create(ctx context.Context, invitation *Invitation) error
	FindByID(ctx context.Context, id string) (*Invitation, error)
	FindByToken(ctx context.Context, token string) (*Invitation, error)
	FindPendingByEmail(ctx context.Context, email string) ([]*Invitation, error)
	FindByWorkspace(ctx context.Context, workspaceID string) ([]*Invitation, error)
	ExistsPending(ctx context.Context, workspaceID, email string) (bool, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Accept(ctx context.Context, invitation *Invitation, member *WorkspaceMember) error
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context) (int, error)
}

type pgInvitationRepository struct {
	pool *pgxpool.Pool
}

func NewInvitationRepository(pool *pgxpool.Pool) InvitationRepository {
	return &pgInvitationRepository{pool: pool}
}

func (r *pgInvitationRepository) Create(ctx context.Context, invitation *Invitation) error {
	if invitation.Token == "" {
		invitation.Token = uuid.New().String()
	}
	query := `
		INSERT INTO invitations (workspace_id, email, token, role, invited_by, status, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`
	return r.pool.QueryRow(ctx, query,
		invitation.WorkspaceID, invitation.Email, invitation.Token,
		invitation.Role, invitation.InvitedBy, invitation.Status, invitation.ExpiresAt,
	).Scan(&invitation.ID, &invitation.CreatedAt, &invitation.UpdatedAt)
}

func (r *pgInvitationRepository) FindByID(ctx context.Context, id string) (*Invitation, error) {
	query := `
		SELECT id, workspace_id, email, token, role, invited_by, status, expires_at, created_at, updated_at
		FROM invitations WHERE id = $1
	`
	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *pgInvitationRepository) FindByToken(ctx context.Context, token string) (*Invitation, error) {
	query := `
		SELECT id, workspace_id, email, token, role, invited_by, status, expires_at, created_at, updated_at
		FROM invitations WHERE token = $1
	`
	return r.scanOne(r.pool.QueryRow(ctx, query, token))
}

func (r *pgInvitationRepository) scanOne(row pgx.Row) (*Invitation, error) {
	inv := &Invitation{}
	err := row.Scan(
		&inv.ID, &inv.WorkspaceID, &inv.Email, &inv.Token, &inv.Role,
		&inv.InvitedBy, &inv.Status, &inv.ExpiresAt, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return inv, nil
}

func (r *pgInvitationRepository) FindPendingByEmail(ctx context.Context, email string) ([]*Invitation, error) {
	query := `
		SELECT id, workspace_id, email, token, role, invited_by, status, expires_at, created_at, updated_at
		FROM invitations WHERE LOWER(email) = LOWER($1) AND status = 'pending'
		ORDER BY created_at DESC
	`
	return r.scanMany(ctx, query, email)
}

func (r *pgInvitationRepository) FindByWorkspace(ctx context.Context, workspaceID string) ([]*Invitation, error) {
	query := `
		SELECT id, workspace_id, email, token, role, invited_by, status, expires_at, created_at, updated_at
		FROM invitations WHERE workspace_id = $1
		ORDER BY created_at DESC
	`
	return r.scanMany(ctx, query, workspaceID)
}

func (r *pgInvitationRepository) scanMany(ctx context.Context, query string, args ...interface{}) ([]*Invitation, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invitations []*Invitation
	for rows.Next() {
		inv := &Invitation{}
		if err := rows.Scan(
			&inv.ID, &inv.WorkspaceID, &inv.Email, &inv.Token, &inv.Role,
			&inv.InvitedBy, &inv.Status, &inv.ExpiresAt, &inv.CreatedAt, &inv.UpdatedAt,
		); err != nil {
			return nil, err
		}
		invitations = append(invitations, inv)
	}
	return invitations, rows.Err()
}

func (r *pgInvitationRepository) ExistsPending(ctx context.Context, workspaceID, email string) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM invitations
			WHERE workspace_id = $1 AND LOWER(email) = LOWER($2) AND status = 'pending'
		)
	`
	var exists bool
	err := r.pool.QueryRow(ctx, query, workspaceID, email).Scan(&exists)
	return exists, err
}

func (r *pgInvitationRepository) UpdateStatus(ctx context.Context, id, status string) error {
	query := `UPDATE invitations SET status = $2, updated_at = NOW() WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id, status)
	return err
}

// Accept flips the invitation to accepted and inserts the membership row in a
// single transaction, so the two writes cannot diverge.
func (r *pgInvitationRepository) Accept(ctx context.Context, invitation *Invitation, member *WorkspaceMember) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`UPDATE invitations SET status = 'accepted', updated_at = NOW() WHERE id = $1`,
		invitation.ID,
	); err != nil {
		return err
	}

	if err := tx.QueryRow(ctx,
		`INSERT INTO workspace_members (workspace_id, user_id, role, invited_by)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, joined_at`,
		member.WorkspaceID, member.UserID, member.Role, member.InvitedBy,
	).Scan(&member.ID, &member.JoinedAt); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *pgInvitationRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM invitations WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}

func (r *pgInvitationRepository) DeleteExpired(ctx context.Context) (int, error) {
	query := `DELETE FROM invitations WHERE status = 'pending' AND expires_at < NOW()`
	tag, err := r.pool.Exec(ctx, query)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}
