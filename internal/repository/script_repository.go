package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Script struct {
	ID          string
	WorkspaceID string
	Title       string
	Hook        *string
	Content     string
	Status      string
	EventID     *string
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ScriptRepository interface {
	Create(ctx context.Context, script *Script) error
	FindByID(ctx context.Context, id string) (*Script, error)
	FindByWorkspace(ctx context.Context, workspaceID string) ([]*Script, error)
	Update(ctx context.Context, script *Script) error
	Delete(ctx context.Context, id string) error
}

type pgScriptRepository struct {
	pool *pgxpool.Pool
}

func NewScriptRepository(pool *pgxpool.Pool) ScriptRepository {
	return &pgScriptRepository{pool: pool}
}

func (r *pgScriptRepository) Create(ctx context.Context, script *Script) error {
	query := `
		INSERT INTO scripts (workspace_id, title, hook, content, status, event_id, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`
	return r.pool.QueryRow(ctx, query,
		script.WorkspaceID, script.Title, script.Hook, script.Content,
		script.Status, script.EventID, script.CreatedBy,
	).Scan(&script.ID, &script.CreatedAt, &script.UpdatedAt)
}

func (r *pgScriptRepository) FindByID(ctx context.Context, id string) (*Script, error) {
	query := `
		SELECT id, workspace_id, title, hook, content, status, event_id, created_by, created_at, updated_at
		FROM scripts WHERE id = $1
	`
	s := &Script{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.WorkspaceID, &s.Title, &s.Hook, &s.Content,
		&s.Status, &s.EventID, &s.CreatedBy, &s.CreatedAt, &s.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *pgScriptRepository) FindByWorkspace(ctx context.Context, workspaceID string) ([]*Script, error) {
	query := `
		SELECT id, workspace_id, title, hook, content, status, event_id, created_by, created_at, updated_at
		FROM scripts WHERE workspace_id = $1
		ORDER BY updated_at DESC
	`
	rows, err := r.pool.Query(ctx, query, workspaceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var scripts []*Script
	for rows.Next() {
		s := &Script{}
		if err := rows.Scan(
			&s.ID, &s.WorkspaceID, &s.Title, &s.Hook, &s.Content,
			&s.Status, &s.EventID, &s.CreatedBy, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, err
		}
		scripts = append(scripts, s)
	}
	return scripts, rows.Err()
}

func (r *pgScriptRepository) Update(ctx context.Context, script *Script) error {
	query := `
		UPDATE scripts
		SET title = $2, hook = $3, content = $4, status = $5, event_id = $6, updated_at = NOW()
		WHERE id = $1
	`
	_, err := r.pool.Exec(ctx, query,
		script.ID, script.Title, script.Hook, script.Content, script.Status, script.EventID,
	)
	return err
}

func (r *pgScriptRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM scripts WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}
