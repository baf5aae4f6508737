package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Idea struct {
	ID          string
	WorkspaceID string
	Title       string
	Notes       *string
	Source      *string
	Status      string
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type IdeaRepository interface {
	Create(ctx context.Context, idea *Idea) error
	FindByID(ctx context.Context, id string) (*Idea, error)
	FindByWorkspace(ctx context.Context, workspaceID string, status string) ([]*Idea, error)
	Update(ctx context.Context, idea *Idea) error
	Delete(ctx context.Context, id string) error
}

type pgIdeaRepository struct {
	pool *pgxpool.Pool
}

func NewIdeaRepository(pool *pgxpool.Pool) IdeaRepository {
	return &pgIdeaRepository{pool: pool}
}

func (r *pgIdeaRepository) Create(ctx context.Context, idea *Idea) error {
	query := `
		INSERT INTO ideas (workspace_id, title, notes, source, status, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	return r.pool.QueryRow(ctx, query,
		idea.WorkspaceID, idea.Title, idea.Notes, idea.Source, idea.Status, idea.CreatedBy,
	).Scan(&idea.ID, &idea.CreatedAt, &idea.UpdatedAt)
}

func (r *pgIdeaRepository) FindByID(ctx context.Context, id string) (*Idea, error) {
	query := `
		SELECT id, workspace_id, title, notes, source, status, created_by, created_at, updated_at
		FROM ideas WHERE id = $1
	`
	idea := &Idea{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&idea.ID, &idea.WorkspaceID, &idea.Title, &idea.Notes, &idea.Source,
		&idea.Status, &idea.CreatedBy, &idea.CreatedAt, &idea.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return idea, nil
}

func (r *pgIdeaRepository) FindByWorkspace(ctx context.Context, workspaceID string, status string) ([]*Idea, error) {
	query := `
		SELECT id, workspace_id, title, notes, source, status, created_by, created_at, updated_at
		FROM ideas
		WHERE workspace_id = $1 AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, workspaceID, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ideas []*Idea
	for rows.Next() {
		idea := &Idea{}
		if err := rows.Scan(
			&idea.ID, &idea.WorkspaceID, &idea.Title, &idea.Notes, &idea.Source,
			&idea.Status, &idea.CreatedBy, &idea.CreatedAt, &idea.UpdatedAt,
		); err != nil {
			return nil, err
		}
		ideas = append(ideas, idea)
	}
	return ideas, rows.Err()
}

func (r *pgIdeaRepository) Update(ctx context.Context, idea *Idea) error {
	query := `
		UPDATE ideas
		SET title = $2, notes = $3, source = $4, status = $5, updated_at = NOW()
		WHERE id = $1
	`
	_, err := r.pool.Exec(ctx, query, idea.ID, idea.Title, idea.Notes, idea.Source, idea.Status)
	return err
}

func (r *pgIdeaRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM ideas WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}
