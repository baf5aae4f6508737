package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CalendarEvent struct {
	ID          string
	WorkspaceID string
	Title       string
	Description *string
	Platform    string
	Status      string
	ScheduledAt *time.Time
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CalendarRepository interface {
	Create(ctx context.Context, event *CalendarEvent) error
	FindByID(ctx context.Context, id string) (*CalendarEvent, error)
	FindByWorkspace(ctx context.Context, workspaceID string, from, to *time.Time) ([]*CalendarEvent, error)
	FindScheduledBetween(ctx context.Context, from, to time.Time) ([]*CalendarEvent, error)
	Update(ctx context.Context, event *CalendarEvent) error
	Delete(ctx context.Context, id string) error
}

type pgCalendarRepository struct {
	pool *pgxpool.Pool
}

func NewCalendarRepository(pool *pgxpool.Pool) CalendarRepository {
	return &pgCalendarRepository{pool: pool}
}

func (r *pgCalendarRepository) Create(ctx context.Context, event *CalendarEvent) error {
	query := `
		INSERT INTO calendar_events (workspace_id, title, description, platform, status, scheduled_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`
	return r.pool.QueryRow(ctx, query,
		event.WorkspaceID, event.Title, event.Description, event.Platform,
		event.Status, event.ScheduledAt, event.CreatedBy,
	).Scan(&event.ID, &event.CreatedAt, &event.UpdatedAt)
}

func (r *pgCalendarRepository) FindByID(ctx context.Context, id string) (*CalendarEvent, error) {
	query := `
		SELECT id, workspace_id, title, description, platform, status, scheduled_at, created_by, created_at, updated_at
		FROM calendar_events WHERE id = $1
	`
	e := &CalendarEvent{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.WorkspaceID, &e.Title, &e.Description, &e.Platform,
		&e.Status, &e.ScheduledAt, &e.CreatedBy, &e.CreatedAt, &e.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *pgCalendarRepository) FindByWorkspace(ctx context.Context, workspaceID string, from, to *time.Time) ([]*CalendarEvent, error) {
	query := `
		SELECT id, workspace_id, title, description, platform, status, scheduled_at, created_by, created_at, updated_at
		FROM calendar_events
		WHERE workspace_id = $1
		  AND ($2::timestamptz IS NULL OR scheduled_at >= $2)
		  AND ($3::timestamptz IS NULL OR scheduled_at <= $3)
		ORDER BY scheduled_at NULLS LAST, created_at
	`
	rows, err := r.pool.Query(ctx, query, workspaceID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCalendarEvents(rows)
}

func (r *pgCalendarRepository) FindScheduledBetween(ctx context.Context, from, to time.Time) ([]*CalendarEvent, error) {
	query := `
		SELECT id, workspace_id, title, description, platform, status, scheduled_at, created_by, created_at, updated_at
		FROM calendar_events
		WHERE scheduled_at >= $1 AND scheduled_at < $2 AND status != 'posted'
		ORDER BY scheduled_at
	`
	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCalendarEvents(rows)
}

func scanCalendarEvents(rows pgx.Rows) ([]*CalendarEvent, error) {
	var events []*CalendarEvent
	for rows.Next() {
		e := &CalendarEvent{}
		if err := rows.Scan(
			&e.ID, &e.WorkspaceID, &e.Title, &e.Description, &e.Platform,
			&e.Status, &e.ScheduledAt, &e.CreatedBy, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *pgCalendarRepository) Update(ctx context.Context, event *CalendarEvent) error {
	query := `
		UPDATE calendar_events
		SET title = $2, description = $3, platform = $4, status = $5, scheduled_at = $6, updated_at = NOW()
		WHERE id = $1
	`
	_, err := r.pool.Exec(ctx, query,
		event.ID, event.Title, event.Description, event.Platform, event.Status, event.ScheduledAt,
	)
	return err
}

func (r *pgCalendarRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM calendar_events WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}
