package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type AnalyticsEntry struct {
	ID          string
	WorkspaceID string
	Platform    string
	MetricDate  time.Time
	Views       int64
	Likes       int64
	Comments    int64
	Shares      int64
	Followers   int64
	Revenue     decimal.Decimal
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AnalyticsSummary aggregates entries over a date range.
type AnalyticsSummary struct {
	WorkspaceID  string          `json:"workspace_id"`
	From         time.Time       `json:"from"`
	To           time.Time       `json:"to"`
	TotalViews   int64           `json:"total_views"`
	TotalLikes   int64           `json:"total_likes"`
	TotalComments int64          `json:"total_comments"`
	TotalShares  int64           `json:"total_shares"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	EntryCount   int             `json:"entry_count"`
}

type AnalyticsRepository interface {
	Create(ctx context.Context, entry *AnalyticsEntry) error
	FindByID(ctx context.Context, id string) (*AnalyticsEntry, error)
	FindByWorkspace(ctx context.Context, workspaceID string, from, to *time.Time) ([]*AnalyticsEntry, error)
	Summarize(ctx context.Context, workspaceID string, from, to time.Time) (*AnalyticsSummary, error)
	Update(ctx context.Context, entry *AnalyticsEntry) error
	Delete(ctx context.Context, id string) error
}

type pgAnalyticsRepository struct {
	pool *pgxpool.Pool
}

func NewAnalyticsRepository(pool *pgxpool.Pool) AnalyticsRepository {
	return &pgAnalyticsRepository{pool: pool}
}

func (r *pgAnalyticsRepository) Create(ctx context.Context, entry *AnalyticsEntry) error {
	query := `
		INSERT INTO analytics_entries (workspace_id, platform, metric_date, views, likes, comments, shares, followers, revenue, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`
	return r.pool.QueryRow(ctx, query,
		entry.WorkspaceID, entry.Platform, entry.MetricDate,
		entry.Views, entry.Likes, entry.Comments, entry.Shares, entry.Followers,
		entry.Revenue, entry.CreatedBy,
	).Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt)
}

func (r *pgAnalyticsRepository) FindByID(ctx context.Context, id string) (*AnalyticsEntry, error) {
	query := `
		SELECT id, workspace_id, platform, metric_date, views, likes, comments, shares, followers, revenue, created_by, created_at, updated_at
		FROM analytics_entries WHERE id = $1
	`
	e := &AnalyticsEntry{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.WorkspaceID, &e.Platform, &e.MetricDate,
		&e.Views, &e.Likes, &e.Comments, &e.Shares, &e.Followers,
		&e.Revenue, &e.CreatedBy, &e.CreatedAt, &e.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *pgAnalyticsRepository) FindByWorkspace(ctx context.Context, workspaceID string, from, to *time.Time) ([]*AnalyticsEntry, error) {
	query := `
		SELECT id, workspace_id, platform, metric_date, views, likes, comments, shares, followers, revenue, created_by, created_at, updated_at
		FROM analytics_entries
		WHERE workspace_id = $1
		  AND ($2::date IS NULL OR metric_date >= $2)
		  AND ($3::date IS NULL OR metric_date <= $3)
		ORDER BY metric_date DESC
	`
	rows, err := r.pool.Query(ctx, query, workspaceID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*AnalyticsEntry
	for rows.Next() {
		e := &AnalyticsEntry{}
		if err := rows.Scan(
			&e.ID, &e.WorkspaceID, &e.Platform, &e.MetricDate,
			&e.Views, &e.Likes, &e.Comments, &e.Shares, &e.Followers,
			&e.Revenue, &e.CreatedBy, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *pgAnalyticsRepository) Summarize(ctx context.Context, workspaceID string, from, to time.Time) (*AnalyticsSummary, error) {
	query := `
		SELECT COALESCE(SUM(views), 0), COALESCE(SUM(likes), 0), COALESCE(SUM(comments), 0),
		       COALESCE(SUM(shares), 0), COALESCE(SUM(revenue), 0), COUNT(*)
		FROM analytics_entries
		WHERE workspace_id = $1 AND metric_date >= $2 AND metric_date <= $3
	`
	summary := &AnalyticsSummary{WorkspaceID: workspaceID, From: from, To: to}
	err := r.pool.QueryRow(ctx, query, workspaceID, from, to).Scan(
		&summary.TotalViews, &summary.TotalLikes, &summary.TotalComments,
		&summary.TotalShares, &summary.TotalRevenue, &summary.EntryCount,
	)
	if err != nil {
		return nil, err
	}
	return summary, nil
}

func (r *pgAnalyticsRepository) Update(ctx context.Context, entry *AnalyticsEntry) error {
	query := `
		UPDATE analytics_entries
		SET platform = $2, metric_date = $3, views = $4, likes = $5, comments = $6, shares = $7, followers = $8, revenue = $9, updated_at = NOW()
		WHERE id = $1
	`
	_, err := r.pool.Exec(ctx, query,
		entry.ID, entry.Platform, entry.MetricDate,
		entry.Views, entry.Likes, entry.Comments, entry.Shares, entry.Followers, entry.Revenue,
	)
	return err
}

func (r *pgAnalyticsRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM analytics_entries WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}
