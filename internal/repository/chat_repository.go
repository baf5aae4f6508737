package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ChatMessage struct {
	ID          string
	WorkspaceID string
	UserID      string
	Role        string // user, assistant
	Content     string
	CreatedAt   time.Time
}

type ChatRepository interface {
	Create(ctx context.Context, message *ChatMessage) error
	FindByWorkspace(ctx context.Context, workspaceID string, limit int) ([]*ChatMessage, error)
	DeleteByWorkspace(ctx context.Context, workspaceID string) error
}

type pgChatRepository struct {
	pool *pgxpool.Pool
}

func NewChatRepository(pool *pgxpool.Pool) ChatRepository {
	return &pgChatRepository{pool: pool}
}

func (r *pgChatRepository) Create(ctx context.Context, message *ChatMessage) error {
	query := `
		INSERT INTO chat_messages (workspace_id, user_id, role, content)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	return r.pool.QueryRow(ctx, query,
		message.WorkspaceID, message.UserID, message.Role, message.Content,
	).Scan(&message.ID, &message.CreatedAt)
}

// FindByWorkspace returns the most recent messages in chronological order.
func (r *pgChatRepository) FindByWorkspace(ctx context.Context, workspaceID string, limit int) ([]*ChatMessage, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `
		SELECT id, workspace_id, user_id, role, content, created_at
		FROM (
			SELECT id, workspace_id, user_id, role, content, created_at
			FROM chat_messages
			WHERE workspace_id = $1
			ORDER BY created_at DESC
			LIMIT $2
		) recent
		ORDER BY created_at
	`
	rows, err := r.pool.Query(ctx, query, workspaceID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*ChatMessage
	for rows.Next() {
		m := &ChatMessage{}
		if err := rows.Scan(
			&m.ID, &m.WorkspaceID, &m.UserID, &m.Role, &m.Content, &m.CreatedAt,
		); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

func (r *pgChatRepository) DeleteByWorkspace(ctx context.Context, workspaceID string) error {
	query := `DELETE FROM chat_messages WHERE workspace_id = $1`
	_, err := r.pool.Exec(ctx, query, workspaceID)
	return err
}
