package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"socialnet/internal/model"
)

type messageRepository struct {
	db *sqlx.DB
}

func NewMessageRepository(db *sqlx.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, msg *model.Message) error {
	query := `
		INSERT INTO messages (sender_id, receiver_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err := r.db.QueryRowxContext(ctx, query, msg.SenderID, msg.ReceiverID, msg.Content).
		Scan(&msg.ID, &msg.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert message: %w", err)
	}
	return nil
}

// GetConversation returns both directions merged, strictly ascending by
// timestamp with id as tiebreaker.
func (r *messageRepository) GetConversation(ctx context.Context, a, b int64) ([]model.Message, error) {
	messages := []model.Message{}
	err := r.db.SelectContext(ctx, &messages, `
		SELECT m.id, m.sender_id, m.receiver_id, m.content, m.created_at,
		       u.name AS sender_name
		FROM messages m
		JOIN users u ON m.sender_id = u.id
		WHERE (m.sender_id = $1 AND m.receiver_id = $2)
		   OR (m.sender_id = $2 AND m.receiver_id = $1)
		ORDER BY m.created_at ASC, m.id ASC
	`, a, b)
	if err != nil {
		return nil, fmt.Errorf("get conversation: %w", err)
	}
	return messages, nil
}
