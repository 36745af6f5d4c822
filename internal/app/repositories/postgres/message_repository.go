package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/mentorbridge/internal/app/models"
)

// MessageRepository handles chat message database operations
type MessageRepository struct {
	db *pgxpool.Pool
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(db *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{db: db}
}

// Create appends a message to the log
func (r *MessageRepository) Create(ctx context.Context, msg *models.Message) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO messages (id, sender_id, receiver_id, body, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		msg.ID, msg.SenderID, msg.ReceiverID, msg.Body, msg.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating message: %w", err)
	}
	return nil
}

// ListBetween returns the conversation of a pair in insertion order
func (r *MessageRepository) ListBetween(ctx context.Context, a, b string) ([]*models.Message, error) {
	query, args, err := squirrel.Select("id", "sender_id", "receiver_id", "body", "created_at").
		From("messages").
		Where(squirrel.Or{
			squirrel.Eq{"sender_id": a, "receiver_id": b},
			squirrel.Eq{"sender_id": b, "receiver_id": a},
		}).
		OrderBy("seq ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building conversation query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error retrieving conversation: %w", err)
	}
	defer rows.Close()

	messages := []*models.Message{}
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.ID, &m.SenderID, &m.ReceiverID, &m.Body, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning message: %w", err)
		}
		messages = append(messages, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating messages: %w", err)
	}

	return messages, nil
}
