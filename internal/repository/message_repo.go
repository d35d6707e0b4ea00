package repository

import (
	"context"
	"fmt"

	"portfolio_api/internal/model"
)

// MessageRepository defines operations for contact messages. Messages are
// never updated or deleted.
type MessageRepository interface {
	Create(ctx context.Context, msg *model.Message) error
	FindAll(ctx context.Context) ([]model.Message, error)
}

type messageRepository struct {
	db DB
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(db DB) MessageRepository {
	return &messageRepository{db: db}
}

// Create inserts a message; the database assigns id and created_at
func (r *messageRepository) Create(ctx context.Context, m *model.Message) error {
	sql := `INSERT INTO messages (full_name, email, subject, message)
            VALUES ($1, $2, $3, $4) RETURNING id, created_at`
	err := r.db.QueryRow(ctx, sql, m.FullName, m.Email, m.Subject, m.Message).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}
	return nil
}

// FindAll returns every message, newest first
func (r *messageRepository) FindAll(ctx context.Context) ([]model.Message, error) {
	sql := `SELECT id, full_name, email, subject, message, created_at FROM messages ORDER BY created_at DESC, id DESC`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	defer rows.Close()

	messages := []model.Message{}
	for rows.Next() {
		var m model.Message
		if err := rows.Scan(&m.ID, &m.FullName, &m.Email, &m.Subject, &m.Message, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan message row: %w", err)
		}
		messages = append(messages, m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating message rows: %w", err)
	}
	return messages, nil
}
