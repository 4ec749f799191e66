// Package repository implements data persistence for encrypted chat messages.
// Repositories support both PostgreSQL and MySQL; rows carry only wire-encoded
// envelopes, never plaintext content.
package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	apperrors "github.com/MehanikTMYT/chatbot/internal/errors"
	messagesDomain "github.com/MehanikTMYT/chatbot/internal/messages/domain"
)

// PostgreSQLMessageRepository implements Message persistence for PostgreSQL databases.
type PostgreSQLMessageRepository struct {
	db *sql.DB
}

// NewPostgreSQLMessageRepository creates a new PostgreSQL message repository.
func NewPostgreSQLMessageRepository(db *sql.DB) *PostgreSQLMessageRepository {
	return &PostgreSQLMessageRepository{db: db}
}

// Create inserts a new message into the PostgreSQL database.
func (p *PostgreSQLMessageRepository) Create(
	ctx context.Context,
	message *messagesDomain.Message,
) error {
	query := `INSERT INTO messages (id, conversation_id, sender, envelope, created_at)
			  VALUES ($1, $2, $3, $4, $5)`

	_, err := p.db.ExecContext(
		ctx,
		query,
		message.ID,
		message.ConversationID,
		message.Sender,
		message.Envelope,
		message.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create message")
	}
	return nil
}

// GetByID retrieves a message by its unique identifier.
func (p *PostgreSQLMessageRepository) GetByID(
	ctx context.Context,
	id uuid.UUID,
) (*messagesDomain.Message, error) {
	query := `SELECT id, conversation_id, sender, envelope, created_at
			  FROM messages
			  WHERE id = $1
			  LIMIT 1`

	var message messagesDomain.Message
	err := p.db.QueryRowContext(ctx, query, id).Scan(
		&message.ID,
		&message.ConversationID,
		&message.Sender,
		&message.Envelope,
		&message.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, messagesDomain.ErrMessageNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get message by id")
	}

	return &message, nil
}

// ListByConversation retrieves messages for a conversation ordered by creation
// time, newest first, with limit/offset pagination.
func (p *PostgreSQLMessageRepository) ListByConversation(
	ctx context.Context,
	conversationID uuid.UUID,
	limit int,
	offset int,
) ([]*messagesDomain.Message, error) {
	query := `SELECT id, conversation_id, sender, envelope, created_at
			  FROM messages
			  WHERE conversation_id = $1
			  ORDER BY created_at DESC
			  LIMIT $2 OFFSET $3`

	rows, err := p.db.QueryContext(ctx, query, conversationID, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list messages")
	}
	defer rows.Close()

	var messages []*messagesDomain.Message
	for rows.Next() {
		var message messagesDomain.Message
		if err := rows.Scan(
			&message.ID,
			&message.ConversationID,
			&message.Sender,
			&message.Envelope,
			&message.CreatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan message")
		}
		messages = append(messages, &message)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate messages")
	}

	return messages, nil
}
