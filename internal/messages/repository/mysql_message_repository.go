package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	apperrors "github.com/MehanikTMYT/chatbot/internal/errors"
	messagesDomain "github.com/MehanikTMYT/chatbot/internal/messages/domain"
)

// MySQLMessageRepository implements Message persistence for MySQL databases.
type MySQLMessageRepository struct {
	db *sql.DB
}

// NewMySQLMessageRepository creates a new MySQL message repository.
func NewMySQLMessageRepository(db *sql.DB) *MySQLMessageRepository {
	return &MySQLMessageRepository{db: db}
}

// Create inserts a new message into the MySQL database.
func (m *MySQLMessageRepository) Create(
	ctx context.Context,
	message *messagesDomain.Message,
) error {
	query := `INSERT INTO messages (id, conversation_id, sender, envelope, created_at)
			  VALUES (?, ?, ?, ?, ?)`

	_, err := m.db.ExecContext(
		ctx,
		query,
		message.ID.String(),
		message.ConversationID.String(),
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
func (m *MySQLMessageRepository) GetByID(
	ctx context.Context,
	id uuid.UUID,
) (*messagesDomain.Message, error) {
	query := `SELECT id, conversation_id, sender, envelope, created_at
			  FROM messages
			  WHERE id = ?
			  LIMIT 1`

	var message messagesDomain.Message
	var rawID, rawConversationID string
	err := m.db.QueryRowContext(ctx, query, id.String()).Scan(
		&rawID,
		&rawConversationID,
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

	if message.ID, err = uuid.Parse(rawID); err != nil {
		return nil, apperrors.Wrap(err, "failed to parse message id")
	}
	if message.ConversationID, err = uuid.Parse(rawConversationID); err != nil {
		return nil, apperrors.Wrap(err, "failed to parse conversation id")
	}

	return &message, nil
}

// ListByConversation retrieves messages for a conversation ordered by creation
// time, newest first, with limit/offset pagination.
func (m *MySQLMessageRepository) ListByConversation(
	ctx context.Context,
	conversationID uuid.UUID,
	limit int,
	offset int,
) ([]*messagesDomain.Message, error) {
	query := `SELECT id, conversation_id, sender, envelope, created_at
			  FROM messages
			  WHERE conversation_id = ?
			  ORDER BY created_at DESC
			  LIMIT ? OFFSET ?`

	rows, err := m.db.QueryContext(ctx, query, conversationID.String(), limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list messages")
	}
	defer rows.Close()

	var messages []*messagesDomain.Message
	for rows.Next() {
		var message messagesDomain.Message
		var rawID, rawConversationID string
		if err := rows.Scan(
			&rawID,
			&rawConversationID,
			&message.Sender,
			&message.Envelope,
			&message.CreatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan message")
		}
		if message.ID, err = uuid.Parse(rawID); err != nil {
			return nil, apperrors.Wrap(err, "failed to parse message id")
		}
		if message.ConversationID, err = uuid.Parse(rawConversationID); err != nil {
			return nil, apperrors.Wrap(err, "failed to parse conversation id")
		}
		messages = append(messages, &message)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate messages")
	}

	return messages, nil
}
