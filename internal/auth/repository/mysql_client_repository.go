package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	authDomain "github.com/MehanikTMYT/chatbot/internal/auth/domain"
	apperrors "github.com/MehanikTMYT/chatbot/internal/errors"
)

// MySQLClientRepository implements Client persistence for MySQL databases.
type MySQLClientRepository struct {
	db *sql.DB
}

// NewMySQLClientRepository creates a new MySQL client repository.
func NewMySQLClientRepository(db *sql.DB) *MySQLClientRepository {
	return &MySQLClientRepository{db: db}
}

// Create inserts a new client into the MySQL database.
func (m *MySQLClientRepository) Create(ctx context.Context, client *authDomain.Client) error {
	query := `INSERT INTO clients (id, secret, name, is_active, created_at)
			  VALUES (?, ?, ?, ?, ?)`

	_, err := m.db.ExecContext(
		ctx,
		query,
		client.ID.String(),
		client.Secret,
		client.Name,
		client.IsActive,
		client.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create client")
	}
	return nil
}

// Get retrieves a client by its unique identifier.
func (m *MySQLClientRepository) Get(ctx context.Context, id uuid.UUID) (*authDomain.Client, error) {
	query := `SELECT id, secret, name, is_active, created_at
			  FROM clients
			  WHERE id = ?
			  LIMIT 1`

	var client authDomain.Client
	var rawID string
	err := m.db.QueryRowContext(ctx, query, id.String()).Scan(
		&rawID,
		&client.Secret,
		&client.Name,
		&client.IsActive,
		&client.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, authDomain.ErrClientNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get client")
	}

	if client.ID, err = uuid.Parse(rawID); err != nil {
		return nil, apperrors.Wrap(err, "failed to parse client id")
	}

	return &client, nil
}

// Update modifies an existing client's mutable fields.
func (m *MySQLClientRepository) Update(ctx context.Context, client *authDomain.Client) error {
	query := `UPDATE clients
			  SET name = ?, is_active = ?
			  WHERE id = ?`

	result, err := m.db.ExecContext(ctx, query, client.Name, client.IsActive, client.ID.String())
	if err != nil {
		return apperrors.Wrap(err, "failed to update client")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to check update result")
	}
	if rows == 0 {
		return authDomain.ErrClientNotFound
	}

	return nil
}

// List retrieves clients ordered by ID descending with pagination support.
func (m *MySQLClientRepository) List(
	ctx context.Context,
	offset int,
	limit int,
) ([]*authDomain.Client, error) {
	query := `SELECT id, secret, name, is_active, created_at
			  FROM clients
			  ORDER BY id DESC
			  LIMIT ? OFFSET ?`

	rows, err := m.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list clients")
	}
	defer rows.Close()

	var clients []*authDomain.Client
	for rows.Next() {
		var client authDomain.Client
		var rawID string
		if err := rows.Scan(
			&rawID,
			&client.Secret,
			&client.Name,
			&client.IsActive,
			&client.CreatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan client")
		}
		if client.ID, err = uuid.Parse(rawID); err != nil {
			return nil, apperrors.Wrap(err, "failed to parse client id")
		}
		clients = append(clients, &client)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate clients")
	}

	return clients, nil
}
