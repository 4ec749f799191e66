// Package repository implements data persistence for API clients.
// Repositories support both PostgreSQL and MySQL databases.
package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	authDomain "github.com/MehanikTMYT/chatbot/internal/auth/domain"
	apperrors "github.com/MehanikTMYT/chatbot/internal/errors"
)

// PostgreSQLClientRepository implements Client persistence for PostgreSQL databases.
type PostgreSQLClientRepository struct {
	db *sql.DB
}

// NewPostgreSQLClientRepository creates a new PostgreSQL client repository.
func NewPostgreSQLClientRepository(db *sql.DB) *PostgreSQLClientRepository {
	return &PostgreSQLClientRepository{db: db}
}

// Create inserts a new client into the PostgreSQL database.
func (p *PostgreSQLClientRepository) Create(ctx context.Context, client *authDomain.Client) error {
	query := `INSERT INTO clients (id, secret, name, is_active, created_at)
			  VALUES ($1, $2, $3, $4, $5)`

	_, err := p.db.ExecContext(
		ctx,
		query,
		client.ID,
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
func (p *PostgreSQLClientRepository) Get(ctx context.Context, id uuid.UUID) (*authDomain.Client, error) {
	query := `SELECT id, secret, name, is_active, created_at
			  FROM clients
			  WHERE id = $1
			  LIMIT 1`

	var client authDomain.Client
	err := p.db.QueryRowContext(ctx, query, id).Scan(
		&client.ID,
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

	return &client, nil
}

// Update modifies an existing client's mutable fields.
func (p *PostgreSQLClientRepository) Update(ctx context.Context, client *authDomain.Client) error {
	query := `UPDATE clients
			  SET name = $2, is_active = $3
			  WHERE id = $1`

	result, err := p.db.ExecContext(ctx, query, client.ID, client.Name, client.IsActive)
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
func (p *PostgreSQLClientRepository) List(
	ctx context.Context,
	offset int,
	limit int,
) ([]*authDomain.Client, error) {
	query := `SELECT id, secret, name, is_active, created_at
			  FROM clients
			  ORDER BY id DESC
			  LIMIT $1 OFFSET $2`

	rows, err := p.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list clients")
	}
	defer rows.Close()

	var clients []*authDomain.Client
	for rows.Next() {
		var client authDomain.Client
		if err := rows.Scan(
			&client.ID,
			&client.Secret,
			&client.Name,
			&client.IsActive,
			&client.CreatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan client")
		}
		clients = append(clients, &client)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate clients")
	}

	return clients, nil
}
