// Package domain defines authentication domain models for API clients.
//
// Clients authenticate with a client ID and secret pair. Secrets are stored
// as Argon2id hashes; the plain secret is shown exactly once at creation.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Client represents an API client allowed to use the secure tunnel.
type Client struct {
	ID        uuid.UUID // Unique identifier (UUIDv7)
	Secret    string    //nolint:gosec // hashed client secret (not plaintext)
	Name      string    // Human-readable client name
	IsActive  bool      // Whether the client can authenticate
	CreatedAt time.Time
}

// CreateClientInput contains the parameters for creating a new API client.
// The client secret will be automatically generated and cannot be specified by the caller.
type CreateClientInput struct {
	Name     string // Human-readable name for identifying the client
	IsActive bool   // Whether the client can authenticate immediately after creation
}

// CreateClientOutput contains the result of creating a new client.
// SECURITY: The PlainSecret is only returned once and must be securely transmitted
// to the client. It will never be retrievable again after this response.
type CreateClientOutput struct {
	ID          uuid.UUID // Unique identifier for the created client (UUIDv7)
	PlainSecret string    // Plain text secret for authentication (transmit securely, never log)
}
