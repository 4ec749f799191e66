// Package usecase implements business logic orchestration for authentication operations.
package usecase

import (
	"context"

	"github.com/google/uuid"

	authDomain "github.com/MehanikTMYT/chatbot/internal/auth/domain"
)

// ClientRepository defines the interface for Client persistence operations.
type ClientRepository interface {
	Create(ctx context.Context, client *authDomain.Client) error
	Get(ctx context.Context, id uuid.UUID) (*authDomain.Client, error)
	Update(ctx context.Context, client *authDomain.Client) error
	List(ctx context.Context, offset, limit int) ([]*authDomain.Client, error)
}

// ClientUseCase defines the interface for API client management and authentication.
type ClientUseCase interface {
	// Create generates and persists a new client with a random secret.
	// The plain secret is only returned once.
	Create(ctx context.Context, input *authDomain.CreateClientInput) (*authDomain.CreateClientOutput, error)
	// Get retrieves a client by ID.
	Get(ctx context.Context, clientID uuid.UUID) (*authDomain.Client, error)
	// List retrieves clients ordered by ID descending with pagination support.
	List(ctx context.Context, offset, limit int) ([]*authDomain.Client, error)
	// Deactivate performs a soft delete by setting IsActive to false.
	Deactivate(ctx context.Context, clientID uuid.UUID) error
	// Authenticate verifies a client ID and plain secret pair.
	// Returns the client on success, ErrInvalidCredentials on mismatch,
	// and ErrClientInactive for deactivated clients.
	Authenticate(ctx context.Context, clientID uuid.UUID, plainSecret string) (*authDomain.Client, error)
}
