package http

import (
	"context"

	"github.com/google/uuid"

	authDomain "github.com/MehanikTMYT/chatbot/internal/auth/domain"
)

// noopClientUseCase rejects every authentication attempt. Used to exercise the
// authentication wiring without a database.
type noopClientUseCase struct{}

func (n *noopClientUseCase) Create(
	ctx context.Context,
	input *authDomain.CreateClientInput,
) (*authDomain.CreateClientOutput, error) {
	return nil, authDomain.ErrClientNotFound
}

func (n *noopClientUseCase) Get(ctx context.Context, clientID uuid.UUID) (*authDomain.Client, error) {
	return nil, authDomain.ErrClientNotFound
}

func (n *noopClientUseCase) List(ctx context.Context, offset, limit int) ([]*authDomain.Client, error) {
	return []*authDomain.Client{}, nil
}

func (n *noopClientUseCase) Deactivate(ctx context.Context, clientID uuid.UUID) error {
	return authDomain.ErrClientNotFound
}

func (n *noopClientUseCase) Authenticate(
	ctx context.Context,
	clientID uuid.UUID,
	plainSecret string,
) (*authDomain.Client, error) {
	return nil, authDomain.ErrInvalidCredentials
}
