package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	authUseCase "github.com/MehanikTMYT/chatbot/internal/auth/usecase"
)

// RunDeactivateClient revokes a client's ability to authenticate.
// The client record is kept; existing credentials simply stop working.
func RunDeactivateClient(
	ctx context.Context,
	clientUseCase authUseCase.ClientUseCase,
	logger *slog.Logger,
	writer io.Writer,
	clientID string,
) error {
	id, err := uuid.Parse(clientID)
	if err != nil {
		return fmt.Errorf("invalid client id: %w", err)
	}

	if err := clientUseCase.Deactivate(ctx, id); err != nil {
		return fmt.Errorf("failed to deactivate client: %w", err)
	}

	logger.Info("client deactivated", slog.String("client_id", id.String()))
	_, _ = fmt.Fprintf(writer, "Client %s deactivated.\n", id)

	return nil
}
