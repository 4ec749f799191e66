package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	authDomain "github.com/MehanikTMYT/chatbot/internal/auth/domain"
	authUseCase "github.com/MehanikTMYT/chatbot/internal/auth/usecase"
)

// RunCreateClient creates a new API client and prints its credentials.
// The plain secret is shown exactly once; only its hash is stored.
//
// Requirements: database must be migrated and accessible.
func RunCreateClient(
	ctx context.Context,
	clientUseCase authUseCase.ClientUseCase,
	logger *slog.Logger,
	writer io.Writer,
	name string,
	isActive bool,
	format string,
) error {
	logger.Info("creating new client", slog.String("name", name))

	input := &authDomain.CreateClientInput{
		Name:     name,
		IsActive: isActive,
	}

	output, err := clientUseCase.Create(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	if format == "json" {
		outputClientJSON(output, writer)
	} else {
		outputClientText(output, writer)
	}

	logger.Info("client created successfully",
		slog.String("client_id", output.ID.String()),
		slog.String("name", name),
		slog.Bool("is_active", isActive),
	)

	return nil
}

// outputClientText prints the credentials in human-readable form.
func outputClientText(output *authDomain.CreateClientOutput, writer io.Writer) {
	_, _ = fmt.Fprintln(writer, "Client created successfully!")
	_, _ = fmt.Fprintf(writer, "Client ID: %s\n", output.ID)
	_, _ = fmt.Fprintf(writer, "Secret:    %s\n", output.PlainSecret)
	_, _ = fmt.Fprintln(writer)
	_, _ = fmt.Fprintf(writer, "Authorization header: Bearer %s.%s\n", output.ID, output.PlainSecret)
	_, _ = fmt.Fprintln(writer)
	_, _ = fmt.Fprintln(writer, "Store the secret now - it cannot be recovered later.")
}

// outputClientJSON prints the credentials as JSON for machine consumption.
func outputClientJSON(output *authDomain.CreateClientOutput, writer io.Writer) {
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	_ = encoder.Encode(map[string]string{
		"client_id":  output.ID.String(),
		"secret":     output.PlainSecret,
		"credential": fmt.Sprintf("%s.%s", output.ID, output.PlainSecret),
	})
}
