package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	authUseCase "github.com/MehanikTMYT/chatbot/internal/auth/usecase"
)

// RunListClients prints registered API clients. Secret hashes are never shown.
func RunListClients(
	ctx context.Context,
	clientUseCase authUseCase.ClientUseCase,
	writer io.Writer,
	offset, limit int,
	format string,
) error {
	clients, err := clientUseCase.List(ctx, offset, limit)
	if err != nil {
		return fmt.Errorf("failed to list clients: %w", err)
	}

	if format == "json" {
		type clientView struct {
			ID        string    `json:"id"`
			Name      string    `json:"name"`
			IsActive  bool      `json:"is_active"`
			CreatedAt time.Time `json:"created_at"`
		}
		views := make([]clientView, 0, len(clients))
		for _, client := range clients {
			views = append(views, clientView{
				ID:        client.ID.String(),
				Name:      client.Name,
				IsActive:  client.IsActive,
				CreatedAt: client.CreatedAt,
			})
		}
		encoder := json.NewEncoder(writer)
		encoder.SetIndent("", "  ")
		return encoder.Encode(views)
	}

	if len(clients) == 0 {
		_, _ = fmt.Fprintln(writer, "No clients found.")
		return nil
	}

	for _, client := range clients {
		status := "inactive"
		if client.IsActive {
			status = "active"
		}
		_, _ = fmt.Fprintf(writer, "%s  %-10s %s (created %s)\n",
			client.ID,
			status,
			client.Name,
			client.CreatedAt.Format(time.RFC3339),
		)
	}

	return nil
}
