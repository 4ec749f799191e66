package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/MehanikTMYT/chatbot/internal/auth/domain"
)

func TestRunListClients(t *testing.T) {
	clients := []*authDomain.Client{
		{
			ID:        uuid.Must(uuid.NewV7()),
			Name:      "chatbot-frontend",
			IsActive:  true,
			CreatedAt: time.Now().UTC(),
		},
		{
			ID:        uuid.Must(uuid.NewV7()),
			Name:      "ops-console",
			IsActive:  false,
			CreatedAt: time.Now().UTC(),
		},
	}

	t.Run("Success_TextFormat", func(t *testing.T) {
		mockUseCase := &mockClientUseCase{}
		mockUseCase.On("List", mock.Anything, 0, 50).Return(clients, nil).Once()

		var buf bytes.Buffer
		err := RunListClients(context.Background(), mockUseCase, &buf, 0, 50, "text")

		require.NoError(t, err)
		assert.Contains(t, buf.String(), clients[0].ID.String())
		assert.Contains(t, buf.String(), "active")
		assert.Contains(t, buf.String(), "inactive")
		// Secret hashes are never part of the listing
		assert.NotContains(t, buf.String(), "$argon2id$")
		mockUseCase.AssertExpectations(t)
	})

	t.Run("Success_JSONFormat", func(t *testing.T) {
		mockUseCase := &mockClientUseCase{}
		mockUseCase.On("List", mock.Anything, 0, 50).Return(clients, nil).Once()

		var buf bytes.Buffer
		err := RunListClients(context.Background(), mockUseCase, &buf, 0, 50, "json")

		require.NoError(t, err)

		var decoded []map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		require.Len(t, decoded, 2)
		assert.Equal(t, clients[0].ID.String(), decoded[0]["id"])
		assert.NotContains(t, decoded[0], "secret")
	})

	t.Run("Success_Empty", func(t *testing.T) {
		mockUseCase := &mockClientUseCase{}
		mockUseCase.On("List", mock.Anything, 0, 50).Return([]*authDomain.Client{}, nil).Once()

		var buf bytes.Buffer
		err := RunListClients(context.Background(), mockUseCase, &buf, 0, 50, "text")

		require.NoError(t, err)
		assert.Contains(t, buf.String(), "No clients found.")
	})

	t.Run("Error_UseCaseFailure", func(t *testing.T) {
		mockUseCase := &mockClientUseCase{}
		mockUseCase.On("List", mock.Anything, 0, 50).Return(nil, assert.AnError).Once()

		var buf bytes.Buffer
		err := RunListClients(context.Background(), mockUseCase, &buf, 0, 50, "text")

		assert.ErrorIs(t, err, assert.AnError)
	})
}
