package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/MehanikTMYT/chatbot/internal/auth/domain"
	authUseCase "github.com/MehanikTMYT/chatbot/internal/auth/usecase"
)

// mockClientUseCase is a mock implementation of authUseCase.ClientUseCase for testing.
type mockClientUseCase struct {
	mock.Mock
}

func (m *mockClientUseCase) Create(
	ctx context.Context,
	input *authDomain.CreateClientInput,
) (*authDomain.CreateClientOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.CreateClientOutput), args.Error(1)
}

func (m *mockClientUseCase) Get(ctx context.Context, clientID uuid.UUID) (*authDomain.Client, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.Client), args.Error(1)
}

func (m *mockClientUseCase) List(ctx context.Context, offset, limit int) ([]*authDomain.Client, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*authDomain.Client), args.Error(1)
}

func (m *mockClientUseCase) Deactivate(ctx context.Context, clientID uuid.UUID) error {
	args := m.Called(ctx, clientID)
	return args.Error(0)
}

func (m *mockClientUseCase) Authenticate(
	ctx context.Context,
	clientID uuid.UUID,
	plainSecret string,
) (*authDomain.Client, error) {
	args := m.Called(ctx, clientID, plainSecret)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.Client), args.Error(1)
}

var _ authUseCase.ClientUseCase = (*mockClientUseCase)(nil)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunCreateClient(t *testing.T) {
	output := &authDomain.CreateClientOutput{
		ID:          uuid.Must(uuid.NewV7()),
		PlainSecret: "plain-secret",
	}

	t.Run("Success_TextFormat", func(t *testing.T) {
		mockUseCase := &mockClientUseCase{}
		mockUseCase.On("Create", mock.Anything, &authDomain.CreateClientInput{
			Name:     "chatbot-frontend",
			IsActive: true,
		}).Return(output, nil).Once()

		var buf bytes.Buffer
		err := RunCreateClient(
			context.Background(),
			mockUseCase,
			discardLogger(),
			&buf,
			"chatbot-frontend",
			true,
			"text",
		)

		require.NoError(t, err)
		assert.Contains(t, buf.String(), output.ID.String())
		assert.Contains(t, buf.String(), "plain-secret")
		assert.Contains(t, buf.String(), "Bearer "+output.ID.String()+".plain-secret")
		mockUseCase.AssertExpectations(t)
	})

	t.Run("Success_JSONFormat", func(t *testing.T) {
		mockUseCase := &mockClientUseCase{}
		mockUseCase.On("Create", mock.Anything, mock.Anything).Return(output, nil).Once()

		var buf bytes.Buffer
		err := RunCreateClient(
			context.Background(),
			mockUseCase,
			discardLogger(),
			&buf,
			"chatbot-frontend",
			true,
			"json",
		)

		require.NoError(t, err)

		var decoded map[string]string
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, output.ID.String(), decoded["client_id"])
		assert.Equal(t, "plain-secret", decoded["secret"])
		assert.Equal(t, output.ID.String()+".plain-secret", decoded["credential"])
	})

	t.Run("Error_UseCaseFailure", func(t *testing.T) {
		mockUseCase := &mockClientUseCase{}
		mockUseCase.On("Create", mock.Anything, mock.Anything).Return(nil, assert.AnError).Once()

		var buf bytes.Buffer
		err := RunCreateClient(
			context.Background(),
			mockUseCase,
			discardLogger(),
			&buf,
			"chatbot-frontend",
			true,
			"text",
		)

		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestRunDeactivateClient(t *testing.T) {
	clientID := uuid.Must(uuid.NewV7())

	t.Run("Success", func(t *testing.T) {
		mockUseCase := &mockClientUseCase{}
		mockUseCase.On("Deactivate", mock.Anything, clientID).Return(nil).Once()

		var buf bytes.Buffer
		err := RunDeactivateClient(
			context.Background(),
			mockUseCase,
			discardLogger(),
			&buf,
			clientID.String(),
		)

		require.NoError(t, err)
		assert.Contains(t, buf.String(), clientID.String())
		mockUseCase.AssertExpectations(t)
	})

	t.Run("Error_InvalidID", func(t *testing.T) {
		mockUseCase := &mockClientUseCase{}

		var buf bytes.Buffer
		err := RunDeactivateClient(
			context.Background(),
			mockUseCase,
			discardLogger(),
			&buf,
			"not-a-uuid",
		)

		assert.Error(t, err)
		mockUseCase.AssertNotCalled(t, "Deactivate")
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		mockUseCase := &mockClientUseCase{}
		mockUseCase.On("Deactivate", mock.Anything, clientID).
			Return(authDomain.ErrClientNotFound).
			Once()

		var buf bytes.Buffer
		err := RunDeactivateClient(
			context.Background(),
			mockUseCase,
			discardLogger(),
			&buf,
			clientID.String(),
		)

		assert.ErrorIs(t, err, authDomain.ErrClientNotFound)
	})
}
