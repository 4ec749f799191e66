package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	messagesDomain "github.com/MehanikTMYT/chatbot/internal/messages/domain"
	tunnelDomain "github.com/MehanikTMYT/chatbot/internal/tunnel/domain"
	tunnelService "github.com/MehanikTMYT/chatbot/internal/tunnel/service"
)

// tunnelUseCase implements the TunnelUseCase interface for the secure tunnel.
type tunnelUseCase struct {
	envelopes   tunnelService.EnvelopeService
	messageRepo MessageRepository
}

// Encrypt seals plaintext into a wire-encoded envelope.
func (t *tunnelUseCase) Encrypt(ctx context.Context, plaintext []byte) ([]byte, error) {
	return t.envelopes.Encrypt(plaintext)
}

// Decrypt opens a wire-encoded envelope and recovers the plaintext.
func (t *tunnelUseCase) Decrypt(ctx context.Context, wire []byte) ([]byte, error) {
	return t.envelopes.Decrypt(wire)
}

// StoreMessage encrypts plaintext and persists it as a chat message.
// Only the envelope reaches storage; plaintext stays in memory.
func (t *tunnelUseCase) StoreMessage(
	ctx context.Context,
	conversationID uuid.UUID,
	sender string,
	plaintext []byte,
) (*messagesDomain.Message, error) {
	if strings.TrimSpace(sender) == "" {
		return nil, messagesDomain.ErrEmptySender
	}

	envelope, err := t.envelopes.Encrypt(plaintext)
	if err != nil {
		return nil, err
	}

	message := &messagesDomain.Message{
		ID:             uuid.Must(uuid.NewV7()),
		ConversationID: conversationID,
		Sender:         sender,
		Envelope:       envelope,
		CreatedAt:      time.Now().UTC(),
	}

	if err := t.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}

	return message, nil
}

// GetMessage retrieves a message and decrypts its envelope.
func (t *tunnelUseCase) GetMessage(ctx context.Context, id uuid.UUID) (*messagesDomain.Message, error) {
	message, err := t.messageRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	plaintext, err := t.envelopes.Decrypt(message.Envelope)
	if err != nil {
		return nil, err
	}

	message.Plaintext = plaintext

	return message, nil
}

// ListMessages retrieves messages for a conversation without decrypting them.
func (t *tunnelUseCase) ListMessages(
	ctx context.Context,
	conversationID uuid.UUID,
	limit int,
	offset int,
) ([]*messagesDomain.Message, error) {
	return t.messageRepo.ListByConversation(ctx, conversationID, limit, offset)
}

// Algorithm returns the algorithm the tunnel was configured with.
func (t *tunnelUseCase) Algorithm() tunnelDomain.Algorithm {
	return t.envelopes.Algorithm()
}

// NewTunnelUseCase creates a new tunnel use case instance with the provided dependencies.
func NewTunnelUseCase(
	envelopes tunnelService.EnvelopeService,
	messageRepo MessageRepository,
) TunnelUseCase {
	return &tunnelUseCase{
		envelopes:   envelopes,
		messageRepo: messageRepo,
	}
}
