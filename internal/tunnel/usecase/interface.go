// Package usecase defines the interfaces and implementations for secure tunnel
// use cases. Use cases orchestrate the envelope service and message repositories
// to implement encrypt/decrypt operations and encrypted message storage.
package usecase

import (
	"context"

	"github.com/google/uuid"

	messagesDomain "github.com/MehanikTMYT/chatbot/internal/messages/domain"
	tunnelDomain "github.com/MehanikTMYT/chatbot/internal/tunnel/domain"
)

// MessageRepository defines the interface for Message persistence operations.
type MessageRepository interface {
	Create(ctx context.Context, message *messagesDomain.Message) error
	GetByID(ctx context.Context, id uuid.UUID) (*messagesDomain.Message, error)
	ListByConversation(ctx context.Context, conversationID uuid.UUID, limit, offset int) ([]*messagesDomain.Message, error)
}

// TunnelUseCase defines the interface for secure tunnel business logic.
type TunnelUseCase interface {
	// Encrypt seals plaintext into a wire-encoded envelope.
	Encrypt(ctx context.Context, plaintext []byte) ([]byte, error)
	// Decrypt opens a wire-encoded envelope and recovers the plaintext.
	Decrypt(ctx context.Context, wire []byte) ([]byte, error)
	// StoreMessage encrypts plaintext and persists it as a chat message.
	StoreMessage(ctx context.Context, conversationID uuid.UUID, sender string, plaintext []byte) (*messagesDomain.Message, error)
	// GetMessage retrieves a message and decrypts its envelope.
	//
	// Security Note: The returned Message contains plaintext data in the Plaintext field.
	// Callers MUST zero this data after use by calling tunnelDomain.Zero(message.Plaintext).
	GetMessage(ctx context.Context, id uuid.UUID) (*messagesDomain.Message, error)
	// ListMessages retrieves messages for a conversation without decrypting them.
	ListMessages(ctx context.Context, conversationID uuid.UUID, limit, offset int) ([]*messagesDomain.Message, error)
	// Algorithm returns the algorithm the tunnel was configured with.
	Algorithm() tunnelDomain.Algorithm
}
