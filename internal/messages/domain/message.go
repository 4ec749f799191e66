// Package domain defines the core domain models for encrypted chat messages.
// Messages are persisted only as wire-encoded envelopes: plaintext content
// exists in memory during a request and is never written to storage.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message represents one chat message stored through the secure tunnel.
type Message struct {
	// ID is the unique identifier for this message (UUIDv7).
	ID uuid.UUID
	// ConversationID groups messages belonging to the same conversation.
	ConversationID uuid.UUID
	// Sender identifies who produced the message (e.g., "user", "assistant").
	Sender string
	// Envelope contains the wire-encoded encrypted content (nonce||tag||ciphertext).
	Envelope []byte
	// Plaintext holds the decrypted content in memory only; never persisted.
	Plaintext []byte `json:"-"`
	// CreatedAt is the UTC timestamp when the message was stored.
	CreatedAt time.Time
}
