package dto

import (
	"time"

	messagesDomain "github.com/MehanikTMYT/chatbot/internal/messages/domain"
)

// EncryptResponse contains the result of an encryption operation.
type EncryptResponse struct {
	Envelope  []byte `json:"envelope"` // Base64-encoded nonce||tag||ciphertext
	Algorithm string `json:"algorithm"`
}

// DecryptResponse contains the result of a decryption operation.
// SECURITY: The Plaintext field contains sensitive data and should be transmitted over HTTPS.
type DecryptResponse struct {
	Plaintext []byte `json:"plaintext"`
	Algorithm string `json:"algorithm"`
}

// MessageResponse represents a stored chat message in API responses.
// Plaintext is only populated when the message was decrypted for the caller.
type MessageResponse struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id"`
	Sender         string    `json:"sender"`
	Envelope       []byte    `json:"envelope"`
	Plaintext      []byte    `json:"plaintext,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// MapMessageToResponse converts a domain message to an API response.
func MapMessageToResponse(message *messagesDomain.Message) MessageResponse {
	return MessageResponse{
		ID:             message.ID.String(),
		ConversationID: message.ConversationID.String(),
		Sender:         message.Sender,
		Envelope:       message.Envelope,
		Plaintext:      message.Plaintext,
		CreatedAt:      message.CreatedAt,
	}
}

// MapMessagesToResponse converts a list of domain messages to API responses.
func MapMessagesToResponse(messages []*messagesDomain.Message) []MessageResponse {
	responses := make([]MessageResponse, 0, len(messages))
	for _, message := range messages {
		responses = append(responses, MapMessageToResponse(message))
	}
	return responses
}
