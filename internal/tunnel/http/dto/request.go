// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/MehanikTMYT/chatbot/internal/validation"
)

// EncryptRequest contains the parameters for sealing plaintext into an envelope.
type EncryptRequest struct {
	Plaintext string `json:"plaintext"` // Base64-encoded plaintext
}

// Validate checks if the encrypt request is valid.
func (r *EncryptRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Plaintext,
			validation.Required,
			customValidation.NotBlank,
			customValidation.Base64,
		),
	)
}

// DecryptRequest contains the parameters for opening a wire-encoded envelope.
type DecryptRequest struct {
	Envelope string `json:"envelope"` // Base64-encoded nonce||tag||ciphertext
}

// Validate checks if the decrypt request is valid.
func (r *DecryptRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Envelope,
			validation.Required,
			customValidation.NotBlank,
			customValidation.Base64,
		),
	)
}

// CreateMessageRequest contains the parameters for storing an encrypted chat message.
type CreateMessageRequest struct {
	ConversationID string `json:"conversation_id"`
	Sender         string `json:"sender"`
	Plaintext      string `json:"plaintext"` // Base64-encoded plaintext
}

// Validate checks if the create message request is valid.
func (r *CreateMessageRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.ConversationID,
			validation.Required,
			customValidation.UUID,
		),
		validation.Field(&r.Sender,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&r.Plaintext,
			validation.Required,
			customValidation.NotBlank,
			customValidation.Base64,
		),
	)
}
