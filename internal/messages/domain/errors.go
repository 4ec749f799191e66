package domain

import (
	"github.com/MehanikTMYT/chatbot/internal/errors"
)

// Message persistence error definitions.
var (
	// ErrMessageNotFound indicates the requested message does not exist.
	ErrMessageNotFound = errors.Wrap(errors.ErrNotFound, "message not found")

	// ErrEmptySender indicates the message sender field is blank.
	ErrEmptySender = errors.Wrap(errors.ErrInvalidInput, "empty message sender")
)
