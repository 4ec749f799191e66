package domain

import (
	"github.com/MehanikTMYT/chatbot/internal/errors"
)

// Authentication errors.
var (
	// ErrClientNotFound indicates a client with the specified ID was not found.
	ErrClientNotFound = errors.Wrap(errors.ErrNotFound, "client not found")

	// ErrInvalidCredentials indicates the provided client secret does not match.
	ErrInvalidCredentials = errors.Wrap(errors.ErrUnauthorized, "invalid client credentials")

	// ErrClientInactive indicates the client exists but cannot authenticate.
	ErrClientInactive = errors.Wrap(errors.ErrForbidden, "client is inactive")
)
