// Package http provides HTTP handlers for secure tunnel encryption and
// encrypted message storage operations.
package http

import (
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/MehanikTMYT/chatbot/internal/httputil"
	tunnelDomain "github.com/MehanikTMYT/chatbot/internal/tunnel/domain"
	"github.com/MehanikTMYT/chatbot/internal/tunnel/http/dto"
	tunnelUseCase "github.com/MehanikTMYT/chatbot/internal/tunnel/usecase"
	customValidation "github.com/MehanikTMYT/chatbot/internal/validation"
)

// TunnelHandler handles HTTP requests for envelope encryption and decryption
// and for the encrypted message store built on top of the tunnel.
type TunnelHandler struct {
	tunnelUseCase tunnelUseCase.TunnelUseCase // Business logic for tunnel and message operations
	logger        *slog.Logger                // Structured logger for request handling and error reporting
}

// NewTunnelHandler creates a new tunnel handler with required dependencies.
func NewTunnelHandler(
	tunnelUseCase tunnelUseCase.TunnelUseCase,
	logger *slog.Logger,
) *TunnelHandler {
	return &TunnelHandler{
		tunnelUseCase: tunnelUseCase,
		logger:        logger,
	}
}

// EncryptHandler seals plaintext into a wire-encoded envelope.
// POST /v1/tunnel/encrypt
// Returns 200 OK with the base64-encoded envelope.
func (h *TunnelHandler) EncryptHandler(c *gin.Context) {
	var req dto.EncryptRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	plaintext, err := base64.StdEncoding.DecodeString(req.Plaintext)
	if err != nil {
		httputil.HandleBadRequestGin(c, fmt.Errorf("invalid base64 plaintext: %w", err), h.logger)
		return
	}
	defer tunnelDomain.Zero(plaintext)

	envelope, err := h.tunnelUseCase.Encrypt(c.Request.Context(), plaintext)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	response := dto.EncryptResponse{
		Envelope:  envelope,
		Algorithm: string(h.tunnelUseCase.Algorithm()),
	}
	c.JSON(http.StatusOK, response)
}

// DecryptHandler opens a wire-encoded envelope and returns the plaintext.
// POST /v1/tunnel/decrypt
// Returns 200 OK with plaintext bytes. SECURITY: Plaintext is zeroed after response.
func (h *TunnelHandler) DecryptHandler(c *gin.Context) {
	var req dto.DecryptRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	wire, err := base64.StdEncoding.DecodeString(req.Envelope)
	if err != nil {
		httputil.HandleBadRequestGin(c, fmt.Errorf("invalid base64 envelope: %w", err), h.logger)
		return
	}

	plaintext, err := h.tunnelUseCase.Decrypt(c.Request.Context(), wire)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	// SECURITY: Zero plaintext after mapping to response
	defer tunnelDomain.Zero(plaintext)

	response := dto.DecryptResponse{
		Plaintext: plaintext,
		Algorithm: string(h.tunnelUseCase.Algorithm()),
	}
	c.JSON(http.StatusOK, response)
}

// CreateMessageHandler encrypts and stores a chat message.
// POST /v1/messages
// Returns 201 Created with the stored message (envelope only, no plaintext).
func (h *TunnelHandler) CreateMessageHandler(c *gin.Context) {
	var req dto.CreateMessageRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	conversationID, err := uuid.Parse(req.ConversationID)
	if err != nil {
		httputil.HandleBadRequestGin(c, fmt.Errorf("invalid conversation id: %w", err), h.logger)
		return
	}

	plaintext, err := base64.StdEncoding.DecodeString(req.Plaintext)
	if err != nil {
		httputil.HandleBadRequestGin(c, fmt.Errorf("invalid base64 plaintext: %w", err), h.logger)
		return
	}
	defer tunnelDomain.Zero(plaintext)

	message, err := h.tunnelUseCase.StoreMessage(c.Request.Context(), conversationID, req.Sender, plaintext)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapMessageToResponse(message))
}

// GetMessageHandler retrieves and decrypts a stored message.
// GET /v1/messages/:id
// Returns 200 OK with the message including decrypted plaintext.
func (h *TunnelHandler) GetMessageHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleBadRequestGin(c, fmt.Errorf("invalid message id: %w", err), h.logger)
		return
	}

	message, err := h.tunnelUseCase.GetMessage(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	// SECURITY: Zero plaintext after mapping to response
	defer tunnelDomain.Zero(message.Plaintext)

	c.JSON(http.StatusOK, dto.MapMessageToResponse(message))
}

// ListMessagesHandler lists messages for a conversation without decrypting them.
// GET /v1/conversations/:id/messages
// Returns 200 OK with messages ordered newest first.
func (h *TunnelHandler) ListMessagesHandler(c *gin.Context) {
	conversationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleBadRequestGin(c, fmt.Errorf("invalid conversation id: %w", err), h.logger)
		return
	}

	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	messages, err := h.tunnelUseCase.ListMessages(c.Request.Context(), conversationID, limit, offset)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": dto.MapMessagesToResponse(messages)})
}
