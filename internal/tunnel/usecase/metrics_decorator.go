package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	messagesDomain "github.com/MehanikTMYT/chatbot/internal/messages/domain"
	"github.com/MehanikTMYT/chatbot/internal/metrics"
	tunnelDomain "github.com/MehanikTMYT/chatbot/internal/tunnel/domain"
)

// tunnelUseCaseWithMetrics decorates TunnelUseCase with metrics instrumentation.
type tunnelUseCaseWithMetrics struct {
	next    TunnelUseCase
	metrics metrics.BusinessMetrics
}

// NewTunnelUseCaseWithMetrics wraps a TunnelUseCase with metrics recording.
func NewTunnelUseCaseWithMetrics(useCase TunnelUseCase, m metrics.BusinessMetrics) TunnelUseCase {
	return &tunnelUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Encrypt records metrics for envelope encryption operations.
func (t *tunnelUseCaseWithMetrics) Encrypt(ctx context.Context, plaintext []byte) ([]byte, error) {
	start := time.Now()
	wire, err := t.next.Encrypt(ctx, plaintext)

	status := "success"
	if err != nil {
		status = "error"
	}

	t.metrics.RecordOperation(ctx, "tunnel", "tunnel_encrypt", status)
	t.metrics.RecordDuration(ctx, "tunnel", "tunnel_encrypt", time.Since(start), status)

	return wire, err
}

// Decrypt records metrics for envelope decryption operations.
func (t *tunnelUseCaseWithMetrics) Decrypt(ctx context.Context, wire []byte) ([]byte, error) {
	start := time.Now()
	plaintext, err := t.next.Decrypt(ctx, wire)

	status := "success"
	if err != nil {
		status = "error"
	}

	t.metrics.RecordOperation(ctx, "tunnel", "tunnel_decrypt", status)
	t.metrics.RecordDuration(ctx, "tunnel", "tunnel_decrypt", time.Since(start), status)

	return plaintext, err
}

// StoreMessage records metrics for message storage operations.
func (t *tunnelUseCaseWithMetrics) StoreMessage(
	ctx context.Context,
	conversationID uuid.UUID,
	sender string,
	plaintext []byte,
) (*messagesDomain.Message, error) {
	start := time.Now()
	message, err := t.next.StoreMessage(ctx, conversationID, sender, plaintext)

	status := "success"
	if err != nil {
		status = "error"
	}

	t.metrics.RecordOperation(ctx, "tunnel", "message_store", status)
	t.metrics.RecordDuration(ctx, "tunnel", "message_store", time.Since(start), status)

	return message, err
}

// GetMessage records metrics for message retrieval operations.
func (t *tunnelUseCaseWithMetrics) GetMessage(
	ctx context.Context,
	id uuid.UUID,
) (*messagesDomain.Message, error) {
	start := time.Now()
	message, err := t.next.GetMessage(ctx, id)

	status := "success"
	if err != nil {
		status = "error"
	}

	t.metrics.RecordOperation(ctx, "tunnel", "message_get", status)
	t.metrics.RecordDuration(ctx, "tunnel", "message_get", time.Since(start), status)

	return message, err
}

// ListMessages records metrics for conversation listing operations.
func (t *tunnelUseCaseWithMetrics) ListMessages(
	ctx context.Context,
	conversationID uuid.UUID,
	limit int,
	offset int,
) ([]*messagesDomain.Message, error) {
	start := time.Now()
	messages, err := t.next.ListMessages(ctx, conversationID, limit, offset)

	status := "success"
	if err != nil {
		status = "error"
	}

	t.metrics.RecordOperation(ctx, "tunnel", "message_list", status)
	t.metrics.RecordDuration(ctx, "tunnel", "message_list", time.Since(start), status)

	return messages, err
}

// Algorithm returns the algorithm the tunnel was configured with.
func (t *tunnelUseCaseWithMetrics) Algorithm() tunnelDomain.Algorithm {
	return t.next.Algorithm()
}
