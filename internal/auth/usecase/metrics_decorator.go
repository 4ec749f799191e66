package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/MehanikTMYT/chatbot/internal/auth/domain"
	"github.com/MehanikTMYT/chatbot/internal/metrics"
)

// clientUseCaseWithMetrics decorates ClientUseCase with metrics instrumentation.
type clientUseCaseWithMetrics struct {
	next    ClientUseCase
	metrics metrics.BusinessMetrics
}

// NewClientUseCaseWithMetrics wraps a ClientUseCase with metrics recording.
func NewClientUseCaseWithMetrics(useCase ClientUseCase, m metrics.BusinessMetrics) ClientUseCase {
	return &clientUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Create records metrics for client creation operations.
func (c *clientUseCaseWithMetrics) Create(
	ctx context.Context,
	input *authDomain.CreateClientInput,
) (*authDomain.CreateClientOutput, error) {
	start := time.Now()
	output, err := c.next.Create(ctx, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, "auth", "client_create", status)
	c.metrics.RecordDuration(ctx, "auth", "client_create", time.Since(start), status)

	return output, err
}

// Get records metrics for client retrieval operations.
func (c *clientUseCaseWithMetrics) Get(ctx context.Context, clientID uuid.UUID) (*authDomain.Client, error) {
	start := time.Now()
	client, err := c.next.Get(ctx, clientID)

	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, "auth", "client_get", status)
	c.metrics.RecordDuration(ctx, "auth", "client_get", time.Since(start), status)

	return client, err
}

// List records metrics for client listing operations.
func (c *clientUseCaseWithMetrics) List(ctx context.Context, offset, limit int) ([]*authDomain.Client, error) {
	start := time.Now()
	clients, err := c.next.List(ctx, offset, limit)

	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, "auth", "client_list", status)
	c.metrics.RecordDuration(ctx, "auth", "client_list", time.Since(start), status)

	return clients, err
}

// Deactivate records metrics for client deactivation operations.
func (c *clientUseCaseWithMetrics) Deactivate(ctx context.Context, clientID uuid.UUID) error {
	start := time.Now()
	err := c.next.Deactivate(ctx, clientID)

	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, "auth", "client_deactivate", status)
	c.metrics.RecordDuration(ctx, "auth", "client_deactivate", time.Since(start), status)

	return err
}

// Authenticate records metrics for client authentication operations.
func (c *clientUseCaseWithMetrics) Authenticate(
	ctx context.Context,
	clientID uuid.UUID,
	plainSecret string,
) (*authDomain.Client, error) {
	start := time.Now()
	client, err := c.next.Authenticate(ctx, clientID, plainSecret)

	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, "auth", "client_authenticate", status)
	c.metrics.RecordDuration(ctx, "auth", "client_authenticate", time.Since(start), status)

	return client, err
}
