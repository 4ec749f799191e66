// Package http provides the HTTP server, routing, and shared middleware.
package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	otelmetric "go.opentelemetry.io/otel/metric"

	authHTTP "github.com/MehanikTMYT/chatbot/internal/auth/http"
	authUseCase "github.com/MehanikTMYT/chatbot/internal/auth/usecase"
	"github.com/MehanikTMYT/chatbot/internal/metrics"
	tunnelHTTP "github.com/MehanikTMYT/chatbot/internal/tunnel/http"
)

// Config holds HTTP server settings and feature toggles.
type Config struct {
	Host                    string
	Port                    int
	AuthEnabled             bool
	RateLimitEnabled        bool
	RateLimitRequestsPerSec float64
	RateLimitBurst          int
	CORSEnabled             bool
	CORSAllowOrigins        string
	MetricsEnabled          bool
	MetricsNamespace        string
}

// Server is the main API server. It serves the tunnel and message endpoints
// plus health and readiness probes.
type Server struct {
	server        *http.Server
	db            *sql.DB
	logger        *slog.Logger
	tunnelHandler *tunnelHTTP.TunnelHandler
	clientUseCase authUseCase.ClientUseCase
	meterProvider otelmetric.MeterProvider
	cfg           Config
}

// NewServer creates a new API server. The database connection is used by the
// readiness probe. tunnelHandler, clientUseCase, and meterProvider may be nil;
// the corresponding routes and middleware are skipped when they are.
func NewServer(
	cfg Config,
	db *sql.DB,
	logger *slog.Logger,
	tunnelHandler *tunnelHTTP.TunnelHandler,
	clientUseCase authUseCase.ClientUseCase,
	meterProvider otelmetric.MeterProvider,
) *Server {
	s := &Server{
		db:            db,
		logger:        logger,
		tunnelHandler: tunnelHandler,
		clientUseCase: clientUseCase,
		meterProvider: meterProvider,
		cfg:           cfg,
	}

	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      s.createRouter(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// createRouter assembles the Gin engine with middleware and routes.
func (s *Server) createRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(s.cfg.CORSEnabled, s.cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if s.cfg.MetricsEnabled && s.meterProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(s.meterProvider, s.cfg.MetricsNamespace))
	}

	// Probes stay outside authentication
	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	if s.tunnelHandler == nil {
		return router
	}

	v1 := router.Group("/v1")

	if s.cfg.AuthEnabled && s.clientUseCase != nil {
		v1.Use(authHTTP.AuthenticationMiddleware(s.clientUseCase, s.logger))

		if s.cfg.RateLimitEnabled {
			v1.Use(authHTTP.RateLimitMiddleware(
				s.cfg.RateLimitRequestsPerSec,
				s.cfg.RateLimitBurst,
				s.logger,
			))
		}
	}

	v1.POST("/tunnel/encrypt", s.tunnelHandler.EncryptHandler)
	v1.POST("/tunnel/decrypt", s.tunnelHandler.DecryptHandler)
	v1.POST("/messages", s.tunnelHandler.CreateMessageHandler)
	v1.GET("/messages/:id", s.tunnelHandler.GetMessageHandler)
	v1.GET("/conversations/:id/messages", s.tunnelHandler.ListMessagesHandler)

	return router
}

// healthHandler reports process liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the server can handle traffic.
// It checks the database connection and reports per-component status.
func (s *Server) readinessHandler(c *gin.Context) {
	components := gin.H{}
	ready := true

	if s.db == nil {
		components["database"] = "error"
		ready = false
	} else if err := s.db.PingContext(c.Request.Context()); err != nil {
		s.logger.Error("readiness database ping failed", slog.Any("error", err))
		components["database"] = "error"
		ready = false
	} else {
		components["database"] = "ok"
	}

	if !ready {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": components,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": components,
	})
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.server.Handler
}

// Start starts the HTTP server. It blocks until the server stops.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}
