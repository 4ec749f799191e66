package http

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authUseCase "github.com/MehanikTMYT/chatbot/internal/auth/usecase"
	apperrors "github.com/MehanikTMYT/chatbot/internal/errors"
	"github.com/MehanikTMYT/chatbot/internal/httputil"
)

// AuthenticationMiddleware provides authentication via Bearer credentials in the
// Authorization header.
//
// The credential format is "<client-id>.<secret>" where client-id is a UUID and
// secret is the plain secret returned once at client creation.
//
// The middleware:
// 1. Extracts the Bearer credential from the Authorization header (case-insensitive)
// 2. Splits it into client ID and plain secret at the first "."
// 3. Validates the pair using clientUseCase.Authenticate()
// 4. Stores the authenticated client in the request context
// 5. Allows downstream handlers to access the client via GetClient()
//
// Error handling:
//   - Missing Authorization header → 401 Unauthorized
//   - Malformed Authorization header or credential → 401 Unauthorized
//   - Wrong secret or unknown client → 401 Unauthorized
//   - Inactive client → 403 Forbidden
func AuthenticationMiddleware(
	clientUseCase authUseCase.ClientUseCase,
	logger *slog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Debug("authentication failed: missing authorization header")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		// Parse Bearer credential (case-insensitive)
		const bearerPrefix = "bearer "
		if len(authHeader) < len(bearerPrefix) ||
			!strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			logger.Debug("authentication failed: malformed authorization header")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		credential := authHeader[len(bearerPrefix):]

		// Split into "<client-id>.<secret>" at the first dot
		clientIDPart, plainSecret, found := strings.Cut(credential, ".")
		if !found || clientIDPart == "" || plainSecret == "" {
			logger.Debug("authentication failed: malformed credential")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		clientID, err := uuid.Parse(clientIDPart)
		if err != nil {
			logger.Debug("authentication failed: invalid client id")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		client, err := clientUseCase.Authenticate(c.Request.Context(), clientID, plainSecret)
		if err != nil {
			logger.Debug("authentication failed",
				slog.String("error", err.Error()))
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		// Store authenticated client in context
		ctx := WithClient(c.Request.Context(), client)
		c.Request = c.Request.WithContext(ctx)

		logger.Debug("authentication successful",
			slog.String("client_id", client.ID.String()),
			slog.String("client_name", client.Name))

		c.Next()
	}
}
