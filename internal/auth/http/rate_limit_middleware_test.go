package http

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	authDomain "github.com/MehanikTMYT/chatbot/internal/auth/domain"
)

// setupRateLimitRouter builds a router that injects the given client into the
// context before the rate limit middleware, standing in for authentication.
func setupRateLimitRouter(client *authDomain.Client, rps float64, burst int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	router := gin.New()
	if client != nil {
		router.Use(func(c *gin.Context) {
			c.Request = c.Request.WithContext(WithClient(c.Request.Context(), client))
			c.Next()
		})
	}
	router.Use(RateLimitMiddleware(rps, burst, logger))
	router.GET("/limited", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	return router
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Run("Success_RequestsWithinLimit", func(t *testing.T) {
		client := &authDomain.Client{ID: uuid.Must(uuid.NewV7()), IsActive: true}
		router := setupRateLimitRouter(client, 100, 10)

		for i := 0; i < 5; i++ {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/limited", nil)
			router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code)
		}
	})

	t.Run("Error_BurstExceeded", func(t *testing.T) {
		client := &authDomain.Client{ID: uuid.Must(uuid.NewV7()), IsActive: true}
		// 1 rps with burst of 2: third immediate request must be rejected
		router := setupRateLimitRouter(client, 1, 2)

		for i := 0; i < 2; i++ {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/limited", nil)
			router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code)
		}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/limited", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.NotEmpty(t, w.Header().Get("Retry-After"))
		assert.Contains(t, w.Body.String(), "rate_limit_exceeded")
	})

	t.Run("Success_IndependentLimitsPerClient", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))

		first := &authDomain.Client{ID: uuid.Must(uuid.NewV7()), IsActive: true}
		second := &authDomain.Client{ID: uuid.Must(uuid.NewV7()), IsActive: true}

		middleware := RateLimitMiddleware(1, 1, logger)

		makeRouter := func(client *authDomain.Client) *gin.Engine {
			router := gin.New()
			router.Use(func(c *gin.Context) {
				c.Request = c.Request.WithContext(WithClient(c.Request.Context(), client))
				c.Next()
			})
			router.Use(middleware)
			router.GET("/limited", func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{"message": "ok"})
			})
			return router
		}

		firstRouter := makeRouter(first)
		secondRouter := makeRouter(second)

		// First client exhausts its burst
		w := httptest.NewRecorder()
		firstRouter.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/limited", nil))
		assert.Equal(t, http.StatusOK, w.Code)

		w = httptest.NewRecorder()
		firstRouter.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/limited", nil))
		assert.Equal(t, http.StatusTooManyRequests, w.Code)

		// Second client still has its own budget
		w = httptest.NewRecorder()
		secondRouter.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/limited", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Error_NoClientInContext", func(t *testing.T) {
		router := setupRateLimitRouter(nil, 100, 10)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/limited", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
