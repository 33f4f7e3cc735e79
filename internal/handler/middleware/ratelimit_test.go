//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"loyalty-ledger/internal/handler/middleware"
	"loyalty-ledger/internal/pkg/config"
	"loyalty-ledger/internal/usecase/shared"
	"loyalty-ledger/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newEngine := func() *gin.Engine {
		// effectively no refill during the test
		rl := middleware.NewRateLimiter(config.RateLimitConfig{RequestsPerSecond: 0.001, Burst: 2})
		engine := gin.New()
		engine.Use(func(c *gin.Context) {
			if id := c.GetHeader("X-Test-User"); id != "" {
				middleware.SetActor(c, shared.Actor{UserID: uuid.MustParse(id)})
			}
			c.Next()
		}, rl.Handler())
		engine.POST("/limited", func(c *gin.Context) { c.Status(http.StatusNoContent) })
		return engine
	}

	t.Run("burst is allowed then 429", func(t *testing.T) {
		engine := newEngine()
		for i := 0; i < 2; i++ {
			rec := httptest.PerformRequest(t, engine, http.MethodPost, "/limited", nil, "")
			assert.Equal(t, http.StatusNoContent, rec.Code)
		}
		rec := httptest.PerformRequest(t, engine, http.MethodPost, "/limited", nil, "")
		httptest.AssertErrorCode(t, rec, http.StatusTooManyRequests, "RATE_LIMITED")
		assert.Equal(t, "1", rec.Header().Get("Retry-After"))
	})

	t.Run("buckets are per user", func(t *testing.T) {
		engine := newEngine()
		alice, bob := uuid.NewString(), uuid.NewString()

		send := func(user string) int {
			req := httptest.NewJSONRequest(t, http.MethodPost, "/limited", nil)
			req.Header.Set("X-Test-User", user)
			return httptest.Serve(engine, req).Code
		}

		assert.Equal(t, http.StatusNoContent, send(alice))
		assert.Equal(t, http.StatusNoContent, send(alice))
		assert.Equal(t, http.StatusTooManyRequests, send(alice))
		assert.Equal(t, http.StatusNoContent, send(bob))
	})
}
