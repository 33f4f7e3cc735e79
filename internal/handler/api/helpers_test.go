//go:build unit

package api_test

import (
	nethttptest "net/http/httptest"
	"testing"

	"loyalty-ledger/internal/handler/middleware"
	"loyalty-ledger/internal/usecase/shared"
	"loyalty-ledger/tests/common/httptest"

	"github.com/gin-gonic/gin"
)

// actorSlot stands in for RequireAuth: routes see whatever actor the test put there.
type actorSlot struct {
	actor *shared.Actor
}

func (a *actorSlot) set(actor shared.Actor) { a.actor = &actor }
func (a *actorSlot) clear() { a.actor = nil }

func (a *actorSlot) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if a.actor != nil {
			middleware.SetActor(c, *a.actor)
		}
		c.Next()
	}
}

func newTestEngine(slot *actorSlot) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(slot.middleware())
	return engine
}

func performWithHeaders(t *testing.T, engine *gin.Engine, method, path string, headers map[string]string) *nethttptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewJSONRequest(t, method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return httptest.Serve(engine, req)
}
