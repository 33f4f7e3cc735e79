//go:build unit

package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_LabelsByRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(Middleware())
	engine.GET("/api/raffles/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	counter := httpRequests.WithLabelValues(http.MethodGet, "/api/raffles/:id", "204")
	before := testutil.ToFloat64(counter)

	for range 3 {
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/raffles/"+strings.Repeat("a", 8), nil))
		require.Equal(t, http.StatusNoContent, rec.Code)
	}

	assert.InDelta(t, before+3, testutil.ToFloat64(counter), 1e-9)
	assert.InDelta(t, 0, testutil.ToFloat64(httpInFlight), 1e-9)
}

func TestRecorders(t *testing.T) {
	credit := pointsMoved.WithLabelValues("accrual", "credit")
	debit := pointsMoved.WithLabelValues("redemption", "debit")
	creditBefore, debitBefore := testutil.ToFloat64(credit), testutil.ToFloat64(debit)

	RecordCredit("accrual", 25)
	RecordDebit("redemption", 10)

	assert.InDelta(t, creditBefore+25, testutil.ToFloat64(credit), 1e-9)
	assert.InDelta(t, debitBefore+10, testutil.ToFloat64(debit), 1e-9)

	failed := jobRuns.WithLabelValues("raffle_draw", "false")
	failedBefore := testutil.ToFloat64(failed)
	RecordJobRun("raffle_draw", false, 15*time.Millisecond)
	assert.InDelta(t, failedBefore+1, testutil.ToFloat64(failed), 1e-9)
}

func TestHandler_ExposesNamespace(t *testing.T) {
	RecordDraw()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "loyalty_ledger_raffle_draws_total")
}
