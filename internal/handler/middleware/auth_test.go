//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"loyalty-ledger/internal/domain/user"
	"loyalty-ledger/internal/handler/middleware"
	"loyalty-ledger/internal/pkg/clock"
	"loyalty-ledger/internal/pkg/cookie"
	"loyalty-ledger/internal/pkg/jwt"
	"loyalty-ledger/internal/usecase/shared"
	"loyalty-ledger/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthEngine(t *testing.T, clk *clock.MockClock) (*gin.Engine, *jwt.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := jwt.NewService("middleware-test-secret", time.Hour, clk)
	m := middleware.NewAuthMiddleware(svc)

	engine := gin.New()
	echoActor := func(c *gin.Context) {
		actor, ok := middleware.GetActor(c)
		if !ok {
			c.JSON(http.StatusOK, gin.H{"anonymous": true})
			return
		}
		c.JSON(http.StatusOK, actor)
	}
	engine.GET("/me", m.RequireAuth(), echoActor)
	engine.GET("/customer", m.RequireAuth(), m.RequireCustomer(), echoActor)
	engine.GET("/staff", m.RequireAuth(), m.RequireStaff(), echoActor)
	engine.GET("/optional", m.OptionalAuth(), echoActor)
	return engine, svc
}

func TestRequireAuth(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(now)
	engine, svc := newAuthEngine(t, clk)

	customerID := uuid.New()
	token, err := svc.GenerateToken(customerID, user.RoleCustomer, nil)
	require.NoError(t, err)

	t.Run("bearer token yields the actor", func(t *testing.T) {
		rec := httptest.PerformRequest(t, engine, http.MethodGet, "/me", nil, token)

		var actor shared.Actor
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &actor)
		assert.Equal(t, customerID, actor.UserID)
		assert.Equal(t, user.RoleCustomer, actor.Role)
		assert.Nil(t, actor.BusinessID)
	})

	t.Run("cookie token is accepted", func(t *testing.T) {
		rec := httptest.PerformRequestWithCookies(t, engine, http.MethodGet, "/me", nil,
			[]*http.Cookie{{Name: cookie.AccessTokenCookieName, Value: token}}, "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing token is 401", func(t *testing.T) {
		rec := httptest.PerformRequest(t, engine, http.MethodGet, "/me", nil, "")
		httptest.AssertErrorCode(t, rec, http.StatusUnauthorized, "UNAUTHORIZED")
	})

	t.Run("tampered token is 401", func(t *testing.T) {
		rec := httptest.PerformRequest(t, engine, http.MethodGet, "/me", nil, token+"x")
		httptest.AssertErrorCode(t, rec, http.StatusUnauthorized, "UNAUTHORIZED")
	})

	t.Run("token signed with another secret is 401", func(t *testing.T) {
		other := jwt.NewService("another-secret", time.Hour, clk)
		forged, err := other.GenerateToken(customerID, user.RoleAdmin, nil)
		require.NoError(t, err)

		rec := httptest.PerformRequest(t, engine, http.MethodGet, "/me", nil, forged)
		httptest.AssertErrorCode(t, rec, http.StatusUnauthorized, "UNAUTHORIZED")
	})

	t.Run("expired token is 401", func(t *testing.T) {
		clk.Set(now.Add(2 * time.Hour))
		defer clk.Set(now)

		rec := httptest.PerformRequest(t, engine, http.MethodGet, "/me", nil, token)
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	t.Run("staff token without business is rejected", func(t *testing.T) {
		bad, err := svc.GenerateToken(uuid.New(), user.RoleStaff, nil)
		require.NoError(t, err)

		rec := httptest.PerformRequest(t, engine, http.MethodGet, "/me", nil, bad)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireRole(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	engine, svc := newAuthEngine(t, clk)

	businessID := uuid.New()
	customer, err := svc.GenerateToken(uuid.New(), user.RoleCustomer, nil)
	require.NoError(t, err)
	staff, err := svc.GenerateToken(uuid.New(), user.RoleStaff, &businessID)
	require.NoError(t, err)
	admin, err := svc.GenerateToken(uuid.New(), user.RoleAdmin, nil)
	require.NoError(t, err)

	cases := []struct {
		name   string
		path   string
		token  string
		status int
	}{
		{name: "customer on customer route", path: "/customer", token: customer, status: http.StatusOK},
		{name: "staff on customer route", path: "/customer", token: staff, status: http.StatusForbidden},
		{name: "admin on customer route", path: "/customer", token: admin, status: http.StatusForbidden},
		{name: "staff on staff route", path: "/staff", token: staff, status: http.StatusOK},
		{name: "admin on staff route", path: "/staff", token: admin, status: http.StatusOK},
		{name: "customer on staff route", path: "/staff", token: customer, status: http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.PerformRequest(t, engine, http.MethodGet, tc.path, nil, tc.token)
			assert.Equal(t, tc.status, rec.Code, rec.Body.String())
		})
	}

	t.Run("staff actor keeps the business id", func(t *testing.T) {
		rec := httptest.PerformRequest(t, engine, http.MethodGet, "/staff", nil, staff)

		var actor shared.Actor
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &actor)
		require.NotNil(t, actor.BusinessID)
		assert.Equal(t, businessID, *actor.BusinessID)
		assert.True(t, actor.CanManage(businessID))
	})
}

func TestOptionalAuth(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	engine, svc := newAuthEngine(t, clk)

	t.Run("no token passes through anonymously", func(t *testing.T) {
		rec := httptest.PerformRequest(t, engine, http.MethodGet, "/optional", nil, "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"anonymous":true}`, rec.Body.String())
	})

	t.Run("invalid token does not abort", func(t *testing.T) {
		rec := httptest.PerformRequest(t, engine, http.MethodGet, "/optional", nil, "garbage")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"anonymous":true}`, rec.Body.String())
	})

	t.Run("valid token sets the actor", func(t *testing.T) {
		id := uuid.New()
		token, err := svc.GenerateToken(id, user.RoleCustomer, nil)
		require.NoError(t, err)

		rec := httptest.PerformRequest(t, engine, http.MethodGet, "/optional", nil, token)

		var actor shared.Actor
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &actor)
		assert.Equal(t, id, actor.UserID)
	})
}
