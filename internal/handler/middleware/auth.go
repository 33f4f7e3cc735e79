package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"loyalty-ledger/internal/domain/user"
	"loyalty-ledger/internal/handler/httperr"
	"loyalty-ledger/internal/pkg/cookie"
	"loyalty-ledger/internal/pkg/jwt"
	"loyalty-ledger/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TokenValidator interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

type AuthMiddleware struct {
	tokenValidator TokenValidator
}

const ctxActorKey = "actor"

var errMissingActor = errors.New("actor missing from context")

func NewAuthMiddleware(tokenValidator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, jwt.ErrInvalidToken, "Access token required", nil)
			return
		}

		actor, err := m.actorFromToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		c.Set(ctxActorKey, actor)
		c.Next()
	}
}

// RequireRole must run after RequireAuth.
func (m *AuthMiddleware) RequireRole(roles ...user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := GetActor(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusInternalServerError, errMissingActor, "Internal server error", nil)
			return
		}

		if !slices.Contains(roles, actor.Role) {
			httperr.AbortWithError(c, http.StatusForbidden, errors.New("role not allowed"), "Insufficient permissions", nil)
			return
		}

		c.Next()
	}
}

func (m *AuthMiddleware) RequireCustomer() gin.HandlerFunc {
	return m.RequireRole(user.RoleCustomer)
}

func (m *AuthMiddleware) RequireStaff() gin.HandlerFunc {
	return m.RequireRole(user.RoleStaff, user.RoleAdmin)
}

// OptionalAuth sets the actor when a valid token is present and never aborts.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := extractToken(c); token != "" {
			if actor, err := m.actorFromToken(token); err == nil {
				c.Set(ctxActorKey, actor)
			}
		}
		c.Next()
	}
}

func (m *AuthMiddleware) actorFromToken(token string) (shared.Actor, error) {
	claims, err := m.tokenValidator.ValidateToken(token)
	if err != nil {
		return shared.Actor{}, err
	}
	userID, err := claims.UserID()
	if err != nil {
		return shared.Actor{}, err
	}
	role, err := user.NewRole(claims.Role)
	if err != nil {
		return shared.Actor{}, jwt.ErrInvalidToken
	}
	if role == user.RoleStaff && claims.BusinessID == nil {
		return shared.Actor{}, jwt.ErrInvalidToken
	}
	return shared.Actor{UserID: userID, Role: role, BusinessID: claims.BusinessID}, nil
}

func extractToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetActor(c *gin.Context) (shared.Actor, bool) {
	v, exists := c.Get(ctxActorKey)
	if !exists {
		return shared.Actor{}, false
	}
	actor, ok := v.(shared.Actor)
	return actor, ok
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	actor, ok := GetActor(c)
	if !ok {
		return uuid.Nil, false
	}
	return actor.UserID, true
}

// SetActor is used by tests that mount handlers without the token middleware.
func SetActor(c *gin.Context, actor shared.Actor) {
	c.Set(ctxActorKey, actor)
}
