package api

import (
	"errors"
	"net/http"

	"loyalty-ledger/internal/handler/httperr"
	"loyalty-ledger/internal/handler/middleware"
	"loyalty-ledger/internal/usecase/commands"
	"loyalty-ledger/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errNoActor = errors.New("request has no authenticated actor")

func requireActor(c *gin.Context) (shared.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoActor, "Unauthorized", nil)
		return shared.Actor{}, false
	}
	return actor, true
}

func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name, nil)
		return uuid.Nil, false
	}
	return id, true
}

// idempotencyKeyFor returns nil when the client sent no Idempotency-Key.
func idempotencyKeyFor(c *gin.Context, endpoint string, request any) (*commands.IdempotencyKey, bool) {
	raw, ok := middleware.GetIdempotencyKey(c)
	if !ok {
		return nil, true
	}
	key, err := commands.NewIdempotencyKey(raw, endpoint, request)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return nil, false
	}
	return key, true
}

// replied marks replays so clients can tell a stored result from a fresh one.
func replied(c *gin.Context, replayed bool) int {
	if replayed {
		c.Header(middleware.IdempotencyReplayedHeader, "true")
		return http.StatusOK
	}
	return http.StatusCreated
}
