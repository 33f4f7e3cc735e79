package middleware

import (
	"errors"
	"net/http"

	"loyalty-ledger/internal/handler/httperr"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	IdempotencyKeyHeader      = "Idempotency-Key"
	IdempotencyReplayedHeader = "Idempotency-Replayed"
	ctxIdempotencyKey         = "idempotency_key"
)

var errBadIdempotencyKey = errors.New("idempotency key must be a uuid")

// IdempotencyKey parses the optional Idempotency-Key header; a malformed value is rejected.
func IdempotencyKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(IdempotencyKeyHeader)
		if raw == "" {
			c.Next()
			return
		}
		key, err := uuid.Parse(raw)
		if err != nil || key == uuid.Nil {
			httperr.AbortWithError(c, http.StatusBadRequest, errBadIdempotencyKey, "Idempotency-Key must be a non-nil UUID", nil)
			return
		}
		c.Set(ctxIdempotencyKey, key)
		c.Next()
	}
}

func GetIdempotencyKey(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ctxIdempotencyKey)
	if !exists {
		return uuid.Nil, false
	}
	key, ok := v.(uuid.UUID)
	return key, ok
}
