package repository

import (
	"context"
	"time"

	"loyalty-ledger/internal/infra"
	"loyalty-ledger/internal/infra/db"
	"loyalty-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	tryInsertIdempotencyKeySQL = `
INSERT INTO idempotency_keys (key, user_id, endpoint, request_hash, status, expires_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (key, user_id) DO NOTHING`

	getIdempotencyKeySQL = `
SELECT key, user_id, endpoint, request_hash, status, result, expires_at
FROM idempotency_keys WHERE key = $1 AND user_id = $2`

	completeIdempotencyKeySQL = `
UPDATE idempotency_keys SET status = 'completed', result = $3, updated_at = now()
WHERE key = $1 AND user_id = $2`

	deleteExpiredIdempotencyKeysSQL = `
DELETE FROM idempotency_keys WHERE expires_at < $1`
)

type IdempotencyRepository struct {
	db db.DBTX
}

func NewIdempotencyRepository(dbtx db.DBTX) *IdempotencyRepository {
	return &IdempotencyRepository{db: dbtx}
}

func (r *IdempotencyRepository) TryInsert(ctx context.Context, rec shared.IdempotencyRecord) (bool, error) {
	tag, err := r.db.Exec(ctx, tryInsertIdempotencyKeySQL,
		rec.Key,
		rec.UserID,
		rec.Endpoint,
		rec.RequestHash,
		rec.Status,
		rec.ExpiresAt,
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to try insert idempotency key", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *IdempotencyRepository) Get(ctx context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	var rec shared.IdempotencyRecord
	err := r.db.QueryRow(ctx, getIdempotencyKeySQL, key, userID).Scan(
		&rec.Key,
		&rec.UserID,
		&rec.Endpoint,
		&rec.RequestHash,
		&rec.Status,
		&rec.Result,
		&rec.ExpiresAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}
	return &rec, nil
}

func (r *IdempotencyRepository) MarkCompleted(ctx context.Context, key, userID uuid.UUID, result []byte) error {
	tag, err := r.db.Exec(ctx, completeIdempotencyKeySQL, key, userID, result)
	if err != nil {
		return infra.WrapRepoErr("failed to update idempotency key status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFound("idempotency key not found")
	}
	return nil
}

func (r *IdempotencyRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, deleteExpiredIdempotencyKeysSQL, now)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired idempotency keys", err)
	}
	return tag.RowsAffected(), nil
}
