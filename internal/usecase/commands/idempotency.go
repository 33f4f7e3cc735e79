package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"loyalty-ledger/internal/pkg/errs"
	"loyalty-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

const idempotencyTTL = 24 * time.Hour

// IdempotencyKey scopes a client-supplied key to one endpoint and one request body.
type IdempotencyKey struct {
	Key         uuid.UUID
	Endpoint    string
	RequestHash string
}

func NewIdempotencyKey(key uuid.UUID, endpoint string, request any) (*IdempotencyKey, error) {
	if key == uuid.Nil {
		return nil, errs.ErrIdempotencyKeyFormat
	}
	b, err := json.Marshal(request)
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash request")
	}
	sum := sha256.Sum256(append([]byte(endpoint+"\n"), b...))
	return &IdempotencyKey{Key: key, Endpoint: endpoint, RequestHash: hex.EncodeToString(sum[:])}, nil
}

// runIdempotent executes fn at most once per (key, user) inside tx.
// The key row is inserted in the same transaction, so a failed fn leaves no trace and can be retried.
func runIdempotent[T any](
	ctx context.Context,
	tx shared.Tx,
	userID uuid.UUID,
	key *IdempotencyKey,
	now time.Time,
	fn func() (*T, error),
) (*T, bool, error) {
	if key == nil {
		res, err := fn()
		return res, false, err
	}

	inserted, err := tx.Idempotency().TryInsert(ctx, shared.IdempotencyRecord{
		Key:         key.Key,
		UserID:      userID,
		Endpoint:    key.Endpoint,
		RequestHash: key.RequestHash,
		Status:      shared.IdempotencyStatusProcessing,
		ExpiresAt:   now.Add(idempotencyTTL),
	})
	if err != nil {
		return nil, false, err
	}

	if !inserted {
		existing, err := tx.Idempotency().Get(ctx, key.Key, userID)
		if err != nil {
			return nil, false, err
		}
		if existing.Endpoint != key.Endpoint || existing.RequestHash != key.RequestHash {
			return nil, false, errs.ErrIdempotencyConflict
		}
		if existing.Status != shared.IdempotencyStatusCompleted {
			return nil, false, errs.ErrIdempotencyConflict
		}
		var replay T
		if err := json.Unmarshal(existing.Result, &replay); err != nil {
			return nil, false, errs.Wrap(err, "failed to decode stored idempotent result")
		}
		return &replay, true, nil
	}

	res, err := fn()
	if err != nil {
		return nil, false, err
	}
	b, err := json.Marshal(res)
	if err != nil {
		return nil, false, errs.Wrap(err, "failed to encode idempotent result")
	}
	if err := tx.Idempotency().MarkCompleted(ctx, key.Key, userID, b); err != nil {
		return nil, false, err
	}
	return res, false, nil
}
