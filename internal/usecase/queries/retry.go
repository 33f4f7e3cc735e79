package queries

import (
	"context"
	"log/slog"
	"time"

	"loyalty-ledger/internal/pkg/errs"
)

const (
	readAttempts    = 3
	readBaseBackoff = 50 * time.Millisecond
)

// withReadRetry retries reads that failed with a transient backend error.
// Reads have no side effects, so blind retries are safe here and only here.
func withReadRetry[T any](ctx context.Context, op string, fn func(ctx context.Context) (T, error)) (T, error) {
	var (
		out T
		err error
	)
	for attempt := 0; attempt < readAttempts; attempt++ {
		out, err = fn(ctx)
		if err == nil || !errs.IsRetryable(err) {
			return out, err
		}
		if attempt == readAttempts-1 {
			break
		}

		wait := readBaseBackoff << attempt
		slog.Warn("retrying read after backend error", "op", op, "attempt", attempt+1, "wait_ms", wait.Milliseconds())
		select {
		case <-ctx.Done():
			return out, ctx.Err()
		case <-time.After(wait):
		}
	}
	return out, err
}
