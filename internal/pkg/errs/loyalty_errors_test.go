//go:build unit

package errs_test

import (
	"testing"

	"loyalty-ledger/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want errs.Kind
	}{
		{name: "nil", err: nil, want: ""},
		{name: "plain error", err: errs.New("boom"), want: errs.KindUnknown},
		{name: "sentinel", err: errs.ErrInsufficientBalance, want: errs.KindInsufficientBalance},
		{name: "wrapped sentinel", err: errs.Wrap(errs.ErrRaffleClosed, "buy ticket"), want: errs.KindRaffleClosed},
		{name: "marked validation", err: errs.Mark(errs.New("title too long"), errs.ErrValidation), want: errs.KindInvalidRequest},
		{name: "unknown business", err: errs.Wrap(errs.ErrBusinessNotFound, "accrue"), want: errs.KindBusinessNotFound},
		{name: "bad idempotency key", err: errs.ErrIdempotencyKeyFormat, want: errs.KindInvalidRequest},
		{name: "infra failure", err: errs.Mark(errs.New("dial tcp: refused"), errs.ErrBackendUnavailable), want: errs.KindBackendUnavailable},
		{
			name: "domain kind wins over a marked infra cause",
			err:  errs.Mark(errs.Mark(errs.New("lookup"), errs.ErrBackendUnavailable), errs.ErrRewardNotFound),
			want: errs.KindRewardNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errs.KindOf(tt.err))
		})
	}
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, errs.IsRetryable(errs.Wrap(errs.ErrBackendUnavailable, "read balance")))
	assert.False(t, errs.IsRetryable(errs.ErrInsufficientBalance))
	assert.False(t, errs.IsRetryable(nil))
}

func TestMarkNil(t *testing.T) {
	assert.Same(t, errs.ErrForbidden, errs.Mark(nil, errs.ErrForbidden))
	assert.NoError(t, errs.Wrap(nil, "ignored"))
}
