//go:build unit

package ledger_test

import (
	"math"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"loyalty-ledger/internal/domain/ledger"
	"loyalty-ledger/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func mustPoints(t *testing.T, v int64) ledger.Points {
	t.Helper()
	p, err := ledger.NewPoints(v)
	require.NoError(t, err)
	return p
}

func TestNewPoints(t *testing.T) {
	for _, v := range []int64{0, -1, -500} {
		_, err := ledger.NewPoints(v)
		require.ErrorIs(t, err, errs.ErrInvalidAmount, "value %d", v)
	}
	assert.Equal(t, int64(1), mustPoints(t, 1).Value())
}

func TestNewAccountKey(t *testing.T) {
	_, err := ledger.NewAccountKey(uuid.Nil, uuid.New())
	require.ErrorIs(t, err, ledger.ErrMissingCustomer)

	_, err = ledger.NewAccountKey(uuid.New(), uuid.Nil)
	require.ErrorIs(t, err, ledger.ErrMissingBusiness)
	assert.Equal(t, errs.KindInvalidRequest, errs.KindOf(err))
}

func TestAccount_CreditDebit(t *testing.T) {
	key, err := ledger.NewAccountKey(uuid.New(), uuid.New())
	require.NoError(t, err)
	acc := ledger.NewAccount(key, testNow)
	assert.Zero(t, acc.Points())

	later := testNow.Add(time.Minute)
	assert.Equal(t, int64(100), acc.Credit(mustPoints(t, 100), later))
	assert.Equal(t, later, acc.UpdatedAt())

	t.Run("debit within balance", func(t *testing.T) {
		bal, err := acc.Debit(mustPoints(t, 40), later)
		require.NoError(t, err)
		assert.Equal(t, int64(60), bal)
	})

	t.Run("debit to exactly zero", func(t *testing.T) {
		bal, err := acc.Debit(mustPoints(t, 60), later)
		require.NoError(t, err)
		assert.Zero(t, bal)
	})

	t.Run("overdraft leaves the balance untouched", func(t *testing.T) {
		bal, err := acc.Debit(mustPoints(t, 1), later)
		require.ErrorIs(t, err, errs.ErrInsufficientBalance)
		assert.Zero(t, bal)
		assert.Zero(t, acc.Points())
	})
}

func TestAccrualPolicy(t *testing.T) {
	t.Run("configuration", func(t *testing.T) {
		_, err := ledger.NewAccrualPolicy(0, "nearest")
		require.ErrorIs(t, err, ledger.ErrInvalidRate)

		_, err = ledger.NewAccrualPolicy(100, "ceiling")
		require.ErrorIs(t, err, ledger.ErrInvalidRounding)

		p, err := ledger.NewAccrualPolicy(100, " FLOOR ")
		require.NoError(t, err)
		assert.Equal(t, ledger.RoundFloor, p.Rounding())

		p, err = ledger.NewAccrualPolicy(100, "")
		require.NoError(t, err)
		assert.Equal(t, ledger.RoundNearest, p.Rounding())
	})

	cases := []struct {
		name     string
		rateBps  int64
		rounding string
		amount   int64
		want     int64
		wantErr  error
	}{
		{name: "1% of 10.00", rateBps: 100, rounding: "nearest", amount: 1000, want: 10},
		{name: "1% of 12.50 rounds half up", rateBps: 100, rounding: "nearest", amount: 1250, want: 13},
		{name: "1% of 12.49 rounds down", rateBps: 100, rounding: "nearest", amount: 1249, want: 12},
		{name: "1% of 12.99 floors", rateBps: 100, rounding: "floor", amount: 1299, want: 12},
		{name: "5% of 3.00", rateBps: 500, rounding: "floor", amount: 300, want: 15},
		{name: "too small to earn", rateBps: 100, rounding: "floor", amount: 99, wantErr: errs.ErrInvalidAmount},
		{name: "rounds to zero", rateBps: 100, rounding: "nearest", amount: 49, wantErr: errs.ErrInvalidAmount},
		{name: "zero amount", rateBps: 100, rounding: "nearest", amount: 0, wantErr: errs.ErrInvalidAmount},
		{name: "negative amount", rateBps: 100, rounding: "nearest", amount: -100, wantErr: errs.ErrInvalidAmount},
		{name: "largest amount the rate can scale", rateBps: 100, rounding: "nearest", amount: math.MaxInt64 / 100, want: 922337203685478},
		{name: "amount that would wrap negative", rateBps: 100, rounding: "nearest", amount: math.MaxInt64/100 + 1, wantErr: errs.ErrInvalidAmount},
		{name: "amount that would wrap to a small positive", rateBps: 100, rounding: "floor", amount: 184467440737095617, wantErr: errs.ErrInvalidAmount},
		{name: "max int64 amount", rateBps: 1, rounding: "floor", amount: math.MaxInt64, want: math.MaxInt64 / 10_000},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := ledger.NewAccrualPolicy(tc.rateBps, tc.rounding)
			require.NoError(t, err)

			got, err := p.PointsFor(tc.amount)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.Value())
		})
	}
}

func TestEntries(t *testing.T) {
	key, err := ledger.NewAccountKey(uuid.New(), uuid.New())
	require.NoError(t, err)
	ref := uuid.New()

	t.Run("credit is positive", func(t *testing.T) {
		e, err := ledger.NewCreditEntry(key, ledger.EntryAccrual, mustPoints(t, 25), 125, nil, "  receipt 42 ", testNow)
		require.NoError(t, err)
		assert.Equal(t, int64(25), e.Delta())
		assert.Equal(t, int64(125), e.BalanceAfter())
		assert.Equal(t, "receipt 42", e.Note())
		assert.NotEqual(t, uuid.Nil, e.ID())
	})

	t.Run("debit is negative and keeps its reference", func(t *testing.T) {
		e, err := ledger.NewDebitEntry(key, ledger.EntryRedemption, mustPoints(t, 25), 0, &ref, "", testNow)
		require.NoError(t, err)
		assert.Equal(t, int64(-25), e.Delta())
		require.NotNil(t, e.ReferenceID())
		assert.Equal(t, ref, *e.ReferenceID())
	})

	t.Run("note is truncated", func(t *testing.T) {
		e, err := ledger.NewCreditEntry(key, ledger.EntryAdjustment, mustPoints(t, 1), 1, nil, strings.Repeat("x", 600), testNow)
		require.NoError(t, err)
		assert.Len(t, e.Note(), ledger.MaxNoteLength)
	})

	t.Run("multibyte note is cut on a character boundary", func(t *testing.T) {
		e, err := ledger.NewCreditEntry(key, ledger.EntryAdjustment, mustPoints(t, 1), 1, nil, strings.Repeat("€", 501), testNow)
		require.NoError(t, err)
		assert.True(t, utf8.ValidString(e.Note()))
		assert.Equal(t, ledger.MaxNoteLength, utf8.RuneCountInString(e.Note()))
		assert.Equal(t, strings.Repeat("€", ledger.MaxNoteLength), e.Note())
	})

	t.Run("multibyte note within the limit is kept whole", func(t *testing.T) {
		note := strings.Repeat("ü", ledger.MaxNoteLength)
		e, err := ledger.NewDebitEntry(key, ledger.EntryAdjustment, mustPoints(t, 1), 0, nil, note, testNow)
		require.NoError(t, err)
		assert.Equal(t, note, e.Note())
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := ledger.NewCreditEntry(key, ledger.EntryKind("gift"), mustPoints(t, 1), 1, nil, "", testNow)
		require.ErrorIs(t, err, ledger.ErrUnknownEntryKind)
	})
}

func TestParseEntryKind(t *testing.T) {
	for _, k := range []string{"accrual", "adjustment", "redemption", "ticket_purchase", "ticket_refund"} {
		got, err := ledger.ParseEntryKind(k)
		require.NoError(t, err)
		assert.Equal(t, k, got.String())
	}
	_, err := ledger.ParseEntryKind("bonus")
	require.ErrorIs(t, err, ledger.ErrUnknownEntryKind)
}
