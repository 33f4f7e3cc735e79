//go:build unit

package commands_test

import (
	"context"
	mrand "math/rand/v2"
	"testing"

	"loyalty-ledger/internal/domain/ledger"
	"loyalty-ledger/internal/domain/user"
	"loyalty-ledger/internal/pkg/errs"
	"loyalty-ledger/internal/usecase/commands"
	"loyalty-ledger/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerCommands_Accrue(t *testing.T) {
	ctx := context.Background()

	t.Run("credits one percent of the purchase rounded to nearest", func(t *testing.T) {
		f := newFixture(t)
		customer := f.store.AddCustomer()

		res, err := f.ledger.Accrue(ctx, f.staff, commands.AccrueRequest{
			CustomerID:          customer,
			BusinessID:          f.business,
			PurchaseAmountCents: 12345,
		})

		require.NoError(t, err)
		assert.Equal(t, int64(123), res.Delta)
		assert.Equal(t, int64(123), res.NewBalance)
		assert.Equal(t, int64(123), f.store.Balance(customer, f.business))

		entries := f.store.Entries(customer, f.business)
		require.Len(t, entries, 1)
		assert.Equal(t, ledger.EntryAccrual, entries[0].Kind())
		assert.Equal(t, res.EntryID, entries[0].ID())

		jobs := f.store.Jobs()
		require.Len(t, jobs, 1)
		assert.Equal(t, commands.NotificationPointsAccrued, jobs[0].Kind)
	})

	t.Run("half a point rounds up", func(t *testing.T) {
		f := newFixture(t)
		customer := f.store.AddCustomer()

		res, err := f.ledger.Accrue(ctx, f.staff, commands.AccrueRequest{CustomerID: customer, BusinessID: f.business, PurchaseAmountCents: 50})

		require.NoError(t, err)
		assert.Equal(t, int64(1), res.NewBalance)
	})

	t.Run("purchase worth no points is rejected", func(t *testing.T) {
		f := newFixture(t)
		customer := f.store.AddCustomer()

		for _, cents := range []int64{0, -100, 49} {
			_, err := f.ledger.Accrue(ctx, f.staff, commands.AccrueRequest{CustomerID: customer, BusinessID: f.business, PurchaseAmountCents: cents})
			require.ErrorIs(t, err, errs.ErrInvalidAmount, "cents=%d", cents)
		}
		assert.Empty(t, f.store.Entries(customer, f.business))
	})

	t.Run("unknown customer", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.ledger.Accrue(ctx, f.staff, commands.AccrueRequest{CustomerID: uuid.New(), BusinessID: f.business, PurchaseAmountCents: 1000})

		require.ErrorIs(t, err, errs.ErrCustomerNotFound)
		assert.Empty(t, f.store.Jobs())
	})

	t.Run("unknown business", func(t *testing.T) {
		f := newFixture(t)
		customer := f.store.AddCustomer()
		missing := uuid.New()
		admin := shared.Actor{UserID: uuid.New(), Role: user.RoleAdmin}

		_, err := f.ledger.Accrue(ctx, admin, commands.AccrueRequest{CustomerID: customer, BusinessID: missing, PurchaseAmountCents: 1000})

		require.ErrorIs(t, err, errs.ErrBusinessNotFound)
		assert.Equal(t, errs.KindBusinessNotFound, errs.KindOf(err))
		assert.Empty(t, f.store.Entries(customer, missing))
		assert.Empty(t, f.store.Jobs())
	})

	t.Run("staff of another business", func(t *testing.T) {
		f := newFixture(t)
		customer := f.store.AddCustomer()

		_, err := f.ledger.Accrue(ctx, f.otherStaff(), commands.AccrueRequest{CustomerID: customer, BusinessID: f.business, PurchaseAmountCents: 1000})

		require.ErrorIs(t, err, errs.ErrForbidden)
		assert.Zero(t, f.store.Balance(customer, f.business))
	})
}

func TestLedgerCommands_Adjust(t *testing.T) {
	ctx := context.Background()

	t.Run("positive and negative corrections", func(t *testing.T) {
		f := newFixture(t)
		customer := f.store.AddCustomer()

		up, err := f.ledger.Adjust(ctx, f.staff, commands.AdjustRequest{CustomerID: customer, BusinessID: f.business, Delta: 40, Reason: "goodwill"})
		require.NoError(t, err)
		assert.Equal(t, int64(40), up.NewBalance)

		down, err := f.ledger.Adjust(ctx, f.staff, commands.AdjustRequest{CustomerID: customer, BusinessID: f.business, Delta: -15, Reason: "double scan"})
		require.NoError(t, err)
		assert.Equal(t, int64(25), down.NewBalance)
		assert.Equal(t, int64(-15), down.Delta)

		entries := f.store.Entries(customer, f.business)
		require.Len(t, entries, 2)
		assert.Equal(t, "double scan", entries[1].Note())
	})

	t.Run("debit beyond the balance leaves it untouched", func(t *testing.T) {
		f := newFixture(t)
		customer := f.customerWith(10)

		_, err := f.ledger.Adjust(ctx, f.staff, commands.AdjustRequest{CustomerID: customer, BusinessID: f.business, Delta: -11})

		require.ErrorIs(t, err, errs.ErrInsufficientBalance)
		assert.Equal(t, int64(10), f.store.Balance(customer, f.business))
		assert.Empty(t, f.store.Entries(customer, f.business))
	})

	t.Run("zero delta", func(t *testing.T) {
		f := newFixture(t)
		customer := f.customerWith(10)

		_, err := f.ledger.Adjust(ctx, f.staff, commands.AdjustRequest{CustomerID: customer, BusinessID: f.business})

		require.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("admin may adjust any business", func(t *testing.T) {
		f := newFixture(t)
		customer := f.store.AddCustomer()
		admin := shared.Actor{UserID: uuid.New(), Role: "admin"}

		_, err := f.ledger.Adjust(ctx, admin, commands.AdjustRequest{CustomerID: customer, BusinessID: f.business, Delta: 5})

		require.NoError(t, err)
	})
}

// The balance always equals the sum of journal deltas and never goes negative,
// whatever mix of credits and debits is applied.
func TestLedgerCommands_BalanceMatchesJournal(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	customer := f.store.AddCustomer()
	rng := mrand.New(mrand.NewPCG(7, 11))

	for i := 0; i < 300; i++ {
		var err error
		switch rng.IntN(3) {
		case 0:
			_, err = f.ledger.Accrue(ctx, f.staff, commands.AccrueRequest{
				CustomerID:          customer,
				BusinessID:          f.business,
				PurchaseAmountCents: int64(rng.IntN(5000) + 100),
			})
		case 1:
			_, err = f.ledger.Adjust(ctx, f.staff, commands.AdjustRequest{CustomerID: customer, BusinessID: f.business, Delta: int64(rng.IntN(30) + 1)})
		default:
			_, err = f.ledger.Adjust(ctx, f.staff, commands.AdjustRequest{CustomerID: customer, BusinessID: f.business, Delta: -int64(rng.IntN(60) + 1)})
		}
		if err != nil {
			require.ErrorIs(t, err, errs.ErrInsufficientBalance)
		}

		balance := f.store.Balance(customer, f.business)
		entries := f.store.Entries(customer, f.business)
		require.GreaterOrEqual(t, balance, int64(0))
		require.Equal(t, sumDeltas(entries), balance)
		if len(entries) > 0 {
			require.Equal(t, balance, entries[len(entries)-1].BalanceAfter())
		}
	}
}
