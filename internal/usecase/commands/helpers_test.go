//go:build unit

package commands_test

import (
	"testing"
	"time"

	"loyalty-ledger/internal/domain/ledger"
	"loyalty-ledger/internal/domain/user"
	"loyalty-ledger/internal/pkg/clock"
	"loyalty-ledger/internal/pkg/random"
	"loyalty-ledger/internal/usecase/commands"
	"loyalty-ledger/internal/usecase/shared"
	"loyalty-ledger/tests/common/memuow"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	store    *memuow.Store
	clock    *clock.MockClock
	business uuid.UUID
	staff    shared.Actor

	ledger      commands.LedgerCommands
	redemptions commands.RedemptionCommands
	raffles     commands.RaffleCommands
	rewards     commands.RewardCommands
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := memuow.New()
	clk := clock.NewMockClock(testNow)
	business := store.AddBusiness("Corner Cafe")
	staffID := store.AddUser(memuow.UserRow{
		Email:      "barista@corner.cafe",
		Role:       user.RoleStaff,
		BusinessID: &business,
		IsActive:   true,
	})

	policy, err := ledger.NewAccrualPolicy(100, "nearest")
	require.NoError(t, err)

	return &fixture{
		store:       store,
		clock:       clk,
		business:    business,
		staff:       shared.Actor{UserID: staffID, Role: user.RoleStaff, BusinessID: &business},
		ledger:      commands.NewLedgerCommands(store, policy, clk),
		redemptions: commands.NewRedemptionCommands(store, clk),
		raffles:     commands.NewRaffleCommands(store, random.NewSeededPicker(42), clk),
		rewards:     commands.NewRewardCommands(store, clk),
	}
}

// customerWith registers a customer holding points at the fixture's business.
func (f *fixture) customerWith(points int64) uuid.UUID {
	id := f.store.AddCustomer()
	f.store.SetBalance(id, f.business, points)
	return id
}

func (f *fixture) otherStaff() shared.Actor {
	other := uuid.New()
	return shared.Actor{UserID: uuid.New(), Role: user.RoleStaff, BusinessID: &other}
}

func sumDeltas(entries []*ledger.Entry) int64 {
	var total int64
	for _, e := range entries {
		total += e.Delta()
	}
	return total
}
