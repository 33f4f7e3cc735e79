//go:build unit

package raffle_test

import (
	"strings"
	"testing"
	"time"

	"loyalty-ledger/internal/domain/raffle"
	"loyalty-ledger/internal/pkg/errs"
	"loyalty-ledger/internal/pkg/random"
	"loyalty-ledger/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func validParams() raffle.NewRaffleParams {
	return raffle.NewRaffleParams{
		BusinessID:        uuid.New(),
		Title:             " Spring draw ",
		PointsRequired:    25,
		MaxTicketsPerUser: 3,
		StartDate:         testNow,
		EndDate:           testNow.Add(72 * time.Hour),
	}
}

func TestNewRaffle(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		r, err := raffle.NewRaffle(validParams(), testNow)
		require.NoError(t, err)
		assert.Equal(t, "Spring draw", r.Title())
		assert.Equal(t, int64(25), r.PointsRequired().Value())
		assert.False(t, r.IsCompleted())
		assert.Nil(t, r.ClosedAt())
	})

	cases := []struct {
		name   string
		mutate func(p *raffle.NewRaffleParams)
		errIs  error
	}{
		{name: "missing business", mutate: func(p *raffle.NewRaffleParams) { p.BusinessID = uuid.Nil }, errIs: raffle.ErrMissingBusiness},
		{name: "blank title", mutate: func(p *raffle.NewRaffleParams) { p.Title = "   " }, errIs: raffle.ErrEmptyTitle},
		{name: "title too long", mutate: func(p *raffle.NewRaffleParams) { p.Title = strings.Repeat("t", raffle.MaxTitleLength+1) }, errIs: raffle.ErrTitleTooLong},
		{name: "zero cost", mutate: func(p *raffle.NewRaffleParams) { p.PointsRequired = 0 }, errIs: errs.ErrInvalidAmount},
		{name: "zero ticket cap", mutate: func(p *raffle.NewRaffleParams) { p.MaxTicketsPerUser = 0 }, errIs: raffle.ErrInvalidTicketCap},
		{name: "end equals start", mutate: func(p *raffle.NewRaffleParams) { p.EndDate = p.StartDate }, errIs: raffle.ErrInvalidSchedule},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validParams()
			tc.mutate(&p)
			_, err := raffle.NewRaffle(p, testNow)
			require.ErrorIs(t, err, tc.errIs)
		})
	}

	t.Run("title length counts characters", func(t *testing.T) {
		p := validParams()
		p.Title = strings.Repeat("é", raffle.MaxTitleLength)
		r, err := raffle.NewRaffle(p, testNow)
		require.NoError(t, err)
		assert.Equal(t, p.Title, r.Title())

		p.Title += "é"
		_, err = raffle.NewRaffle(p, testNow)
		require.ErrorIs(t, err, raffle.ErrTitleTooLong)
	})

	t.Run("validation errors map to INVALID_REQUEST", func(t *testing.T) {
		p := validParams()
		p.Title = ""
		_, err := raffle.NewRaffle(p, testNow)
		assert.Equal(t, errs.KindInvalidRequest, errs.KindOf(err))
	})
}

func TestRaffle_Status(t *testing.T) {
	cases := []struct {
		name string
		r    *raffle.Raffle
		want raffle.Status
	}{
		{name: "before start", r: builder.NewRaffleBuilder(testNow).StartsAt(testNow.Add(time.Hour)).BuildDomain(), want: raffle.StatusUpcoming},
		{name: "at start", r: builder.NewRaffleBuilder(testNow).StartsAt(testNow).BuildDomain(), want: raffle.StatusOpen},
		{name: "between start and end", r: builder.NewRaffleBuilder(testNow).BuildDomain(), want: raffle.StatusOpen},
		{name: "at end", r: builder.NewRaffleBuilder(testNow).EndedAt(testNow).BuildDomain(), want: raffle.StatusOpen},
		{name: "after end", r: builder.NewRaffleBuilder(testNow).EndedAt(testNow.Add(-time.Second)).BuildDomain(), want: raffle.StatusClosed},
		{name: "closed early", r: builder.NewRaffleBuilder(testNow).ClosedAtTime(testNow.Add(-time.Minute)).BuildDomain(), want: raffle.StatusClosed},
		{name: "completed", r: builder.NewRaffleBuilder(testNow).CompletedBy(uuid.New(), uuid.New()).BuildDomain(), want: raffle.StatusCompleted},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.r.Status(testNow))
		})
	}
}

func TestRaffle_Guards(t *testing.T) {
	t.Run("purchase only while open", func(t *testing.T) {
		require.NoError(t, builder.NewRaffleBuilder(testNow).BuildDomain().EnsureOpenForPurchase(testNow))

		upcoming := builder.NewRaffleBuilder(testNow).StartsAt(testNow.Add(time.Hour)).BuildDomain()
		require.ErrorIs(t, upcoming.EnsureOpenForPurchase(testNow), errs.ErrRaffleClosed)

		ended := builder.NewRaffleBuilder(testNow).EndedAt(testNow.Add(-time.Hour)).BuildDomain()
		require.ErrorIs(t, ended.EnsureOpenForPurchase(testNow), errs.ErrRaffleClosed)
	})

	t.Run("ticket cap", func(t *testing.T) {
		r := builder.NewRaffleBuilder(testNow).WithCap(2).BuildDomain()
		require.NoError(t, r.EnsureWithinTicketCap(0))
		require.NoError(t, r.EnsureWithinTicketCap(1))
		require.ErrorIs(t, r.EnsureWithinTicketCap(2), errs.ErrTicketLimitReached)
	})

	t.Run("returns allowed until completion", func(t *testing.T) {
		closed := builder.NewRaffleBuilder(testNow).ClosedAtTime(testNow).BuildDomain()
		require.NoError(t, closed.EnsureReturnable())

		done := builder.NewRaffleBuilder(testNow).CompletedBy(uuid.New(), uuid.New()).BuildDomain()
		require.ErrorIs(t, done.EnsureReturnable(), errs.ErrRaffleClosed)
	})
}

func TestRaffle_CloseAndComplete(t *testing.T) {
	t.Run("close sets closed_at once", func(t *testing.T) {
		r := builder.NewRaffleBuilder(testNow).BuildDomain()
		r.Close(testNow)
		r.Close(testNow.Add(time.Hour))
		require.NotNil(t, r.ClosedAt())
		assert.Equal(t, testNow, *r.ClosedAt())
		assert.Equal(t, raffle.StatusClosed, r.Status(testNow))
	})

	t.Run("complete records the winner and closes", func(t *testing.T) {
		r := builder.NewRaffleBuilder(testNow).BuildDomain()
		ticket := raffle.NewTicket(r, uuid.New(), testNow)

		require.NoError(t, r.Complete(ticket, testNow))
		assert.True(t, r.IsCompleted())
		assert.Equal(t, ticket.CustomerID(), *r.WinnerCustomerID())
		assert.Equal(t, ticket.ID(), *r.WinningTicketID())
		require.NotNil(t, r.ClosedAt())

		require.ErrorIs(t, r.Complete(ticket, testNow), errs.ErrAlreadyCompleted)
	})

	t.Run("close after completion is a no-op", func(t *testing.T) {
		r := builder.NewRaffleBuilder(testNow).CompletedBy(uuid.New(), uuid.New()).BuildDomain()
		r.Close(testNow)
		assert.Nil(t, r.ClosedAt())
	})
}

func TestTickets(t *testing.T) {
	r := builder.NewRaffleBuilder(testNow).WithCost(30).BuildDomain()
	customer := uuid.New()

	ticket := raffle.NewTicket(r, customer, testNow)
	assert.Equal(t, r.ID(), ticket.RaffleID())
	assert.Equal(t, r.BusinessID(), ticket.BusinessID())
	assert.Equal(t, int64(30), ticket.PointsSpent())
	assert.Equal(t, int64(30), ticket.Cost().Value())

	assert.Zero(t, raffle.RefundFor(nil))
	assert.Equal(t, int64(90), raffle.RefundFor([]*raffle.Ticket{ticket, ticket, ticket}))
}

func TestDrawWinner(t *testing.T) {
	r := builder.NewRaffleBuilder(testNow).BuildDomain()

	t.Run("no tickets", func(t *testing.T) {
		_, err := raffle.DrawWinner(nil, random.NewSeededPicker(1))
		require.ErrorIs(t, err, errs.ErrNoParticipants)
	})

	t.Run("single ticket always wins", func(t *testing.T) {
		only := raffle.NewTicket(r, uuid.New(), testNow)
		got, err := raffle.DrawWinner([]*raffle.Ticket{only}, random.NewSeededPicker(7))
		require.NoError(t, err)
		assert.Equal(t, only.ID(), got.ID())
	})

	t.Run("weighted by ticket count", func(t *testing.T) {
		a, b := uuid.New(), uuid.New()
		tickets := []*raffle.Ticket{
			raffle.NewTicket(r, a, testNow),
			raffle.NewTicket(r, a, testNow),
			raffle.NewTicket(r, a, testNow),
			raffle.NewTicket(r, b, testNow),
		}

		picker := random.NewSeededPicker(42)
		const draws = 20_000
		wins := 0
		for range draws {
			w, err := raffle.DrawWinner(tickets, picker)
			require.NoError(t, err)
			if w.CustomerID() == a {
				wins++
			}
		}
		assert.InDelta(t, 0.75, float64(wins)/draws, 0.02)
	})

	t.Run("crypto picker stays in range", func(t *testing.T) {
		p := random.NewCryptoPicker()
		for range 1000 {
			v := p.Intn(4)
			assert.GreaterOrEqual(t, v, 0)
			assert.Less(t, v, 4)
		}
		assert.Zero(t, p.Intn(1))
	})
}
