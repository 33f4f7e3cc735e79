package queries

import (
	"context"

	"loyalty-ledger/internal/domain/raffle"
	"loyalty-ledger/internal/infra"
	"loyalty-ledger/internal/pkg/clock"
	"loyalty-ledger/internal/pkg/errs"

	"github.com/google/uuid"
)

type RaffleReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RaffleView, error)
	ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]*RaffleView, error)
	CountTickets(ctx context.Context, raffleID, customerID uuid.UUID) (int, error)
}

type RaffleQueries interface {
	// GetRaffle fills MyTickets when viewerID is not nil.
	GetRaffle(ctx context.Context, id uuid.UUID, viewerID *uuid.UUID) (*RaffleView, error)
	ListRaffles(ctx context.Context, businessID uuid.UUID) ([]*RaffleView, error)
}

type raffleQueriesImpl struct {
	store RaffleReadStore
	clock clock.Clock
}

func NewRaffleQueries(store RaffleReadStore, clk clock.Clock) RaffleQueries {
	return &raffleQueriesImpl{store: store, clock: clk}
}

func (q *raffleQueriesImpl) GetRaffle(ctx context.Context, id uuid.UUID, viewerID *uuid.UUID) (*RaffleView, error) {
	v, err := withReadRetry(ctx, "raffle.get", func(ctx context.Context) (*RaffleView, error) {
		return q.store.FindByID(ctx, id)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrRaffleNotFound
		}
		return nil, err
	}

	if viewerID != nil {
		n, err := withReadRetry(ctx, "raffle.count_tickets", func(ctx context.Context) (int, error) {
			return q.store.CountTickets(ctx, id, *viewerID)
		})
		if err != nil {
			return nil, err
		}
		v.MyTickets = &n
	}

	v.Status = q.statusOf(v)
	return v, nil
}

func (q *raffleQueriesImpl) ListRaffles(ctx context.Context, businessID uuid.UUID) ([]*RaffleView, error) {
	views, err := withReadRetry(ctx, "raffle.list", func(ctx context.Context) ([]*RaffleView, error) {
		return q.store.ListByBusiness(ctx, businessID)
	})
	if err != nil {
		return nil, err
	}
	for _, v := range views {
		v.Status = q.statusOf(v)
	}
	return views, nil
}

func (q *raffleQueriesImpl) statusOf(v *RaffleView) string {
	r, err := raffle.ReconstructRaffle(raffle.ReconstructParams{
		ID:                v.ID,
		BusinessID:        v.BusinessID,
		PointsRequired:    v.PointsRequired,
		MaxTicketsPerUser: v.MaxTicketsPerUser,
		StartDate:         v.StartDate,
		EndDate:           v.EndDate,
		ClosedAt:          v.ClosedAt,
		WinnerCustomerID:  v.WinnerCustomerID,
		IsCompleted:       v.IsCompleted,
	})
	if err != nil {
		return ""
	}
	return r.Status(q.clock.Now()).String()
}
