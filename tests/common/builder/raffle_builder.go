//go:build unit || e2e

package builder

import (
	"time"

	"loyalty-ledger/internal/domain/raffle"
	"loyalty-ledger/internal/usecase/queries"

	"github.com/google/uuid"
)

type RaffleBuilder struct {
	ID                uuid.UUID
	BusinessID        uuid.UUID
	Title             string
	Description       string
	PointsRequired    int64
	MaxTicketsPerUser int
	StartDate         time.Time
	EndDate           time.Time
	ClosedAt          *time.Time
	WinnerCustomerID  *uuid.UUID
	WinningTicketID   *uuid.UUID
	IsCompleted       bool
	CreatedAt         time.Time
}

// NewRaffleBuilder returns a raffle that is open at now: started an hour ago, ends in a day.
func NewRaffleBuilder(now time.Time) *RaffleBuilder {
	return &RaffleBuilder{
		ID:                uuid.New(),
		BusinessID:        uuid.New(),
		Title:             "Summer Giveaway",
		Description:       "Win a year of coffee",
		PointsRequired:    10,
		MaxTicketsPerUser: 5,
		StartDate:         now.Add(-time.Hour),
		EndDate:           now.Add(24 * time.Hour),
		CreatedAt:         now.Add(-2 * time.Hour),
	}
}

func (r *RaffleBuilder) With(mutate func(*RaffleBuilder)) *RaffleBuilder {
	mutate(r)
	return r
}

func (r *RaffleBuilder) ForBusiness(id uuid.UUID) *RaffleBuilder {
	r.BusinessID = id
	return r
}

func (r *RaffleBuilder) WithCost(points int64) *RaffleBuilder {
	r.PointsRequired = points
	return r
}

func (r *RaffleBuilder) WithCap(n int) *RaffleBuilder {
	r.MaxTicketsPerUser = n
	return r
}

func (r *RaffleBuilder) EndedAt(t time.Time) *RaffleBuilder {
	r.EndDate = t
	if !r.StartDate.Before(t) {
		r.StartDate = t.Add(-24 * time.Hour)
	}
	return r
}

func (r *RaffleBuilder) StartsAt(t time.Time) *RaffleBuilder {
	r.StartDate = t
	if !r.EndDate.After(t) {
		r.EndDate = t.Add(24 * time.Hour)
	}
	return r
}

func (r *RaffleBuilder) ClosedAtTime(t time.Time) *RaffleBuilder {
	r.ClosedAt = &t
	return r
}

func (r *RaffleBuilder) CompletedBy(customerID, ticketID uuid.UUID) *RaffleBuilder {
	r.IsCompleted = true
	r.WinnerCustomerID = &customerID
	r.WinningTicketID = &ticketID
	return r
}

func (r *RaffleBuilder) BuildDomain() *raffle.Raffle {
	rf, err := raffle.ReconstructRaffle(raffle.ReconstructParams{
		ID:                r.ID,
		BusinessID:        r.BusinessID,
		Title:             r.Title,
		Description:       r.Description,
		PointsRequired:    r.PointsRequired,
		MaxTicketsPerUser: r.MaxTicketsPerUser,
		StartDate:         r.StartDate,
		EndDate:           r.EndDate,
		ClosedAt:          r.ClosedAt,
		WinnerCustomerID:  r.WinnerCustomerID,
		WinningTicketID:   r.WinningTicketID,
		IsCompleted:       r.IsCompleted,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.CreatedAt,
	})
	if err != nil {
		panic(err)
	}
	return rf
}

func (r *RaffleBuilder) BuildView() *queries.RaffleView {
	return &queries.RaffleView{
		ID:                r.ID,
		BusinessID:        r.BusinessID,
		Title:             r.Title,
		Description:       r.Description,
		PointsRequired:    r.PointsRequired,
		MaxTicketsPerUser: r.MaxTicketsPerUser,
		StartDate:         r.StartDate,
		EndDate:           r.EndDate,
		ClosedAt:          r.ClosedAt,
		WinnerCustomerID:  r.WinnerCustomerID,
		IsCompleted:       r.IsCompleted,
		CreatedAt:         r.CreatedAt,
	}
}
