package raffle

import (
	"time"

	"loyalty-ledger/internal/domain/ledger"

	"github.com/google/uuid"
)

// Ticket is one unit of entry; a customer holding three tickets has three chances.
type Ticket struct {
	id          uuid.UUID
	raffleID    uuid.UUID
	customerID  uuid.UUID
	businessID  uuid.UUID
	pointsSpent int64
	createdAt   time.Time
}

func NewTicket(r *Raffle, customerID uuid.UUID, now time.Time) *Ticket {
	return &Ticket{
		id:          uuid.New(),
		raffleID:    r.ID(),
		customerID:  customerID,
		businessID:  r.BusinessID(),
		pointsSpent: r.PointsRequired().Value(),
		createdAt:   now,
	}
}

func ReconstructTicket(id, raffleID, customerID, businessID uuid.UUID, pointsSpent int64, createdAt time.Time) *Ticket {
	return &Ticket{
		id:          id,
		raffleID:    raffleID,
		customerID:  customerID,
		businessID:  businessID,
		pointsSpent: pointsSpent,
		createdAt:   createdAt,
	}
}

// RefundFor sums what the given tickets cost. Zero tickets refund nothing.
func RefundFor(tickets []*Ticket) int64 {
	var total int64
	for _, t := range tickets {
		total += t.pointsSpent
	}
	return total
}

func (t *Ticket) ID() uuid.UUID         { return t.id }
func (t *Ticket) RaffleID() uuid.UUID   { return t.raffleID }
func (t *Ticket) CustomerID() uuid.UUID { return t.customerID }
func (t *Ticket) BusinessID() uuid.UUID { return t.businessID }
func (t *Ticket) PointsSpent() int64    { return t.pointsSpent }
func (t *Ticket) CreatedAt() time.Time  { return t.createdAt }

func (t *Ticket) Cost() ledger.Points {
	p, _ := ledger.NewPoints(t.pointsSpent)
	return p
}
