package raffle

import (
	"strings"
	"time"
	"unicode/utf8"

	"loyalty-ledger/internal/domain/ledger"
	"loyalty-ledger/internal/pkg/errs"

	"github.com/google/uuid"
)

type Raffle struct {
	id                uuid.UUID
	businessID        uuid.UUID
	title             string
	description       string
	pointsRequired    ledger.Points
	maxTicketsPerUser int
	startDate         time.Time
	endDate           time.Time
	closedAt          *time.Time
	winnerCustomerID  *uuid.UUID
	winningTicketID   *uuid.UUID
	isCompleted       bool
	createdAt         time.Time
	updatedAt         time.Time
}

type NewRaffleParams struct {
	BusinessID        uuid.UUID
	Title             string
	Description       string
	PointsRequired    int64
	MaxTicketsPerUser int
	StartDate         time.Time
	EndDate           time.Time
}

func NewRaffle(p NewRaffleParams, now time.Time) (*Raffle, error) {
	if p.BusinessID == uuid.Nil {
		return nil, ErrMissingBusiness
	}
	title := strings.TrimSpace(p.Title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return nil, ErrTitleTooLong
	}
	cost, err := ledger.NewPoints(p.PointsRequired)
	if err != nil {
		return nil, err
	}
	if p.MaxTicketsPerUser <= 0 {
		return nil, ErrInvalidTicketCap
	}
	if !p.EndDate.After(p.StartDate) {
		return nil, ErrInvalidSchedule
	}

	return &Raffle{
		id:                uuid.New(),
		businessID:        p.BusinessID,
		title:             title,
		description:       strings.TrimSpace(p.Description),
		pointsRequired:    cost,
		maxTicketsPerUser: p.MaxTicketsPerUser,
		startDate:         p.StartDate,
		endDate:           p.EndDate,
		createdAt:         now,
		updatedAt:         now,
	}, nil
}

type ReconstructParams struct {
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
	UpdatedAt         time.Time
}

func ReconstructRaffle(p ReconstructParams) (*Raffle, error) {
	cost, err := ledger.NewPoints(p.PointsRequired)
	if err != nil {
		return nil, err
	}
	return &Raffle{
		id:                p.ID,
		businessID:        p.BusinessID,
		title:             p.Title,
		description:       p.Description,
		pointsRequired:    cost,
		maxTicketsPerUser: p.MaxTicketsPerUser,
		startDate:         p.StartDate,
		endDate:           p.EndDate,
		closedAt:          p.ClosedAt,
		winnerCustomerID:  p.WinnerCustomerID,
		winningTicketID:   p.WinningTicketID,
		isCompleted:       p.IsCompleted,
		createdAt:         p.CreatedAt,
		updatedAt:         p.UpdatedAt,
	}, nil
}

// Status derives the lifecycle state. Completed is terminal.
func (r *Raffle) Status(now time.Time) Status {
	switch {
	case r.isCompleted:
		return StatusCompleted
	case r.closedAt != nil, now.After(r.endDate):
		return StatusClosed
	case now.Before(r.startDate):
		return StatusUpcoming
	default:
		return StatusOpen
	}
}

func (r *Raffle) EnsureOpenForPurchase(now time.Time) error {
	if r.Status(now) != StatusOpen {
		return errs.ErrRaffleClosed
	}
	return nil
}

func (r *Raffle) EnsureWithinTicketCap(owned int) error {
	if owned >= r.maxTicketsPerUser {
		return errs.ErrTicketLimitReached
	}
	return nil
}

// EnsureReturnable allows refunds until the draw; point history is frozen afterwards.
func (r *Raffle) EnsureReturnable() error {
	if r.isCompleted {
		return errs.ErrRaffleClosed
	}
	return nil
}

func (r *Raffle) EnsureDrawable() error {
	if r.isCompleted {
		return errs.ErrAlreadyCompleted
	}
	return nil
}

// Close is a no-op on closed or completed raffles.
func (r *Raffle) Close(now time.Time) {
	if r.isCompleted || r.closedAt != nil {
		return
	}
	r.closedAt = &now
	r.updatedAt = now
}

func (r *Raffle) Complete(winner *Ticket, now time.Time) error {
	if err := r.EnsureDrawable(); err != nil {
		return err
	}
	customerID := winner.CustomerID()
	ticketID := winner.ID()
	r.winnerCustomerID = &customerID
	r.winningTicketID = &ticketID
	r.isCompleted = true
	if r.closedAt == nil {
		r.closedAt = &now
	}
	r.updatedAt = now
	return nil
}

func (r *Raffle) ID() uuid.UUID                 { return r.id }
func (r *Raffle) BusinessID() uuid.UUID         { return r.businessID }
func (r *Raffle) Title() string                 { return r.title }
func (r *Raffle) Description() string           { return r.description }
func (r *Raffle) PointsRequired() ledger.Points { return r.pointsRequired }
func (r *Raffle) MaxTicketsPerUser() int        { return r.maxTicketsPerUser }
func (r *Raffle) StartDate() time.Time          { return r.startDate }
func (r *Raffle) EndDate() time.Time            { return r.endDate }
func (r *Raffle) ClosedAt() *time.Time          { return r.closedAt }
func (r *Raffle) WinnerCustomerID() *uuid.UUID  { return r.winnerCustomerID }
func (r *Raffle) WinningTicketID() *uuid.UUID   { return r.winningTicketID }
func (r *Raffle) IsCompleted() bool             { return r.isCompleted }
func (r *Raffle) CreatedAt() time.Time          { return r.createdAt }
func (r *Raffle) UpdatedAt() time.Time          { return r.updatedAt }
