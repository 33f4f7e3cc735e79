package queries

import (
	"time"

	"github.com/google/uuid"
)

type AccountView struct {
	CustomerID   uuid.UUID `json:"customer_id"`
	BusinessID   uuid.UUID `json:"business_id"`
	BusinessName string    `json:"business_name"`
	Points       int64     `json:"points"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type LedgerEntryView struct {
	ID           uuid.UUID  `json:"id"`
	Kind         string     `json:"kind"`
	Delta        int64      `json:"delta"`
	BalanceAfter int64      `json:"balance_after"`
	ReferenceID  *uuid.UUID `json:"reference_id,omitempty"`
	Note         *string    `json:"note,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

type RewardView struct {
	ID             uuid.UUID `json:"id"`
	BusinessID     uuid.UUID `json:"business_id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	PointsRequired int64     `json:"points_required"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type RaffleView struct {
	ID                uuid.UUID  `json:"id"`
	BusinessID        uuid.UUID  `json:"business_id"`
	Title             string     `json:"title"`
	Description       string     `json:"description"`
	PointsRequired    int64      `json:"points_required"`
	MaxTicketsPerUser int        `json:"max_tickets_per_user"`
	StartDate         time.Time  `json:"start_date"`
	EndDate           time.Time  `json:"end_date"`
	ClosedAt          *time.Time `json:"closed_at,omitempty"`
	Status            string     `json:"status"`
	WinnerCustomerID  *uuid.UUID `json:"winner_customer_id,omitempty"`
	IsCompleted       bool       `json:"is_completed"`
	TotalTickets      int        `json:"total_tickets"`
	Participants      int        `json:"participants"`
	MyTickets         *int       `json:"my_tickets,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID         uuid.UUID  `json:"id"`
	Email      string     `json:"email"`
	Role       string     `json:"role"`
	BusinessID *uuid.UUID `json:"business_id,omitempty"`
	IsActive   bool       `json:"is_active"`
}
