package request

import (
	"strings"
	"time"

	"loyalty-ledger/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateRaffleRequest struct {
	BusinessID        uuid.UUID `json:"business_id" binding:"required"`
	Title             string    `json:"title" binding:"required,max=200"`
	Description       string    `json:"description" binding:"max=2000"`
	PointsRequired    int64     `json:"points_required"`
	MaxTicketsPerUser int       `json:"max_tickets_per_user"`
	StartDate         time.Time `json:"start_date" binding:"required"`
	EndDate           time.Time `json:"end_date" binding:"required"`
}

func (r CreateRaffleRequest) ToCommand() commands.CreateRaffleRequest {
	return commands.CreateRaffleRequest{
		BusinessID:        r.BusinessID,
		Title:             strings.TrimSpace(r.Title),
		Description:       strings.TrimSpace(r.Description),
		PointsRequired:    r.PointsRequired,
		MaxTicketsPerUser: r.MaxTicketsPerUser,
		StartDate:         r.StartDate,
		EndDate:           r.EndDate,
	}
}
