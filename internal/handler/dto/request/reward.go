package request

import (
	"strings"

	"loyalty-ledger/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateRewardRequest struct {
	BusinessID     uuid.UUID `json:"business_id" binding:"required"`
	Name           string    `json:"name" binding:"required,max=200"`
	Description    string    `json:"description" binding:"max=2000"`
	PointsRequired int64     `json:"points_required"`
}

func (r CreateRewardRequest) ToCommand() commands.CreateRewardRequest {
	return commands.CreateRewardRequest{
		BusinessID:     r.BusinessID,
		Name:           strings.TrimSpace(r.Name),
		Description:    strings.TrimSpace(r.Description),
		PointsRequired: r.PointsRequired,
	}
}

type UpdateRewardRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}
