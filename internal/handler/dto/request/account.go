package request

import (
	"strings"

	"loyalty-ledger/internal/usecase/commands"

	"github.com/google/uuid"
)

type AccrualRequest struct {
	CustomerID          uuid.UUID `json:"customer_id" binding:"required"`
	BusinessID          uuid.UUID `json:"business_id" binding:"required"`
	PurchaseAmountCents int64     `json:"purchase_amount_cents" binding:"max=100000000000"`
}

func (r AccrualRequest) ToCommand() commands.AccrueRequest {
	return commands.AccrueRequest{
		CustomerID:          r.CustomerID,
		BusinessID:          r.BusinessID,
		PurchaseAmountCents: r.PurchaseAmountCents,
	}
}

type AdjustmentRequest struct {
	CustomerID uuid.UUID `json:"customer_id" binding:"required"`
	BusinessID uuid.UUID `json:"business_id" binding:"required"`
	Delta      int64     `json:"delta"`
	Reason     string    `json:"reason" binding:"required,max=500"`
}

func (r AdjustmentRequest) ToCommand() commands.AdjustRequest {
	return commands.AdjustRequest{
		CustomerID: r.CustomerID,
		BusinessID: r.BusinessID,
		Delta:      r.Delta,
		Reason:     strings.TrimSpace(r.Reason),
	}
}

type HistoryQuery struct {
	After string `form:"after"`
	Limit int    `form:"limit" binding:"omitempty,min=1,max=200"`
}
