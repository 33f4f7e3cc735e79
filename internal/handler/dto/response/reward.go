package response

import (
	"loyalty-ledger/internal/usecase/commands"
	"loyalty-ledger/internal/usecase/queries"
)

type RewardResponse struct {
	ID             string `json:"id"`
	BusinessID     string `json:"business_id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	PointsRequired int64  `json:"points_required"`
	IsActive       bool   `json:"is_active"`
	CreatedAt      int64  `json:"created_at"`
	UpdatedAt      int64  `json:"updated_at"`
}

func FromRewardView(v *queries.RewardView) *RewardResponse {
	return &RewardResponse{
		ID:             v.ID.String(),
		BusinessID:     v.BusinessID.String(),
		Name:           v.Name,
		Description:    v.Description,
		PointsRequired: v.PointsRequired,
		IsActive:       v.IsActive,
		CreatedAt:      v.CreatedAt.Unix(),
		UpdatedAt:      v.UpdatedAt.Unix(),
	}
}

type RewardListResponse struct {
	Rewards []*RewardResponse `json:"rewards"`
}

func FromRewardViews(vs []*queries.RewardView) *RewardListResponse {
	out := &RewardListResponse{Rewards: make([]*RewardResponse, 0, len(vs))}
	for _, v := range vs {
		out.Rewards = append(out.Rewards, FromRewardView(v))
	}
	return out
}

type RedemptionResponse struct {
	RedemptionID string `json:"redemption_id"`
	RewardID     string `json:"reward_id"`
	BusinessID   string `json:"business_id"`
	PointsSpent  int64  `json:"points_spent"`
	NewBalance   int64  `json:"new_balance"`
	RedeemedAt   int64  `json:"redeemed_at"`
}

func FromRedeemResult(r *commands.RedeemResult) *RedemptionResponse {
	return &RedemptionResponse{
		RedemptionID: r.RedemptionID.String(),
		RewardID:     r.RewardID.String(),
		BusinessID:   r.BusinessID.String(),
		PointsSpent:  r.PointsSpent,
		NewBalance:   r.NewBalance,
		RedeemedAt:   r.RedeemedAt.Unix(),
	}
}
