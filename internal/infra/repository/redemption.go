package repository

import (
	"context"

	"loyalty-ledger/internal/domain/redemption"
	"loyalty-ledger/internal/infra"
	"loyalty-ledger/internal/infra/db"
)

const createRedemptionSQL = `
INSERT INTO redemptions (id, customer_id, reward_id, business_id, points_spent, redeemed_at)
VALUES ($1, $2, $3, $4, $5, $6)`

type RedemptionRepository struct {
	db db.DBTX
}

func NewRedemptionRepository(dbtx db.DBTX) *RedemptionRepository {
	return &RedemptionRepository{db: dbtx}
}

func (r *RedemptionRepository) Create(ctx context.Context, rd *redemption.Redemption) error {
	_, err := r.db.Exec(ctx, createRedemptionSQL,
		rd.ID(),
		rd.CustomerID(),
		rd.RewardID(),
		rd.BusinessID(),
		rd.PointsSpent().Value(),
		rd.RedeemedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create redemption", err)
	}
	return nil
}
