package readstore

import (
	"context"

	"loyalty-ledger/internal/infra"
	"loyalty-ledger/internal/infra/db"
	"loyalty-ledger/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	rewardViewColumns = `id, business_id, name, description, points_required, is_active, created_at, updated_at`

	findRewardViewSQL = `SELECT ` + rewardViewColumns + ` FROM rewards WHERE id = $1`

	listRewardsSQL = `
SELECT ` + rewardViewColumns + ` FROM rewards
WHERE business_id = $1 AND (is_active OR NOT $2)
ORDER BY points_required, created_at`
)

type RewardReadStore struct {
	db db.DBTX
}

func NewRewardReadStore(dbtx db.DBTX) *RewardReadStore {
	return &RewardReadStore{db: dbtx}
}

func (s *RewardReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RewardView, error) {
	v, err := scanRewardView(s.db.QueryRow(ctx, findRewardViewSQL, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reward", err)
	}
	return v, nil
}

func (s *RewardReadStore) ListByBusiness(ctx context.Context, businessID uuid.UUID, activeOnly bool) ([]*queries.RewardView, error) {
	rows, err := s.db.Query(ctx, listRewardsSQL, businessID, activeOnly)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rewards", err)
	}
	views, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*queries.RewardView, error) {
		return scanRewardView(row)
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan rewards", err)
	}
	return views, nil
}

func scanRewardView(row pgx.Row) (*queries.RewardView, error) {
	var v queries.RewardView
	err := row.Scan(&v.ID, &v.BusinessID, &v.Name, &v.Description, &v.PointsRequired, &v.IsActive, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
