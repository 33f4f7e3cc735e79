package repository

import (
	"context"
	"time"

	"loyalty-ledger/internal/domain/reward"
	"loyalty-ledger/internal/infra"
	"loyalty-ledger/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	createRewardSQL = `
INSERT INTO rewards (id, business_id, name, description, points_required, is_active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	updateRewardActiveSQL = `
UPDATE rewards SET is_active = $2, updated_at = $3 WHERE id = $1`

	findRewardSQL = `
SELECT id, business_id, name, description, points_required, is_active, created_at, updated_at
FROM rewards WHERE id = $1`
)

type RewardRepository struct {
	db db.DBTX
}

func NewRewardRepository(dbtx db.DBTX) *RewardRepository {
	return &RewardRepository{db: dbtx}
}

func (r *RewardRepository) Create(ctx context.Context, rw *reward.Reward) error {
	_, err := r.db.Exec(ctx, createRewardSQL,
		rw.ID(),
		rw.BusinessID(),
		rw.Name(),
		rw.Description(),
		rw.PointsRequired().Value(),
		rw.IsActive(),
		rw.CreatedAt(),
		rw.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create reward", err)
	}
	return nil
}

func (r *RewardRepository) UpdateActive(ctx context.Context, rw *reward.Reward) error {
	tag, err := r.db.Exec(ctx, updateRewardActiveSQL, rw.ID(), rw.IsActive(), rw.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to update reward", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFound("reward not found")
	}
	return nil
}

func (r *RewardRepository) FindByID(ctx context.Context, id uuid.UUID) (*reward.Reward, error) {
	rw, err := scanReward(r.db.QueryRow(ctx, findRewardSQL, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reward", err)
	}
	return rw, nil
}

func scanReward(row pgx.Row) (*reward.Reward, error) {
	var (
		id, businessID       uuid.UUID
		name, description    string
		pointsRequired       int64
		isActive             bool
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &businessID, &name, &description, &pointsRequired, &isActive, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return reward.ReconstructReward(id, businessID, name, description, pointsRequired, isActive, createdAt, updatedAt)
}
