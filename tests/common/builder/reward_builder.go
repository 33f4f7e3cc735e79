//go:build unit || e2e

package builder

import (
	"time"

	"loyalty-ledger/internal/domain/reward"
	"loyalty-ledger/internal/usecase/queries"

	"github.com/google/uuid"
)

type RewardBuilder struct {
	ID             uuid.UUID
	BusinessID     uuid.UUID
	Name           string
	Description    string
	PointsRequired int64
	IsActive       bool
	CreatedAt      time.Time
}

func NewRewardBuilder() *RewardBuilder {
	return &RewardBuilder{
		ID:             uuid.New(),
		BusinessID:     uuid.New(),
		Name:           "Free Coffee",
		Description:    "Any size, any blend",
		PointsRequired: 100,
		IsActive:       true,
		CreatedAt:      time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (r *RewardBuilder) With(mutate func(*RewardBuilder)) *RewardBuilder {
	mutate(r)
	return r
}

func (r *RewardBuilder) ForBusiness(id uuid.UUID) *RewardBuilder {
	r.BusinessID = id
	return r
}

func (r *RewardBuilder) WithCost(points int64) *RewardBuilder {
	r.PointsRequired = points
	return r
}

func (r *RewardBuilder) Inactive() *RewardBuilder {
	r.IsActive = false
	return r
}

func (r *RewardBuilder) BuildDomain() *reward.Reward {
	rw, err := reward.ReconstructReward(r.ID, r.BusinessID, r.Name, r.Description, r.PointsRequired, r.IsActive, r.CreatedAt, r.CreatedAt)
	if err != nil {
		panic(err)
	}
	return rw
}

func (r *RewardBuilder) BuildView() *queries.RewardView {
	return &queries.RewardView{
		ID:             r.ID,
		BusinessID:     r.BusinessID,
		Name:           r.Name,
		Description:    r.Description,
		PointsRequired: r.PointsRequired,
		IsActive:       r.IsActive,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.CreatedAt,
	}
}
