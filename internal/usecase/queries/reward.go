package queries

import (
	"context"

	"loyalty-ledger/internal/infra"
	"loyalty-ledger/internal/pkg/errs"

	"github.com/google/uuid"
)

type RewardReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RewardView, error)
	ListByBusiness(ctx context.Context, businessID uuid.UUID, activeOnly bool) ([]*RewardView, error)
}

type RewardQueries interface {
	GetReward(ctx context.Context, id uuid.UUID) (*RewardView, error)
	// ListRewards hides inactive rewards unless includeInactive is set.
	ListRewards(ctx context.Context, businessID uuid.UUID, includeInactive bool) ([]*RewardView, error)
}

type rewardQueriesImpl struct {
	store RewardReadStore
}

func NewRewardQueries(store RewardReadStore) RewardQueries {
	return &rewardQueriesImpl{store: store}
}

func (q *rewardQueriesImpl) GetReward(ctx context.Context, id uuid.UUID) (*RewardView, error) {
	v, err := withReadRetry(ctx, "reward.get", func(ctx context.Context) (*RewardView, error) {
		return q.store.FindByID(ctx, id)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrRewardNotFound
		}
		return nil, err
	}
	return v, nil
}

func (q *rewardQueriesImpl) ListRewards(ctx context.Context, businessID uuid.UUID, includeInactive bool) ([]*RewardView, error) {
	return withReadRetry(ctx, "reward.list", func(ctx context.Context) ([]*RewardView, error) {
		return q.store.ListByBusiness(ctx, businessID, !includeInactive)
	})
}
