package commands

import (
	"context"
	"log/slog"

	"loyalty-ledger/internal/domain/reward"
	"loyalty-ledger/internal/infra"
	"loyalty-ledger/internal/pkg/clock"
	"loyalty-ledger/internal/pkg/errs"
	"loyalty-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateRewardRequest struct {
	BusinessID     uuid.UUID
	Name           string
	Description    string
	PointsRequired int64
}

type CreateRewardResult struct {
	RewardID uuid.UUID
}

type RewardCommands interface {
	CreateReward(ctx context.Context, actor shared.Actor, req CreateRewardRequest) (*CreateRewardResult, error)
	SetRewardActive(ctx context.Context, actor shared.Actor, rewardID uuid.UUID, active bool) error
}

type rewardCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewRewardCommands(uow shared.UnitOfWork, clk clock.Clock) RewardCommands {
	return &rewardCommandsImpl{uow: uow, clock: clk}
}

func (c *rewardCommandsImpl) CreateReward(ctx context.Context, actor shared.Actor, req CreateRewardRequest) (*CreateRewardResult, error) {
	if !actor.CanManage(req.BusinessID) {
		return nil, errs.ErrForbidden
	}
	rw, err := reward.NewReward(req.BusinessID, req.Name, req.Description, req.PointsRequired, c.clock.Now())
	if err != nil {
		return nil, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Rewards().Create(ctx, rw)
	})
	if err != nil {
		return nil, err
	}

	slog.Info("reward created", "reward_id", rw.ID(), "business_id", rw.BusinessID(), "actor_id", actor.UserID)
	return &CreateRewardResult{RewardID: rw.ID()}, nil
}

func (c *rewardCommandsImpl) SetRewardActive(ctx context.Context, actor shared.Actor, rewardID uuid.UUID, active bool) error {
	now := c.clock.Now()
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rw, err := tx.Rewards().FindByID(ctx, rewardID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrRewardNotFound
			}
			return err
		}
		if !actor.CanManage(rw.BusinessID()) {
			return errs.ErrForbidden
		}
		rw.SetActive(active, now)
		return tx.Rewards().UpdateActive(ctx, rw)
	})
}
