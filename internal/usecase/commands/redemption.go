package commands

import (
	"context"
	"log/slog"
	"time"

	"loyalty-ledger/internal/domain/ledger"
	"loyalty-ledger/internal/domain/redemption"
	"loyalty-ledger/internal/infra"
	"loyalty-ledger/internal/pkg/clock"
	"loyalty-ledger/internal/pkg/errs"
	"loyalty-ledger/internal/pkg/metrics"
	"loyalty-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

const EndpointRedeem = "POST /rewards/:id/redeem"

type RedeemResult struct {
	RedemptionID uuid.UUID `json:"redemption_id"`
	RewardID     uuid.UUID `json:"reward_id"`
	BusinessID   uuid.UUID `json:"business_id"`
	PointsSpent  int64     `json:"points_spent"`
	NewBalance   int64     `json:"new_balance"`
	RedeemedAt   time.Time `json:"redeemed_at"`
	IsReplayed   bool      `json:"-"`
}

type RedemptionCommands interface {
	// Redeem spends the reward's cost from the customer's balance at the reward's business.
	// A nil key disables replay protection.
	Redeem(ctx context.Context, customerID, rewardID uuid.UUID, key *IdempotencyKey) (*RedeemResult, error)
}

type redemptionCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewRedemptionCommands(uow shared.UnitOfWork, clk clock.Clock) RedemptionCommands {
	return &redemptionCommandsImpl{uow: uow, clock: clk}
}

func (r *redemptionCommandsImpl) Redeem(ctx context.Context, customerID, rewardID uuid.UUID, key *IdempotencyKey) (*RedeemResult, error) {
	now := r.clock.Now()

	var (
		res      *RedeemResult
		replayed bool
	)
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		res, replayed, err = runIdempotent(ctx, tx, customerID, key, now, func() (*RedeemResult, error) {
			return r.redeem(ctx, tx, customerID, rewardID, now)
		})
		return err
	})
	metrics.RecordOperation("redeem", outcomeOf(err))
	if err != nil {
		if errs.Is(err, errs.ErrInsufficientBalance) {
			slog.Info("redemption rejected", "customer_id", customerID, "reward_id", rewardID, "reason", "insufficient balance")
		}
		return nil, err
	}
	res.IsReplayed = replayed
	if !replayed {
		recordMovement(ledger.EntryRedemption, -res.PointsSpent)
		slog.Info("reward redeemed",
			"customer_id", customerID,
			"reward_id", rewardID,
			"redemption_id", res.RedemptionID,
			"balance", res.NewBalance)
	}
	return res, nil
}

func (r *redemptionCommandsImpl) redeem(ctx context.Context, tx shared.Tx, customerID, rewardID uuid.UUID, now time.Time) (*RedeemResult, error) {
	rw, err := tx.Rewards().FindByID(ctx, rewardID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrRewardNotFound
		}
		return nil, err
	}
	if err := rw.EnsureRedeemable(); err != nil {
		return nil, err
	}

	key, err := ledger.NewAccountKey(customerID, rw.BusinessID())
	if err != nil {
		return nil, err
	}
	rd := redemption.NewRedemption(customerID, rw, now)
	ref := rd.ID()

	entry, err := postDebit(ctx, tx, key, ledger.EntryRedemption, rd.PointsSpent(), &ref, rw.Name(), now)
	if err != nil {
		return nil, err
	}
	if err := tx.Redemptions().Create(ctx, rd); err != nil {
		return nil, err
	}

	res := &RedeemResult{
		RedemptionID: rd.ID(),
		RewardID:     rw.ID(),
		BusinessID:   rw.BusinessID(),
		PointsSpent:  rd.PointsSpent().Value(),
		NewBalance:   entry.BalanceAfter(),
		RedeemedAt:   rd.RedeemedAt(),
	}
	if err := enqueueNotification(ctx, tx, NotificationRedemptionCreated, res, now); err != nil {
		return nil, err
	}
	return res, nil
}
