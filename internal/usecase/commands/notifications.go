package commands

import (
	"context"
	"encoding/json"
	"time"

	"loyalty-ledger/internal/pkg/errs"
	"loyalty-ledger/internal/usecase/shared"
)

const (
	NotificationRedemptionCreated = "redemption_created"
	NotificationRaffleWon         = "raffle_won"
	NotificationPointsAccrued     = "points_accrued"

	notificationTopicCustomer = "customer"
)

func enqueueNotification(ctx context.Context, tx shared.Tx, kind string, payload any, now time.Time) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return errs.Wrap(err, "failed to encode notification payload")
	}
	return tx.Notifications().CreateJob(ctx, kind, notificationTopicCustomer, b, now)
}
