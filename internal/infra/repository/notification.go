package repository

import (
	"context"
	"time"

	"loyalty-ledger/internal/infra"
	"loyalty-ledger/internal/infra/db"
)

const (
	NotificationStatusQueued = "queued"

	createNotificationJobSQL = `
INSERT INTO notification_jobs (kind, topic, payload, run_at, status)
VALUES ($1, $2, $3, $4, $5)`
)

// NotificationRepository writes to the outbox in the caller's transaction; delivery happens elsewhere.
type NotificationRepository struct {
	db db.DBTX
}

func NewNotificationRepository(dbtx db.DBTX) *NotificationRepository {
	return &NotificationRepository{db: dbtx}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	_, err := r.db.Exec(ctx, createNotificationJobSQL, kind, topic, payload, runAt, NotificationStatusQueued)
	if err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}
	return nil
}
