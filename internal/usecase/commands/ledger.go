package commands

import (
	"context"
	"log/slog"
	"time"

	"loyalty-ledger/internal/domain/ledger"
	"loyalty-ledger/internal/pkg/clock"
	"loyalty-ledger/internal/pkg/errs"
	"loyalty-ledger/internal/pkg/metrics"
	"loyalty-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

type AccrueRequest struct {
	CustomerID          uuid.UUID
	BusinessID          uuid.UUID
	PurchaseAmountCents int64
}

type AdjustRequest struct {
	CustomerID uuid.UUID
	BusinessID uuid.UUID
	Delta      int64
	Reason     string
}

type LedgerResult struct {
	EntryID    uuid.UUID `json:"entry_id"`
	CustomerID uuid.UUID `json:"customer_id"`
	BusinessID uuid.UUID `json:"business_id"`
	Delta      int64     `json:"delta"`
	NewBalance int64     `json:"new_balance"`
}

type LedgerCommands interface {
	// Accrue credits points for a purchase at the configured rate.
	Accrue(ctx context.Context, actor shared.Actor, req AccrueRequest) (*LedgerResult, error)
	// Adjust applies a signed manual correction.
	Adjust(ctx context.Context, actor shared.Actor, req AdjustRequest) (*LedgerResult, error)
}

type ledgerCommandsImpl struct {
	uow    shared.UnitOfWork
	policy ledger.AccrualPolicy
	clock  clock.Clock
}

func NewLedgerCommands(uow shared.UnitOfWork, policy ledger.AccrualPolicy, clk clock.Clock) LedgerCommands {
	return &ledgerCommandsImpl{uow: uow, policy: policy, clock: clk}
}

func (l *ledgerCommandsImpl) Accrue(ctx context.Context, actor shared.Actor, req AccrueRequest) (*LedgerResult, error) {
	if !actor.CanManage(req.BusinessID) {
		return nil, errs.ErrForbidden
	}
	key, err := ledger.NewAccountKey(req.CustomerID, req.BusinessID)
	if err != nil {
		return nil, err
	}
	points, err := l.policy.PointsFor(req.PurchaseAmountCents)
	if err != nil {
		return nil, err
	}

	now := l.clock.Now()
	var res *LedgerResult
	err = l.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entry, err := postCredit(ctx, tx, key, ledger.EntryAccrual, points, nil, "", now)
		if err != nil {
			return err
		}
		res = ledgerResultOf(entry)
		return enqueueNotification(ctx, tx, NotificationPointsAccrued, res, now)
	})
	metrics.RecordOperation("accrue", outcomeOf(err))
	if err != nil {
		return nil, err
	}
	recordMovement(ledger.EntryAccrual, res.Delta)

	slog.Info("points accrued",
		"customer_id", req.CustomerID,
		"business_id", req.BusinessID,
		"points", points.Value(),
		"balance", res.NewBalance)
	return res, nil
}

func (l *ledgerCommandsImpl) Adjust(ctx context.Context, actor shared.Actor, req AdjustRequest) (*LedgerResult, error) {
	if !actor.CanManage(req.BusinessID) {
		return nil, errs.ErrForbidden
	}
	key, err := ledger.NewAccountKey(req.CustomerID, req.BusinessID)
	if err != nil {
		return nil, err
	}
	if req.Delta == 0 {
		return nil, errs.ErrInvalidAmount
	}

	magnitude := req.Delta
	if magnitude < 0 {
		magnitude = -magnitude
	}
	points, err := ledger.NewPoints(magnitude)
	if err != nil {
		return nil, err
	}

	now := l.clock.Now()
	var res *LedgerResult
	err = l.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var (
			entry *ledger.Entry
			err   error
		)
		if req.Delta > 0 {
			entry, err = postCredit(ctx, tx, key, ledger.EntryAdjustment, points, nil, req.Reason, now)
		} else {
			entry, err = postDebit(ctx, tx, key, ledger.EntryAdjustment, points, nil, req.Reason, now)
		}
		if err != nil {
			return err
		}
		res = ledgerResultOf(entry)
		return nil
	})
	metrics.RecordOperation("adjust", outcomeOf(err))
	if err != nil {
		return nil, err
	}
	recordMovement(ledger.EntryAdjustment, res.Delta)

	slog.Info("balance adjusted",
		"actor_id", actor.UserID,
		"customer_id", req.CustomerID,
		"business_id", req.BusinessID,
		"delta", req.Delta,
		"balance", res.NewBalance)
	return res, nil
}

// postCredit is the only path that raises a balance; the journal entry lands in the same transaction.
func postCredit(
	ctx context.Context,
	tx shared.Tx,
	key ledger.AccountKey,
	kind ledger.EntryKind,
	points ledger.Points,
	referenceID *uuid.UUID,
	note string,
	now time.Time,
) (*ledger.Entry, error) {
	balance, err := tx.Accounts().Credit(ctx, key, points, now)
	if err != nil {
		return nil, err
	}
	entry, err := ledger.NewCreditEntry(key, kind, points, balance, referenceID, note, now)
	if err != nil {
		return nil, err
	}
	if err := tx.Entries().Append(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// postDebit fails with errs.ErrInsufficientBalance without touching the balance.
func postDebit(
	ctx context.Context,
	tx shared.Tx,
	key ledger.AccountKey,
	kind ledger.EntryKind,
	points ledger.Points,
	referenceID *uuid.UUID,
	note string,
	now time.Time,
) (*ledger.Entry, error) {
	balance, err := tx.Accounts().Debit(ctx, key, points, now)
	if err != nil {
		return nil, err
	}
	entry, err := ledger.NewDebitEntry(key, kind, points, balance, referenceID, note, now)
	if err != nil {
		return nil, err
	}
	if err := tx.Entries().Append(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func ledgerResultOf(e *ledger.Entry) *LedgerResult {
	return &LedgerResult{
		EntryID:    e.ID(),
		CustomerID: e.Key().CustomerID,
		BusinessID: e.Key().BusinessID,
		Delta:      e.Delta(),
		NewBalance: e.BalanceAfter(),
	}
}

// recordMovement runs after commit so retried transactions are counted once.
func recordMovement(kind ledger.EntryKind, delta int64) {
	switch {
	case delta > 0:
		metrics.RecordCredit(kind.String(), delta)
	case delta < 0:
		metrics.RecordDebit(kind.String(), -delta)
	}
}

func outcomeOf(err error) string {
	if err == nil {
		return "ok"
	}
	return string(errs.KindOf(err))
}
