package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"loyalty-ledger/internal/domain/raffle"
	"loyalty-ledger/internal/domain/reward"
	"loyalty-ledger/internal/infra/db"
	"loyalty-ledger/internal/infra/readstore"
	"loyalty-ledger/internal/infra/repository"
	"loyalty-ledger/internal/pkg/errs"
	"loyalty-ledger/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"

	maxRetries  = 3
	backoffBase = 100 * time.Millisecond
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{pool: pool}
}

// ReadCommitted is enough: balance and raffle writes are conditional updates or row locks.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(errs.Mark(err, errTransactionBegin), errs.ErrBackendUnavailable)
		}

		err = fn(ctx, &pgTx{dbtx: pgxTx})
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !isRetryableError(err) {
			return err
		}
		if attempt == maxRetries {
			slog.Error("transaction failed after max retries",
				"attempts", attempt+1,
				"error", err.Error())
			return errs.Mark(errs.Mark(err, errMaxRetriesExceeded), errs.ErrBackendUnavailable)
		}

		waitTime := calculateBackoff(attempt, backoffBase)
		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- high bit masked above
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx db.DBTX

	// Lazy-initialized repositories
	accounts      shared.AccountRepository
	entries       shared.LedgerEntryRepository
	rewards       shared.RewardRepository
	redemptions   shared.RedemptionRepository
	raffles       shared.RaffleRepository
	tickets       shared.TicketRepository
	idempotency   shared.IdempotencyRepository
	notifications shared.NotificationRepository
	users         shared.UserRepository
	reads         shared.CommandReads
}

func (t *pgTx) Accounts() shared.AccountRepository {
	if t.accounts == nil {
		t.accounts = repository.NewAccountRepository(t.dbtx)
	}
	return t.accounts
}

func (t *pgTx) Entries() shared.LedgerEntryRepository {
	if t.entries == nil {
		t.entries = repository.NewLedgerEntryRepository(t.dbtx)
	}
	return t.entries
}

func (t *pgTx) Rewards() shared.RewardRepository {
	if t.rewards == nil {
		t.rewards = repository.NewRewardRepository(t.dbtx)
	}
	return t.rewards
}

func (t *pgTx) Redemptions() shared.RedemptionRepository {
	if t.redemptions == nil {
		t.redemptions = repository.NewRedemptionRepository(t.dbtx)
	}
	return t.redemptions
}

func (t *pgTx) Raffles() shared.RaffleRepository {
	if t.raffles == nil {
		t.raffles = repository.NewRaffleRepository(t.dbtx)
	}
	return t.raffles
}

func (t *pgTx) Tickets() shared.TicketRepository {
	if t.tickets == nil {
		t.tickets = repository.NewTicketRepository(t.dbtx)
	}
	return t.tickets
}

func (t *pgTx) Idempotency() shared.IdempotencyRepository {
	if t.idempotency == nil {
		t.idempotency = repository.NewIdempotencyRepository(t.dbtx)
	}
	return t.idempotency
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notifications == nil {
		t.notifications = repository.NewNotificationRepository(t.dbtx)
	}
	return t.notifications
}

func (t *pgTx) Users() shared.UserRepository {
	if t.users == nil {
		t.users = repository.NewUserRepository(t.dbtx)
	}
	return t.users
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.reads == nil {
		t.reads = &commandReads{dbtx: t.dbtx}
	}
	return t.reads
}

type commandReads struct {
	dbtx db.DBTX
}

func (r *commandReads) RewardByID(ctx context.Context, id uuid.UUID) (*reward.Reward, error) {
	return repository.NewRewardRepository(r.dbtx).FindByID(ctx, id)
}

func (r *commandReads) RaffleByID(ctx context.Context, id uuid.UUID) (*raffle.Raffle, error) {
	return repository.NewRaffleRepository(r.dbtx).FindByID(ctx, id)
}

func (r *commandReads) RafflesDueForDraw(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error) {
	return repository.NewRaffleRepository(r.dbtx).DueForDraw(ctx, now, limit)
}

func (r *commandReads) UserByEmail(ctx context.Context, email string) (*shared.UserSnapshot, error) {
	return readstore.NewUserReadStore(r.dbtx).FindByEmail(ctx, email)
}
