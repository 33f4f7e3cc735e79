package shared

import (
	"context"
	"time"

	"loyalty-ledger/internal/domain/ledger"
	"loyalty-ledger/internal/domain/raffle"
	"loyalty-ledger/internal/domain/redemption"
	"loyalty-ledger/internal/domain/reward"
	"loyalty-ledger/internal/domain/user"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within runs fn in one write transaction; every repository reached through tx shares it.
	// Implementations retry transient conflicts, so fn must not have side effects outside tx.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: validation reads outside a transaction
	CommandReads() CommandReads
}

type Tx interface {
	Accounts() AccountRepository
	Entries() LedgerEntryRepository
	Rewards() RewardRepository
	Redemptions() RedemptionRepository
	Raffles() RaffleRepository
	Tickets() TicketRepository
	Idempotency() IdempotencyRepository
	Notifications() NotificationRepository
	Users() UserRepository
	Reads() CommandReads
}

type CommandReads interface {
	RewardByID(ctx context.Context, id uuid.UUID) (*reward.Reward, error)
	RaffleByID(ctx context.Context, id uuid.UUID) (*raffle.Raffle, error)
	RafflesDueForDraw(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error)
	UserByEmail(ctx context.Context, email string) (*UserSnapshot, error)
}

// AccountRepository holds the only two balance mutations. Both are atomic at the storage layer.
type AccountRepository interface {
	// Credit creates the account on first use and returns the new balance.
	// An unknown customer or business yields errs.ErrCustomerNotFound or errs.ErrBusinessNotFound.
	Credit(ctx context.Context, key ledger.AccountKey, amount ledger.Points, now time.Time) (int64, error)
	// Debit fails with errs.ErrInsufficientBalance and leaves the balance untouched when it cannot be covered.
	Debit(ctx context.Context, key ledger.AccountKey, amount ledger.Points, now time.Time) (int64, error)
	Balance(ctx context.Context, key ledger.AccountKey) (int64, error)
}

type LedgerEntryRepository interface {
	Append(ctx context.Context, entry *ledger.Entry) error
}

type RewardRepository interface {
	Create(ctx context.Context, r *reward.Reward) error
	UpdateActive(ctx context.Context, r *reward.Reward) error
	FindByID(ctx context.Context, id uuid.UUID) (*reward.Reward, error)
}

type RedemptionRepository interface {
	Create(ctx context.Context, r *redemption.Redemption) error
}

type RaffleRepository interface {
	Create(ctx context.Context, r *raffle.Raffle) error
	// FindForUpdate locks the raffle row until the transaction ends.
	FindForUpdate(ctx context.Context, id uuid.UUID) (*raffle.Raffle, error)
	MarkClosed(ctx context.Context, r *raffle.Raffle) error
	// Complete is a conditional write; it fails with errs.ErrAlreadyCompleted if another draw got there first.
	Complete(ctx context.Context, r *raffle.Raffle) error
}

type TicketRepository interface {
	Create(ctx context.Context, t *raffle.Ticket) error
	CountByCustomer(ctx context.Context, raffleID, customerID uuid.UUID) (int, error)
	ListByRaffle(ctx context.Context, raffleID uuid.UUID) ([]*raffle.Ticket, error)
	DeleteByCustomer(ctx context.Context, raffleID, customerID uuid.UUID) ([]*raffle.Ticket, error)
}

type IdempotencyRepository interface {
	// TryInsert reports false when the key already exists for the user.
	TryInsert(ctx context.Context, rec IdempotencyRecord) (bool, error)
	Get(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
	MarkCompleted(ctx context.Context, key, userID uuid.UUID, result []byte) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	UpdateLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error
}
