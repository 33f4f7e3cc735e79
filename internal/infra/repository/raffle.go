package repository

import (
	"context"
	"time"

	"loyalty-ledger/internal/domain/raffle"
	"loyalty-ledger/internal/infra"
	"loyalty-ledger/internal/infra/db"
	"loyalty-ledger/internal/pkg/errs"
	"loyalty-ledger/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	raffleColumns = `id, business_id, title, description, points_required, max_tickets_per_user,
start_date, end_date, closed_at, winner_customer_id, winning_ticket_id, is_completed, created_at, updated_at`

	createRaffleSQL = `
INSERT INTO raffles (id, business_id, title, description, points_required, max_tickets_per_user,
	start_date, end_date, is_completed, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, false, $9, $10)`

	findRaffleSQL          = `SELECT ` + raffleColumns + ` FROM raffles WHERE id = $1`
	findRaffleForUpdateSQL = findRaffleSQL + ` FOR UPDATE`

	closeRaffleSQL = `
UPDATE raffles SET closed_at = $2, updated_at = $2
WHERE id = $1 AND closed_at IS NULL AND is_completed = false`

	// Single conditional write: of two concurrent draws only one matches is_completed = false.
	completeRaffleSQL = `
UPDATE raffles
SET winner_customer_id = $2, winning_ticket_id = $3, is_completed = true,
	closed_at = COALESCE(closed_at, $4), updated_at = $4
WHERE id = $1 AND is_completed = false`

	rafflesDueForDrawSQL = `
SELECT r.id FROM raffles r
WHERE r.is_completed = false
  AND (r.end_date < $1 OR r.closed_at IS NOT NULL)
  AND EXISTS (SELECT 1 FROM raffle_tickets t WHERE t.raffle_id = r.id)
ORDER BY r.end_date
LIMIT $2`
)

type RaffleRepository struct {
	db db.DBTX
}

func NewRaffleRepository(dbtx db.DBTX) *RaffleRepository {
	return &RaffleRepository{db: dbtx}
}

func (r *RaffleRepository) Create(ctx context.Context, rf *raffle.Raffle) error {
	_, err := r.db.Exec(ctx, createRaffleSQL,
		rf.ID(),
		rf.BusinessID(),
		rf.Title(),
		rf.Description(),
		rf.PointsRequired().Value(),
		rf.MaxTicketsPerUser(),
		rf.StartDate(),
		rf.EndDate(),
		rf.CreatedAt(),
		rf.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create raffle", err)
	}
	return nil
}

func (r *RaffleRepository) FindByID(ctx context.Context, id uuid.UUID) (*raffle.Raffle, error) {
	rf, err := scanRaffle(r.db.QueryRow(ctx, findRaffleSQL, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find raffle", err)
	}
	return rf, nil
}

func (r *RaffleRepository) FindForUpdate(ctx context.Context, id uuid.UUID) (*raffle.Raffle, error) {
	rf, err := scanRaffle(r.db.QueryRow(ctx, findRaffleForUpdateSQL, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock raffle", err)
	}
	return rf, nil
}

func (r *RaffleRepository) MarkClosed(ctx context.Context, rf *raffle.Raffle) error {
	if rf.ClosedAt() == nil {
		return nil
	}
	if _, err := r.db.Exec(ctx, closeRaffleSQL, rf.ID(), *rf.ClosedAt()); err != nil {
		return infra.WrapRepoErr("failed to close raffle", err)
	}
	return nil
}

func (r *RaffleRepository) Complete(ctx context.Context, rf *raffle.Raffle) error {
	tag, err := r.db.Exec(ctx, completeRaffleSQL,
		rf.ID(),
		pgconv.UUIDPtrToPgtype(rf.WinnerCustomerID()),
		pgconv.UUIDPtrToPgtype(rf.WinningTicketID()),
		rf.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to complete raffle", err)
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrAlreadyCompleted
	}
	return nil
}

func (r *RaffleRepository) DueForDraw(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, rafflesDueForDrawSQL, now, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list raffles due for draw", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan raffles due for draw", err)
	}
	return ids, nil
}

func scanRaffle(row pgx.Row) (*raffle.Raffle, error) {
	var (
		p        raffle.ReconstructParams
		closedAt pgtype.Timestamptz
		winner   pgtype.UUID
		ticket   pgtype.UUID
	)
	err := row.Scan(
		&p.ID,
		&p.BusinessID,
		&p.Title,
		&p.Description,
		&p.PointsRequired,
		&p.MaxTicketsPerUser,
		&p.StartDate,
		&p.EndDate,
		&closedAt,
		&winner,
		&ticket,
		&p.IsCompleted,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.ClosedAt = pgconv.TimePtrFromPgtype(closedAt)
	p.WinnerCustomerID = pgconv.UUIDPtrFromPgtype(winner)
	p.WinningTicketID = pgconv.UUIDPtrFromPgtype(ticket)
	return raffle.ReconstructRaffle(p)
}
