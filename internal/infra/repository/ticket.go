package repository

import (
	"context"
	"time"

	"loyalty-ledger/internal/domain/raffle"
	"loyalty-ledger/internal/infra"
	"loyalty-ledger/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	ticketColumns = `id, raffle_id, customer_id, business_id, points_spent, created_at`

	createTicketSQL = `
INSERT INTO raffle_tickets (` + ticketColumns + `)
VALUES ($1, $2, $3, $4, $5, $6)`

	countTicketsByCustomerSQL = `
SELECT count(*) FROM raffle_tickets WHERE raffle_id = $1 AND customer_id = $2`

	listTicketsByRaffleSQL = `
SELECT ` + ticketColumns + ` FROM raffle_tickets WHERE raffle_id = $1 ORDER BY created_at, id`

	deleteTicketsByCustomerSQL = `
DELETE FROM raffle_tickets WHERE raffle_id = $1 AND customer_id = $2
RETURNING ` + ticketColumns
)

type TicketRepository struct {
	db db.DBTX
}

func NewTicketRepository(dbtx db.DBTX) *TicketRepository {
	return &TicketRepository{db: dbtx}
}

func (r *TicketRepository) Create(ctx context.Context, t *raffle.Ticket) error {
	_, err := r.db.Exec(ctx, createTicketSQL,
		t.ID(),
		t.RaffleID(),
		t.CustomerID(),
		t.BusinessID(),
		t.PointsSpent(),
		t.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create ticket", err)
	}
	return nil
}

func (r *TicketRepository) CountByCustomer(ctx context.Context, raffleID, customerID uuid.UUID) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, countTicketsByCustomerSQL, raffleID, customerID).Scan(&n); err != nil {
		return 0, infra.WrapRepoErr("failed to count tickets", err)
	}
	return n, nil
}

func (r *TicketRepository) ListByRaffle(ctx context.Context, raffleID uuid.UUID) ([]*raffle.Ticket, error) {
	rows, err := r.db.Query(ctx, listTicketsByRaffleSQL, raffleID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list tickets", err)
	}
	tickets, err := collectTickets(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan tickets", err)
	}
	return tickets, nil
}

func (r *TicketRepository) DeleteByCustomer(ctx context.Context, raffleID, customerID uuid.UUID) ([]*raffle.Ticket, error) {
	rows, err := r.db.Query(ctx, deleteTicketsByCustomerSQL, raffleID, customerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to delete tickets", err)
	}
	tickets, err := collectTickets(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan deleted tickets", err)
	}
	return tickets, nil
}

func collectTickets(rows pgx.Rows) ([]*raffle.Ticket, error) {
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (*raffle.Ticket, error) {
		var (
			id, raffleID, customerID, businessID uuid.UUID
			pointsSpent                          int64
			createdAt                            time.Time
		)
		if err := row.Scan(&id, &raffleID, &customerID, &businessID, &pointsSpent, &createdAt); err != nil {
			return nil, err
		}
		return raffle.ReconstructTicket(id, raffleID, customerID, businessID, pointsSpent, createdAt), nil
	})
}
