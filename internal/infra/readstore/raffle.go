package readstore

import (
	"context"

	"loyalty-ledger/internal/infra"
	"loyalty-ledger/internal/infra/db"
	"loyalty-ledger/internal/pkg/pgconv"
	"loyalty-ledger/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	raffleViewSelect = `
SELECT r.id, r.business_id, r.title, r.description, r.points_required, r.max_tickets_per_user,
	r.start_date, r.end_date, r.closed_at, r.winner_customer_id, r.is_completed, r.created_at,
	COALESCE(t.total, 0), COALESCE(t.participants, 0)
FROM raffles r
LEFT JOIN (
	SELECT raffle_id, count(*) AS total, count(DISTINCT customer_id) AS participants
	FROM raffle_tickets GROUP BY raffle_id
) t ON t.raffle_id = r.id`

	findRaffleViewSQL  = raffleViewSelect + ` WHERE r.id = $1`
	listRaffleViewsSQL = raffleViewSelect + ` WHERE r.business_id = $1 ORDER BY r.start_date DESC, r.id`
	countMyTicketsSQL  = `SELECT count(*) FROM raffle_tickets WHERE raffle_id = $1 AND customer_id = $2`
)

type RaffleReadStore struct {
	db db.DBTX
}

func NewRaffleReadStore(dbtx db.DBTX) *RaffleReadStore {
	return &RaffleReadStore{db: dbtx}
}

func (s *RaffleReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RaffleView, error) {
	v, err := scanRaffleView(s.db.QueryRow(ctx, findRaffleViewSQL, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find raffle", err)
	}
	return v, nil
}

func (s *RaffleReadStore) ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]*queries.RaffleView, error) {
	rows, err := s.db.Query(ctx, listRaffleViewsSQL, businessID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list raffles", err)
	}
	views, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*queries.RaffleView, error) {
		return scanRaffleView(row)
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan raffles", err)
	}
	return views, nil
}

func (s *RaffleReadStore) CountTickets(ctx context.Context, raffleID, customerID uuid.UUID) (int, error) {
	var n int
	if err := s.db.QueryRow(ctx, countMyTicketsSQL, raffleID, customerID).Scan(&n); err != nil {
		return 0, infra.WrapRepoErr("failed to count tickets", err)
	}
	return n, nil
}

func scanRaffleView(row pgx.Row) (*queries.RaffleView, error) {
	var (
		v        queries.RaffleView
		closedAt pgtype.Timestamptz
		winner   pgtype.UUID
	)
	err := row.Scan(
		&v.ID, &v.BusinessID, &v.Title, &v.Description, &v.PointsRequired, &v.MaxTicketsPerUser,
		&v.StartDate, &v.EndDate, &closedAt, &winner, &v.IsCompleted, &v.CreatedAt,
		&v.TotalTickets, &v.Participants,
	)
	if err != nil {
		return nil, err
	}
	v.ClosedAt = pgconv.TimePtrFromPgtype(closedAt)
	v.WinnerCustomerID = pgconv.UUIDPtrFromPgtype(winner)
	return &v, nil
}
