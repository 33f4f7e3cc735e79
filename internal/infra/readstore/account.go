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
	accountViewColumns = `a.customer_id, a.business_id, b.name, a.points, a.updated_at`

	findAccountSQL = `
SELECT ` + accountViewColumns + `
FROM loyalty_accounts a JOIN businesses b ON b.id = a.business_id
WHERE a.customer_id = $1 AND a.business_id = $2`

	listAccountsSQL = `
SELECT ` + accountViewColumns + `
FROM loyalty_accounts a JOIN businesses b ON b.id = a.business_id
WHERE a.customer_id = $1
ORDER BY b.name, a.business_id`

	entryColumns = `id, kind, delta, balance_after, reference_id, note, created_at`

	listEntriesFirstPageSQL = `
SELECT ` + entryColumns + ` FROM ledger_entries
WHERE customer_id = $1 AND business_id = $2
ORDER BY created_at DESC, id DESC
LIMIT $3`

	listEntriesKeysetSQL = `
SELECT ` + entryColumns + ` FROM ledger_entries
WHERE customer_id = $1 AND business_id = $2 AND (created_at, id) < ($3, $4)
ORDER BY created_at DESC, id DESC
LIMIT $5`
)

type AccountReadStore struct {
	db db.DBTX
}

func NewAccountReadStore(dbtx db.DBTX) *AccountReadStore {
	return &AccountReadStore{db: dbtx}
}

func (s *AccountReadStore) FindBalance(ctx context.Context, customerID, businessID uuid.UUID) (*queries.AccountView, error) {
	var v queries.AccountView
	err := s.db.QueryRow(ctx, findAccountSQL, customerID, businessID).
		Scan(&v.CustomerID, &v.BusinessID, &v.BusinessName, &v.Points, &v.UpdatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find account", err)
	}
	return &v, nil
}

func (s *AccountReadStore) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*queries.AccountView, error) {
	rows, err := s.db.Query(ctx, listAccountsSQL, customerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list accounts", err)
	}
	views, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*queries.AccountView, error) {
		var v queries.AccountView
		err := row.Scan(&v.CustomerID, &v.BusinessID, &v.BusinessName, &v.Points, &v.UpdatedAt)
		return &v, err
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan accounts", err)
	}
	return views, nil
}

func (s *AccountReadStore) ListEntries(ctx context.Context, customerID, businessID uuid.UUID, after *queries.Position, limit int) ([]*queries.LedgerEntryView, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if after == nil {
		rows, err = s.db.Query(ctx, listEntriesFirstPageSQL, customerID, businessID, limit)
	} else {
		rows, err = s.db.Query(ctx, listEntriesKeysetSQL, customerID, businessID, after.CreatedAt, after.ID, limit)
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list ledger entries", err)
	}

	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*queries.LedgerEntryView, error) {
		var (
			v    queries.LedgerEntryView
			ref  pgtype.UUID
			note pgtype.Text
		)
		if err := row.Scan(&v.ID, &v.Kind, &v.Delta, &v.BalanceAfter, &ref, &note, &v.CreatedAt); err != nil {
			return nil, err
		}
		v.ReferenceID = pgconv.UUIDPtrFromPgtype(ref)
		v.Note = pgconv.StringPtrFromPgtype(note)
		return &v, nil
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan ledger entries", err)
	}
	return entries, nil
}
