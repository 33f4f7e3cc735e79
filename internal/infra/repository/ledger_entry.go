package repository

import (
	"context"

	"loyalty-ledger/internal/domain/ledger"
	"loyalty-ledger/internal/infra"
	"loyalty-ledger/internal/infra/db"
	"loyalty-ledger/internal/pkg/pgconv"
)

const appendEntrySQL = `
INSERT INTO ledger_entries (id, customer_id, business_id, kind, delta, balance_after, reference_id, note, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

type LedgerEntryRepository struct {
	db db.DBTX
}

func NewLedgerEntryRepository(dbtx db.DBTX) *LedgerEntryRepository {
	return &LedgerEntryRepository{db: dbtx}
}

func (r *LedgerEntryRepository) Append(ctx context.Context, e *ledger.Entry) error {
	_, err := r.db.Exec(ctx, appendEntrySQL,
		e.ID(),
		e.Key().CustomerID,
		e.Key().BusinessID,
		e.Kind().String(),
		e.Delta(),
		e.BalanceAfter(),
		pgconv.UUIDPtrToPgtype(e.ReferenceID()),
		pgconv.StringToNullablePgtype(e.Note()),
		e.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to append ledger entry", err)
	}
	return nil
}
