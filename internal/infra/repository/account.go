package repository

import (
	"context"
	"time"

	"loyalty-ledger/internal/domain/ledger"
	"loyalty-ledger/internal/infra"
	"loyalty-ledger/internal/infra/db"
	"loyalty-ledger/internal/pkg/errs"
	"loyalty-ledger/internal/pkg/pgconv"
)

const (
	creditAccountSQL = `
INSERT INTO loyalty_accounts (customer_id, business_id, points, created_at, updated_at)
VALUES ($1, $2, $3, $4, $4)
ON CONFLICT (customer_id, business_id)
DO UPDATE SET points = loyalty_accounts.points + EXCLUDED.points, updated_at = EXCLUDED.updated_at
RETURNING points`

	// The balance guard lives in the WHERE clause, so concurrent debits cannot overdraw.
	debitAccountSQL = `
UPDATE loyalty_accounts
SET points = points - $3, updated_at = $4
WHERE customer_id = $1 AND business_id = $2 AND points >= $3
RETURNING points`

	accountBusinessFK = "loyalty_accounts_business_id_fkey"

	accountBalanceSQL = `
SELECT points FROM loyalty_accounts WHERE customer_id = $1 AND business_id = $2`
)

type AccountRepository struct {
	db db.DBTX
}

func NewAccountRepository(dbtx db.DBTX) *AccountRepository {
	return &AccountRepository{db: dbtx}
}

func (r *AccountRepository) Credit(ctx context.Context, key ledger.AccountKey, amount ledger.Points, now time.Time) (int64, error) {
	var balance int64
	err := r.db.QueryRow(ctx, creditAccountSQL, key.CustomerID, key.BusinessID, amount.Value(), now).Scan(&balance)
	if err != nil {
		err = infra.WrapRepoErr("failed to credit account", err)
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			if infra.ConstraintName(err) == accountBusinessFK {
				return 0, errs.ErrBusinessNotFound
			}
			return 0, errs.ErrCustomerNotFound
		}
		return 0, err
	}
	return balance, nil
}

func (r *AccountRepository) Debit(ctx context.Context, key ledger.AccountKey, amount ledger.Points, now time.Time) (int64, error) {
	var balance int64
	err := r.db.QueryRow(ctx, debitAccountSQL, key.CustomerID, key.BusinessID, amount.Value(), now).Scan(&balance)
	if err != nil {
		// no row: the account is missing or holds less than amount
		if pgconv.IsNoRows(err) {
			return 0, errs.ErrInsufficientBalance
		}
		return 0, infra.WrapRepoErr("failed to debit account", err)
	}
	return balance, nil
}

func (r *AccountRepository) Balance(ctx context.Context, key ledger.AccountKey) (int64, error) {
	var balance int64
	err := r.db.QueryRow(ctx, accountBalanceSQL, key.CustomerID, key.BusinessID).Scan(&balance)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, nil
		}
		return 0, infra.WrapRepoErr("failed to read balance", err)
	}
	return balance, nil
}
