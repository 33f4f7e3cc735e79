package queries

import (
	"context"

	"loyalty-ledger/internal/infra"
	"loyalty-ledger/internal/pkg/errs"

	"github.com/google/uuid"
)

type AccountReadStore interface {
	FindBalance(ctx context.Context, customerID, businessID uuid.UUID) (*AccountView, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*AccountView, error)
	ListEntries(ctx context.Context, customerID, businessID uuid.UUID, after *Position, limit int) ([]*LedgerEntryView, error)
}

type AccountQueries interface {
	GetBalance(ctx context.Context, customerID, businessID uuid.UUID) (*AccountView, error)
	ListBalances(ctx context.Context, customerID uuid.UUID) ([]*AccountView, error)
	History(ctx context.Context, customerID, businessID uuid.UUID, cursor *Cursor, limit int) ([]*LedgerEntryView, *Cursor, error)
}

type accountQueriesImpl struct {
	store AccountReadStore
}

func NewAccountQueries(store AccountReadStore) AccountQueries {
	return &accountQueriesImpl{store: store}
}

func (q *accountQueriesImpl) GetBalance(ctx context.Context, customerID, businessID uuid.UUID) (*AccountView, error) {
	v, err := withReadRetry(ctx, "account.balance", func(ctx context.Context) (*AccountView, error) {
		return q.store.FindBalance(ctx, customerID, businessID)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrAccountNotFound
		}
		return nil, err
	}
	return v, nil
}

func (q *accountQueriesImpl) ListBalances(ctx context.Context, customerID uuid.UUID) ([]*AccountView, error) {
	return withReadRetry(ctx, "account.list", func(ctx context.Context) ([]*AccountView, error) {
		return q.store.ListByCustomer(ctx, customerID)
	})
}

func (q *accountQueriesImpl) History(ctx context.Context, customerID, businessID uuid.UUID, cursor *Cursor, limit int) ([]*LedgerEntryView, *Cursor, error) {
	limit = ValidateLimit(limit)

	var after *Position
	if cursor != nil {
		pos, err := DecodeAfterCursor(cursor.After)
		if err != nil {
			return nil, nil, err
		}
		after = pos
	}

	rows, err := withReadRetry(ctx, "account.history", func(ctx context.Context) ([]*LedgerEntryView, error) {
		return q.store.ListEntries(ctx, customerID, businessID, after, limit+1)
	})
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}
