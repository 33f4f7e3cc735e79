package ledger

import (
	"loyalty-ledger/internal/pkg/errs"

	"github.com/google/uuid"
)

// Points is a strictly positive amount moved by a credit or debit.
type Points struct {
	value int64
}

func NewPoints(v int64) (Points, error) {
	if v <= 0 {
		return Points{}, errs.ErrInvalidAmount
	}
	return Points{value: v}, nil
}

func (p Points) Value() int64 { return p.value }

type AccountKey struct {
	CustomerID uuid.UUID
	BusinessID uuid.UUID
}

func NewAccountKey(customerID, businessID uuid.UUID) (AccountKey, error) {
	if customerID == uuid.Nil {
		return AccountKey{}, ErrMissingCustomer
	}
	if businessID == uuid.Nil {
		return AccountKey{}, ErrMissingBusiness
	}
	return AccountKey{CustomerID: customerID, BusinessID: businessID}, nil
}
