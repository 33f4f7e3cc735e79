package ledger

import (
	"time"

	"loyalty-ledger/internal/pkg/errs"

	"github.com/google/uuid"
)

// Account is the points balance a customer holds at one business.
type Account struct {
	key       AccountKey
	points    int64
	createdAt time.Time
	updatedAt time.Time
}

// NewAccount opens an empty account. Accounts are created by their first credit.
func NewAccount(key AccountKey, now time.Time) *Account {
	return &Account{
		key:       key,
		createdAt: now,
		updatedAt: now,
	}
}

func ReconstructAccount(customerID, businessID uuid.UUID, points int64, createdAt, updatedAt time.Time) *Account {
	return &Account{
		key:       AccountKey{CustomerID: customerID, BusinessID: businessID},
		points:    points,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (a *Account) Credit(p Points, now time.Time) int64 {
	a.points += p.Value()
	a.updatedAt = now
	return a.points
}

func (a *Account) Debit(p Points, now time.Time) (int64, error) {
	if !a.CanAfford(p) {
		return a.points, errs.ErrInsufficientBalance
	}
	a.points -= p.Value()
	a.updatedAt = now
	return a.points, nil
}

func (a *Account) CanAfford(p Points) bool {
	return a.points >= p.Value()
}

func (a *Account) Key() AccountKey       { return a.key }
func (a *Account) CustomerID() uuid.UUID { return a.key.CustomerID }
func (a *Account) BusinessID() uuid.UUID { return a.key.BusinessID }
func (a *Account) Points() int64         { return a.points }
func (a *Account) CreatedAt() time.Time  { return a.createdAt }
func (a *Account) UpdatedAt() time.Time  { return a.updatedAt }
