package redemption

import (
	"time"

	"loyalty-ledger/internal/domain/ledger"
	"loyalty-ledger/internal/domain/reward"

	"github.com/google/uuid"
)

// Redemption records the price paid at the moment of redeeming, so later
// catalog edits never rewrite history.
type Redemption struct {
	id          uuid.UUID
	customerID  uuid.UUID
	rewardID    uuid.UUID
	businessID  uuid.UUID
	pointsSpent ledger.Points
	redeemedAt  time.Time
}

func NewRedemption(customerID uuid.UUID, r *reward.Reward, now time.Time) *Redemption {
	return &Redemption{
		id:          uuid.New(),
		customerID:  customerID,
		rewardID:    r.ID(),
		businessID:  r.BusinessID(),
		pointsSpent: r.PointsRequired(),
		redeemedAt:  now,
	}
}

func (r *Redemption) ID() uuid.UUID              { return r.id }
func (r *Redemption) CustomerID() uuid.UUID      { return r.customerID }
func (r *Redemption) RewardID() uuid.UUID        { return r.rewardID }
func (r *Redemption) BusinessID() uuid.UUID      { return r.businessID }
func (r *Redemption) PointsSpent() ledger.Points { return r.pointsSpent }
func (r *Redemption) RedeemedAt() time.Time      { return r.redeemedAt }
