package reward

import (
	"strings"
	"time"
	"unicode/utf8"

	"loyalty-ledger/internal/domain/ledger"
	"loyalty-ledger/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	MaxNameLength        = 120
	MaxDescriptionLength = 2000
)

var (
	ErrEmptyName          = errs.Mark(errs.New("reward name is required"), errs.ErrValidation)
	ErrNameTooLong        = errs.Mark(errs.New("reward name too long"), errs.ErrValidation)
	ErrDescriptionTooLong = errs.Mark(errs.New("reward description too long"), errs.ErrValidation)
	ErrMissingBusiness    = errs.Mark(errs.New("reward business id is required"), errs.ErrValidation)
)

// Reward is a catalog item a customer exchanges points for.
type Reward struct {
	id             uuid.UUID
	businessID     uuid.UUID
	name           string
	description    string
	pointsRequired ledger.Points
	isActive       bool
	createdAt      time.Time
	updatedAt      time.Time
}

func NewReward(businessID uuid.UUID, name, description string, pointsRequired int64, now time.Time) (*Reward, error) {
	if businessID == uuid.Nil {
		return nil, ErrMissingBusiness
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return nil, ErrNameTooLong
	}
	description = strings.TrimSpace(description)
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return nil, ErrDescriptionTooLong
	}
	cost, err := ledger.NewPoints(pointsRequired)
	if err != nil {
		return nil, err
	}

	return &Reward{
		id:             uuid.New(),
		businessID:     businessID,
		name:           name,
		description:    description,
		pointsRequired: cost,
		isActive:       true,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructReward(id, businessID uuid.UUID, name, description string, pointsRequired int64, isActive bool, createdAt, updatedAt time.Time) (*Reward, error) {
	cost, err := ledger.NewPoints(pointsRequired)
	if err != nil {
		return nil, err
	}
	return &Reward{
		id:             id,
		businessID:     businessID,
		name:           name,
		description:    description,
		pointsRequired: cost,
		isActive:       isActive,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

// EnsureRedeemable rejects inactive rewards.
func (r *Reward) EnsureRedeemable() error {
	if !r.isActive {
		return errs.ErrRewardInactive
	}
	return nil
}

func (r *Reward) SetActive(active bool, now time.Time) {
	if r.isActive == active {
		return
	}
	r.isActive = active
	r.updatedAt = now
}

func (r *Reward) ID() uuid.UUID                 { return r.id }
func (r *Reward) BusinessID() uuid.UUID         { return r.businessID }
func (r *Reward) Name() string                  { return r.name }
func (r *Reward) Description() string           { return r.description }
func (r *Reward) PointsRequired() ledger.Points { return r.pointsRequired }
func (r *Reward) IsActive() bool                { return r.isActive }
func (r *Reward) CreatedAt() time.Time          { return r.createdAt }
func (r *Reward) UpdatedAt() time.Time          { return r.updatedAt }
