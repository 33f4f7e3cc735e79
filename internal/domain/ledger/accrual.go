package ledger

import (
	"math"
	"strings"

	"loyalty-ledger/internal/pkg/errs"
)

type Rounding string

const (
	RoundNearest Rounding = "nearest"
	RoundFloor   Rounding = "floor"

	bpsDenominator = 10_000
)

// AccrualPolicy converts a purchase amount in minor currency units into points.
type AccrualPolicy struct {
	rateBps  int64
	rounding Rounding
}

func NewAccrualPolicy(rateBps int64, rounding string) (AccrualPolicy, error) {
	if rateBps <= 0 {
		return AccrualPolicy{}, ErrInvalidRate
	}
	r := Rounding(strings.ToLower(strings.TrimSpace(rounding)))
	if r == "" {
		r = RoundNearest
	}
	if r != RoundNearest && r != RoundFloor {
		return AccrualPolicy{}, ErrInvalidRounding
	}
	return AccrualPolicy{rateBps: rateBps, rounding: r}, nil
}

// PointsFor fails with InvalidAmount when the purchase earns nothing
// or is too large to scale by the rate without overflowing.
func (p AccrualPolicy) PointsFor(amountMinor int64) (Points, error) {
	if amountMinor <= 0 {
		return NewPoints(0)
	}
	if amountMinor > math.MaxInt64/p.rateBps {
		return Points{}, errs.ErrInvalidAmount
	}
	scaled := amountMinor * p.rateBps
	earned := scaled / bpsDenominator
	if p.rounding == RoundNearest && (scaled%bpsDenominator)*2 >= bpsDenominator {
		earned++
	}
	return NewPoints(earned)
}

func (p AccrualPolicy) RateBps() int64     { return p.rateBps }
func (p AccrualPolicy) Rounding() Rounding { return p.rounding }
