package ledger

import "loyalty-ledger/internal/pkg/errs"

var (
	ErrMissingCustomer  = errs.Mark(errs.New("customer id is required"), errs.ErrValidation)
	ErrMissingBusiness  = errs.Mark(errs.New("business id is required"), errs.ErrValidation)
	ErrUnknownEntryKind = errs.Mark(errs.New("unknown ledger entry kind"), errs.ErrValidation)
	ErrInvalidRounding  = errs.Mark(errs.New("unknown accrual rounding mode"), errs.ErrValidation)
	ErrInvalidRate      = errs.Mark(errs.New("accrual rate must be positive"), errs.ErrValidation)
)

type EntryKind string

const (
	EntryAccrual        EntryKind = "accrual"
	EntryAdjustment     EntryKind = "adjustment"
	EntryRedemption     EntryKind = "redemption"
	EntryTicketPurchase EntryKind = "ticket_purchase"
	EntryTicketRefund   EntryKind = "ticket_refund"
)

func (k EntryKind) String() string { return string(k) }

func (k EntryKind) IsValid() bool {
	switch k {
	case EntryAccrual, EntryAdjustment, EntryRedemption, EntryTicketPurchase, EntryTicketRefund:
		return true
	default:
		return false
	}
}

func ParseEntryKind(s string) (EntryKind, error) {
	k := EntryKind(s)
	if !k.IsValid() {
		return "", ErrUnknownEntryKind
	}
	return k, nil
}
