package raffle

import "loyalty-ledger/internal/pkg/errs"

var (
	ErrEmptyTitle       = errs.Mark(errs.New("raffle title is required"), errs.ErrValidation)
	ErrTitleTooLong     = errs.Mark(errs.New("raffle title too long"), errs.ErrValidation)
	ErrInvalidTicketCap = errs.Mark(errs.New("max tickets per user must be positive"), errs.ErrValidation)
	ErrInvalidSchedule  = errs.Mark(errs.New("raffle end date must be after start date"), errs.ErrValidation)
	ErrMissingBusiness  = errs.Mark(errs.New("raffle business id is required"), errs.ErrValidation)
)

const MaxTitleLength = 120

type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusOpen      Status = "open"
	StatusClosed    Status = "closed"
	StatusCompleted Status = "completed"
)

func (s Status) String() string { return string(s) }
