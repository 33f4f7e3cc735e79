package errs

// Sentinels shared by the domain, usecase and handler layers.
// Callers classify with errors.Is; infra failures are marked with ErrBackendUnavailable.
var (
	ErrInvalidAmount       = New("invalid amount")
	ErrInsufficientBalance = New("insufficient balance")
	ErrRewardNotFound      = New("reward not found")
	ErrRewardInactive      = New("reward inactive")
	ErrRaffleClosed        = New("raffle closed")
	ErrTicketLimitReached  = New("ticket limit reached")
	ErrAlreadyCompleted    = New("raffle already completed")
	ErrNoParticipants      = New("raffle has no participants")
	ErrBackendUnavailable  = New("backend unavailable")

	ErrRaffleNotFound       = New("raffle not found")
	ErrAccountNotFound      = New("account not found")
	ErrCustomerNotFound     = New("customer not found")
	ErrBusinessNotFound     = New("business not found")
	ErrForbidden            = New("forbidden")
	ErrIdempotencyConflict  = New("idempotency key conflict")
	ErrIdempotencyKeyFormat = New("invalid idempotency key")

	// ErrValidation marks malformed input rejected by domain constructors.
	ErrValidation = New("validation failed")
)

type Kind string

const (
	KindInvalidAmount       Kind = "INVALID_AMOUNT"
	KindInsufficientBalance Kind = "INSUFFICIENT_BALANCE"
	KindRewardNotFound      Kind = "REWARD_NOT_FOUND"
	KindRewardInactive      Kind = "REWARD_INACTIVE"
	KindRaffleClosed        Kind = "RAFFLE_CLOSED"
	KindTicketLimitReached  Kind = "TICKET_LIMIT_REACHED"
	KindAlreadyCompleted    Kind = "ALREADY_COMPLETED"
	KindNoParticipants      Kind = "NO_PARTICIPANTS"
	KindBackendUnavailable  Kind = "BACKEND_UNAVAILABLE"
	KindRaffleNotFound      Kind = "RAFFLE_NOT_FOUND"
	KindAccountNotFound     Kind = "ACCOUNT_NOT_FOUND"
	KindCustomerNotFound    Kind = "CUSTOMER_NOT_FOUND"
	KindBusinessNotFound    Kind = "BUSINESS_NOT_FOUND"
	KindForbidden           Kind = "FORBIDDEN"
	KindIdempotencyConflict Kind = "IDEMPOTENCY_CONFLICT"
	KindInvalidRequest      Kind = "INVALID_REQUEST"
	KindUnknown             Kind = "UNKNOWN"
)

var kindTable = []struct {
	sentinel error
	kind     Kind
}{
	{ErrInvalidAmount, KindInvalidAmount},
	{ErrInsufficientBalance, KindInsufficientBalance},
	{ErrRewardNotFound, KindRewardNotFound},
	{ErrRewardInactive, KindRewardInactive},
	{ErrRaffleClosed, KindRaffleClosed},
	{ErrTicketLimitReached, KindTicketLimitReached},
	{ErrAlreadyCompleted, KindAlreadyCompleted},
	{ErrNoParticipants, KindNoParticipants},
	{ErrRaffleNotFound, KindRaffleNotFound},
	{ErrAccountNotFound, KindAccountNotFound},
	{ErrCustomerNotFound, KindCustomerNotFound},
	{ErrBusinessNotFound, KindBusinessNotFound},
	{ErrForbidden, KindForbidden},
	{ErrIdempotencyConflict, KindIdempotencyConflict},
	{ErrIdempotencyKeyFormat, KindInvalidRequest},
	{ErrValidation, KindInvalidRequest},
	// last: a domain error wrapping a marked infra failure keeps its domain kind
	{ErrBackendUnavailable, KindBackendUnavailable},
}

// KindOf returns the first matching kind, or KindUnknown.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	for _, k := range kindTable {
		if Is(err, k.sentinel) {
			return k.kind
		}
	}
	return KindUnknown
}

// IsRetryable reports whether the failure is transient. Business rule violations never are.
func IsRetryable(err error) bool {
	return KindOf(err) == KindBackendUnavailable
}
