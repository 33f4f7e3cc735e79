package httperr

import (
	"net/http"

	"loyalty-ledger/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

const (
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeUnauthorized   = "UNAUTHORIZED"
	CodeInternal       = "INTERNAL"
)

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	AbortWithCode(c, status, codeForStatus(status), err, msg, detail)
}

func AbortWithCode(c *gin.Context, status int, code string, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Code = code
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithDomainError maps a classified use-case failure to its status and stable code.
func AbortWithDomainError(c *gin.Context, err error) {
	kind := errs.KindOf(err)
	status, msg := StatusOf(kind)
	code := string(kind)
	if kind == errs.KindUnknown {
		code = CodeInternal
	}
	if kind == errs.KindBackendUnavailable {
		c.Header("Retry-After", "1")
	}
	AbortWithCode(c, status, code, err, msg, nil)
}

func StatusOf(kind errs.Kind) (int, string) {
	switch kind {
	case errs.KindInvalidAmount:
		return http.StatusBadRequest, "Invalid amount"
	case errs.KindInvalidRequest:
		return http.StatusBadRequest, "Invalid request"
	case errs.KindInsufficientBalance:
		return http.StatusConflict, "Insufficient balance"
	case errs.KindRewardNotFound:
		return http.StatusNotFound, "Reward not found"
	case errs.KindRewardInactive:
		return http.StatusConflict, "Reward is inactive"
	case errs.KindRaffleClosed:
		return http.StatusConflict, "Raffle is closed"
	case errs.KindTicketLimitReached:
		return http.StatusConflict, "Ticket limit reached"
	case errs.KindAlreadyCompleted:
		return http.StatusConflict, "Raffle already completed"
	case errs.KindNoParticipants:
		return http.StatusConflict, "Raffle has no participants"
	case errs.KindRaffleNotFound:
		return http.StatusNotFound, "Raffle not found"
	case errs.KindAccountNotFound:
		return http.StatusNotFound, "Account not found"
	case errs.KindCustomerNotFound:
		return http.StatusNotFound, "Customer not found"
	case errs.KindBusinessNotFound:
		return http.StatusNotFound, "Business not found"
	case errs.KindForbidden:
		return http.StatusForbidden, "Insufficient permissions"
	case errs.KindIdempotencyConflict:
		return http.StatusConflict, "Idempotency key reused with a different request"
	case errs.KindBackendUnavailable:
		return http.StatusServiceUnavailable, "Service temporarily unavailable"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return CodeInvalidRequest
	case http.StatusUnauthorized:
		return CodeUnauthorized
	case http.StatusForbidden:
		return string(errs.KindForbidden)
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusTooManyRequests:
		return "RATE_LIMITED"
	default:
		return CodeInternal
	}
}
