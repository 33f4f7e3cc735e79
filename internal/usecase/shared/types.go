package shared

import (
	"time"

	"loyalty-ledger/internal/domain/user"

	"github.com/google/uuid"
)

const (
	IdempotencyStatusProcessing = "processing"
	IdempotencyStatusCompleted  = "completed"
)

type IdempotencyRecord struct {
	Key         uuid.UUID
	UserID      uuid.UUID
	Endpoint    string
	RequestHash string
	Status      string
	Result      []byte
	ExpiresAt   time.Time
}

// Minimal snapshot for login; the hash never leaves the command side
type UserSnapshot struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	BusinessID   *uuid.UUID
	IsActive     bool
}

// Actor is the authenticated caller, passed explicitly into every command.
type Actor struct {
	UserID     uuid.UUID
	Role       user.Role
	BusinessID *uuid.UUID
}

func (a Actor) IsCustomer() bool { return a.Role == user.RoleCustomer }

// CanManage reports whether the actor may administer the business's catalog and ledger.
func (a Actor) CanManage(businessID uuid.UUID) bool {
	switch a.Role {
	case user.RoleAdmin:
		return true
	case user.RoleStaff:
		return a.BusinessID != nil && *a.BusinessID == businessID
	default:
		return false
	}
}
