package user

import (
	"time"

	"github.com/google/uuid"
)

// User is an authenticated principal. Customers hold accounts; staff act for one business.
type User struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	role         Role
	businessID   *uuid.UUID
	lastLogin    *time.Time
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(email Email, passwordHash string, role Role, businessID *uuid.UUID) (*User, error) {
	if role == RoleStaff && businessID == nil {
		return nil, ErrStaffWithoutBusiness
	}
	if role == RoleCustomer {
		businessID = nil
	}
	return &User{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		businessID:   businessID,
		isActive:     true,
	}, nil
}

func (u *User) ID() uuid.UUID          { return u.id }
func (u *User) Email() Email           { return u.email }
func (u *User) PasswordHash() string   { return u.passwordHash }
func (u *User) Role() Role             { return u.role }
func (u *User) BusinessID() *uuid.UUID { return u.businessID }
func (u *User) LastLogin() *time.Time  { return u.lastLogin }
func (u *User) IsActive() bool         { return u.isActive }
func (u *User) CreatedAt() time.Time   { return u.createdAt }
func (u *User) UpdatedAt() time.Time   { return u.updatedAt }
