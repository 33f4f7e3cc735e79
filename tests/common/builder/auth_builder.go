//go:build unit || e2e

package builder

import (
	reqdto "loyalty-ledger/internal/handler/dto/request"
	"loyalty-ledger/tests/common/dbtest"
)

// AuthBuilder builds login payloads matching users created by dbtest.CreateTestUser.
type AuthBuilder struct {
	email    string
	password string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		email:    "customer@example.com",
		password: dbtest.DefaultPassword,
	}
}

func (a *AuthBuilder) WithEmail(email string) *AuthBuilder {
	a.email = email
	return a
}

func (a *AuthBuilder) WithPassword(password string) *AuthBuilder {
	a.password = password
	return a
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.email,
		Password: a.password,
	}
}
