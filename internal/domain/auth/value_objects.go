package auth

import (
	"loyalty-ledger/internal/domain/user"
	"loyalty-ledger/internal/pkg/errs"
)

// ErrInvalidCredentials covers unknown email, wrong password and inactive account alike.
var ErrInvalidCredentials = errs.New("invalid email or password")

type Credentials struct {
	email    user.Email
	password string
}

// NewCredentials only checks the email shape; password strength is enforced at signup, not login.
func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := user.NewEmail(emailStr)
	if err != nil {
		return Credentials{}, err
	}
	if passwordStr == "" {
		return Credentials{}, ErrInvalidCredentials
	}
	return Credentials{email: email, password: passwordStr}, nil
}

func (c Credentials) Email() user.Email { return c.email }
func (c Credentials) Password() string  { return c.password }
