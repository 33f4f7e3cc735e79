package commands

import (
	"context"
	"log/slog"
	"time"

	"loyalty-ledger/internal/domain/auth"
	"loyalty-ledger/internal/domain/user"
	"loyalty-ledger/internal/infra"
	"loyalty-ledger/internal/pkg/clock"
	"loyalty-ledger/internal/pkg/errs"
	"loyalty-ledger/internal/pkg/jwt"
	"loyalty-ledger/internal/pkg/password"
	"loyalty-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUserInactive    = errs.New("user inactive")
	ErrTokenGeneration = errs.New("token generation failed")
)

type LoginResult struct {
	UserID      uuid.UUID
	Role        user.Role
	BusinessID  *uuid.UUID
	AccessToken string
	ExpiresIn   time.Duration
}

type AuthCommands interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}

type TokenIssuer interface {
	GenerateToken(userID uuid.UUID, role user.Role, businessID *uuid.UUID) (string, error)
	TokenDuration() time.Duration
}

type authCommandsImpl struct {
	uow    shared.UnitOfWork
	tokens TokenIssuer
	clock  clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, tokens TokenIssuer, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{uow: uow, tokens: tokens, clock: clk}
}

var _ TokenIssuer = (*jwt.Service)(nil)

func (a *authCommandsImpl) Login(ctx context.Context, email, pw string) (*LoginResult, error) {
	credentials, err := auth.NewCredentials(email, pw)
	if err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	snap, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(snap.Role)
	if err != nil {
		return nil, errs.Mark(err, auth.ErrInvalidCredentials)
	}

	token, err := a.tokens.GenerateToken(snap.ID, role, snap.BusinessID)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	// last_login is informational; a failed update does not fail the login
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, snap.ID, a.clock.Now())
	})
	if err != nil {
		slog.Warn("failed to update last login", "user_id", snap.ID, "error", err.Error())
	}

	return &LoginResult{
		UserID:      snap.ID,
		Role:        role,
		BusinessID:  snap.BusinessID,
		AccessToken: token,
		ExpiresIn:   a.tokens.TokenDuration(),
	}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials auth.Credentials) (*shared.UserSnapshot, error) {
	snap, err := a.uow.CommandReads().UserByEmail(ctx, credentials.Email().Value())
	if err != nil {
		// same answer as a wrong password so emails cannot be enumerated
		if infra.IsKind(err, infra.KindNotFound) {
			_ = password.CompareDummy(credentials.Password())
			return nil, auth.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := password.Compare(snap.PasswordHash, credentials.Password()); err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	if !snap.IsActive {
		return nil, ErrUserInactive
	}

	return snap, nil
}
