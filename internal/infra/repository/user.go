package repository

import (
	"context"
	"time"

	"loyalty-ledger/internal/domain/user"
	"loyalty-ledger/internal/infra"
	"loyalty-ledger/internal/infra/db"
	"loyalty-ledger/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const (
	createUserSQL = `
INSERT INTO users (id, email, password_hash, role, business_id, is_active)
VALUES ($1, $2, $3, $4, $5, $6)`

	updateUserLastLoginSQL = `
UPDATE users SET last_login = $2, updated_at = $2 WHERE id = $1`
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(dbtx db.DBTX) *UserRepository {
	return &UserRepository{db: dbtx}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	_, err := r.db.Exec(ctx, createUserSQL,
		u.ID(),
		u.Email().Value(),
		u.PasswordHash(),
		u.Role().String(),
		pgconv.UUIDPtrToPgtype(u.BusinessID()),
		u.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error {
	tag, err := r.db.Exec(ctx, updateUserLastLoginSQL, userID, at)
	if err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFound("user not found")
	}
	return nil
}
