package readstore

import (
	"context"

	"loyalty-ledger/internal/infra"
	"loyalty-ledger/internal/infra/db"
	"loyalty-ledger/internal/pkg/pgconv"
	"loyalty-ledger/internal/usecase/queries"
	"loyalty-ledger/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	findUserByIDSQL = `
SELECT id, email, role, business_id, is_active FROM users WHERE id = $1`

	findUserByEmailSQL = `
SELECT id, email, password_hash, role, business_id, is_active FROM users WHERE lower(email) = lower($1)`
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var (
		v          queries.AuthorizedUserView
		businessID pgtype.UUID
	)
	err := r.db.QueryRow(ctx, findUserByIDSQL, id).Scan(&v.ID, &v.Email, &v.Role, &businessID, &v.IsActive)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	v.BusinessID = pgconv.UUIDPtrFromPgtype(businessID)
	return &v, nil
}

// FindByEmail returns the login snapshot including the password hash.
func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*shared.UserSnapshot, error) {
	var (
		s          shared.UserSnapshot
		businessID pgtype.UUID
	)
	err := r.db.QueryRow(ctx, findUserByEmailSQL, email).
		Scan(&s.ID, &s.Email, &s.PasswordHash, &s.Role, &businessID, &s.IsActive)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}
	s.BusinessID = pgconv.UUIDPtrFromPgtype(businessID)
	return &s, nil
}
