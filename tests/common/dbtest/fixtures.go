//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"loyalty-ledger/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by a pool, a conn or a tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// DefaultPassword is the plain-text password of every user created by CreateTestUser.
const DefaultPassword = "password123"

var (
	hashOnce    sync.Once
	defaultHash string
)

func defaultPasswordHash(t *testing.T) string {
	t.Helper()
	hashOnce.Do(func() {
		h, err := password.Hash(DefaultPassword)
		if err != nil {
			panic(err)
		}
		defaultHash = h
	})
	return defaultHash
}

func CreateTestBusiness(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		"INSERT INTO businesses (name) VALUES ($1) RETURNING id", name).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateTestUser inserts an active user whose password is DefaultPassword.
// businessID is required for staff and ignored for customers.
func CreateTestUser(t *testing.T, db DBLike, email, role string, businessID *uuid.UUID) uuid.UUID {
	t.Helper()

	if role == "customer" {
		businessID = nil
	}
	userID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO users (id, email, password_hash, role, business_id, is_active) VALUES ($1, $2, $3, $4, $5, true)",
		userID, strings.ToLower(email), defaultPasswordHash(t), role, businessID)
	require.NoError(t, err)
	return userID
}

func DeactivateUser(t *testing.T, db DBLike, userID uuid.UUID) {
	t.Helper()

	_, err := db.Exec(context.Background(), "UPDATE users SET is_active = false WHERE id = $1", userID)
	require.NoError(t, err)
}

// SetBalance writes a balance directly, bypassing the ledger. Use it only to arrange state.
func SetBalance(t *testing.T, db DBLike, customerID, businessID uuid.UUID, points int64) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
INSERT INTO loyalty_accounts (customer_id, business_id, points) VALUES ($1, $2, $3)
ON CONFLICT (customer_id, business_id) DO UPDATE SET points = EXCLUDED.points`,
		customerID, businessID, points)
	require.NoError(t, err)
}

func Balance(t *testing.T, db DBLike, customerID, businessID uuid.UUID) int64 {
	t.Helper()

	var points int64
	err := db.QueryRow(context.Background(),
		"SELECT points FROM loyalty_accounts WHERE customer_id = $1 AND business_id = $2",
		customerID, businessID).Scan(&points)
	require.NoError(t, err)
	return points
}

// LedgerSum is the sum of every entry delta for one account; it must equal the balance.
func LedgerSum(t *testing.T, db DBLike, customerID, businessID uuid.UUID) int64 {
	t.Helper()

	var sum int64
	err := db.QueryRow(context.Background(),
		"SELECT COALESCE(SUM(delta), 0) FROM ledger_entries WHERE customer_id = $1 AND business_id = $2",
		customerID, businessID).Scan(&sum)
	require.NoError(t, err)
	return sum
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates every table except schema_migrations.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
