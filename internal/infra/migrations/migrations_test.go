//go:build unit

package migrations_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"loyalty-ledger/internal/infra/migrations"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	createTable = regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS schema_migrations")
	checkExists = regexp.QuoteMeta("SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE version = $1)")
	recordRow   = regexp.QuoteMeta("INSERT INTO schema_migrations (version) VALUES ($1)")
)

func TestLoad(t *testing.T) {
	ms, err := migrations.Load()
	require.NoError(t, err)
	require.NotEmpty(t, ms)

	assert.Equal(t, "001_initial_schema", ms[0].Version)
	assert.Contains(t, ms[0].SQL, "CREATE TABLE loyalty_accounts")
	for i := 1; i < len(ms); i++ {
		assert.Less(t, ms[i-1].Version, ms[i].Version)
	}
}

func TestApplyMigrations(t *testing.T) {
	ms := []migrations.Migration{
		{Version: "001_a", SQL: "CREATE TABLE a (id int)"},
		{Version: "002_b", SQL: "CREATE TABLE b (id int)"},
	}

	t.Run("applies pending migrations in order", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(createTable).WillReturnResult(sqlmock.NewResult(0, 0))
		for _, m := range ms {
			mock.ExpectQuery(checkExists).WithArgs(m.Version).
				WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
			mock.ExpectBegin()
			mock.ExpectExec(regexp.QuoteMeta(m.SQL)).WillReturnResult(sqlmock.NewResult(0, 0))
			mock.ExpectExec(recordRow).WithArgs(m.Version).WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectCommit()
		}

		require.NoError(t, migrations.ApplyMigrations(context.Background(), db, ms))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("skips applied versions", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(createTable).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(checkExists).WithArgs("001_a").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectQuery(checkExists).WithArgs("002_b").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE b (id int)")).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(recordRow).WithArgs("002_b").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, migrations.ApplyMigrations(context.Background(), db, ms))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back a failing migration", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(createTable).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(checkExists).WithArgs("001_a").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE a (id int)")).WillReturnError(errors.New("syntax error"))
		mock.ExpectRollback()

		err = migrations.ApplyMigrations(context.Background(), db, ms)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "apply migration 001_a")
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
