package migrations

import (
	"context"
	"database/sql"
	"embed"
	"io/fs"
	"log/slog"
	"path"
	"sort"
	"strings"

	"loyalty-ledger/internal/pkg/errs"
)

//go:embed sql/*.sql
var files embed.FS

const createVersionTable = `CREATE TABLE IF NOT EXISTS schema_migrations (
    version    text PRIMARY KEY,
    applied_at timestamptz NOT NULL DEFAULT now()
)`

type Migration struct {
	Version string
	SQL     string
}

// Load returns the embedded migrations ordered by file name.
func Load() ([]Migration, error) {
	entries, err := fs.ReadDir(files, "sql")
	if err != nil {
		return nil, errs.Wrap(err, "read embedded migrations")
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	out := make([]Migration, 0, len(names))
	for _, name := range names {
		body, err := fs.ReadFile(files, path.Join("sql", name))
		if err != nil {
			return nil, errs.Wrapf(err, "read migration %s", name)
		}
		out = append(out, Migration{
			Version: strings.TrimSuffix(name, ".sql"),
			SQL:     string(body),
		})
	}
	return out, nil
}

// Apply runs every embedded migration not yet recorded in schema_migrations.
// Each migration commits together with its version row.
func Apply(ctx context.Context, db *sql.DB) error {
	migrations, err := Load()
	if err != nil {
		return err
	}
	return ApplyMigrations(ctx, db, migrations)
}

func ApplyMigrations(ctx context.Context, db *sql.DB, migrations []Migration) error {
	if _, err := db.ExecContext(ctx, createVersionTable); err != nil {
		return errs.Wrap(err, "create schema_migrations")
	}

	for _, m := range migrations {
		var applied bool
		err := db.QueryRowContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE version = $1)`, m.Version,
		).Scan(&applied)
		if err != nil {
			return errs.Wrapf(err, "check migration %s", m.Version)
		}
		if applied {
			continue
		}

		if err := applyOne(ctx, db, m); err != nil {
			return err
		}
		slog.Info("migration applied", "version", m.Version)
	}
	return nil
}

func applyOne(ctx context.Context, db *sql.DB, m Migration) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return errs.Wrapf(err, "begin migration %s", m.Version)
	}

	if _, err := tx.ExecContext(ctx, m.SQL); err != nil {
		_ = tx.Rollback()
		return errs.Wrapf(err, "apply migration %s", m.Version)
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO schema_migrations (version) VALUES ($1)`, m.Version); err != nil {
		_ = tx.Rollback()
		return errs.Wrapf(err, "record migration %s", m.Version)
	}

	if err := tx.Commit(); err != nil {
		return errs.Wrapf(err, "commit migration %s", m.Version)
	}
	return nil
}
