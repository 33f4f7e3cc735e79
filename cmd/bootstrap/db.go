package bootstrap

import (
	"context"
	"log/slog"

	"loyalty-ledger/internal/infra/db"
	"loyalty-ledger/internal/infra/migrations"
	"loyalty-ledger/internal/pkg/config"
	"loyalty-ledger/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	if cfg.DB.AutoMigrate {
		stdDB := db.StdDB(pool)
		err := migrations.Apply(context.Background(), stdDB)
		_ = stdDB.Close()
		if err != nil {
			cleanup()
			return nil, errs.Wrap(err, "failed to apply migrations")
		}
		logger.Info("Database schema is up to date")
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}
