package components

import (
	"loyalty-ledger/internal/infra/db"
	"loyalty-ledger/internal/infra/readstore"
	"loyalty-ledger/internal/infra/uow"
	"loyalty-ledger/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// Write repositories are built per transaction inside the unit of work, so only
// the unit of work and the read stores are provided here.
var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewAccountReadStore,
			fx.As(new(queries.AccountReadStore)),
		),
		fx.Annotate(
			readstore.NewRewardReadStore,
			fx.As(new(queries.RewardReadStore)),
		),
		fx.Annotate(
			readstore.NewRaffleReadStore,
			fx.As(new(queries.RaffleReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
	),
)

var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
