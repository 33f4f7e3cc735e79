package components

import (
	"loyalty-ledger/internal/domain/ledger"
	"loyalty-ledger/internal/domain/raffle"
	"loyalty-ledger/internal/pkg/clock"
	"loyalty-ledger/internal/pkg/config"
	"loyalty-ledger/internal/pkg/jwt"
	"loyalty-ledger/internal/pkg/random"
	"loyalty-ledger/internal/usecase/commands"
	"loyalty-ledger/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		random.NewCryptoPicker,
		fx.As(new(raffle.Picker)),
	),
	NewAccrualPolicy,
	func(s *jwt.Service) commands.TokenIssuer { return s },
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewLedgerCommands,
		commands.NewRewardCommands,
		commands.NewRedemptionCommands,
		commands.NewRaffleCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewAccountQueries,
		queries.NewRewardQueries,
		queries.NewRaffleQueries,
	),
)

func NewAccrualPolicy(cfg config.Config) (ledger.AccrualPolicy, error) {
	return ledger.NewAccrualPolicy(cfg.Loyalty.AccrualRateBps, cfg.Loyalty.AccrualRounding)
}
