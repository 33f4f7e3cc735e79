package components

import (
	"context"
	"log/slog"

	"loyalty-ledger/internal/pkg/clock"
	"loyalty-ledger/internal/pkg/config"
	"loyalty-ledger/internal/scheduler"
	"loyalty-ledger/internal/usecase/commands"
	"loyalty-ledger/internal/usecase/shared"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		NewScheduler,
	),
	fx.Invoke(registerScheduler),
)

func NewScheduler(
	cfg config.Config,
	raffles commands.RaffleCommands,
	uow shared.UnitOfWork,
	clk clock.Clock,
	logger *slog.Logger,
) (*scheduler.Scheduler, error) {
	return scheduler.New(cfg.Scheduler, raffles, uow, clk, logger)
}

func registerScheduler(lc fx.Lifecycle, s *scheduler.Scheduler) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return s.Stop(ctx)
		},
	})
}
