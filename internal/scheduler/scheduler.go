// Package scheduler runs the background jobs: drawing raffles whose sales have ended
// and purging expired idempotency keys.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"loyalty-ledger/internal/pkg/clock"
	"loyalty-ledger/internal/pkg/config"
	"loyalty-ledger/internal/pkg/errs"
	"loyalty-ledger/internal/pkg/metrics"
	"loyalty-ledger/internal/usecase/commands"
	"loyalty-ledger/internal/usecase/shared"

	"github.com/robfig/cron/v3"
)

const (
	JobRaffleDraw       = "raffle_draw"
	JobIdempotencyPurge = "idempotency_purge"

	jobTimeout = 30 * time.Second
)

type Scheduler struct {
	cron    *cron.Cron
	cfg     config.SchedulerConfig
	raffles commands.RaffleCommands
	uow     shared.UnitOfWork
	clock   clock.Clock
	logger  *slog.Logger

	mu      sync.Mutex
	running bool
	ctx     context.Context
	cancel  context.CancelFunc
}

func New(
	cfg config.SchedulerConfig,
	raffles commands.RaffleCommands,
	uow shared.UnitOfWork,
	clk clock.Clock,
	logger *slog.Logger,
) (*Scheduler, error) {
	s := &Scheduler{
		cron:    cron.New(cron.WithLocation(time.UTC)),
		cfg:     cfg,
		raffles: raffles,
		uow:     uow,
		clock:   clk,
		logger:  logger.With("component", "scheduler"),
	}
	if _, err := s.cron.AddFunc(cfg.DrawSchedule, func() { s.run(JobRaffleDraw, s.DrawDue) }); err != nil {
		return nil, errs.Wrapf(err, "invalid draw schedule %q", cfg.DrawSchedule)
	}
	if _, err := s.cron.AddFunc(cfg.CleanupSchedule, func() { s.run(JobIdempotencyPurge, s.PurgeIdempotencyKeys) }); err != nil {
		return nil, errs.Wrapf(err, "invalid cleanup schedule %q", cfg.CleanupSchedule)
	}
	return s, nil
}

// Start is a no-op when the scheduler is disabled or already running.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.cfg.Enabled || s.running {
		return
	}
	s.ctx, s.cancel = context.WithCancel(context.Background())
	s.running = true
	s.cron.Start()
	s.logger.Info("Scheduler started", "draw_schedule", s.cfg.DrawSchedule, "cleanup_schedule", s.cfg.CleanupSchedule)
}

// Stop cancels in-flight jobs and waits for them to return or for ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = false
	s.cancel()
	s.mu.Unlock()

	select {
	case <-s.cron.Stop().Done():
		s.logger.Info("Scheduler stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// DrawDue draws one batch of raffles whose end date has passed.
func (s *Scheduler) DrawDue(ctx context.Context) error {
	n, err := s.raffles.DrawDue(ctx, s.cfg.DrawBatchSize)
	if err != nil {
		return err
	}
	if n > 0 {
		s.logger.Info("Raffles drawn", "count", n)
	}
	return nil
}

func (s *Scheduler) PurgeIdempotencyKeys(ctx context.Context) error {
	var deleted int64
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Idempotency().DeleteExpired(ctx, s.clock.Now())
		deleted = n
		return err
	})
	if err != nil {
		return err
	}
	if deleted > 0 {
		s.logger.Info("Expired idempotency keys purged", "count", deleted)
	}
	return nil
}

func (s *Scheduler) run(job string, fn func(ctx context.Context) error) {
	s.mu.Lock()
	parent := s.ctx
	s.mu.Unlock()
	if parent == nil {
		parent = context.Background()
	}

	ctx, cancel := context.WithTimeout(parent, jobTimeout)
	defer cancel()

	start := time.Now()
	err := fn(ctx)
	metrics.RecordJobRun(job, err == nil, time.Since(start))
	if err != nil {
		s.logger.Error("Scheduled job failed", "job", job, "error", err)
	}
}
