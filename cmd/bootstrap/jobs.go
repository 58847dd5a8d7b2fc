package bootstrap

import (
	"context"
	"log/slog"

	"carhire-booking/internal/infra/repository"
	sqlc "carhire-booking/internal/infra/sqlc/generated"
	"carhire-booking/internal/jobs"
	"carhire-booking/internal/pkg/clock"
	"carhire-booking/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var JobsModule = fx.Module("jobs",
	fx.Provide(
		NewJobRunner,
	),
	fx.Invoke(StartScheduler),
)

// Purges run outside any request transaction, so the repositories are pool-bound.
func NewJobRunner(pool *pgxpool.Pool, q *sqlc.Queries, clk clock.Clock, cfg config.Config) *jobs.Runner {
	return jobs.NewRunner(
		repository.NewIdempotencyRepository(q, pool),
		repository.NewNotificationRepository(q, pool),
		repository.NewPaymentEventRepository(q, pool),
		clk,
		cfg.Jobs,
	)
}

func StartScheduler(lc fx.Lifecycle, runner *jobs.Runner, cfg config.Config) error {
	if !cfg.Jobs.Enabled {
		slog.Info("housekeeping jobs disabled")
		return nil
	}

	scheduler, err := jobs.NewScheduler(runner)
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			scheduler.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			scheduler.Stop(ctx)
			return nil
		},
	})
	return nil
}
