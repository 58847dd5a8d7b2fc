package jobs

import (
	"context"
	"log/slog"
	"time"

	"carhire-booking/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

type Scheduler struct {
	cron   *cron.Cron
	runner *Runner
}

// NewScheduler uses UTC with seconds precision. Panicking jobs are
// recovered and logged, and a job still running is skipped.
func NewScheduler(runner *Runner) (*Scheduler, error) {
	logger := slogCronLogger{}
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithSeconds(),
		cron.WithLogger(logger),
		cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
	)

	s := &Scheduler{cron: c, runner: runner}
	if err := s.registerJobs(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scheduler) registerJobs() error {
	cfg := s.runner.Config()
	jobs := []struct {
		name string
		spec string
		fn   func()
	}{
		{"purge_idempotency_keys", cfg.PurgeIdempotencyKeys, s.runner.PurgeIdempotencyKeys},
		{"purge_read_notifications", cfg.PurgeReadNotifications, s.runner.PurgeReadNotifications},
		{"purge_payment_events", cfg.PurgePaymentEvents, s.runner.PurgePaymentEvents},
	}

	for _, j := range jobs {
		if _, err := s.cron.AddFunc(j.spec, j.fn); err != nil {
			return errs.Wrapf(err, "failed to register job %s", j.name)
		}
	}
	slog.Info("housekeeping jobs registered", "count", len(jobs))
	return nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	slog.Info("cron scheduler started")
}

// Stop waits for running jobs until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		slog.Info("cron scheduler stopped")
	case <-ctx.Done():
		slog.Warn("cron scheduler stop timed out")
	}
}

func (s *Scheduler) Entries() int {
	return len(s.cron.Entries())
}

// slogCronLogger adapts slog to cron.Logger.
type slogCronLogger struct{}

func (slogCronLogger) Info(msg string, keysAndValues ...any) {
	slog.Debug("cron: "+msg, keysAndValues...)
}

func (slogCronLogger) Error(err error, msg string, keysAndValues ...any) {
	slog.Error("cron: "+msg, append(keysAndValues, "error", err)...)
}
