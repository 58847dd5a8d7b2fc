package jobs

import (
	"context"
	"log/slog"
	"time"

	"carhire-booking/internal/pkg/clock"
	"carhire-booking/internal/pkg/config"
)

const jobTimeout = 2 * time.Minute

type IdempotencyPurger interface {
	DeleteExpired(ctx context.Context) (int64, error)
}

type NotificationPurger interface {
	DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type PaymentEventPurger interface {
	DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// Runner holds the housekeeping jobs. Each job is safe to run concurrently
// with request traffic and with itself.
type Runner struct {
	idempotency   IdempotencyPurger
	notifications NotificationPurger
	paymentEvents PaymentEventPurger
	clock         clock.Clock
	cfg           config.JobsConfig
}

func NewRunner(
	idempotency IdempotencyPurger,
	notifications NotificationPurger,
	paymentEvents PaymentEventPurger,
	clock clock.Clock,
	cfg config.JobsConfig,
) *Runner {
	return &Runner{
		idempotency:   idempotency,
		notifications: notifications,
		paymentEvents: paymentEvents,
		clock:         clock,
		cfg:           cfg,
	}
}

func (r *Runner) Config() config.JobsConfig {
	return r.cfg
}

func (r *Runner) PurgeIdempotencyKeys() {
	r.run("purge_idempotency_keys", func(ctx context.Context) (int64, error) {
		return r.idempotency.DeleteExpired(ctx)
	})
}

func (r *Runner) PurgeReadNotifications() {
	cutoff := r.clock.Now().Add(-r.cfg.NotificationRetention)
	r.run("purge_read_notifications", func(ctx context.Context) (int64, error) {
		return r.notifications.DeleteReadBefore(ctx, cutoff)
	})
}

func (r *Runner) PurgePaymentEvents() {
	cutoff := r.clock.Now().Add(-r.cfg.PaymentEventRetention)
	r.run("purge_payment_events", func(ctx context.Context) (int64, error) {
		return r.paymentEvents.DeleteBefore(ctx, cutoff)
	})
}

func (r *Runner) run(name string, fn func(ctx context.Context) (int64, error)) {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	start := time.Now()
	n, err := fn(ctx)
	if err != nil {
		slog.Error("housekeeping job failed", "job", name, "error", err)
		return
	}
	slog.Info("housekeeping job finished",
		"job", name,
		"deleted", n,
		"duration_ms", time.Since(start).Milliseconds())
}
