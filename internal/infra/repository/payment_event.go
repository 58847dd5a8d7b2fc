package repository

import (
	"context"
	"time"

	"carhire-booking/internal/domain/payment"
	"carhire-booking/internal/infra"
	sqlc "carhire-booking/internal/infra/sqlc/generated"
	"carhire-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type PaymentEventQueries interface {
	InsertPaymentEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertPaymentEventParams) (int64, error)
	DeletePaymentEventsBefore(ctx context.Context, db sqlc.DBTX, receivedAt pgtype.Timestamptz) (int64, error)
}

type PaymentEventRepository struct {
	queries PaymentEventQueries
	db      sqlc.DBTX
}

func NewPaymentEventRepository(queries PaymentEventQueries, db sqlc.DBTX) *PaymentEventRepository {
	return &PaymentEventRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PaymentEventRepository) Record(ctx context.Context, ev payment.Event, bookingID *uuid.UUID, outcome payment.Outcome) (bool, error) {
	n, err := r.queries.InsertPaymentEvent(ctx, r.db, sqlc.InsertPaymentEventParams{
		EventID:   ev.ID,
		EventType: ev.Type.String(),
		BookingID: pgconv.UUIDPtrToPgtype(bookingID),
		Outcome:   string(outcome),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to record payment event", err)
	}
	return n > 0, nil
}

func (r *PaymentEventRepository) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	n, err := r.queries.DeletePaymentEventsBefore(ctx, r.db, pgconv.TimeToPgtype(cutoff))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to purge payment events", err)
	}
	return n, nil
}
