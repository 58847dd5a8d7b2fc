package repository

import (
	"context"

	"carhire-booking/internal/domain/booking"
	"carhire-booking/internal/infra"
	"carhire-booking/internal/infra/repository/converter"
	sqlc "carhire-booking/internal/infra/sqlc/generated"
	"carhire-booking/internal/pkg/pgconv"
	"carhire-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) error
	GetBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	GetBookingByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	GetBookingByPaymentIntent(ctx context.Context, db sqlc.DBTX, stripePaymentIntent pgtype.Text) (sqlc.Bookings, error)
	UpdateBookingStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingStatusParams) (int64, error)
	UpdateBookingPayment(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingPaymentParams) (int64, error)
	UpdateBookingDates(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingDatesParams) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

// Create inserts a new booking. An overlapping live booking on the same
// vehicle is rejected by the bookings_no_overlap constraint as KindConflict.
func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	if err := r.queries.CreateBooking(ctx, r.db, converter.BookingToCreateParams(b)); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) Get(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get booking", err)
	}
	return r.fromRow(row)
}

func (r *BookingRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByIDForUpdate(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}
	return r.fromRow(row)
}

func (r *BookingRepository) GetByPaymentIntentForUpdate(ctx context.Context, paymentIntentID string) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByPaymentIntent(ctx, r.db, pgconv.StringToPgtype(paymentIntentID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock booking by payment intent", err)
	}
	return r.fromRow(row)
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, u shared.BookingStatusUpdate) error {
	n, err := r.queries.UpdateBookingStatus(ctx, r.db, sqlc.UpdateBookingStatusParams{
		Status:         u.To.String(),
		StatusReason:   pgconv.StringPtrToPgtype(converter.ReasonString(u.Reason)),
		UpdatedAt:      pgconv.TimeToPgtype(u.At),
		ID:             u.ID,
		ExpectedStatus: u.From.String(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("booking status changed concurrently", nil, infra.KindStaleState)
	}
	return nil
}

func (r *BookingRepository) UpdatePayment(ctx context.Context, u shared.BookingPaymentUpdate) error {
	params := sqlc.UpdateBookingPaymentParams{
		PaymentStatus: u.PaymentStatus.String(),
		UpdatedAt:     pgconv.TimeToPgtype(u.At),
		ID:            u.ID,
	}
	if u.SessionID != "" {
		params.StripeSessionID = pgconv.StringToPgtype(u.SessionID)
	}
	if u.PaymentIntentID != "" {
		params.StripePaymentIntent = pgconv.StringToPgtype(u.PaymentIntentID)
	}

	n, err := r.queries.UpdateBookingPayment(ctx, r.db, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking payment", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) UpdateDates(ctx context.Context, u shared.BookingDatesUpdate) error {
	n, err := r.queries.UpdateBookingDates(ctx, r.db, sqlc.UpdateBookingDatesParams{
		PickupDate:     pgconv.DateToPgtype(u.Dates.Start()),
		DropoffDate:    pgconv.DateToPgtype(u.Dates.End()),
		UpdatedAt:      pgconv.TimeToPgtype(u.At),
		ID:             u.ID,
		ExpectedStatus: u.ExpectedStatus.String(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update booking dates", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("booking status changed concurrently", nil, infra.KindStaleState)
	}
	return nil
}

func (r *BookingRepository) fromRow(row sqlc.Bookings) (*booking.Booking, error) {
	b, err := converter.BookingFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode booking row", err, infra.KindDBFailure)
	}
	return b, nil
}
