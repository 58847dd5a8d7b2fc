package shared

import (
	"context"
	"time"

	"carhire-booking/internal/domain/agreement"
	"carhire-booking/internal/domain/booking"
	"carhire-booking/internal/domain/inspection"
	"carhire-booking/internal/domain/payment"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

// Repositories returned by a Tx are bound to that transaction.
type Tx interface {
	Bookings() BookingRepository
	Agreements() AgreementRepository
	Inspections() InspectionRepository
	Idempotency() IdempotencyRepository
	PaymentEvents() PaymentEventRepository
	Reads() CommandReads
}

type CommandReads interface {
	VehicleByID(ctx context.Context, id uuid.UUID) (*VehicleSnapshot, error)
	BlockingBookings(ctx context.Context, vehicleID uuid.UUID, r booking.DateRange, exclude *uuid.UUID) ([]BlockingBooking, error)
	VehiclesFreeBetween(ctx context.Context, r booking.DateRange) ([]*VehicleSnapshot, error)
	IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	Get(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	GetByPaymentIntentForUpdate(ctx context.Context, paymentIntentID string) (*booking.Booking, error)
	UpdateStatus(ctx context.Context, u BookingStatusUpdate) error
	UpdatePayment(ctx context.Context, u BookingPaymentUpdate) error
	UpdateDates(ctx context.Context, u BookingDatesUpdate) error
}

type AgreementRepository interface {
	// CreateDraft reports false when the booking already has an agreement.
	CreateDraft(ctx context.Context, a *agreement.Agreement) (bool, error)
	Get(ctx context.Context, id uuid.UUID) (*agreement.Agreement, error)
	GetByBooking(ctx context.Context, bookingID uuid.UUID) (*agreement.Agreement, error)
	Update(ctx context.Context, a *agreement.Agreement, expected agreement.Status) error
}

type InspectionRepository interface {
	Create(ctx context.Context, i *inspection.Inspection) error
	Latest(ctx context.Context, bookingID uuid.UUID, t inspection.Type) (*inspection.Inspection, error)
	Exists(ctx context.Context, bookingID uuid.UUID, t inspection.Type) (bool, error)
}

type IdempotencyRepository interface {
	// TryInsert reports whether the caller now owns the key.
	TryInsert(ctx context.Context, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	MarkCompleted(ctx context.Context, key, userID, bookingID uuid.UUID) error
	Release(ctx context.Context, key, userID uuid.UUID) error
	DeleteExpired(ctx context.Context) (int64, error)
}

type PaymentEventRepository interface {
	// Record reports false when the event id was already recorded.
	Record(ctx context.Context, ev payment.Event, bookingID *uuid.UUID, outcome payment.Outcome) (bool, error)
	DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
