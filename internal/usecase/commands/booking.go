package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"carhire-booking/internal/domain/booking"
	"carhire-booking/internal/domain/user"
	"carhire-booking/internal/infra"
	"carhire-booking/internal/pkg/clock"
	"carhire-booking/internal/pkg/errs"
	"carhire-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const createBookingEndpoint = "POST /api/bookings"

var (
	ErrIdempotencyCheckFailed = errs.Mark(errs.New("idempotency check failed"), errs.ErrExternalDependency)
	ErrIdempotencyInProgress  = errs.Mark(errs.New("a request with this idempotency key is still in progress"), errs.ErrIdempotencyInProgress)
	ErrIdempotencyKeyReused   = errs.Mark(errs.New("idempotency key was used with a different request"), errs.ErrIdempotencyKeyReused)
)

type CreateBookingInput struct {
	VehicleID        uuid.UUID `json:"vehicle_id"`
	CustomerName     string    `json:"customer_name"`
	CustomerEmail    string    `json:"customer_email"`
	CustomerPhone    string    `json:"customer_phone"`
	PickupLocation   string    `json:"pickup_location"`
	DropoffLocation  string    `json:"dropoff_location"`
	PickupDate       string    `json:"pickup_date"`
	DropoffDate      string    `json:"dropoff_date"`
	PickupTime       string    `json:"pickup_time"`
	DropoffTime      string    `json:"dropoff_time"`
	TotalAmountCents int64     `json:"total_amount_cents"`
	BookingType      string    `json:"booking_type"`
}

type CreateBookingResult struct {
	Booking    *booking.Booking
	IsReplayed bool
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, actor user.Actor, in CreateBookingInput, idempotencyKey *uuid.UUID) (*CreateBookingResult, error)
	TransitionStatus(ctx context.Context, actor user.Actor, bookingID uuid.UUID, target, reasonCode string) (*booking.Booking, error)
	RescheduleBooking(ctx context.Context, actor user.Actor, bookingID uuid.UUID, dates booking.DateRange) (*booking.Booking, error)
}

type bookingUseCaseImpl struct {
	uow            shared.UnitOfWork
	emitter        *Emitter
	clock          clock.Clock
	idempotencyTTL time.Duration
	lifecycle      *lifecycle
}

func NewBookingUseCase(
	uow shared.UnitOfWork,
	emitter *Emitter,
	clock clock.Clock,
	idempotencyTTL time.Duration,
) BookingCommands {
	return &bookingUseCaseImpl{
		uow:            uow,
		emitter:        emitter,
		clock:          clock,
		idempotencyTTL: idempotencyTTL,
		lifecycle:      &lifecycle{clock: clock},
	}
}

func (u *bookingUseCaseImpl) CreateBooking(
	ctx context.Context,
	actor user.Actor,
	in CreateBookingInput,
	idempotencyKey *uuid.UUID,
) (*CreateBookingResult, error) {
	if idempotencyKey == nil {
		b, err := u.createNewBooking(ctx, actor, in, nil)
		if err != nil {
			return nil, err
		}
		return &CreateBookingResult{Booking: b}, nil
	}

	// Guests share the nil user namespace for keys.
	owner := actor.UserID
	requestHash := calculateRequestHash(in)

	replayed, err := u.handleIdempotency(ctx, *idempotencyKey, owner, requestHash)
	if err != nil {
		return nil, err
	}
	if replayed != nil {
		return &CreateBookingResult{Booking: replayed, IsReplayed: true}, nil
	}

	b, err := u.createNewBooking(ctx, actor, in, idempotencyKey)
	if err != nil {
		u.releaseIdempotencyKey(ctx, *idempotencyKey, owner)
		return nil, err
	}
	return &CreateBookingResult{Booking: b}, nil
}

// handleIdempotency claims the key, or returns the booking a completed
// request with the same key produced.
func (u *bookingUseCaseImpl) handleIdempotency(ctx context.Context, key, owner uuid.UUID, requestHash string) (*booking.Booking, error) {
	expiresAt := u.clock.Now().Add(u.idempotencyTTL)
	var claimed bool
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		claimed, err = tx.Idempotency().TryInsert(ctx, key, owner, createBookingEndpoint, requestHash, expiresAt)
		return err
	})
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}
	if claimed {
		return nil, nil
	}

	existing, err := u.uow.CommandReads().IdempotencyByKey(ctx, key, owner)
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}

	switch existing.Status {
	case shared.IdempotencyCompleted:
		if existing.RequestHash != requestHash {
			return nil, ErrIdempotencyKeyReused
		}
		if existing.ResultBookingID == nil {
			return nil, errs.Mark(errs.New("completed request missing result booking ID"), ErrIdempotencyCheckFailed)
		}
		return u.loadBooking(ctx, *existing.ResultBookingID)

	case shared.IdempotencyProcessing:
		if existing.RequestHash != requestHash {
			return nil, ErrIdempotencyKeyReused
		}
		return nil, ErrIdempotencyInProgress

	default:
		return nil, errs.Mark(errs.New("invalid idempotency key status"), ErrIdempotencyCheckFailed)
	}
}

func (u *bookingUseCaseImpl) releaseIdempotencyKey(ctx context.Context, key, owner uuid.UUID) {
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Idempotency().Release(ctx, key, owner)
	})
	if err != nil {
		slog.Warn("failed to release idempotency key", "idempotency_key", key, "error", err)
	}
}

func (u *bookingUseCaseImpl) createNewBooking(
	ctx context.Context,
	actor user.Actor,
	in CreateBookingInput,
	idempotencyKey *uuid.UUID,
) (*booking.Booking, error) {
	reads := u.uow.CommandReads()

	b, err := u.buildBooking(actor, in)
	if err != nil {
		return nil, err
	}

	if _, err := loadBookableVehicle(ctx, reads, b.VehicleID()); err != nil {
		return nil, err
	}

	// Friendly pre-check for a readable conflict. The exclusion constraint
	// is what actually prevents the double booking.
	if err := ensureAvailable(ctx, reads, b.VehicleID(), b.Dates(), nil); err != nil {
		return nil, err
	}

	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Bookings().Create(ctx, b); err != nil {
			return err
		}
		if idempotencyKey != nil {
			return tx.Idempotency().MarkCompleted(ctx, *idempotencyKey, actor.UserID, b.ID())
		}
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			slog.Info("booking rejected by overlap constraint",
				"vehicle_id", b.VehicleID(),
				"dates", b.Dates().String())
			return nil, conflictFromConstraint(ctx, reads, b.VehicleID(), b.Dates(), nil)
		}
		slog.Error("failed to create booking",
			"vehicle_id", b.VehicleID(),
			"dates", b.Dates().String(),
			"error", err)
		return nil, errs.Mark(err, errs.ErrExternalDependency)
	}

	slog.Info("booking created",
		"booking_id", b.ID(),
		"reference", b.Reference(),
		"vehicle_id", b.VehicleID(),
		"dates", b.Dates().String())
	u.emitter.BookingCreated(ctx, b)
	return b, nil
}

func (u *bookingUseCaseImpl) buildBooking(actor user.Actor, in CreateBookingInput) (*booking.Booking, error) {
	var userID *uuid.UUID
	if !actor.IsAnonymous() {
		id := actor.UserID
		userID = &id
	}

	customer, err := booking.NewCustomer(userID, in.CustomerName, in.CustomerEmail, in.CustomerPhone)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	dates, err := booking.ParseDateRange(in.PickupDate, in.DropoffDate)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	bookingType, err := booking.ParseType(in.BookingType)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	b, err := booking.NewBooking(u.clock, booking.NewBookingParams{
		VehicleID:       in.VehicleID,
		Customer:        customer,
		PickupLocation:  in.PickupLocation,
		DropoffLocation: in.DropoffLocation,
		Dates:           dates,
		PickupTime:      strings.TrimSpace(in.PickupTime),
		DropoffTime:     strings.TrimSpace(in.DropoffTime),
		TotalCents:      in.TotalAmountCents,
		Type:            bookingType,
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	return b, nil
}

func (u *bookingUseCaseImpl) TransitionStatus(
	ctx context.Context,
	actor user.Actor,
	bookingID uuid.UUID,
	target, reasonCode string,
) (*booking.Booking, error) {
	to, err := booking.ParseStatus(target)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	var reason *booking.Reason
	if reasonCode != "" {
		r, err := booking.ParseReason(reasonCode)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrValidation)
		}
		reason = &r
	}

	var change *statusChange
	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := loadBookingForUpdate(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		trigger, err := triggerFor(actor, b)
		if err != nil {
			return err
		}
		if reason == nil && to == booking.StatusCancelled && trigger == booking.TriggerCustomer {
			r := booking.ReasonCustomerRequest
			reason = &r
		}
		change, err = u.lifecycle.apply(ctx, tx, b, transitionRequest{to: to, trigger: trigger, reason: reason})
		return err
	})
	if err != nil {
		if errs.Is(err, errs.ErrGuardViolation) {
			slog.Info("booking transition refused",
				"booking_id", bookingID,
				"to", to,
				"actor_id", actor.UserID,
				"reason", err.Error())
		}
		return nil, err
	}

	u.emitter.StatusChanged(ctx, change.booking, change.from)
	return change.booking, nil
}

// RescheduleBooking changes the dates in place. The booking's own range is
// excluded from the overlap check.
func (u *bookingUseCaseImpl) RescheduleBooking(
	ctx context.Context,
	actor user.Actor,
	bookingID uuid.UUID,
	dates booking.DateRange,
) (*booking.Booking, error) {
	var (
		updated   *booking.Booking
		vehicleID uuid.UUID
	)
	exclude := &bookingID

	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := loadBookingForUpdate(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		if _, err := triggerFor(actor, b); err != nil {
			return err
		}
		vehicleID = b.VehicleID()

		if err := b.Reschedule(u.clock, dates); err != nil {
			if errs.Is(err, booking.ErrNotReschedulable) {
				return errs.Mark(err, errs.ErrGuardViolation)
			}
			return errs.Mark(err, errs.ErrValidation)
		}

		if err := ensureAvailable(ctx, tx.Reads(), vehicleID, dates, exclude); err != nil {
			return err
		}

		err = tx.Bookings().UpdateDates(ctx, shared.BookingDatesUpdate{
			ID:             b.ID(),
			ExpectedStatus: b.Status(),
			Dates:          dates,
			At:             b.UpdatedAt(),
		})
		if err != nil {
			if infra.IsKind(err, infra.KindStaleState) {
				return ErrStaleBooking
			}
			return err
		}
		updated = b
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, conflictFromConstraint(ctx, u.uow.CommandReads(), vehicleID, dates, exclude)
		}
		return nil, asDependencyErr(err)
	}

	slog.Info("booking rescheduled", "booking_id", bookingID, "dates", dates.String())
	u.emitter.DatesChanged(ctx, updated)
	return updated, nil
}

func (u *bookingUseCaseImpl) loadBooking(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	var b *booking.Booking
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		b, err = tx.Bookings().Get(ctx, id)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrExternalDependency)
	}
	return b, nil
}

func calculateRequestHash(in CreateBookingInput) string {
	data, _ := json.Marshal(in)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
