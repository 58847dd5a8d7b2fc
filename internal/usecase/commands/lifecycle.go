package commands

import (
	"context"
	"log/slog"

	"carhire-booking/internal/domain/agreement"
	"carhire-booking/internal/domain/booking"
	"carhire-booking/internal/domain/inspection"
	"carhire-booking/internal/domain/user"
	"carhire-booking/internal/infra"
	"carhire-booking/internal/pkg/clock"
	"carhire-booking/internal/pkg/errs"
	"carhire-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errs.Mark(errs.New("booking not found"), errs.ErrNotFound)
	ErrBookingAccess   = errs.Mark(errs.New("not allowed to change this booking"), errs.ErrAuthorization)
	ErrStaleBooking    = errs.Mark(errs.New("booking was changed concurrently"), errs.ErrGuardViolation)
	ErrGuardLookup     = errs.Mark(errs.New("transition guards could not be evaluated"), errs.ErrExternalDependency)
)

// statusChange is what a committed transition reports for post-commit notification.
type statusChange struct {
	booking *booking.Booking
	from    booking.Status
}

type transitionRequest struct {
	to      booking.Status
	trigger booking.Trigger
	reason  *booking.Reason
}

// lifecycle applies a single status change inside an open transaction:
// guards are read from the same snapshot, the write is compare-and-set and
// coordinator side effects commit or roll back with it.
type lifecycle struct {
	clock clock.Clock
}

func (l *lifecycle) apply(ctx context.Context, tx shared.Tx, b *booking.Booking, req transitionRequest) (*statusChange, error) {
	from := b.Status()

	guards, err := l.guardsFor(ctx, tx, b.ID(), req.to)
	if err != nil {
		slog.Error("guard evaluation failed",
			"booking_id", b.ID(),
			"from", from,
			"to", req.to,
			"error", err)
		return nil, errs.Mark(err, ErrGuardLookup)
	}
	guards.Reason = req.reason

	now := l.clock.Now()
	if err := b.ApplyTransition(req.to, req.trigger, guards, now); err != nil {
		return nil, errs.Mark(err, errs.ErrGuardViolation)
	}

	err = tx.Bookings().UpdateStatus(ctx, shared.BookingStatusUpdate{
		ID:     b.ID(),
		From:   from,
		To:     req.to,
		Reason: req.reason,
		At:     now,
	})
	if err != nil {
		if infra.IsKind(err, infra.KindStaleState) {
			return nil, ErrStaleBooking
		}
		if infra.IsKind(err, infra.KindConflict) {
			// Moving out of a released status would re-block the vehicle.
			return nil, &AvailabilityConflictError{VehicleID: b.VehicleID()}
		}
		slog.Error("failed to write booking status",
			"booking_id", b.ID(),
			"from", from,
			"to", req.to,
			"error", err)
		return nil, errs.Mark(err, errs.ErrExternalDependency)
	}

	if err := l.afterTransition(ctx, tx, b); err != nil {
		slog.Error("coordinator side effect failed",
			"booking_id", b.ID(),
			"from", from,
			"to", req.to,
			"error", err)
		return nil, errs.Mark(err, errs.ErrExternalDependency)
	}

	return &statusChange{booking: b, from: from}, nil
}

// guardsFor reads only the facts the target status depends on.
func (l *lifecycle) guardsFor(ctx context.Context, tx shared.Tx, bookingID uuid.UUID, to booking.Status) (booking.Guards, error) {
	switch to {
	case booking.StatusOnRent:
		return readActivationGuards(ctx, tx, bookingID)
	case booking.StatusCompleted:
		returned, err := tx.Inspections().Exists(ctx, bookingID, inspection.TypeReturn)
		if err != nil {
			return booking.Guards{}, err
		}
		return booking.Guards{ReturnRecorded: returned}, nil
	default:
		return booking.Guards{}, nil
	}
}

func (l *lifecycle) afterTransition(ctx context.Context, tx shared.Tx, b *booking.Booking) error {
	switch b.Status() {
	case booking.StatusPaymentCompleted:
		_, err := issueDraft(ctx, tx, b.ID(), l.clock)
		return err
	case booking.StatusOnRent:
		return l.stampHandoverCondition(ctx, tx, b.ID())
	default:
		return nil
	}
}

// stampHandoverCondition copies fuel and odometer from the latest handover
// inspection onto the agreement. Existing values are kept.
func (l *lifecycle) stampHandoverCondition(ctx context.Context, tx shared.Tx, bookingID uuid.UUID) error {
	handover, err := tx.Inspections().Latest(ctx, bookingID, inspection.TypeHandover)
	if err != nil {
		return errs.Wrap(err, "failed to load handover inspection")
	}
	a, err := tx.Agreements().GetByBooking(ctx, bookingID)
	if err != nil {
		return errs.Wrap(err, "failed to load agreement")
	}
	if !a.StampCondition(handover.FuelLevel(), handover.Odometer(), l.clock.Now()) {
		return nil
	}
	return tx.Agreements().Update(ctx, a, a.Status())
}

func readActivationGuards(ctx context.Context, tx shared.Tx, bookingID uuid.UUID) (booking.Guards, error) {
	signed := false
	a, err := tx.Agreements().GetByBooking(ctx, bookingID)
	switch {
	case err == nil:
		signed = a.IsSigned()
	case !infra.IsKind(err, infra.KindNotFound):
		return booking.Guards{}, err
	}

	handover, err := tx.Inspections().Exists(ctx, bookingID, inspection.TypeHandover)
	if err != nil {
		return booking.Guards{}, err
	}
	return booking.Guards{AgreementSigned: signed, HandoverRecorded: handover}, nil
}

// issueDraft creates the draft agreement for a booking unless one exists.
func issueDraft(ctx context.Context, tx shared.Tx, bookingID uuid.UUID, clk clock.Clock) (*agreement.Agreement, error) {
	created, err := tx.Agreements().CreateDraft(ctx, agreement.NewDraft(bookingID, clk.Now()))
	if err != nil {
		return nil, errs.Wrap(err, "failed to create draft agreement")
	}
	if created {
		slog.Info("draft agreement issued", "booking_id", bookingID)
	}
	a, err := tx.Agreements().GetByBooking(ctx, bookingID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load agreement")
	}
	return a, nil
}

func loadBookingForUpdate(ctx context.Context, tx shared.Tx, id uuid.UUID) (*booking.Booking, error) {
	b, err := tx.Bookings().GetForUpdate(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrExternalDependency)
	}
	return b, nil
}

// triggerFor maps the caller to the trigger it may use. Staff and admins
// act as staff on any booking, customers only on their own. Guest bookings
// have no owner and can only be changed by staff.
func triggerFor(actor user.Actor, b *booking.Booking) (booking.Trigger, error) {
	if actor.IsStaff() {
		return booking.TriggerStaff, nil
	}
	if actor.IsAnonymous() || !b.Customer().IsUser(actor.UserID) {
		return "", ErrBookingAccess
	}
	return booking.TriggerCustomer, nil
}

// asDependencyErr leaves taxonomy-marked errors alone and marks raw store
// failures as an external dependency outage.
func asDependencyErr(err error) error {
	for _, known := range []error{
		errs.ErrValidation,
		errs.ErrAvailabilityConflict,
		errs.ErrGuardViolation,
		errs.ErrAuthorization,
		errs.ErrNotFound,
		errs.ErrExternalDependency,
	} {
		if errs.Is(err, known) {
			return err
		}
	}
	return errs.Mark(err, errs.ErrExternalDependency)
}
