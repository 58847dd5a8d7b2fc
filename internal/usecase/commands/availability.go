package commands

import (
	"context"
	"fmt"
	"log/slog"

	"carhire-booking/internal/domain/booking"
	"carhire-booking/internal/domain/vehicle"
	"carhire-booking/internal/infra"
	"carhire-booking/internal/pkg/errs"
	"carhire-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrVehicleNotFound    = errs.Mark(errs.New("vehicle not found"), errs.ErrNotFound)
	ErrVehicleUnavailable = errs.Mark(errs.New("vehicle is not available for hire"), errs.ErrValidation)
	ErrAvailabilityLookup = errs.Mark(errs.New("availability could not be determined"), errs.ErrExternalDependency)
)

// AvailabilityConflictError lists the live bookings that hold the vehicle
// over the requested dates. Blocked may be empty when the overlap was only
// detected by the database constraint.
type AvailabilityConflictError struct {
	VehicleID uuid.UUID
	Blocked   []booking.DateRange
}

func (e *AvailabilityConflictError) Error() string {
	return fmt.Sprintf("vehicle %s is already booked on %d overlapping range(s)", e.VehicleID, len(e.Blocked))
}

func (e *AvailabilityConflictError) Is(target error) bool {
	return target == errs.ErrAvailabilityConflict
}

// AvailabilityListing never carries a partial list: on failure Vehicles is nil and Err is set.
type AvailabilityListing struct {
	Vehicles []*shared.VehicleSnapshot
	Err      error
}

type AvailabilityCommands interface {
	IsAvailable(ctx context.Context, vehicleID uuid.UUID, dates booking.DateRange, excludeBookingID *uuid.UUID) (bool, error)
	BlockedRanges(ctx context.Context, vehicleID uuid.UUID, dates booking.DateRange, excludeBookingID *uuid.UUID) ([]booking.DateRange, error)
	ListAvailableVehicles(ctx context.Context, dates booking.DateRange, filter vehicle.Filter) AvailabilityListing
}

type availabilityUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewAvailabilityUseCase(uow shared.UnitOfWork) AvailabilityCommands {
	return &availabilityUseCaseImpl{uow: uow}
}

// IsAvailable fails closed: if the store cannot answer, the vehicle is reported unavailable.
func (u *availabilityUseCaseImpl) IsAvailable(ctx context.Context, vehicleID uuid.UUID, dates booking.DateRange, excludeBookingID *uuid.UUID) (bool, error) {
	blocked, err := u.uow.CommandReads().BlockingBookings(ctx, vehicleID, dates, excludeBookingID)
	if err != nil {
		slog.Error("availability lookup failed",
			"vehicle_id", vehicleID,
			"dates", dates.String(),
			"error", err)
		return false, errs.Mark(err, ErrAvailabilityLookup)
	}
	return len(blocked) == 0, nil
}

func (u *availabilityUseCaseImpl) BlockedRanges(ctx context.Context, vehicleID uuid.UUID, dates booking.DateRange, excludeBookingID *uuid.UUID) ([]booking.DateRange, error) {
	blocked, err := u.uow.CommandReads().BlockingBookings(ctx, vehicleID, dates, excludeBookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrAvailabilityLookup)
	}
	return rangesOf(blocked), nil
}

func (u *availabilityUseCaseImpl) ListAvailableVehicles(ctx context.Context, dates booking.DateRange, filter vehicle.Filter) AvailabilityListing {
	free, err := u.uow.CommandReads().VehiclesFreeBetween(ctx, dates)
	if err != nil {
		slog.Error("vehicle availability listing failed", "dates", dates.String(), "error", err)
		return AvailabilityListing{Err: errs.Mark(err, ErrAvailabilityLookup)}
	}

	out := make([]*shared.VehicleSnapshot, 0, len(free))
	for _, v := range free {
		entity := v.ToVehicle()
		if !entity.IsBookable() || !filter.Matches(entity) {
			continue
		}
		out = append(out, v)
	}
	return AvailabilityListing{Vehicles: out}
}

// ensureAvailable returns nil, an *AvailabilityConflictError or an external dependency error.
func ensureAvailable(ctx context.Context, reads shared.CommandReads, vehicleID uuid.UUID, dates booking.DateRange, exclude *uuid.UUID) error {
	blocked, err := reads.BlockingBookings(ctx, vehicleID, dates, exclude)
	if err != nil {
		return errs.Mark(err, ErrAvailabilityLookup)
	}
	if len(blocked) > 0 {
		return &AvailabilityConflictError{VehicleID: vehicleID, Blocked: rangesOf(blocked)}
	}
	return nil
}

// conflictFromConstraint builds the conflict error after the exclusion
// constraint fired. The blocked ranges are best-effort detail.
func conflictFromConstraint(ctx context.Context, reads shared.CommandReads, vehicleID uuid.UUID, dates booking.DateRange, exclude *uuid.UUID) error {
	conflict := &AvailabilityConflictError{VehicleID: vehicleID}
	blocked, err := reads.BlockingBookings(ctx, vehicleID, dates, exclude)
	if err != nil {
		slog.Warn("failed to load blocked ranges for conflict detail", "vehicle_id", vehicleID, "error", err)
		return conflict
	}
	conflict.Blocked = rangesOf(blocked)
	return conflict
}

func loadBookableVehicle(ctx context.Context, reads shared.CommandReads, id uuid.UUID) (*shared.VehicleSnapshot, error) {
	v, err := reads.VehicleByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, errs.Mark(err, errs.ErrExternalDependency)
	}
	if !v.ToVehicle().IsBookable() {
		return nil, ErrVehicleUnavailable
	}
	return v, nil
}

func rangesOf(blocked []shared.BlockingBooking) []booking.DateRange {
	out := make([]booking.DateRange, 0, len(blocked))
	for _, b := range blocked {
		out = append(out, b.Dates)
	}
	return out
}
