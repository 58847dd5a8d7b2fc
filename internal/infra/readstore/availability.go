package readstore

import (
	"context"

	"carhire-booking/internal/domain/booking"
	"carhire-booking/internal/infra"
	sqlc "carhire-booking/internal/infra/sqlc/generated"
	"carhire-booking/internal/pkg/pgconv"
	"carhire-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type BlockingBookingQueries interface {
	ListBlockingBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBlockingBookingsParams) ([]sqlc.ListBlockingBookingsRow, error)
}

type AvailabilityReadStore struct {
	queries BlockingBookingQueries
	db      sqlc.DBTX
}

func NewAvailabilityReadStore(queries BlockingBookingQueries, db sqlc.DBTX) *AvailabilityReadStore {
	return &AvailabilityReadStore{
		queries: queries,
		db:      db,
	}
}

// Blocking returns live bookings on vehicleID whose dates touch r, excluding one booking if given.
func (r *AvailabilityReadStore) Blocking(ctx context.Context, vehicleID uuid.UUID, dates booking.DateRange, exclude *uuid.UUID) ([]shared.BlockingBooking, error) {
	rows, err := r.queries.ListBlockingBookings(ctx, r.db, sqlc.ListBlockingBookingsParams{
		CarID:      vehicleID,
		RangeEnd:   pgconv.DateToPgtype(dates.End()),
		RangeStart: pgconv.DateToPgtype(dates.Start()),
		ExcludeID:  pgconv.UUIDPtrToPgtype(exclude),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list blocking bookings", err)
	}

	result := make([]shared.BlockingBooking, 0, len(rows))
	for _, row := range rows {
		status, perr := booking.ParseStatus(row.Status)
		if perr != nil {
			return nil, infra.WrapRepoErr("failed to decode blocking booking", perr, infra.KindDBFailure)
		}
		rng, rerr := booking.NewDateRange(pgconv.DateFromPgtype(row.PickupDate), pgconv.DateFromPgtype(row.DropoffDate))
		if rerr != nil {
			return nil, infra.WrapRepoErr("failed to decode blocking booking", rerr, infra.KindDBFailure)
		}
		result = append(result, shared.BlockingBooking{ID: row.ID, Dates: rng, Status: status})
	}
	return result, nil
}
