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

type VehicleReadQueries interface {
	GetCarByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Cars, error)
	ListCarsFreeBetween(ctx context.Context, db sqlc.DBTX, arg sqlc.ListCarsFreeBetweenParams) ([]sqlc.Cars, error)
}

type VehicleReadStore struct {
	queries VehicleReadQueries
	db      sqlc.DBTX
}

func NewVehicleReadStore(queries VehicleReadQueries, db sqlc.DBTX) *VehicleReadStore {
	return &VehicleReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *VehicleReadStore) FindByID(ctx context.Context, id uuid.UUID) (*shared.VehicleSnapshot, error) {
	row, err := r.queries.GetCarByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("vehicle not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find vehicle by ID", err)
	}
	return toVehicleSnapshotFromRow(row), nil
}

// FreeBetween lists available vehicles with no live booking touching r.
func (r *VehicleReadStore) FreeBetween(ctx context.Context, dates booking.DateRange) ([]*shared.VehicleSnapshot, error) {
	rows, err := r.queries.ListCarsFreeBetween(ctx, r.db, sqlc.ListCarsFreeBetweenParams{
		RangeEnd:   pgconv.DateToPgtype(dates.End()),
		RangeStart: pgconv.DateToPgtype(dates.Start()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list free vehicles", err)
	}

	result := make([]*shared.VehicleSnapshot, len(rows))
	for i, row := range rows {
		result[i] = toVehicleSnapshotFromRow(row)
	}
	return result, nil
}

func toVehicleSnapshotFromRow(row sqlc.Cars) *shared.VehicleSnapshot {
	return &shared.VehicleSnapshot{
		ID:             row.ID,
		Name:           row.Name,
		Make:           row.Make,
		Model:          row.Model,
		Year:           int(row.Year),
		Category:       row.Category,
		Transmission:   row.Transmission,
		FuelType:       row.FuelType,
		Seats:          int(row.Seats),
		DailyRateCents: row.DailyRateCents,
		Registration:   row.Registration,
		Status:         row.Status,
	}
}
