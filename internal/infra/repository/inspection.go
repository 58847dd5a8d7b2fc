package repository

import (
	"context"

	"carhire-booking/internal/domain/inspection"
	"carhire-booking/internal/infra"
	"carhire-booking/internal/infra/repository/converter"
	sqlc "carhire-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type InspectionWriteQueries interface {
	CreateInspection(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateInspectionParams) error
	GetLatestInspection(ctx context.Context, db sqlc.DBTX, arg sqlc.GetLatestInspectionParams) (sqlc.VehicleInspections, error)
	InspectionExists(ctx context.Context, db sqlc.DBTX, arg sqlc.InspectionExistsParams) (bool, error)
}

type InspectionRepository struct {
	queries InspectionWriteQueries
	db      sqlc.DBTX
}

func NewInspectionRepository(queries InspectionWriteQueries, db sqlc.DBTX) *InspectionRepository {
	return &InspectionRepository{
		queries: queries,
		db:      db,
	}
}

func (r *InspectionRepository) Create(ctx context.Context, i *inspection.Inspection) error {
	if err := r.queries.CreateInspection(ctx, r.db, converter.InspectionToCreateParams(i)); err != nil {
		return infra.WrapRepoErr("failed to create inspection", err)
	}
	return nil
}

// Latest returns the most recent record of type t. Earlier records are kept but never consulted.
func (r *InspectionRepository) Latest(ctx context.Context, bookingID uuid.UUID, t inspection.Type) (*inspection.Inspection, error) {
	row, err := r.queries.GetLatestInspection(ctx, r.db, sqlc.GetLatestInspectionParams{
		BookingID:      bookingID,
		InspectionType: t.String(),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get latest inspection", err)
	}
	i, err := converter.InspectionFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode inspection row", err, infra.KindDBFailure)
	}
	return i, nil
}

func (r *InspectionRepository) Exists(ctx context.Context, bookingID uuid.UUID, t inspection.Type) (bool, error) {
	ok, err := r.queries.InspectionExists(ctx, r.db, sqlc.InspectionExistsParams{
		BookingID:      bookingID,
		InspectionType: t.String(),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check inspection", err)
	}
	return ok, nil
}
