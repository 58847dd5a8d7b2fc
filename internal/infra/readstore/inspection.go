package readstore

import (
	"context"

	"carhire-booking/internal/infra"
	sqlc "carhire-booking/internal/infra/sqlc/generated"
	"carhire-booking/internal/pkg/pgconv"
	"carhire-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type InspectionReadQueries interface {
	ListInspectionsByBooking(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) ([]sqlc.VehicleInspections, error)
}

type InspectionReadStore struct {
	queries InspectionReadQueries
	db      sqlc.DBTX
}

func NewInspectionReadStore(queries InspectionReadQueries, db sqlc.DBTX) *InspectionReadStore {
	return &InspectionReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *InspectionReadStore) ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]queries.InspectionView, error) {
	rows, err := r.queries.ListInspectionsByBooking(ctx, r.db, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list inspections", err)
	}
	out := make([]queries.InspectionView, len(rows))
	for i, row := range rows {
		out[i] = queries.InspectionView{
			ID:               row.ID,
			AgreementID:      pgconv.UUIDPtrFromPgtype(row.AgreementID),
			Type:             row.InspectionType,
			FuelLevel:        row.FuelLevel,
			Odometer:         int(row.OdometerReading),
			OverallCondition: row.OverallCondition,
			ConditionNotes:   row.ConditionNotes,
			DamageNotes:      row.DamageNotes,
			ExteriorPhotos:   row.ExteriorPhotos,
			InteriorPhotos:   row.InteriorPhotos,
			DamagePhotos:     row.DamagePhotos,
			VideoURLs:        row.VideoUrls,
			InspectedBy:      row.InspectedBy,
			InspectorName:    row.InspectorName,
			CustomerPresent:  row.CustomerPresent,
			CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return out, nil
}
