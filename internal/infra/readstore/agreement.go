package readstore

import (
	"context"

	"carhire-booking/internal/infra"
	sqlc "carhire-booking/internal/infra/sqlc/generated"
	"carhire-booking/internal/pkg/pgconv"
	"carhire-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type AgreementReadQueries interface {
	GetAgreementByBookingID(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) (sqlc.Agreements, error)
}

type AgreementReadStore struct {
	queries AgreementReadQueries
	db      sqlc.DBTX
}

func NewAgreementReadStore(queries AgreementReadQueries, db sqlc.DBTX) *AgreementReadStore {
	return &AgreementReadStore{
		queries: queries,
		db:      db,
	}
}

// The signature payload is never exposed on the read side.
func (r *AgreementReadStore) FindByBooking(ctx context.Context, bookingID uuid.UUID) (*queries.AgreementView, error) {
	row, err := r.queries.GetAgreementByBookingID(ctx, r.db, bookingID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("agreement not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get agreement by booking", err)
	}
	return &queries.AgreementView{
		ID:           row.ID,
		Status:       row.Status,
		Registration: row.VehicleRegistration,
		UnsignedURL:  pgconv.StringPtrFromPgtype(row.UnsignedUrl),
		SignedURL:    pgconv.StringPtrFromPgtype(row.SignedUrl),
		SignerName:   pgconv.StringPtrFromPgtype(row.SignerName),
		SignedAt:     pgconv.TimePtrFromPgtype(row.SignedAt),
		FuelLevel:    pgconv.StringPtrFromPgtype(row.FuelLevel),
		Odometer:     pgconv.IntPtrFromPgtype(row.Odometer),
	}, nil
}
