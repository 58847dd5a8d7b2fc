package repository

import (
	"context"

	"carhire-booking/internal/domain/agreement"
	"carhire-booking/internal/infra"
	"carhire-booking/internal/infra/repository/converter"
	sqlc "carhire-booking/internal/infra/sqlc/generated"
	"carhire-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type AgreementWriteQueries interface {
	CreateAgreementDraft(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateAgreementDraftParams) (int64, error)
	GetAgreementByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Agreements, error)
	GetAgreementByBookingID(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) (sqlc.Agreements, error)
	UpdateAgreement(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateAgreementParams) (int64, error)
}

type AgreementRepository struct {
	queries AgreementWriteQueries
	db      sqlc.DBTX
}

func NewAgreementRepository(queries AgreementWriteQueries, db sqlc.DBTX) *AgreementRepository {
	return &AgreementRepository{
		queries: queries,
		db:      db,
	}
}

func (r *AgreementRepository) CreateDraft(ctx context.Context, a *agreement.Agreement) (bool, error) {
	n, err := r.queries.CreateAgreementDraft(ctx, r.db, sqlc.CreateAgreementDraftParams{
		ID:        a.ID(),
		BookingID: a.BookingID(),
		CreatedAt: pgconv.TimeToPgtype(a.CreatedAt()),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to create agreement draft", err)
	}
	return n > 0, nil
}

func (r *AgreementRepository) Get(ctx context.Context, id uuid.UUID) (*agreement.Agreement, error) {
	row, err := r.queries.GetAgreementByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get agreement", err)
	}
	return decodeAgreement(row)
}

func (r *AgreementRepository) GetByBooking(ctx context.Context, bookingID uuid.UUID) (*agreement.Agreement, error) {
	row, err := r.queries.GetAgreementByBookingID(ctx, r.db, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get agreement by booking", err)
	}
	return decodeAgreement(row)
}

func (r *AgreementRepository) Update(ctx context.Context, a *agreement.Agreement, expected agreement.Status) error {
	n, err := r.queries.UpdateAgreement(ctx, r.db, converter.AgreementToUpdateParams(a, expected))
	if err != nil {
		return infra.WrapRepoErr("failed to update agreement", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("agreement status changed concurrently", nil, infra.KindStaleState)
	}
	return nil
}

func decodeAgreement(row sqlc.Agreements) (*agreement.Agreement, error) {
	a, err := converter.AgreementFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode agreement row", err, infra.KindDBFailure)
	}
	return a, nil
}
