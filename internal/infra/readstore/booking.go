package readstore

import (
	"context"
	"time"

	"carhire-booking/internal/infra"
	sqlc "carhire-booking/internal/infra/sqlc/generated"
	"carhire-booking/internal/pkg/pgconv"
	"carhire-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingViewQueries interface {
	GetBookingView(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetBookingViewRow, error)
	ListBookingsByUserFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByUserFirstPageParams) ([]sqlc.ListBookingsByUserFirstPageRow, error)
	ListBookingsByUserKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByUserKeysetParams) ([]sqlc.ListBookingsByUserKeysetRow, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingViewQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking view by id", err)
	}
	return &queries.BookingView{
		ID:               row.ID,
		Reference:        row.Reference,
		VehicleID:        row.CarID,
		VehicleName:      row.CarName,
		Registration:     row.CarRegistration,
		UserID:           pgconv.UUIDPtrFromPgtype(row.UserID),
		CustomerName:     row.CustomerName,
		CustomerEmail:    row.CustomerEmail,
		CustomerPhone:    row.CustomerPhone,
		PickupLocation:   row.PickupLocation,
		DropoffLocation:  row.DropoffLocation,
		PickupDate:       pgconv.DateFromPgtype(row.PickupDate),
		DropoffDate:      pgconv.DateFromPgtype(row.DropoffDate),
		PickupTime:       row.PickupTime,
		DropoffTime:      row.DropoffTime,
		TotalAmountCents: row.TotalAmountCents,
		Status:           row.Status,
		PaymentStatus:    row.PaymentStatus,
		BookingType:      row.BookingType,
		StatusReason:     pgconv.StringPtrFromPgtype(row.StatusReason),
		Inspections:      []queries.InspectionView{},
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:        pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func (r *BookingReadStore) FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	params := sqlc.ListBookingsByUserFirstPageParams{UserID: pgconv.UUIDToPgtype(userID), Limit: limit}
	rows, err := r.queries.ListBookingsByUserFirstPage(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get bookings first page by user", err)
	}
	return mapBookingSummaries(rows), nil
}

func (r *BookingReadStore) FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	params := sqlc.ListBookingsByUserKeysetParams{
		UserID:    pgconv.UUIDToPgtype(userID),
		CreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		ID:        lastID,
		RowLimit:  limit,
	}
	rows, err := r.queries.ListBookingsByUserKeyset(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get bookings keyset by user", err)
	}
	return mapBookingSummaries(rows), nil
}

func mapBookingSummaries(rows []sqlc.BookingSummaryRow) []*queries.BookingListItem {
	out := make([]*queries.BookingListItem, len(rows))
	for i, row := range rows {
		out[i] = &queries.BookingListItem{
			ID:               row.ID,
			Reference:        row.Reference,
			VehicleID:        row.CarID,
			VehicleName:      row.CarName,
			PickupDate:       pgconv.DateFromPgtype(row.PickupDate),
			DropoffDate:      pgconv.DateFromPgtype(row.DropoffDate),
			TotalAmountCents: row.TotalAmountCents,
			Status:           row.Status,
			PaymentStatus:    row.PaymentStatus,
			BookingType:      row.BookingType,
			CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return out
}
