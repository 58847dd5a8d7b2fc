//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"carhire-booking/internal/domain/booking"
	"carhire-booking/internal/infra"
	sqlc "carhire-booking/internal/infra/sqlc/generated"
	"carhire-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBlockingBookingQueries struct {
	mock.Mock
}

func (m *MockBlockingBookingQueries) ListBlockingBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBlockingBookingsParams) ([]sqlc.ListBlockingBookingsRow, error) {
	args := m.Called(ctx, db, arg)
	rows, _ := args.Get(0).([]sqlc.ListBlockingBookingsRow)
	return rows, args.Error(1)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAvailabilityReadStoreBlocking(t *testing.T) {
	vehicleID := uuid.New()
	excluded := uuid.New()
	blockingID := uuid.New()
	dates, err := booking.ParseDateRange("2026-05-10", "2026-05-14")
	require.NoError(t, err)

	tests := []struct {
		name      string
		exclude   *uuid.UUID
		rows      []sqlc.ListBlockingBookingsRow
		mockError error
		wantLen   int
		wantKind  infra.RepositoryErrorKind
	}{
		{
			name:    "no overlapping bookings",
			rows:    nil,
			wantLen: 0,
		},
		{
			name:    "overlapping booking excluding the one being moved",
			exclude: &excluded,
			rows: []sqlc.ListBlockingBookingsRow{
				{ID: blockingID, PickupDate: pgconv.DateToPgtype(date(2026, 5, 14)), DropoffDate: pgconv.DateToPgtype(date(2026, 5, 16)), Status: "confirmed"},
			},
			wantLen: 1,
		},
		{
			name: "unknown status is a decode failure",
			rows: []sqlc.ListBlockingBookingsRow{
				{ID: blockingID, PickupDate: pgconv.DateToPgtype(date(2026, 5, 10)), DropoffDate: pgconv.DateToPgtype(date(2026, 5, 11)), Status: "??"},
			},
			wantKind: infra.KindDBFailure,
		},
		{
			name: "inverted stored range is a decode failure",
			rows: []sqlc.ListBlockingBookingsRow{
				{ID: blockingID, PickupDate: pgconv.DateToPgtype(date(2026, 5, 12)), DropoffDate: pgconv.DateToPgtype(date(2026, 5, 11)), Status: "on_rent"},
			},
			wantKind: infra.KindDBFailure,
		},
		{
			name:      "database error",
			mockError: assert.AnError,
			wantKind:  infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockBlockingBookingQueries)
			mockQueries.On("ListBlockingBookings", mock.Anything, mock.Anything, sqlc.ListBlockingBookingsParams{
				CarID:      vehicleID,
				RangeEnd:   pgconv.DateToPgtype(date(2026, 5, 14)),
				RangeStart: pgconv.DateToPgtype(date(2026, 5, 10)),
				ExcludeID:  pgconv.UUIDPtrToPgtype(tt.exclude),
			}).Return(tt.rows, tt.mockError)

			store := NewAvailabilityReadStore(mockQueries, nil)
			got, err := store.Blocking(context.Background(), vehicleID, dates, tt.exclude)

			if tt.wantKind != "" {
				assert.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, got, tt.wantLen)
			if tt.wantLen > 0 {
				assert.Equal(t, blockingID, got[0].ID)
				assert.Equal(t, booking.StatusConfirmed, got[0].Status)
				assert.True(t, got[0].Dates.Overlaps(dates))
			}
			mockQueries.AssertExpectations(t)
		})
	}
}
