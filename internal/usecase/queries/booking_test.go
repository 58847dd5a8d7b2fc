//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"carhire-booking/internal/domain/booking"
	"carhire-booking/internal/domain/user"
	"carhire-booking/internal/infra"
	"carhire-booking/internal/pkg/errs"
	"carhire-booking/internal/usecase/queries"
	"carhire-booking/tests/common/builder"
	queriesmock "carhire-booking/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type bookingMocks struct {
	bookings    *queriesmock.MockBookingReadStore
	agreements  *queriesmock.MockAgreementReadStore
	inspections *queriesmock.MockInspectionReadStore
	queries     queries.BookingQueries
}

func newBookingMocks(t *testing.T) *bookingMocks {
	ctrl := gomock.NewController(t)
	m := &bookingMocks{
		bookings:    queriesmock.NewMockBookingReadStore(ctrl),
		agreements:  queriesmock.NewMockAgreementReadStore(ctrl),
		inspections: queriesmock.NewMockInspectionReadStore(ctrl),
	}
	m.queries = queries.NewBookingQueries(m.bookings, m.agreements, m.inspections)
	return m
}

func notFound() error {
	return infra.WrapRepoErr("not found", nil, infra.KindNotFound)
}

func TestGetByID(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	t.Run("owner sees booking with agreement and inspections", func(t *testing.T) {
		m := newBookingMocks(t)
		view := builder.NewBookingBuilder().WithUser(ownerID).WithStatus(booking.StatusOnRent).BuildView()
		agreement := &queries.AgreementView{ID: uuid.New(), Status: "signed", Registration: "AB12CDE"}
		inspections := []queries.InspectionView{{ID: uuid.New(), Type: "handover", FuelLevel: "full", Odometer: 12050}}

		m.bookings.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)
		m.agreements.EXPECT().FindByBooking(gomock.Any(), view.ID).Return(agreement, nil)
		m.inspections.EXPECT().ListByBooking(gomock.Any(), view.ID).Return(inspections, nil)

		got, err := m.queries.GetByID(ctx, user.NewActor(ownerID, user.RoleCustomer), view.ID)
		require.NoError(t, err)
		assert.Equal(t, agreement, got.Agreement)
		if diff := cmp.Diff(inspections, got.Inspections); diff != "" {
			t.Errorf("inspections mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("missing agreement is fine", func(t *testing.T) {
		m := newBookingMocks(t)
		view := builder.NewBookingBuilder().WithUser(ownerID).BuildView()

		m.bookings.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)
		m.agreements.EXPECT().FindByBooking(gomock.Any(), view.ID).Return(nil, notFound())
		m.inspections.EXPECT().ListByBooking(gomock.Any(), view.ID).Return([]queries.InspectionView{}, nil)

		got, err := m.queries.GetByID(ctx, user.NewActor(uuid.New(), user.RoleStaff), view.ID)
		require.NoError(t, err)
		assert.Nil(t, got.Agreement)
	})

	t.Run("other customers are refused", func(t *testing.T) {
		m := newBookingMocks(t)
		view := builder.NewBookingBuilder().WithUser(ownerID).BuildView()
		m.bookings.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		_, err := m.queries.GetByID(ctx, user.NewActor(uuid.New(), user.RoleCustomer), view.ID)
		assert.True(t, errs.Is(err, errs.ErrAuthorization), "got %v", err)
	})

	t.Run("guest bookings are staff only", func(t *testing.T) {
		m := newBookingMocks(t)
		view := builder.NewBookingBuilder().AsGuest("Ana", "ana@example.com", "0123").BuildView()
		m.bookings.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		_, err := m.queries.GetByID(ctx, user.Actor{}, view.ID)
		assert.True(t, errs.Is(err, errs.ErrAuthorization), "got %v", err)
	})

	t.Run("not found", func(t *testing.T) {
		m := newBookingMocks(t)
		m.bookings.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(nil, notFound())

		_, err := m.queries.GetByID(ctx, user.NewActor(ownerID, user.RoleCustomer), uuid.New())
		assert.True(t, errs.Is(err, errs.ErrNotFound), "got %v", err)
	})

	t.Run("store failure", func(t *testing.T) {
		m := newBookingMocks(t)
		m.bookings.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(nil, infra.WrapRepoErr("query failed", errs.New("conn reset")))

		_, err := m.queries.GetByID(ctx, user.NewActor(ownerID, user.RoleCustomer), uuid.New())
		assert.True(t, errs.Is(err, errs.ErrExternalDependency), "got %v", err)
	})
}

func listItems(n int, start time.Time) []*queries.BookingListItem {
	out := make([]*queries.BookingListItem, n)
	for i := range out {
		out[i] = &queries.BookingListItem{ID: uuid.New(), CreatedAt: start.Add(-time.Duration(i) * time.Minute)}
	}
	return out
}

func TestListMine(t *testing.T) {
	ctx := context.Background()
	actor := user.NewActor(uuid.New(), user.RoleCustomer)
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("first page with a next cursor", func(t *testing.T) {
		m := newBookingMocks(t)
		rows := listItems(3, start)
		m.bookings.EXPECT().FindByUserFirstPage(gomock.Any(), actor.UserID, int32(3)).Return(rows, nil)

		items, next, err := m.queries.ListMine(ctx, actor, nil, 2)
		require.NoError(t, err)
		assert.Len(t, items, 2)
		require.NotNil(t, next)

		at, id, err := queries.DecodeAfterCursor(next.After)
		require.NoError(t, err)
		assert.Equal(t, rows[1].ID, id)
		assert.True(t, at.Equal(rows[1].CreatedAt))
	})

	t.Run("following page uses the keyset", func(t *testing.T) {
		m := newBookingMocks(t)
		lastID := uuid.New()
		cursor := &queries.Cursor{After: queries.EncodeAfterCursor(start, lastID)}
		m.bookings.EXPECT().FindByUserKeyset(gomock.Any(), actor.UserID, start, lastID, int32(queries.DefaultListLimit+1)).Return(listItems(1, start), nil)

		items, next, err := m.queries.ListMine(ctx, actor, cursor, 0)
		require.NoError(t, err)
		assert.Len(t, items, 1)
		assert.Nil(t, next)
	})

	t.Run("bad cursor", func(t *testing.T) {
		m := newBookingMocks(t)
		_, _, err := m.queries.ListMine(ctx, actor, &queries.Cursor{After: "not-a-cursor"}, 10)
		assert.True(t, errs.Is(err, errs.ErrValidation), "got %v", err)
	})

	t.Run("anonymous", func(t *testing.T) {
		m := newBookingMocks(t)
		_, _, err := m.queries.ListMine(ctx, user.Actor{}, nil, 10)
		assert.True(t, errs.Is(err, errs.ErrAuthorization), "got %v", err)
	})
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(0))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(1000))
	assert.Equal(t, 7, queries.ValidateLimit(7))
}
