//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"carhire-booking/internal/domain/booking"
	"carhire-booking/internal/domain/user"
	"carhire-booking/internal/pkg/clock"
	"carhire-booking/internal/usecase/commands"
	"carhire-booking/internal/usecase/shared"
	"carhire-booking/tests/common/builder"
	"carhire-booking/tests/common/memstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

// outbox records guest mail.
type outbox struct {
	mu   sync.Mutex
	sent []shared.Mail
}

func (o *outbox) Send(_ context.Context, m shared.Mail) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.sent = append(o.sent, m)
	return nil
}

func (o *outbox) Sent() []shared.Mail {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]shared.Mail(nil), o.sent...)
}

type fixture struct {
	clock       *clock.MockClock
	store       *memstore.Store
	mail        *outbox
	emitter     *commands.Emitter
	bookings    commands.BookingCommands
	payments    commands.PaymentCommands
	coordinator commands.CoordinatorCommands
	avail       commands.AvailabilityCommands
	vehicleID   uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	clk := clock.NewMockClock(testNow)
	store := memstore.New(clk)
	mail := &outbox{}
	emitter := commands.NewEmitter(store.NotificationRepository(), mail, clk)

	f := &fixture{
		clock:       clk,
		store:       store,
		mail:        mail,
		emitter:     emitter,
		bookings:    commands.NewBookingUseCase(store, emitter, clk, 24*time.Hour),
		payments:    commands.NewPaymentUseCase(store, emitter, clk),
		coordinator: commands.NewCoordinatorUseCase(store, emitter, clk),
		avail:       commands.NewAvailabilityUseCase(store),
	}
	f.vehicleID = store.AddVehicle(builder.NewVehicleBuilder().Build())
	return f
}

// day is a calendar day relative to the fixture clock.
func day(offset int) time.Time {
	return time.Date(testNow.Year(), testNow.Month(), testNow.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func dates(t *testing.T, from, to int) booking.DateRange {
	t.Helper()
	r, err := booking.NewDateRange(day(from), day(to))
	require.NoError(t, err)
	return r
}

func guestInput(vehicleID uuid.UUID, from, to int) commands.CreateBookingInput {
	return commands.CreateBookingInput{
		VehicleID:        vehicleID,
		CustomerName:     "Sam Carter",
		CustomerEmail:    "sam@example.com",
		CustomerPhone:    "+447700900123",
		PickupLocation:   "Heathrow T5",
		DropoffLocation:  "Heathrow T5",
		PickupDate:       day(from).Format(booking.DateLayout),
		DropoffDate:      day(to).Format(booking.DateLayout),
		PickupTime:       "09:00",
		DropoffTime:      "17:00",
		TotalAmountCents: 19500,
		BookingType:      "rent",
	}
}

// seed stores a booking on the fixture vehicle without going through the use case.
func (f *fixture) seed(status booking.Status, from, to int, opts ...func(*builder.BookingBuilder)) *booking.Booking {
	bb := builder.NewBookingBuilder().
		WithVehicle(f.vehicleID).
		WithDates(day(from), day(to)).
		WithStatus(status)
	for _, opt := range opts {
		opt(bb)
	}
	b := bb.Build()
	f.store.PutBooking(b)
	return b
}

func ownedBy(userID uuid.UUID) func(*builder.BookingBuilder) {
	return func(b *builder.BookingBuilder) { b.WithUser(userID) }
}

func (f *fixture) statusOf(t *testing.T, id uuid.UUID) booking.Status {
	t.Helper()
	b, ok := f.store.Booking(id)
	require.True(t, ok, "booking %s not stored", id)
	return b.Status()
}

var (
	staff = user.NewActor(uuid.New(), user.RoleStaff)
	guest = user.Actor{}
)

func customer() user.Actor {
	return user.NewActor(uuid.New(), user.RoleCustomer)
}
