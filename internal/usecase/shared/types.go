package shared

import (
	"time"

	"carhire-booking/internal/domain/booking"
	"carhire-booking/internal/domain/vehicle"

	"github.com/google/uuid"
)

type VehicleSnapshot struct {
	ID             uuid.UUID
	Name           string
	Make           string
	Model          string
	Year           int
	Category       string
	Transmission   string
	FuelType       string
	Seats          int
	DailyRateCents int64
	Registration   string
	Status         string
}

func (s *VehicleSnapshot) ToVehicle() *vehicle.Vehicle {
	return vehicle.Reconstruct(vehicle.Params{
		ID:             s.ID,
		Name:           s.Name,
		Make:           s.Make,
		Model:          s.Model,
		Year:           s.Year,
		Category:       s.Category,
		Transmission:   s.Transmission,
		FuelType:       s.FuelType,
		Seats:          s.Seats,
		DailyRateCents: s.DailyRateCents,
		Registration:   s.Registration,
		Status:         vehicle.Status(s.Status),
	})
}

// BlockingBooking is a live booking that holds its vehicle over Dates.
type BlockingBooking struct {
	ID     uuid.UUID
	Dates  booking.DateRange
	Status booking.Status
}

type IdempotencyRecord struct {
	Key             uuid.UUID
	UserID          uuid.UUID
	Status          string
	RequestHash     string
	ResultBookingID *uuid.UUID
	ExpiresAt       time.Time
}

const (
	IdempotencyProcessing = "processing"
	IdempotencyCompleted  = "completed"
)

// BookingStatusUpdate is a compare-and-set: it only applies while the row is still in From.
type BookingStatusUpdate struct {
	ID     uuid.UUID
	From   booking.Status
	To     booking.Status
	Reason *booking.Reason
	At     time.Time
}

// Empty provider ids leave the stored value untouched.
type BookingPaymentUpdate struct {
	ID              uuid.UUID
	PaymentStatus   booking.PaymentStatus
	SessionID       string
	PaymentIntentID string
	At              time.Time
}

type BookingDatesUpdate struct {
	ID             uuid.UUID
	ExpectedStatus booking.Status
	Dates          booking.DateRange
	At             time.Time
}

// Mail is an outbound message for recipients without an account.
type Mail struct {
	ToName  string
	ToEmail string
	Subject string
	Body    string
}
