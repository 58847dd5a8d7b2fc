//go:build unit || e2e

package builder

import (
	"time"

	"carhire-booking/internal/domain/booking"
	"carhire-booking/internal/handler/dto/request"
	"carhire-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	params booking.ReconstructParams
}

// NewBookingBuilder starts from a pending rent booking for a signed-in
// customer, picked up a week from now for three days.
func NewBookingBuilder() *BookingBuilder {
	userID := uuid.New()
	pickup := time.Now().UTC().AddDate(0, 0, 7)
	dates, _ := booking.NewDateRange(pickup, pickup.AddDate(0, 0, 3))
	now := time.Now().UTC()

	return &BookingBuilder{
		params: booking.ReconstructParams{
			ID:              uuid.New(),
			Reference:       booking.NewReference(),
			VehicleID:       uuid.New(),
			Customer:        booking.ReconstructCustomer(&userID, "Sam Carter", "sam@example.com", "+447700900123"),
			PickupLocation:  "Heathrow T5",
			DropoffLocation: "Heathrow T5",
			Dates:           dates,
			PickupTime:      "09:00",
			DropoffTime:     "17:00",
			TotalCents:      19500,
			Status:          booking.StatusPendingReview,
			PaymentStatus:   booking.PaymentUnpaid,
			Type:            booking.TypeRent,
			CreatedAt:       now,
			UpdatedAt:       now,
		},
	}
}

func (b *BookingBuilder) WithID(id uuid.UUID) *BookingBuilder {
	b.params.ID = id
	return b
}

func (b *BookingBuilder) WithVehicle(vehicleID uuid.UUID) *BookingBuilder {
	b.params.VehicleID = vehicleID
	return b
}

func (b *BookingBuilder) WithUser(userID uuid.UUID) *BookingBuilder {
	b.params.Customer = booking.ReconstructCustomer(&userID, b.params.Customer.Name(), b.params.Customer.Email(), b.params.Customer.Phone())
	return b
}

func (b *BookingBuilder) AsGuest(name, email, phone string) *BookingBuilder {
	b.params.Customer = booking.ReconstructCustomer(nil, name, email, phone)
	return b
}

func (b *BookingBuilder) WithDates(pickup, dropoff time.Time) *BookingBuilder {
	dates, _ := booking.NewDateRange(pickup, dropoff)
	b.params.Dates = dates
	return b
}

func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.params.Status = status
	return b
}

func (b *BookingBuilder) WithPaymentStatus(status booking.PaymentStatus) *BookingBuilder {
	b.params.PaymentStatus = status
	return b
}

func (b *BookingBuilder) WithPaymentIntent(id string) *BookingBuilder {
	b.params.StripePaymentIntent = &id
	return b
}

func (b *BookingBuilder) WithType(t booking.Type) *BookingBuilder {
	b.params.Type = t
	return b
}

func (b *BookingBuilder) WithTotal(cents int64) *BookingBuilder {
	b.params.TotalCents = cents
	return b
}

func (b *BookingBuilder) Build() *booking.Booking {
	return booking.Reconstruct(b.params)
}

// BuildView returns the read model a booking query would produce.
func (b *BookingBuilder) BuildView() *queries.BookingView {
	p := b.params
	view := &queries.BookingView{
		ID:               p.ID,
		Reference:        p.Reference,
		VehicleID:        p.VehicleID,
		VehicleName:      "Ford Transit Custom",
		Registration:     "AB12CDE",
		UserID:           p.Customer.UserID(),
		CustomerName:     p.Customer.Name(),
		CustomerEmail:    p.Customer.Email(),
		CustomerPhone:    p.Customer.Phone(),
		PickupLocation:   p.PickupLocation,
		DropoffLocation:  p.DropoffLocation,
		PickupDate:       p.Dates.Start(),
		DropoffDate:      p.Dates.End(),
		PickupTime:       p.PickupTime,
		DropoffTime:      p.DropoffTime,
		TotalAmountCents: p.TotalCents,
		Status:           p.Status.String(),
		PaymentStatus:    p.PaymentStatus.String(),
		BookingType:      p.Type.String(),
		Inspections:      []queries.InspectionView{},
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
	if p.StatusReason != nil {
		reason := string(*p.StatusReason)
		view.StatusReason = &reason
	}
	return view
}

// NewCreateBookingRequest is a valid guest request for a three day rent.
func NewCreateBookingRequest(vehicleID uuid.UUID, pickup time.Time) request.CreateBookingRequest {
	return request.CreateBookingRequest{
		VehicleID:        vehicleID,
		CustomerName:     "Sam Carter",
		CustomerEmail:    "sam@example.com",
		CustomerPhone:    "+447700900123",
		PickupLocation:   "Heathrow T5",
		DropoffLocation:  "Heathrow T5",
		PickupDate:       pickup.Format(booking.DateLayout),
		DropoffDate:      pickup.AddDate(0, 0, 3).Format(booking.DateLayout),
		PickupTime:       "09:00",
		DropoffTime:      "17:00",
		TotalAmountCents: 19500,
		BookingType:      string(booking.TypeRent),
	}
}
