package booking

import (
	"crypto/rand"
	"strings"
	"time"

	"carhire-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

const referenceAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

type NewBookingParams struct {
	VehicleID       uuid.UUID
	Customer        Customer
	PickupLocation  string
	DropoffLocation string
	Dates           DateRange
	PickupTime      string
	DropoffTime     string
	TotalCents      int64
	Type            Type
}

type Booking struct {
	id                  uuid.UUID
	reference           string
	vehicleID           uuid.UUID
	customer            Customer
	pickupLocation      string
	dropoffLocation     string
	dates               DateRange
	pickupTime          string
	dropoffTime         string
	total               Money
	status              Status
	paymentStatus       PaymentStatus
	bookingType         Type
	statusReason        *Reason
	stripeSessionID     *string
	stripePaymentIntent *string
	createdAt           time.Time
	updatedAt           time.Time
}

func NewBooking(clk clock.Clock, p NewBookingParams) (*Booking, error) {
	if p.VehicleID == uuid.Nil {
		return nil, ErrVehicleRequired
	}
	if strings.TrimSpace(p.PickupLocation) == "" || strings.TrimSpace(p.DropoffLocation) == "" {
		return nil, ErrLocationRequired
	}
	if p.Dates.IsZero() {
		return nil, ErrInvalidDateRange
	}
	if err := ValidateTimeOfDay(p.PickupTime); err != nil {
		return nil, err
	}
	if err := ValidateTimeOfDay(p.DropoffTime); err != nil {
		return nil, err
	}
	if !p.Type.IsValid() {
		return nil, ErrInvalidBookingType
	}

	now := clk.Now()
	if p.Dates.Start().Before(truncateDay(now)) {
		return nil, ErrPickupInPast
	}
	if err := ValidateDuration(p.Type, p.Dates); err != nil {
		return nil, err
	}

	total, err := NewMoney(p.TotalCents)
	if err != nil {
		return nil, err
	}

	return &Booking{
		id:              uuid.New(),
		reference:       NewReference(),
		vehicleID:       p.VehicleID,
		customer:        p.Customer,
		pickupLocation:  strings.TrimSpace(p.PickupLocation),
		dropoffLocation: strings.TrimSpace(p.DropoffLocation),
		dates:           p.Dates,
		pickupTime:      p.PickupTime,
		dropoffTime:     p.DropoffTime,
		total:           total,
		status:          StatusPendingReview,
		paymentStatus:   PaymentUnpaid,
		bookingType:     p.Type,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

type ReconstructParams struct {
	ID                  uuid.UUID
	Reference           string
	VehicleID           uuid.UUID
	Customer            Customer
	PickupLocation      string
	DropoffLocation     string
	Dates               DateRange
	PickupTime          string
	DropoffTime         string
	TotalCents          int64
	Status              Status
	PaymentStatus       PaymentStatus
	Type                Type
	StatusReason        *Reason
	StripeSessionID     *string
	StripePaymentIntent *string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func Reconstruct(p ReconstructParams) *Booking {
	return &Booking{
		id:                  p.ID,
		reference:           p.Reference,
		vehicleID:           p.VehicleID,
		customer:            p.Customer,
		pickupLocation:      p.PickupLocation,
		dropoffLocation:     p.DropoffLocation,
		dates:               p.Dates,
		pickupTime:          p.PickupTime,
		dropoffTime:         p.DropoffTime,
		total:               Money{cents: p.TotalCents},
		status:              p.Status,
		paymentStatus:       p.PaymentStatus,
		bookingType:         p.Type,
		statusReason:        p.StatusReason,
		stripeSessionID:     p.StripeSessionID,
		stripePaymentIntent: p.StripePaymentIntent,
		createdAt:           p.CreatedAt,
		updatedAt:           p.UpdatedAt,
	}
}

// ValidateDuration enforces the per-type minimum length.
func ValidateDuration(t Type, r DateRange) error {
	if r.Days() < t.MinimumDays() {
		return ErrMinimumDuration
	}
	return nil
}

// NewReference returns a short, human-readable booking code such as "BK-7KQ2M9XD".
func NewReference() string {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return "BK-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	}
	out := make([]byte, len(buf))
	for i, b := range buf {
		out[i] = referenceAlphabet[int(b)%len(referenceAlphabet)]
	}
	return "BK-" + string(out)
}

// ApplyTransition moves the booking to a new status after validating the edge.
func (b *Booking) ApplyTransition(to Status, trigger Trigger, g Guards, now time.Time) error {
	if err := Transition(b.status, to, trigger, g); err != nil {
		return err
	}
	b.status = to
	b.statusReason = g.Reason
	b.updatedAt = now
	return nil
}

// Reschedule replaces the booking dates. Only allowed before the vehicle has been handed over.
func (b *Booking) Reschedule(clk clock.Clock, dates DateRange) error {
	if b.status.IsTerminal() || b.status == StatusOnRent {
		return ErrNotReschedulable
	}
	if dates.Start().Before(truncateDay(clk.Now())) {
		return ErrPickupInPast
	}
	if err := ValidateDuration(b.bookingType, dates); err != nil {
		return err
	}
	b.dates = dates
	b.updatedAt = clk.Now()
	return nil
}

// RecordPayment updates the provider-side payment state. The lifecycle status is left alone.
func (b *Booking) RecordPayment(status PaymentStatus, sessionID, paymentIntent string, now time.Time) {
	b.paymentStatus = status
	if sessionID != "" {
		b.stripeSessionID = &sessionID
	}
	if paymentIntent != "" {
		b.stripePaymentIntent = &paymentIntent
	}
	b.updatedAt = now
}

func (b *Booking) ID() uuid.UUID                { return b.id }
func (b *Booking) Reference() string            { return b.reference }
func (b *Booking) VehicleID() uuid.UUID         { return b.vehicleID }
func (b *Booking) Customer() Customer           { return b.customer }
func (b *Booking) PickupLocation() string       { return b.pickupLocation }
func (b *Booking) DropoffLocation() string      { return b.dropoffLocation }
func (b *Booking) Dates() DateRange             { return b.dates }
func (b *Booking) PickupTime() string           { return b.pickupTime }
func (b *Booking) DropoffTime() string          { return b.dropoffTime }
func (b *Booking) Total() Money                 { return b.total }
func (b *Booking) Status() Status               { return b.status }
func (b *Booking) PaymentStatus() PaymentStatus { return b.paymentStatus }
func (b *Booking) Type() Type                   { return b.bookingType }
func (b *Booking) StatusReason() *Reason        { return b.statusReason }
func (b *Booking) StripeSessionID() *string     { return b.stripeSessionID }
func (b *Booking) StripePaymentIntent() *string { return b.stripePaymentIntent }
func (b *Booking) CreatedAt() time.Time         { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time         { return b.updatedAt }
