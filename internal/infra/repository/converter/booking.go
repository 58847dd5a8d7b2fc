package converter

import (
	"carhire-booking/internal/domain/booking"
	sqlc "carhire-booking/internal/infra/sqlc/generated"
	"carhire-booking/internal/pkg/errs"
	"carhire-booking/internal/pkg/pgconv"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	c := b.Customer()
	return sqlc.CreateBookingParams{
		ID:               b.ID(),
		Reference:        b.Reference(),
		CarID:            b.VehicleID(),
		UserID:           pgconv.UUIDPtrToPgtype(c.UserID()),
		CustomerName:     c.Name(),
		CustomerEmail:    c.Email(),
		CustomerPhone:    c.Phone(),
		PickupLocation:   b.PickupLocation(),
		DropoffLocation:  b.DropoffLocation(),
		PickupDate:       pgconv.DateToPgtype(b.Dates().Start()),
		DropoffDate:      pgconv.DateToPgtype(b.Dates().End()),
		PickupTime:       b.PickupTime(),
		DropoffTime:      b.DropoffTime(),
		TotalAmountCents: b.Total().Cents(),
		Status:           b.Status().String(),
		PaymentStatus:    b.PaymentStatus().String(),
		BookingType:      b.Type().String(),
		CreatedAt:        pgconv.TimeToPgtype(b.CreatedAt()),
	}
}

// BookingFromRow rebuilds the aggregate. Unknown enum values in a row are reported, not guessed.
func BookingFromRow(row sqlc.Bookings) (*booking.Booking, error) {
	status, err := booking.ParseStatus(row.Status)
	if err != nil {
		return nil, errs.Wrapf(err, "booking %s", row.ID)
	}
	paymentStatus, err := booking.ParsePaymentStatus(row.PaymentStatus)
	if err != nil {
		return nil, errs.Wrapf(err, "booking %s", row.ID)
	}
	bookingType, err := booking.ParseType(row.BookingType)
	if err != nil {
		return nil, errs.Wrapf(err, "booking %s", row.ID)
	}
	dates, err := booking.NewDateRange(pgconv.DateFromPgtype(row.PickupDate), pgconv.DateFromPgtype(row.DropoffDate))
	if err != nil {
		return nil, errs.Wrapf(err, "booking %s", row.ID)
	}

	var reason *booking.Reason
	if row.StatusReason.Valid {
		r, perr := booking.ParseReason(row.StatusReason.String)
		if perr != nil {
			return nil, errs.Wrapf(perr, "booking %s", row.ID)
		}
		reason = &r
	}

	return booking.Reconstruct(booking.ReconstructParams{
		ID:                  row.ID,
		Reference:           row.Reference,
		VehicleID:           row.CarID,
		Customer:            booking.ReconstructCustomer(pgconv.UUIDPtrFromPgtype(row.UserID), row.CustomerName, row.CustomerEmail, row.CustomerPhone),
		PickupLocation:      row.PickupLocation,
		DropoffLocation:     row.DropoffLocation,
		Dates:               dates,
		PickupTime:          row.PickupTime,
		DropoffTime:         row.DropoffTime,
		TotalCents:          row.TotalAmountCents,
		Status:              status,
		PaymentStatus:       paymentStatus,
		Type:                bookingType,
		StatusReason:        reason,
		StripeSessionID:     pgconv.StringPtrFromPgtype(row.StripeSessionID),
		StripePaymentIntent: pgconv.StringPtrFromPgtype(row.StripePaymentIntent),
		CreatedAt:           pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:           pgconv.TimeFromPgtype(row.UpdatedAt),
	}), nil
}

func ReasonString(r *booking.Reason) *string {
	if r == nil {
		return nil
	}
	s := r.String()
	return &s
}
