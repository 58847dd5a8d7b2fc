package response

import (
	"time"

	"carhire-booking/internal/domain/booking"
	"carhire-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID                  uuid.UUID  `json:"id"`
	Reference           string     `json:"reference"`
	VehicleID           uuid.UUID  `json:"vehicleId"`
	UserID              *uuid.UUID `json:"userId,omitempty"`
	CustomerName        string     `json:"customerName"`
	CustomerEmail       string     `json:"customerEmail"`
	CustomerPhone       string     `json:"customerPhone"`
	PickupLocation      string     `json:"pickupLocation"`
	DropoffLocation     string     `json:"dropoffLocation"`
	PickupDate          string     `json:"pickupDate"`
	DropoffDate         string     `json:"dropoffDate"`
	PickupTime          string     `json:"pickupTime"`
	DropoffTime         string     `json:"dropoffTime"`
	TotalAmountCents    int64      `json:"totalAmountCents"`
	Status              string     `json:"status"`
	PaymentStatus       string     `json:"paymentStatus"`
	BookingType         string     `json:"bookingType"`
	StatusReason        *string    `json:"statusReason,omitempty"`
	StatusReasonMessage *string    `json:"statusReasonMessage,omitempty"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}

type BookingDetailResponse struct {
	BookingResponse
	VehicleName  string               `json:"vehicleName"`
	Registration string               `json:"registration"`
	Agreement    *AgreementResponse   `json:"agreement,omitempty"`
	Inspections  []InspectionResponse `json:"inspections"`
}

type BookingListResponse struct {
	Items      []BookingListItemResponse `json:"items"`
	NextCursor *string                   `json:"nextCursor,omitempty"`
}

type BookingListItemResponse struct {
	ID               uuid.UUID `json:"id"`
	Reference        string    `json:"reference"`
	VehicleID        uuid.UUID `json:"vehicleId"`
	VehicleName      string    `json:"vehicleName"`
	PickupDate       string    `json:"pickupDate"`
	DropoffDate      string    `json:"dropoffDate"`
	TotalAmountCents int64     `json:"totalAmountCents"`
	Status           string    `json:"status"`
	PaymentStatus    string    `json:"paymentStatus"`
	BookingType      string    `json:"bookingType"`
	CreatedAt        time.Time `json:"createdAt"`
}

func FromBooking(b *booking.Booking) *BookingResponse {
	c := b.Customer()
	resp := &BookingResponse{
		ID:               b.ID(),
		Reference:        b.Reference(),
		VehicleID:        b.VehicleID(),
		UserID:           c.UserID(),
		CustomerName:     c.Name(),
		CustomerEmail:    c.Email(),
		CustomerPhone:    c.Phone(),
		PickupLocation:   b.PickupLocation(),
		DropoffLocation:  b.DropoffLocation(),
		PickupDate:       b.Dates().Start().Format(booking.DateLayout),
		DropoffDate:      b.Dates().End().Format(booking.DateLayout),
		PickupTime:       b.PickupTime(),
		DropoffTime:      b.DropoffTime(),
		TotalAmountCents: b.Total().Cents(),
		Status:           b.Status().String(),
		PaymentStatus:    b.PaymentStatus().String(),
		BookingType:      b.Type().String(),
		CreatedAt:        b.CreatedAt(),
		UpdatedAt:        b.UpdatedAt(),
	}
	if r := b.StatusReason(); r != nil {
		code, msg := r.String(), r.Message()
		resp.StatusReason = &code
		resp.StatusReasonMessage = &msg
	}
	return resp
}

func FromBookingView(v *queries.BookingView) *BookingDetailResponse {
	resp := &BookingDetailResponse{
		BookingResponse: BookingResponse{
			ID:               v.ID,
			Reference:        v.Reference,
			VehicleID:        v.VehicleID,
			UserID:           v.UserID,
			CustomerName:     v.CustomerName,
			CustomerEmail:    v.CustomerEmail,
			CustomerPhone:    v.CustomerPhone,
			PickupLocation:   v.PickupLocation,
			DropoffLocation:  v.DropoffLocation,
			PickupDate:       v.PickupDate.Format(booking.DateLayout),
			DropoffDate:      v.DropoffDate.Format(booking.DateLayout),
			PickupTime:       v.PickupTime,
			DropoffTime:      v.DropoffTime,
			TotalAmountCents: v.TotalAmountCents,
			Status:           v.Status,
			PaymentStatus:    v.PaymentStatus,
			BookingType:      v.BookingType,
			StatusReason:     v.StatusReason,
			CreatedAt:        v.CreatedAt,
			UpdatedAt:        v.UpdatedAt,
		},
		VehicleName:  v.VehicleName,
		Registration: v.Registration,
		Inspections:  make([]InspectionResponse, 0, len(v.Inspections)),
	}
	if v.StatusReason != nil {
		if r, err := booking.ParseReason(*v.StatusReason); err == nil {
			msg := r.Message()
			resp.StatusReasonMessage = &msg
		}
	}
	if v.Agreement != nil {
		resp.Agreement = fromAgreementView(v.Agreement)
	}
	for _, iv := range v.Inspections {
		resp.Inspections = append(resp.Inspections, fromInspectionView(iv))
	}
	return resp
}

func FromBookingList(items []*queries.BookingListItem, next *queries.Cursor) *BookingListResponse {
	resp := &BookingListResponse{Items: make([]BookingListItemResponse, 0, len(items))}
	for _, it := range items {
		resp.Items = append(resp.Items, BookingListItemResponse{
			ID:               it.ID,
			Reference:        it.Reference,
			VehicleID:        it.VehicleID,
			VehicleName:      it.VehicleName,
			PickupDate:       it.PickupDate.Format(booking.DateLayout),
			DropoffDate:      it.DropoffDate.Format(booking.DateLayout),
			TotalAmountCents: it.TotalAmountCents,
			Status:           it.Status,
			PaymentStatus:    it.PaymentStatus,
			BookingType:      it.BookingType,
			CreatedAt:        it.CreatedAt,
		})
	}
	if next != nil && next.After != "" {
		after := next.After
		resp.NextCursor = &after
	}
	return resp
}
