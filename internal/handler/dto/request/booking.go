package request

import (
	"strings"

	"carhire-booking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CreateBookingRequest struct {
	VehicleID        uuid.UUID `json:"vehicleId" binding:"required"`
	CustomerName     string    `json:"customerName" binding:"required,max=255"`
	CustomerEmail    string    `json:"customerEmail" binding:"required,email"`
	CustomerPhone    string    `json:"customerPhone" binding:"required,max=32"`
	PickupLocation   string    `json:"pickupLocation" binding:"required,max=255"`
	DropoffLocation  string    `json:"dropoffLocation" binding:"required,max=255"`
	PickupDate       string    `json:"pickupDate" binding:"required"`
	DropoffDate      string    `json:"dropoffDate" binding:"required"`
	PickupTime       string    `json:"pickupTime" binding:"required"`
	DropoffTime      string    `json:"dropoffTime" binding:"required"`
	TotalAmountCents int64     `json:"totalAmountCents" binding:"min=0"`
	BookingType      string    `json:"bookingType" binding:"required"`
}

func (r CreateBookingRequest) ToInput() (commands.CreateBookingInput, error) {
	var in commands.CreateBookingInput
	if err := copier.Copy(&in, &r); err != nil {
		return commands.CreateBookingInput{}, err
	}
	in.CustomerName = strings.TrimSpace(in.CustomerName)
	in.CustomerEmail = strings.TrimSpace(in.CustomerEmail)
	in.CustomerPhone = strings.TrimSpace(in.CustomerPhone)
	return in, nil
}

type TransitionRequest struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason,omitempty"`
}

type RescheduleRequest struct {
	PickupDate  string `json:"pickupDate" binding:"required"`
	DropoffDate string `json:"dropoffDate" binding:"required"`
}

type ListBookingsQuery struct {
	Cursor string `form:"cursor"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=100"`
}
