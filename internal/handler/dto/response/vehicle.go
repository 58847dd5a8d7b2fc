package response

import (
	"carhire-booking/internal/domain/booking"
	"carhire-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type VehicleResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Make           string    `json:"make"`
	Model          string    `json:"model"`
	Year           int       `json:"year"`
	Category       string    `json:"category"`
	Transmission   string    `json:"transmission"`
	FuelType       string    `json:"fuelType"`
	Seats          int       `json:"seats"`
	DailyRateCents int64     `json:"dailyRateCents"`
}

type AvailableVehiclesResponse struct {
	PickupDate  string            `json:"pickupDate"`
	DropoffDate string            `json:"dropoffDate"`
	Vehicles    []VehicleResponse `json:"vehicles"`
}

type DateRangeResponse struct {
	PickupDate  string `json:"pickupDate"`
	DropoffDate string `json:"dropoffDate"`
}

type VehicleAvailabilityResponse struct {
	VehicleID uuid.UUID           `json:"vehicleId"`
	Available bool                `json:"available"`
	Blocked   []DateRangeResponse `json:"blocked"`
}

func FromAvailableVehicles(dates booking.DateRange, vs []*shared.VehicleSnapshot) *AvailableVehiclesResponse {
	resp := &AvailableVehiclesResponse{
		PickupDate:  dates.Start().Format(booking.DateLayout),
		DropoffDate: dates.End().Format(booking.DateLayout),
		Vehicles:    make([]VehicleResponse, 0, len(vs)),
	}
	for _, v := range vs {
		resp.Vehicles = append(resp.Vehicles, VehicleResponse{
			ID:             v.ID,
			Name:           v.Name,
			Make:           v.Make,
			Model:          v.Model,
			Year:           v.Year,
			Category:       v.Category,
			Transmission:   v.Transmission,
			FuelType:       v.FuelType,
			Seats:          v.Seats,
			DailyRateCents: v.DailyRateCents,
		})
	}
	return resp
}

func NewVehicleAvailability(vehicleID uuid.UUID, blocked []booking.DateRange) *VehicleAvailabilityResponse {
	resp := &VehicleAvailabilityResponse{
		VehicleID: vehicleID,
		Available: len(blocked) == 0,
		Blocked:   make([]DateRangeResponse, 0, len(blocked)),
	}
	for _, r := range blocked {
		resp.Blocked = append(resp.Blocked, DateRangeResponse{
			PickupDate:  r.Start().Format(booking.DateLayout),
			DropoffDate: r.End().Format(booking.DateLayout),
		})
	}
	return resp
}
