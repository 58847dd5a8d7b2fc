package request

import (
	"carhire-booking/internal/domain/vehicle"
	"carhire-booking/internal/pkg/patch"
)

type AvailabilityQuery struct {
	Start        string `form:"start" binding:"required"`
	End          string `form:"end" binding:"required"`
	Category     string `form:"category"`
	Transmission string `form:"transmission"`
	FuelType     string `form:"fuel_type"`
	// Pointers so an explicit zero reaches min=1 instead of reading as absent.
	MinSeats          *int   `form:"min_seats" binding:"omitempty,min=1"`
	MaxDailyRateCents *int64 `form:"max_daily_rate_cents" binding:"omitempty,min=1"`
}

func (q AvailabilityQuery) Filter() vehicle.Filter {
	return vehicle.Filter{
		Category:          q.Category,
		Transmission:      q.Transmission,
		FuelType:          q.FuelType,
		MinSeats:          patch.Coalesce(q.MinSeats, 0),
		MaxDailyRateCents: patch.Coalesce(q.MaxDailyRateCents, 0),
	}
}

type VehicleAvailabilityQuery struct {
	Start string `form:"start" binding:"required"`
	End   string `form:"end" binding:"required"`
}
