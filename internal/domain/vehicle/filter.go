package vehicle

import "strings"

// Filter narrows an availability search. Zero values mean "any".
type Filter struct {
	Category          string
	Transmission      string
	FuelType          string
	MinSeats          int
	MaxDailyRateCents int64
}

func (f Filter) Matches(v *Vehicle) bool {
	if f.Category != "" && !strings.EqualFold(f.Category, v.category) {
		return false
	}
	if f.Transmission != "" && !strings.EqualFold(f.Transmission, v.transmission) {
		return false
	}
	if f.FuelType != "" && !strings.EqualFold(f.FuelType, v.fuelType) {
		return false
	}
	if f.MinSeats > 0 && v.seats < f.MinSeats {
		return false
	}
	if f.MaxDailyRateCents > 0 && v.dailyRateCents > f.MaxDailyRateCents {
		return false
	}
	return true
}
