package vehicle

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyVehicleName   = errors.New("vehicle name cannot be empty")
	ErrVehicleNameTooLong = errors.New("vehicle name is too long (max 255 characters)")
	ErrNegativeDailyRate  = errors.New("daily rate cannot be negative")
	ErrInvalidSeats       = errors.New("seats must be positive")
	ErrInvalidStatus      = errors.New("invalid vehicle status")
)

const (
	MaxVehicleNameLength = 255
)

type Status string

const (
	StatusAvailable   Status = "available"
	StatusMaintenance Status = "maintenance"
	StatusRetired     Status = "retired"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusMaintenance, StatusRetired:
		return true
	default:
		return false
	}
}

type Vehicle struct {
	id             uuid.UUID
	name           string
	make           string
	model          string
	year           int
	category       string
	transmission   string
	fuelType       string
	seats          int
	dailyRateCents int64
	registration   string
	status         Status
	createdAt      time.Time
	updatedAt      time.Time
}

type Params struct {
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
	Status         Status
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func NewVehicle(p Params) (*Vehicle, error) {
	if err := validateVehicleName(p.Name); err != nil {
		return nil, err
	}
	if p.DailyRateCents < 0 {
		return nil, ErrNegativeDailyRate
	}
	if p.Seats <= 0 {
		return nil, ErrInvalidSeats
	}
	if !p.Status.IsValid() {
		return nil, ErrInvalidStatus
	}

	return &Vehicle{
		id:             p.ID,
		name:           strings.TrimSpace(p.Name),
		make:           p.Make,
		model:          p.Model,
		year:           p.Year,
		category:       p.Category,
		transmission:   p.Transmission,
		fuelType:       p.FuelType,
		seats:          p.Seats,
		dailyRateCents: p.DailyRateCents,
		registration:   p.Registration,
		status:         p.Status,
		createdAt:      p.CreatedAt,
		updatedAt:      p.UpdatedAt,
	}, nil
}

func Reconstruct(p Params) *Vehicle {
	return &Vehicle{
		id:             p.ID,
		name:           p.Name,
		make:           p.Make,
		model:          p.Model,
		year:           p.Year,
		category:       p.Category,
		transmission:   p.Transmission,
		fuelType:       p.FuelType,
		seats:          p.Seats,
		dailyRateCents: p.DailyRateCents,
		registration:   p.Registration,
		status:         p.Status,
		createdAt:      p.CreatedAt,
		updatedAt:      p.UpdatedAt,
	}
}

// IsBookable reports whether the fleet lists this vehicle for hire at all.
// Date availability is a separate check against existing bookings.
func (v *Vehicle) IsBookable() bool {
	return v.status == StatusAvailable
}

func validateVehicleName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyVehicleName
	}
	if len(name) > MaxVehicleNameLength {
		return ErrVehicleNameTooLong
	}
	return nil
}

func (v *Vehicle) ID() uuid.UUID         { return v.id }
func (v *Vehicle) Name() string          { return v.name }
func (v *Vehicle) Make() string          { return v.make }
func (v *Vehicle) Model() string         { return v.model }
func (v *Vehicle) Year() int             { return v.year }
func (v *Vehicle) Category() string      { return v.category }
func (v *Vehicle) Transmission() string  { return v.transmission }
func (v *Vehicle) FuelType() string      { return v.fuelType }
func (v *Vehicle) Seats() int            { return v.seats }
func (v *Vehicle) DailyRateCents() int64 { return v.dailyRateCents }
func (v *Vehicle) Registration() string  { return v.registration }
func (v *Vehicle) Status() Status        { return v.status }
func (v *Vehicle) CreatedAt() time.Time  { return v.createdAt }
func (v *Vehicle) UpdatedAt() time.Time  { return v.updatedAt }
