//go:build unit || e2e

package builder

import (
	"carhire-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type VehicleBuilder struct {
	snapshot shared.VehicleSnapshot
}

func NewVehicleBuilder() *VehicleBuilder {
	return &VehicleBuilder{
		snapshot: shared.VehicleSnapshot{
			ID:             uuid.New(),
			Name:           "Ford Transit Custom",
			Make:           "Ford",
			Model:          "Transit Custom",
			Year:           2023,
			Category:       "van",
			Transmission:   "manual",
			FuelType:       "diesel",
			Seats:          3,
			DailyRateCents: 6500,
			Registration:   "AB12CDE",
			Status:         "available",
		},
	}
}

func (b *VehicleBuilder) WithID(id uuid.UUID) *VehicleBuilder {
	b.snapshot.ID = id
	return b
}

func (b *VehicleBuilder) WithName(name string) *VehicleBuilder {
	b.snapshot.Name = name
	return b
}

func (b *VehicleBuilder) WithRegistration(reg string) *VehicleBuilder {
	b.snapshot.Registration = reg
	return b
}

func (b *VehicleBuilder) WithCategory(category string) *VehicleBuilder {
	b.snapshot.Category = category
	return b
}

func (b *VehicleBuilder) WithDailyRate(cents int64) *VehicleBuilder {
	b.snapshot.DailyRateCents = cents
	return b
}

func (b *VehicleBuilder) InMaintenance() *VehicleBuilder {
	b.snapshot.Status = "maintenance"
	return b
}

func (b *VehicleBuilder) Build() shared.VehicleSnapshot {
	return b.snapshot
}
