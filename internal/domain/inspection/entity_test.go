//go:build unit

package inspection_test

import (
	"strings"
	"testing"
	"time"

	"carhire-booking/internal/domain/inspection"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validParams() inspection.Params {
	return inspection.Params{
		BookingID:      uuid.New(),
		Type:           inspection.TypeHandover,
		FuelLevel:      inspection.FuelFull,
		Odometer:       42000,
		Condition:      inspection.ConditionGood,
		ConditionNotes: "  Light scuff on rear bumper  ",
		Evidence: inspection.Evidence{
			ExteriorPhotos: []string{"inspections/1.jpg", "inspections/2.jpg"},
			DamagePhotos:   []string{"inspections/bumper.jpg"},
			VideoURLs:      []string{"inspections/walkround.mp4"},
		},
		InspectedBy:     uuid.New(),
		InspectorName:   " Priya Shah ",
		CustomerPresent: true,
	}
}

func TestNewInspection(t *testing.T) {
	now := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

	t.Run("basic success case", func(t *testing.T) {
		p := validParams()
		got, err := inspection.NewInspection(p, now)
		require.NoError(t, err)
		assert.Equal(t, inspection.TypeHandover, got.Type())
		assert.Equal(t, "Light scuff on rear bumper", got.ConditionNotes())
		assert.Equal(t, inspection.ConditionGood, got.Condition())
		assert.Equal(t, "Priya Shah", got.InspectorName())
		assert.Nil(t, got.AgreementID())
		assert.Equal(t, now, got.CreatedAt())

		p.Evidence.ExteriorPhotos[0] = "changed.jpg"
		p.Evidence.VideoURLs[0] = "changed.mp4"
		assert.Equal(t, "inspections/1.jpg", got.Evidence().ExteriorPhotos[0], "photos are copied on create")
		assert.Equal(t, "inspections/walkround.mp4", got.Evidence().VideoURLs[0])
	})

	t.Run("links the agreement", func(t *testing.T) {
		p := validParams()
		agreementID := uuid.New()
		p.AgreementID = &agreementID
		got, err := inspection.NewInspection(p, now)
		require.NoError(t, err)
		require.NotNil(t, got.AgreementID())
		assert.Equal(t, agreementID, *got.AgreementID())
	})

	tests := []struct {
		name   string
		mutate func(*inspection.Params)
		errIs  error
	}{
		{name: "unknown type", mutate: func(p *inspection.Params) { p.Type = "midway" }, errIs: inspection.ErrInvalidType},
		{name: "unknown fuel level", mutate: func(p *inspection.Params) { p.FuelLevel = "brim" }, errIs: inspection.ErrInvalidFuelLevel},
		{name: "negative odometer", mutate: func(p *inspection.Params) { p.Odometer = -1 }, errIs: inspection.ErrNegativeOdometer},
		{name: "missing inspector", mutate: func(p *inspection.Params) { p.InspectedBy = uuid.Nil }, errIs: inspection.ErrInspectorRequired},
		{name: "missing booking", mutate: func(p *inspection.Params) { p.BookingID = uuid.Nil }, errIs: inspection.ErrBookingRequired},
		{name: "unknown condition", mutate: func(p *inspection.Params) { p.Condition = "mint" }, errIs: inspection.ErrInvalidCondition},
		{name: "missing condition", mutate: func(p *inspection.Params) { p.Condition = "" }, errIs: inspection.ErrInvalidCondition},
		{
			name: "too many photos across categories",
			mutate: func(p *inspection.Params) {
				p.Evidence = inspection.Evidence{
					ExteriorPhotos: make([]string, inspection.MaxPhotos/2),
					InteriorPhotos: make([]string, inspection.MaxPhotos/2),
					DamagePhotos:   make([]string, 1),
				}
			},
			errIs: inspection.ErrTooManyPhotos,
		},
		{
			name:   "photo limit is inclusive",
			mutate: func(p *inspection.Params) { p.Evidence = inspection.Evidence{InteriorPhotos: make([]string, inspection.MaxPhotos)} },
		},
		{
			name:   "too many videos",
			mutate: func(p *inspection.Params) { p.Evidence.VideoURLs = make([]string, inspection.MaxVideos+1) },
			errIs:  inspection.ErrTooManyVideos,
		},
		{
			name:   "inspector name too long",
			mutate: func(p *inspection.Params) { p.InspectorName = strings.Repeat("n", inspection.MaxInspectorName+1) },
			errIs:  inspection.ErrInspectorNameLong,
		},
		{
			name:   "damage notes too long",
			mutate: func(p *inspection.Params) { p.DamageNotes = strings.Repeat("x", inspection.MaxConditionLength+1) },
			errIs:  inspection.ErrConditionTooLong,
		},
		{name: "return inspection", mutate: func(p *inspection.Params) { p.Type = inspection.TypeReturn }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validParams()
			tt.mutate(&p)
			_, err := inspection.NewInspection(p, now)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestParseFuelLevel(t *testing.T) {
	got, err := inspection.ParseFuelLevel(" Three_Quarter ")
	require.NoError(t, err)
	assert.Equal(t, inspection.FuelThreeQuarter, got)

	_, err = inspection.ParseFuelLevel("3/4")
	assert.ErrorIs(t, err, inspection.ErrInvalidFuelLevel)
}

func TestParseCondition(t *testing.T) {
	got, err := inspection.ParseCondition(" Damaged")
	require.NoError(t, err)
	assert.Equal(t, inspection.ConditionDamaged, got)

	_, err = inspection.ParseCondition("like new")
	assert.ErrorIs(t, err, inspection.ErrInvalidCondition)
}
