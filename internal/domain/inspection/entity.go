package inspection

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidType       = errors.New("inspection type must be handover or return")
	ErrInvalidFuelLevel  = errors.New("invalid fuel level")
	ErrNegativeOdometer  = errors.New("odometer reading cannot be negative")
	ErrInspectorRequired = errors.New("inspector is required")
	ErrBookingRequired   = errors.New("booking is required")
	ErrTooManyPhotos     = errors.New("too many photos attached")
	ErrTooManyVideos     = errors.New("too many videos attached")
	ErrConditionTooLong  = errors.New("condition notes are too long")
	ErrInvalidCondition  = errors.New("overall condition must be excellent, good, fair, poor or damaged")
	ErrInspectorNameLong = errors.New("inspector name is too long")
)

const (
	MaxPhotos          = 40
	MaxVideos          = 5
	MaxConditionLength = 4000
	MaxInspectorName   = 255
)

type Type string

const (
	TypeHandover Type = "handover"
	TypeReturn   Type = "return"
)

func ParseType(raw string) (Type, error) {
	switch t := Type(strings.ToLower(strings.TrimSpace(raw))); t {
	case TypeHandover, TypeReturn:
		return t, nil
	default:
		return "", ErrInvalidType
	}
}

func (t Type) String() string {
	return string(t)
}

type FuelLevel string

const (
	FuelEmpty        FuelLevel = "empty"
	FuelQuarter      FuelLevel = "quarter"
	FuelHalf         FuelLevel = "half"
	FuelThreeQuarter FuelLevel = "three_quarter"
	FuelFull         FuelLevel = "full"
)

func ParseFuelLevel(raw string) (FuelLevel, error) {
	switch f := FuelLevel(strings.ToLower(strings.TrimSpace(raw))); f {
	case FuelEmpty, FuelQuarter, FuelHalf, FuelThreeQuarter, FuelFull:
		return f, nil
	default:
		return "", ErrInvalidFuelLevel
	}
}

func (f FuelLevel) String() string {
	return string(f)
}

// Condition is the inspector's overall rating of the vehicle.
type Condition string

const (
	ConditionExcellent Condition = "excellent"
	ConditionGood      Condition = "good"
	ConditionFair      Condition = "fair"
	ConditionPoor      Condition = "poor"
	ConditionDamaged   Condition = "damaged"
)

func ParseCondition(raw string) (Condition, error) {
	switch c := Condition(strings.ToLower(strings.TrimSpace(raw))); c {
	case ConditionExcellent, ConditionGood, ConditionFair, ConditionPoor, ConditionDamaged:
		return c, nil
	default:
		return "", ErrInvalidCondition
	}
}

func (c Condition) String() string {
	return string(c)
}

// Evidence holds object-storage references captured during the walk-round.
type Evidence struct {
	ExteriorPhotos []string
	InteriorPhotos []string
	DamagePhotos   []string
	VideoURLs      []string
}

func (e Evidence) photoCount() int {
	return len(e.ExteriorPhotos) + len(e.InteriorPhotos) + len(e.DamagePhotos)
}

func (e Evidence) clone() Evidence {
	return Evidence{
		ExteriorPhotos: slices.Clone(e.ExteriorPhotos),
		InteriorPhotos: slices.Clone(e.InteriorPhotos),
		DamagePhotos:   slices.Clone(e.DamagePhotos),
		VideoURLs:      slices.Clone(e.VideoURLs),
	}
}

type Params struct {
	BookingID       uuid.UUID
	AgreementID     *uuid.UUID
	Type            Type
	FuelLevel       FuelLevel
	Odometer        int
	Condition       Condition
	ConditionNotes  string
	DamageNotes     string
	Evidence        Evidence
	InspectedBy     uuid.UUID
	InspectorName   string
	CustomerPresent bool
}

// Inspection is immutable once recorded.
type Inspection struct {
	id              uuid.UUID
	bookingID       uuid.UUID
	agreementID     *uuid.UUID
	inspectionType  Type
	fuelLevel       FuelLevel
	odometer        int
	condition       Condition
	conditionNotes  string
	damageNotes     string
	evidence        Evidence
	inspectedBy     uuid.UUID
	inspectorName   string
	customerPresent bool
	createdAt       time.Time
}

func NewInspection(p Params, now time.Time) (*Inspection, error) {
	if p.BookingID == uuid.Nil {
		return nil, ErrBookingRequired
	}
	if _, err := ParseType(string(p.Type)); err != nil {
		return nil, err
	}
	if _, err := ParseFuelLevel(string(p.FuelLevel)); err != nil {
		return nil, err
	}
	if p.Odometer < 0 {
		return nil, ErrNegativeOdometer
	}
	if _, err := ParseCondition(string(p.Condition)); err != nil {
		return nil, err
	}
	if p.InspectedBy == uuid.Nil {
		return nil, ErrInspectorRequired
	}
	name := strings.TrimSpace(p.InspectorName)
	if len(name) > MaxInspectorName {
		return nil, ErrInspectorNameLong
	}
	if p.Evidence.photoCount() > MaxPhotos {
		return nil, ErrTooManyPhotos
	}
	if len(p.Evidence.VideoURLs) > MaxVideos {
		return nil, ErrTooManyVideos
	}
	if len(p.ConditionNotes) > MaxConditionLength || len(p.DamageNotes) > MaxConditionLength {
		return nil, ErrConditionTooLong
	}

	return &Inspection{
		id:              uuid.New(),
		bookingID:       p.BookingID,
		agreementID:     p.AgreementID,
		inspectionType:  p.Type,
		fuelLevel:       p.FuelLevel,
		odometer:        p.Odometer,
		condition:       p.Condition,
		conditionNotes:  strings.TrimSpace(p.ConditionNotes),
		damageNotes:     strings.TrimSpace(p.DamageNotes),
		evidence:        p.Evidence.clone(),
		inspectedBy:     p.InspectedBy,
		inspectorName:   name,
		customerPresent: p.CustomerPresent,
		createdAt:       now,
	}, nil
}

func Reconstruct(id uuid.UUID, p Params, createdAt time.Time) *Inspection {
	return &Inspection{
		id:              id,
		bookingID:       p.BookingID,
		agreementID:     p.AgreementID,
		inspectionType:  p.Type,
		fuelLevel:       p.FuelLevel,
		odometer:        p.Odometer,
		condition:       p.Condition,
		conditionNotes:  p.ConditionNotes,
		damageNotes:     p.DamageNotes,
		evidence:        p.Evidence,
		inspectedBy:     p.InspectedBy,
		inspectorName:   p.InspectorName,
		customerPresent: p.CustomerPresent,
		createdAt:       createdAt,
	}
}

func (i *Inspection) ID() uuid.UUID           { return i.id }
func (i *Inspection) BookingID() uuid.UUID    { return i.bookingID }
func (i *Inspection) AgreementID() *uuid.UUID { return i.agreementID }
func (i *Inspection) Type() Type              { return i.inspectionType }
func (i *Inspection) FuelLevel() FuelLevel    { return i.fuelLevel }
func (i *Inspection) Odometer() int           { return i.odometer }
func (i *Inspection) Condition() Condition    { return i.condition }
func (i *Inspection) ConditionNotes() string  { return i.conditionNotes }
func (i *Inspection) DamageNotes() string     { return i.damageNotes }
func (i *Inspection) Evidence() Evidence      { return i.evidence }
func (i *Inspection) InspectedBy() uuid.UUID  { return i.inspectedBy }
func (i *Inspection) InspectorName() string   { return i.inspectorName }
func (i *Inspection) CustomerPresent() bool   { return i.customerPresent }
func (i *Inspection) CreatedAt() time.Time    { return i.createdAt }
