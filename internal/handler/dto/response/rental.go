package response

import (
	"time"

	"carhire-booking/internal/domain/agreement"
	"carhire-booking/internal/domain/inspection"
	"carhire-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type AgreementResponse struct {
	ID           uuid.UUID  `json:"id"`
	BookingID    uuid.UUID  `json:"bookingId,omitempty"`
	Status       string     `json:"status"`
	Registration string     `json:"registration"`
	UnsignedURL  *string    `json:"unsignedUrl,omitempty"`
	SignedURL    *string    `json:"signedUrl,omitempty"`
	SignerName   *string    `json:"signerName,omitempty"`
	SignedAt     *time.Time `json:"signedAt,omitempty"`
	FuelLevel    *string    `json:"fuelLevel,omitempty"`
	Odometer     *int       `json:"odometer,omitempty"`
}

type InspectionResponse struct {
	ID               uuid.UUID  `json:"id"`
	BookingID        uuid.UUID  `json:"bookingId,omitempty"`
	AgreementID      *uuid.UUID `json:"agreementId,omitempty"`
	Type             string     `json:"type"`
	FuelLevel        string     `json:"fuelLevel"`
	Odometer         int        `json:"odometer"`
	OverallCondition string     `json:"overallCondition"`
	ConditionNotes   string     `json:"conditionNotes"`
	DamageNotes      string     `json:"damageNotes"`
	ExteriorPhotos   []string   `json:"exteriorPhotos"`
	InteriorPhotos   []string   `json:"interiorPhotos"`
	DamagePhotos     []string   `json:"damagePhotos"`
	VideoURLs        []string   `json:"videoUrls"`
	InspectedBy      uuid.UUID  `json:"inspectedBy"`
	InspectorName    string     `json:"inspectorName,omitempty"`
	CustomerPresent  bool       `json:"customerPresent"`
	CreatedAt        time.Time  `json:"createdAt"`
}

func FromAgreement(a *agreement.Agreement) *AgreementResponse {
	resp := &AgreementResponse{
		ID:           a.ID(),
		BookingID:    a.BookingID(),
		Status:       a.Status().String(),
		Registration: a.Registration(),
		UnsignedURL:  a.UnsignedURL(),
		SignedURL:    a.SignedURL(),
		SignerName:   a.SignerName(),
		SignedAt:     a.SignedAt(),
		Odometer:     a.Odometer(),
	}
	if f := a.FuelLevel(); f != nil {
		s := f.String()
		resp.FuelLevel = &s
	}
	return resp
}

func FromInspection(i *inspection.Inspection) *InspectionResponse {
	ev := i.Evidence()
	return &InspectionResponse{
		ID:               i.ID(),
		BookingID:        i.BookingID(),
		AgreementID:      i.AgreementID(),
		Type:             i.Type().String(),
		FuelLevel:        i.FuelLevel().String(),
		Odometer:         i.Odometer(),
		OverallCondition: i.Condition().String(),
		ConditionNotes:   i.ConditionNotes(),
		DamageNotes:      i.DamageNotes(),
		ExteriorPhotos:   orEmpty(ev.ExteriorPhotos),
		InteriorPhotos:   orEmpty(ev.InteriorPhotos),
		DamagePhotos:     orEmpty(ev.DamagePhotos),
		VideoURLs:        orEmpty(ev.VideoURLs),
		InspectedBy:      i.InspectedBy(),
		InspectorName:    i.InspectorName(),
		CustomerPresent:  i.CustomerPresent(),
		CreatedAt:        i.CreatedAt(),
	}
}

func fromAgreementView(v *queries.AgreementView) *AgreementResponse {
	return &AgreementResponse{
		ID:           v.ID,
		Status:       v.Status,
		Registration: v.Registration,
		UnsignedURL:  v.UnsignedURL,
		SignedURL:    v.SignedURL,
		SignerName:   v.SignerName,
		SignedAt:     v.SignedAt,
		FuelLevel:    v.FuelLevel,
		Odometer:     v.Odometer,
	}
}

func fromInspectionView(v queries.InspectionView) InspectionResponse {
	return InspectionResponse{
		ID:               v.ID,
		AgreementID:      v.AgreementID,
		Type:             v.Type,
		FuelLevel:        v.FuelLevel,
		Odometer:         v.Odometer,
		OverallCondition: v.OverallCondition,
		ConditionNotes:   v.ConditionNotes,
		DamageNotes:      v.DamageNotes,
		ExteriorPhotos:   orEmpty(v.ExteriorPhotos),
		InteriorPhotos:   orEmpty(v.InteriorPhotos),
		DamagePhotos:     orEmpty(v.DamagePhotos),
		VideoURLs:        orEmpty(v.VideoURLs),
		InspectedBy:      v.InspectedBy,
		InspectorName:    v.InspectorName,
		CustomerPresent:  v.CustomerPresent,
		CreatedAt:        v.CreatedAt,
	}
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
