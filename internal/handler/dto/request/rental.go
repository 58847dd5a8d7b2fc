package request

import (
	"carhire-booking/internal/pkg/patch"
	"carhire-booking/internal/usecase/commands"
)

type SendAgreementRequest struct {
	UnsignedURL  string `json:"unsignedUrl" binding:"required,url"`
	Text         string `json:"text" binding:"required"`
	Registration string `json:"registration,omitempty"`
}

func (r SendAgreementRequest) ToInput() commands.SendAgreementInput {
	return commands.SendAgreementInput{
		UnsignedURL:  r.UnsignedURL,
		Text:         r.Text,
		Registration: r.Registration,
	}
}

type SignAgreementRequest struct {
	Signature  string  `json:"signature" binding:"required"`
	SignerName string  `json:"signerName" binding:"required,max=255"`
	SignedURL  *string `json:"signedUrl,omitempty" binding:"omitempty,url"`
}

func (r SignAgreementRequest) ToInput() commands.SignAgreementInput {
	return commands.SignAgreementInput{
		Signature:  r.Signature,
		SignerName: r.SignerName,
		SignedURL:  r.SignedURL,
	}
}

type RecordInspectionRequest struct {
	Type             string   `json:"type" binding:"required,oneof=handover return"`
	FuelLevel        string   `json:"fuelLevel" binding:"required"`
	Odometer         *int     `json:"odometer" binding:"required,min=0"`
	OverallCondition string   `json:"overallCondition" binding:"required,oneof=excellent good fair poor damaged"`
	ConditionNotes   string   `json:"conditionNotes,omitempty"`
	DamageNotes      string   `json:"damageNotes,omitempty"`
	ExteriorPhotos   []string `json:"exteriorPhotos,omitempty" binding:"omitempty,max=40,dive,url"`
	InteriorPhotos   []string `json:"interiorPhotos,omitempty" binding:"omitempty,max=40,dive,url"`
	DamagePhotos     []string `json:"damagePhotos,omitempty" binding:"omitempty,max=40,dive,url"`
	VideoURLs        []string `json:"videoUrls,omitempty" binding:"omitempty,max=5,dive,url"`
	InspectorName    string   `json:"inspectorName,omitempty" binding:"max=255"`
	CustomerPresent  *bool    `json:"customerPresent,omitempty"`
}

func (r RecordInspectionRequest) ToInput() commands.RecordInspectionInput {
	return commands.RecordInspectionInput{
		Type:            r.Type,
		FuelLevel:       r.FuelLevel,
		Odometer:        patch.Coalesce(r.Odometer, 0),
		Condition:       r.OverallCondition,
		ConditionNotes:  r.ConditionNotes,
		DamageNotes:     r.DamageNotes,
		ExteriorPhotos:  r.ExteriorPhotos,
		InteriorPhotos:  r.InteriorPhotos,
		DamagePhotos:    r.DamagePhotos,
		VideoURLs:       r.VideoURLs,
		InspectorName:   r.InspectorName,
		CustomerPresent: patch.Coalesce(r.CustomerPresent, true),
	}
}
