package agreement

import (
	"errors"
	"strings"
	"time"

	"carhire-booking/internal/domain/inspection"

	"github.com/google/uuid"
)

var (
	ErrAlreadySigned      = errors.New("agreement is already signed")
	ErrNotSent            = errors.New("agreement has not been sent for signature")
	ErrDocumentRequired   = errors.New("agreement document reference is required")
	ErrSignatureRequired  = errors.New("signature is required")
	ErrSignerNameRequired = errors.New("signer name is required")
	ErrInvalidStatus      = errors.New("invalid agreement status")
)

type Status string

const (
	StatusDraft  Status = "draft"
	StatusSent   Status = "sent"
	StatusSigned Status = "signed"
)

func ParseStatus(raw string) (Status, error) {
	switch s := Status(strings.ToLower(strings.TrimSpace(raw))); s {
	case StatusDraft, StatusSent, StatusSigned:
		return s, nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s Status) String() string {
	return string(s)
}

type Agreement struct {
	id           uuid.UUID
	bookingID    uuid.UUID
	status       Status
	text         string
	registration string
	unsignedURL  *string
	signedURL    *string
	signature    *string
	signerName   *string
	signedAt     *time.Time
	fuelLevel    *inspection.FuelLevel
	odometer     *int
	createdAt    time.Time
	updatedAt    time.Time
}

func NewDraft(bookingID uuid.UUID, now time.Time) *Agreement {
	return &Agreement{
		id:        uuid.New(),
		bookingID: bookingID,
		status:    StatusDraft,
		createdAt: now,
		updatedAt: now,
	}
}

type ReconstructParams struct {
	ID           uuid.UUID
	BookingID    uuid.UUID
	Status       Status
	Text         string
	Registration string
	UnsignedURL  *string
	SignedURL    *string
	Signature    *string
	SignerName   *string
	SignedAt     *time.Time
	FuelLevel    *inspection.FuelLevel
	Odometer     *int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func Reconstruct(p ReconstructParams) *Agreement {
	return &Agreement{
		id:           p.ID,
		bookingID:    p.BookingID,
		status:       p.Status,
		text:         p.Text,
		registration: p.Registration,
		unsignedURL:  p.UnsignedURL,
		signedURL:    p.SignedURL,
		signature:    p.Signature,
		signerName:   p.SignerName,
		signedAt:     p.SignedAt,
		fuelLevel:    p.FuelLevel,
		odometer:     p.Odometer,
		createdAt:    p.CreatedAt,
		updatedAt:    p.UpdatedAt,
	}
}

// Send attaches the rendered document and makes the agreement signable.
// Re-sending replaces the previous document.
func (a *Agreement) Send(unsignedURL, text, registration string, now time.Time) error {
	if a.status == StatusSigned {
		return ErrAlreadySigned
	}
	unsignedURL = strings.TrimSpace(unsignedURL)
	if unsignedURL == "" {
		return ErrDocumentRequired
	}
	a.unsignedURL = &unsignedURL
	a.text = text
	a.registration = strings.TrimSpace(registration)
	a.status = StatusSent
	a.updatedAt = now
	return nil
}

// Sign requires both a document reference and signature data.
func (a *Agreement) Sign(signature, signerName string, signedURL *string, now time.Time) error {
	switch a.status {
	case StatusSigned:
		return ErrAlreadySigned
	case StatusDraft:
		return ErrNotSent
	}
	if a.unsignedURL == nil || *a.unsignedURL == "" {
		return ErrDocumentRequired
	}
	if strings.TrimSpace(signature) == "" {
		return ErrSignatureRequired
	}
	signerName = strings.TrimSpace(signerName)
	if signerName == "" {
		return ErrSignerNameRequired
	}

	a.signature = &signature
	a.signerName = &signerName
	a.signedURL = signedURL
	a.signedAt = &now
	a.status = StatusSigned
	a.updatedAt = now
	return nil
}

// StampCondition records handover fuel and odometer if they are not already set.
func (a *Agreement) StampCondition(fuel inspection.FuelLevel, odometer int, now time.Time) bool {
	if a.fuelLevel != nil && a.odometer != nil {
		return false
	}
	a.fuelLevel = &fuel
	a.odometer = &odometer
	a.updatedAt = now
	return true
}

func (a *Agreement) IsSigned() bool {
	return a.status == StatusSigned && a.signature != nil && a.unsignedURL != nil
}

func (a *Agreement) ID() uuid.UUID                    { return a.id }
func (a *Agreement) BookingID() uuid.UUID             { return a.bookingID }
func (a *Agreement) Status() Status                   { return a.status }
func (a *Agreement) Text() string                     { return a.text }
func (a *Agreement) Registration() string             { return a.registration }
func (a *Agreement) UnsignedURL() *string             { return a.unsignedURL }
func (a *Agreement) SignedURL() *string               { return a.signedURL }
func (a *Agreement) Signature() *string               { return a.signature }
func (a *Agreement) SignerName() *string              { return a.signerName }
func (a *Agreement) SignedAt() *time.Time             { return a.signedAt }
func (a *Agreement) FuelLevel() *inspection.FuelLevel { return a.fuelLevel }
func (a *Agreement) Odometer() *int                   { return a.odometer }
func (a *Agreement) CreatedAt() time.Time             { return a.createdAt }
func (a *Agreement) UpdatedAt() time.Time             { return a.updatedAt }
