package queries

import (
	"context"
	"time"

	"carhire-booking/internal/domain/user"
	"carhire-booking/internal/infra"
	"carhire-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errs.Mark(errs.New("booking not found"), errs.ErrNotFound)
	ErrBookingAccess   = errs.Mark(errs.New("booking belongs to another customer"), errs.ErrAuthorization)
)

// Read models (DTO for read side)
type BookingView struct {
	ID               uuid.UUID        `json:"id"`
	Reference        string           `json:"reference"`
	VehicleID        uuid.UUID        `json:"vehicle_id"`
	VehicleName      string           `json:"vehicle_name"`
	Registration     string           `json:"registration"`
	UserID           *uuid.UUID       `json:"user_id,omitempty"`
	CustomerName     string           `json:"customer_name"`
	CustomerEmail    string           `json:"customer_email"`
	CustomerPhone    string           `json:"customer_phone"`
	PickupLocation   string           `json:"pickup_location"`
	DropoffLocation  string           `json:"dropoff_location"`
	PickupDate       time.Time        `json:"pickup_date"`
	DropoffDate      time.Time        `json:"dropoff_date"`
	PickupTime       string           `json:"pickup_time"`
	DropoffTime      string           `json:"dropoff_time"`
	TotalAmountCents int64            `json:"total_amount_cents"`
	Status           string           `json:"status"`
	PaymentStatus    string           `json:"payment_status"`
	BookingType      string           `json:"booking_type"`
	StatusReason     *string          `json:"status_reason,omitempty"`
	Agreement        *AgreementView   `json:"agreement,omitempty"`
	Inspections      []InspectionView `json:"inspections"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

type BookingListItem struct {
	ID               uuid.UUID `json:"id"`
	Reference        string    `json:"reference"`
	VehicleID        uuid.UUID `json:"vehicle_id"`
	VehicleName      string    `json:"vehicle_name"`
	PickupDate       time.Time `json:"pickup_date"`
	DropoffDate      time.Time `json:"dropoff_date"`
	TotalAmountCents int64     `json:"total_amount_cents"`
	Status           string    `json:"status"`
	PaymentStatus    string    `json:"payment_status"`
	BookingType      string    `json:"booking_type"`
	CreatedAt        time.Time `json:"created_at"`
}

type AgreementView struct {
	ID           uuid.UUID  `json:"id"`
	Status       string     `json:"status"`
	Registration string     `json:"registration"`
	UnsignedURL  *string    `json:"unsigned_url,omitempty"`
	SignedURL    *string    `json:"signed_url,omitempty"`
	SignerName   *string    `json:"signer_name,omitempty"`
	SignedAt     *time.Time `json:"signed_at,omitempty"`
	FuelLevel    *string    `json:"fuel_level,omitempty"`
	Odometer     *int       `json:"odometer,omitempty"`
}

type InspectionView struct {
	ID               uuid.UUID  `json:"id"`
	AgreementID      *uuid.UUID `json:"agreement_id,omitempty"`
	Type             string     `json:"type"`
	FuelLevel        string     `json:"fuel_level"`
	Odometer         int        `json:"odometer"`
	OverallCondition string     `json:"overall_condition"`
	ConditionNotes   string     `json:"condition_notes"`
	DamageNotes      string     `json:"damage_notes"`
	ExteriorPhotos   []string   `json:"exterior_photos"`
	InteriorPhotos   []string   `json:"interior_photos"`
	DamagePhotos     []string   `json:"damage_photos"`
	VideoURLs        []string   `json:"video_urls"`
	InspectedBy      uuid.UUID  `json:"inspected_by"`
	InspectorName    string     `json:"inspector_name"`
	CustomerPresent  bool       `json:"customer_present"`
	CreatedAt        time.Time  `json:"created_at"`
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*BookingListItem, error)
	FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*BookingListItem, error)
}

type AgreementReadStore interface {
	FindByBooking(ctx context.Context, bookingID uuid.UUID) (*AgreementView, error)
}

type InspectionReadStore interface {
	ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]InspectionView, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*BookingView, error)
	ListMine(ctx context.Context, actor user.Actor, cursor *Cursor, limit int) ([]*BookingListItem, *Cursor, error)
}

type bookingQueriesImpl struct {
	bookings    BookingReadStore
	agreements  AgreementReadStore
	inspections InspectionReadStore
}

func NewBookingQueries(bookings BookingReadStore, agreements AgreementReadStore, inspections InspectionReadStore) BookingQueries {
	return &bookingQueriesImpl{
		bookings:    bookings,
		agreements:  agreements,
		inspections: inspections,
	}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*BookingView, error) {
	view, err := q.bookings.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrExternalDependency)
	}

	if !actor.IsStaff() && (view.UserID == nil || *view.UserID != actor.UserID) {
		return nil, ErrBookingAccess
	}

	agreement, err := q.agreements.FindByBooking(ctx, id)
	if err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, errs.ErrExternalDependency)
	}
	view.Agreement = agreement

	inspections, err := q.inspections.ListByBooking(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrExternalDependency)
	}
	view.Inspections = inspections

	return view, nil
}

func (q *bookingQueriesImpl) ListMine(ctx context.Context, actor user.Actor, cursor *Cursor, limit int) ([]*BookingListItem, *Cursor, error) {
	if actor.IsAnonymous() {
		return nil, nil, ErrBookingAccess
	}

	limit = ValidateLimit(limit)
	var rows []*BookingListItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.bookings.FindByUserFirstPage(ctx, actor.UserID, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, derr
		}
		rows, err = q.bookings.FindByUserKeyset(ctx, actor.UserID, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, errs.Mark(err, errs.ErrExternalDependency)
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}
