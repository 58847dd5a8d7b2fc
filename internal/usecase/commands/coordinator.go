package commands

import (
	"context"
	"log/slog"
	"strings"

	"carhire-booking/internal/domain/agreement"
	"carhire-booking/internal/domain/booking"
	"carhire-booking/internal/domain/inspection"
	"carhire-booking/internal/domain/user"
	"carhire-booking/internal/infra"
	"carhire-booking/internal/pkg/clock"
	"carhire-booking/internal/pkg/errs"
	"carhire-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrAgreementNotFound     = errs.Mark(errs.New("agreement not found"), errs.ErrNotFound)
	ErrStaffOnly             = errs.Mark(errs.New("only staff can perform this action"), errs.ErrAuthorization)
	ErrAgreementNotIssuable  = errs.Mark(errs.New("agreements are issued once payment is completed"), errs.ErrGuardViolation)
	ErrInspectionNotAllowed  = errs.Mark(errs.New("inspection type is not allowed in the booking's current status"), errs.ErrGuardViolation)
	ErrAgreementChanged      = errs.Mark(errs.New("agreement was changed concurrently"), errs.ErrGuardViolation)
	ErrRentalReadinessLookup = errs.Mark(errs.New("rental readiness could not be determined"), errs.ErrExternalDependency)
)

type SendAgreementInput struct {
	UnsignedURL  string
	Text         string
	Registration string
}

type SignAgreementInput struct {
	Signature  string
	SignerName string
	SignedURL  *string
}

type RecordInspectionInput struct {
	Type            string
	FuelLevel       string
	Odometer        int
	Condition       string
	ConditionNotes  string
	DamageNotes     string
	ExteriorPhotos  []string
	InteriorPhotos  []string
	DamagePhotos    []string
	VideoURLs       []string
	InspectorName   string
	CustomerPresent bool
}

type CoordinatorCommands interface {
	IssueAgreement(ctx context.Context, bookingID uuid.UUID) (*agreement.Agreement, error)
	SendAgreement(ctx context.Context, actor user.Actor, bookingID uuid.UUID, in SendAgreementInput) (*agreement.Agreement, error)
	SignAgreement(ctx context.Context, actor user.Actor, agreementID uuid.UUID, in SignAgreementInput) (*agreement.Agreement, error)
	RecordInspection(ctx context.Context, actor user.Actor, bookingID uuid.UUID, in RecordInspectionInput) (*inspection.Inspection, error)
	CanActivateRental(ctx context.Context, bookingID uuid.UUID) (bool, error)
	CanCompleteRental(ctx context.Context, bookingID uuid.UUID) (bool, error)
	AdvanceRental(ctx context.Context, bookingID uuid.UUID) (*booking.Booking, error)
}

type coordinatorUseCaseImpl struct {
	uow       shared.UnitOfWork
	emitter   *Emitter
	clock     clock.Clock
	lifecycle *lifecycle
}

func NewCoordinatorUseCase(uow shared.UnitOfWork, emitter *Emitter, clock clock.Clock) CoordinatorCommands {
	return &coordinatorUseCaseImpl{
		uow:       uow,
		emitter:   emitter,
		clock:     clock,
		lifecycle: &lifecycle{clock: clock},
	}
}

// IssueAgreement is idempotent: a booking keeps its first agreement.
func (u *coordinatorUseCaseImpl) IssueAgreement(ctx context.Context, bookingID uuid.UUID) (*agreement.Agreement, error) {
	var a *agreement.Agreement
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := loadBookingForUpdate(ctx, tx, bookingID); err != nil {
			return err
		}
		var err error
		a, err = issueDraft(ctx, tx, bookingID, u.clock)
		return err
	})
	if err != nil {
		return nil, asDependencyErr(err)
	}
	return a, nil
}

func (u *coordinatorUseCaseImpl) SendAgreement(ctx context.Context, actor user.Actor, bookingID uuid.UUID, in SendAgreementInput) (*agreement.Agreement, error) {
	if !actor.IsStaff() {
		return nil, ErrStaffOnly
	}

	var (
		a *agreement.Agreement
		b *booking.Booking
	)
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		b, err = loadBookingForUpdate(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		if b.Status() == booking.StatusPendingReview || b.Status().IsTerminal() {
			return ErrAgreementNotIssuable
		}

		a, err = issueDraft(ctx, tx, bookingID, u.clock)
		if err != nil {
			return err
		}

		registration := strings.TrimSpace(in.Registration)
		if registration == "" {
			v, err := tx.Reads().VehicleByID(ctx, b.VehicleID())
			if err != nil {
				return errs.Wrap(err, "failed to load vehicle registration")
			}
			registration = v.Registration
		}

		expected := a.Status()
		if err := a.Send(in.UnsignedURL, in.Text, registration, u.clock.Now()); err != nil {
			return markAgreementErr(err)
		}
		return updateAgreement(ctx, tx, a, expected)
	})
	if err != nil {
		return nil, asDependencyErr(err)
	}

	slog.Info("agreement sent", "booking_id", bookingID, "agreement_id", a.ID())
	u.emitter.AgreementReady(ctx, b)
	return a, nil
}

// SignAgreement may be performed by the booking's customer or by staff on
// their behalf at the counter.
func (u *coordinatorUseCaseImpl) SignAgreement(ctx context.Context, actor user.Actor, agreementID uuid.UUID, in SignAgreementInput) (*agreement.Agreement, error) {
	var (
		a *agreement.Agreement
		b *booking.Booking
	)
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		a, err = tx.Agreements().Get(ctx, agreementID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrAgreementNotFound
			}
			return err
		}
		b, err = loadBookingForUpdate(ctx, tx, a.BookingID())
		if err != nil {
			return err
		}
		if _, err := triggerFor(actor, b); err != nil {
			return err
		}
		if b.Status().IsTerminal() {
			return errs.Mark(booking.ErrTerminalStatus, errs.ErrGuardViolation)
		}

		expected := a.Status()
		if err := a.Sign(in.Signature, in.SignerName, in.SignedURL, u.clock.Now()); err != nil {
			return markAgreementErr(err)
		}
		return updateAgreement(ctx, tx, a, expected)
	})
	if err != nil {
		return nil, asDependencyErr(err)
	}

	slog.Info("agreement signed", "booking_id", a.BookingID(), "agreement_id", a.ID())
	u.emitter.AgreementSigned(ctx, b)
	u.advanceQuietly(ctx, a.BookingID())
	return a, nil
}

func (u *coordinatorUseCaseImpl) RecordInspection(ctx context.Context, actor user.Actor, bookingID uuid.UUID, in RecordInspectionInput) (*inspection.Inspection, error) {
	if !actor.IsStaff() {
		return nil, ErrStaffOnly
	}
	inspectionType, err := inspection.ParseType(in.Type)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	fuel, err := inspection.ParseFuelLevel(in.FuelLevel)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	condition, err := inspection.ParseCondition(in.Condition)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	var (
		rec *inspection.Inspection
		b   *booking.Booking
	)
	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		b, err = loadBookingForUpdate(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		if !inspectionAllowed(inspectionType, b.Status()) {
			return ErrInspectionNotAllowed
		}
		var agreementID *uuid.UUID
		switch a, err := tx.Agreements().GetByBooking(ctx, bookingID); {
		case err == nil:
			id := a.ID()
			agreementID = &id
		case !infra.IsKind(err, infra.KindNotFound):
			return err
		}
		rec, err = inspection.NewInspection(inspection.Params{
			BookingID:      bookingID,
			AgreementID:    agreementID,
			Type:           inspectionType,
			FuelLevel:      fuel,
			Odometer:       in.Odometer,
			Condition:      condition,
			ConditionNotes: in.ConditionNotes,
			DamageNotes:    in.DamageNotes,
			Evidence: inspection.Evidence{
				ExteriorPhotos: in.ExteriorPhotos,
				InteriorPhotos: in.InteriorPhotos,
				DamagePhotos:   in.DamagePhotos,
				VideoURLs:      in.VideoURLs,
			},
			InspectedBy:     actor.UserID,
			InspectorName:   in.InspectorName,
			CustomerPresent: in.CustomerPresent,
		}, u.clock.Now())
		if err != nil {
			return errs.Mark(err, errs.ErrValidation)
		}
		return tx.Inspections().Create(ctx, rec)
	})
	if err != nil {
		return nil, asDependencyErr(err)
	}

	slog.Info("inspection recorded",
		"booking_id", bookingID,
		"inspection_id", rec.ID(),
		"type", rec.Type())
	if rec.DamageNotes() != "" {
		u.emitter.DamageRecorded(ctx, b, rec.DamageNotes())
	}
	u.advanceQuietly(ctx, bookingID)
	return rec, nil
}

// CanActivateRental is true once the agreement is signed and the handover
// inspection exists, in either order.
func (u *coordinatorUseCaseImpl) CanActivateRental(ctx context.Context, bookingID uuid.UUID) (bool, error) {
	var ready bool
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		g, err := readActivationGuards(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		ready = g.AgreementSigned && g.HandoverRecorded
		return nil
	})
	if err != nil {
		return false, errs.Mark(err, ErrRentalReadinessLookup)
	}
	return ready, nil
}

func (u *coordinatorUseCaseImpl) CanCompleteRental(ctx context.Context, bookingID uuid.UUID) (bool, error) {
	var returned bool
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		returned, err = tx.Inspections().Exists(ctx, bookingID, inspection.TypeReturn)
		return err
	})
	if err != nil {
		return false, errs.Mark(err, ErrRentalReadinessLookup)
	}
	return returned, nil
}

// AdvanceRental moves a confirmed booking on rent, and an on-rent booking to
// completed, when their guards hold. It is a no-op otherwise and safe to
// call repeatedly.
func (u *coordinatorUseCaseImpl) AdvanceRental(ctx context.Context, bookingID uuid.UUID) (*booking.Booking, error) {
	var (
		current *booking.Booking
		changes []*statusChange
	)
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		changes = changes[:0]
		b, err := loadBookingForUpdate(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		current = b

		for {
			next, ok := nextRentalStep(b.Status())
			if !ok {
				return nil
			}
			change, err := u.lifecycle.apply(ctx, tx, b, transitionRequest{to: next, trigger: booking.TriggerSystem})
			if err != nil {
				if isGuardNotMet(err) {
					return nil
				}
				return err
			}
			changes = append(changes, change)
		}
	})
	if err != nil {
		return nil, asDependencyErr(err)
	}

	for _, c := range changes {
		u.emitter.StatusChanged(ctx, c.booking, c.from)
	}
	return current, nil
}

// advanceQuietly runs AdvanceRental after a coordinator write has already
// committed. A failure here leaves the booking where it was; the next
// signature, inspection or staff action retries it.
func (u *coordinatorUseCaseImpl) advanceQuietly(ctx context.Context, bookingID uuid.UUID) {
	if _, err := u.AdvanceRental(ctx, bookingID); err != nil {
		slog.Warn("rental auto-advance failed", "booking_id", bookingID, "error", err)
	}
}

func nextRentalStep(s booking.Status) (booking.Status, bool) {
	switch s {
	case booking.StatusConfirmed:
		return booking.StatusOnRent, true
	case booking.StatusOnRent:
		return booking.StatusCompleted, true
	default:
		return "", false
	}
}

func isGuardNotMet(err error) bool {
	return errs.Is(err, booking.ErrRentalNotReady) || errs.Is(err, booking.ErrReturnInspectionMissing)
}

func inspectionAllowed(t inspection.Type, s booking.Status) bool {
	switch t {
	case inspection.TypeHandover:
		return s == booking.StatusConfirmed || s == booking.StatusOnRent
	case inspection.TypeReturn:
		return s == booking.StatusOnRent || s == booking.StatusCompleted
	default:
		return false
	}
}

func updateAgreement(ctx context.Context, tx shared.Tx, a *agreement.Agreement, expected agreement.Status) error {
	if err := tx.Agreements().Update(ctx, a, expected); err != nil {
		if infra.IsKind(err, infra.KindStaleState) {
			return ErrAgreementChanged
		}
		return err
	}
	return nil
}

func markAgreementErr(err error) error {
	switch {
	case errs.Is(err, agreement.ErrAlreadySigned), errs.Is(err, agreement.ErrNotSent):
		return errs.Mark(err, errs.ErrGuardViolation)
	default:
		return errs.Mark(err, errs.ErrValidation)
	}
}
