package commands

import (
	"context"
	"log/slog"

	"carhire-booking/internal/domain/booking"
	"carhire-booking/internal/domain/payment"
	"carhire-booking/internal/infra"
	"carhire-booking/internal/pkg/clock"
	"carhire-booking/internal/pkg/errs"
	"carhire-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// errDuplicateEvent rolls back a transaction whose event id was already recorded.
var errDuplicateEvent = errs.New("payment event already applied")

type PaymentResult struct {
	Outcome   payment.Outcome
	BookingID *uuid.UUID
}

type PaymentCommands interface {
	Apply(ctx context.Context, ev payment.Event) (*PaymentResult, error)
}

type paymentUseCaseImpl struct {
	uow       shared.UnitOfWork
	emitter   *Emitter
	clock     clock.Clock
	lifecycle *lifecycle
}

func NewPaymentUseCase(uow shared.UnitOfWork, emitter *Emitter, clock clock.Clock) PaymentCommands {
	return &paymentUseCaseImpl{
		uow:       uow,
		emitter:   emitter,
		clock:     clock,
		lifecycle: &lifecycle{clock: clock},
	}
}

// paymentPlan is decided before anything is written so the dedupe row can
// carry the real outcome.
type paymentPlan struct {
	outcome       payment.Outcome
	paymentStatus booking.PaymentStatus
	transition    *transitionRequest
}

// Apply is safe to call any number of times with the same event. Only the
// first delivery writes; later ones report OutcomeDuplicate.
func (u *paymentUseCaseImpl) Apply(ctx context.Context, ev payment.Event) (*PaymentResult, error) {
	logger := slog.With("event_id", ev.ID, "event_type", ev.Type)

	if !ev.Type.IsHandled() {
		logger.Debug("ignoring unhandled payment event")
		return &PaymentResult{Outcome: payment.OutcomeIgnored}, nil
	}

	var (
		result  = &PaymentResult{}
		changed *booking.Booking
		change  *statusChange
	)

	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Reset on retry.
		result.BookingID, changed, change = nil, nil, nil

		b, err := u.resolveBooking(ctx, tx, ev)
		if err != nil {
			return err
		}

		plan := u.plan(logger, ev, b)
		if b != nil {
			id := b.ID()
			result.BookingID = &id
		}
		result.Outcome = plan.outcome

		recorded, err := tx.PaymentEvents().Record(ctx, ev, result.BookingID, plan.outcome)
		if err != nil {
			return err
		}
		if !recorded {
			return errDuplicateEvent
		}
		if plan.outcome != payment.OutcomeApplied {
			return nil
		}

		b.RecordPayment(plan.paymentStatus, ev.SessionID, ev.PaymentIntentID, u.clock.Now())
		if err := tx.Bookings().UpdatePayment(ctx, shared.BookingPaymentUpdate{
			ID:              b.ID(),
			PaymentStatus:   b.PaymentStatus(),
			SessionID:       ev.SessionID,
			PaymentIntentID: ev.PaymentIntentID,
			At:              b.UpdatedAt(),
		}); err != nil {
			return err
		}
		changed = b

		if plan.transition != nil {
			change, err = u.lifecycle.apply(ctx, tx, b, *plan.transition)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errs.Is(err, errDuplicateEvent) {
			logger.Info("duplicate payment event")
			return &PaymentResult{Outcome: payment.OutcomeDuplicate, BookingID: result.BookingID}, nil
		}
		logger.Error("failed to apply payment event", "booking_id", result.BookingID, "error", err)
		if errs.Is(err, errs.ErrExternalDependency) || errs.Is(err, errs.ErrGuardViolation) {
			return nil, err
		}
		return nil, errs.Mark(err, errs.ErrExternalDependency)
	}

	switch {
	case change != nil:
		u.emitter.StatusChanged(ctx, change.booking, change.from)
	case changed != nil && ev.Type == payment.EventPaymentFailed:
		u.emitter.PaymentFailed(ctx, changed)
	}

	logger.Info("payment event processed", "booking_id", result.BookingID, "outcome", result.Outcome)
	return result, nil
}

// resolveBooking prefers the booking id carried in provider metadata and
// falls back to the stored payment intent. A missing booking is not an error.
func (u *paymentUseCaseImpl) resolveBooking(ctx context.Context, tx shared.Tx, ev payment.Event) (*booking.Booking, error) {
	var (
		b   *booking.Booking
		err error
	)
	switch {
	case ev.BookingID != nil:
		b, err = tx.Bookings().GetForUpdate(ctx, *ev.BookingID)
	case ev.PaymentIntentID != "":
		b, err = tx.Bookings().GetByPaymentIntentForUpdate(ctx, ev.PaymentIntentID)
	default:
		return nil, nil
	}
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return b, nil
}

func (u *paymentUseCaseImpl) plan(logger *slog.Logger, ev payment.Event, b *booking.Booking) paymentPlan {
	ignored := paymentPlan{outcome: payment.OutcomeIgnored}
	if b == nil {
		logger.Warn("payment event does not match any booking",
			"session_id", ev.SessionID,
			"payment_intent", ev.PaymentIntentID)
		return ignored
	}
	logger = logger.With("booking_id", b.ID(), "status", b.Status())

	switch ev.Type {
	case payment.EventCheckoutCompleted, payment.EventPaymentSucceeded:
		switch b.Status() {
		case booking.StatusPendingReview:
		case booking.StatusCancelled, booking.StatusRejected:
			logger.Warn("payment confirmed for a released booking")
			return ignored
		default:
			// Already at or beyond payment_completed.
			return ignored
		}
		if ev.AmountCents > 0 && ev.AmountCents != b.Total().Cents() {
			logger.Warn("payment amount does not match booking total",
				"amount_cents", ev.AmountCents,
				"total_cents", b.Total().Cents())
		}
		return paymentPlan{
			outcome:       payment.OutcomeApplied,
			paymentStatus: booking.PaymentPaid,
			transition:    &transitionRequest{to: booking.StatusPaymentCompleted, trigger: booking.TriggerPayment},
		}

	case payment.EventPaymentFailed:
		if b.PaymentStatus() == booking.PaymentPaid || b.PaymentStatus() == booking.PaymentRefunded {
			logger.Warn("payment failure after settlement", "payment_status", b.PaymentStatus())
			return ignored
		}
		return paymentPlan{outcome: payment.OutcomeApplied, paymentStatus: booking.PaymentFailed}

	case payment.EventChargeRefunded:
		if b.PaymentStatus() == booking.PaymentRefunded {
			return ignored
		}
		p := paymentPlan{outcome: payment.OutcomeApplied, paymentStatus: booking.PaymentRefunded}
		if !b.Status().IsTerminal() {
			reason := booking.ReasonPaymentRefunded
			p.transition = &transitionRequest{to: booking.StatusCancelled, trigger: booking.TriggerPayment, reason: &reason}
		}
		return p
	}
	return ignored
}
