package commands

import (
	"context"
	"fmt"
	"log/slog"

	"carhire-booking/internal/domain/booking"
	"carhire-booking/internal/domain/notification"
	"carhire-booking/internal/domain/user"
	"carhire-booking/internal/infra"
	"carhire-booking/internal/pkg/clock"
	"carhire-booking/internal/pkg/errs"
	"carhire-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrNotificationNotFound = errs.Mark(errs.New("notification not found"), errs.ErrNotFound)
	ErrNotificationAuth     = errs.Mark(errs.New("sign in to manage notifications"), errs.ErrAuthorization)
)

type NotificationRepository interface {
	Create(ctx context.Context, n *notification.Notification) error
	MarkRead(ctx context.Context, userID, id uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type Mailer interface {
	Send(ctx context.Context, m shared.Mail) error
}

// Emitter writes user-facing notifications. It never fails its caller:
// errors are logged and dropped.
type Emitter struct {
	repo   NotificationRepository
	mailer Mailer
	clock  clock.Clock
}

func NewEmitter(repo NotificationRepository, mailer Mailer, clock clock.Clock) *Emitter {
	return &Emitter{
		repo:   repo,
		mailer: mailer,
		clock:  clock,
	}
}

func (e *Emitter) Emit(ctx context.Context, userID uuid.UUID, category notification.Category, title, message string, link *string) {
	n, err := notification.NewNotification(userID, category, title, message, link, e.clock.Now())
	if err != nil {
		slog.Warn("notification rejected", "user_id", userID, "category", category, "error", err)
		return
	}
	if err := e.repo.Create(ctx, n); err != nil {
		slog.Error("failed to write notification",
			"user_id", userID,
			"category", category,
			"title", title,
			"error", err)
	}
}

// notifyCustomer routes to the in-app inbox for account holders and to
// email for guests.
func (e *Emitter) notifyCustomer(ctx context.Context, b *booking.Booking, category notification.Category, title, message string) {
	c := b.Customer()
	if id := c.UserID(); id != nil {
		link := bookingLink(b.ID())
		e.Emit(ctx, *id, category, title, message, &link)
		return
	}

	if c.Email() == "" {
		return
	}
	body := fmt.Sprintf("Hi %s,\n\n%s\n\nBooking reference: %s", c.Name(), message, b.Reference())
	if err := e.mailer.Send(ctx, shared.Mail{
		ToName:  c.Name(),
		ToEmail: c.Email(),
		Subject: title,
		Body:    body,
	}); err != nil {
		slog.Error("failed to email guest",
			"booking_id", b.ID(),
			"category", category,
			"error", err)
	}
}

func (e *Emitter) BookingCreated(ctx context.Context, b *booking.Booking) {
	e.notifyCustomer(ctx, b, notification.CategoryBooking,
		"Booking received",
		fmt.Sprintf("We have received your %s booking %s. Complete payment to secure the vehicle.", b.Type().Label(), b.Reference()))
}

func (e *Emitter) StatusChanged(ctx context.Context, b *booking.Booking, from booking.Status) {
	category, title, message := statusMessage(b)
	slog.Info("booking status changed",
		"booking_id", b.ID(),
		"from", from,
		"to", b.Status())
	e.notifyCustomer(ctx, b, category, title, message)
}

func (e *Emitter) DatesChanged(ctx context.Context, b *booking.Booking) {
	e.notifyCustomer(ctx, b, notification.CategoryBooking,
		"Booking dates updated",
		fmt.Sprintf("Booking %s now runs from %s to %s.",
			b.Reference(),
			b.Dates().Start().Format(booking.DateLayout),
			b.Dates().End().Format(booking.DateLayout)))
}

func (e *Emitter) PaymentFailed(ctx context.Context, b *booking.Booking) {
	e.notifyCustomer(ctx, b, notification.CategoryPayment,
		"Payment failed",
		fmt.Sprintf("Your payment for booking %s did not go through. Please try again.", b.Reference()))
}

func (e *Emitter) AgreementReady(ctx context.Context, b *booking.Booking) {
	e.notifyCustomer(ctx, b, notification.CategoryAgreement,
		"Rental agreement ready to sign",
		fmt.Sprintf("The rental agreement for booking %s is ready for your signature.", b.Reference()))
}

func (e *Emitter) AgreementSigned(ctx context.Context, b *booking.Booking) {
	e.notifyCustomer(ctx, b, notification.CategoryAgreement,
		"Rental agreement signed",
		fmt.Sprintf("Thanks, the agreement for booking %s has been signed.", b.Reference()))
}

func (e *Emitter) DamageRecorded(ctx context.Context, b *booking.Booking, notes string) {
	e.notifyCustomer(ctx, b, notification.CategoryDamage,
		"Damage recorded",
		fmt.Sprintf("Damage was noted during inspection for booking %s: %s", b.Reference(), notes))
}

func statusMessage(b *booking.Booking) (notification.Category, string, string) {
	ref := b.Reference()
	switch b.Status() {
	case booking.StatusPaymentCompleted:
		return notification.CategoryPayment, "Payment received",
			fmt.Sprintf("Payment for booking %s is confirmed. Please upload your documents.", ref)
	case booking.StatusDocumentsSubmitted:
		return notification.CategoryBooking, "Documents submitted",
			fmt.Sprintf("We are reviewing the documents for booking %s.", ref)
	case booking.StatusDocumentsRejected:
		return notification.CategoryBooking, "Documents need attention",
			withReason(fmt.Sprintf("Some documents for booking %s were not accepted.", ref), b.StatusReason())
	case booking.StatusConfirmed:
		return notification.CategoryBooking, "Booking confirmed",
			fmt.Sprintf("Booking %s is confirmed. See you at pickup.", ref)
	case booking.StatusOnRent:
		return notification.CategoryBooking, "Rental started",
			fmt.Sprintf("Your rental for booking %s has started. Drive safely.", ref)
	case booking.StatusCompleted:
		return notification.CategoryBooking, "Rental completed",
			fmt.Sprintf("Thanks for returning the vehicle. Booking %s is complete.", ref)
	case booking.StatusCancelled:
		return notification.CategoryBooking, "Booking cancelled",
			withReason(fmt.Sprintf("Booking %s has been cancelled.", ref), b.StatusReason())
	case booking.StatusRejected:
		return notification.CategoryBooking, "Booking declined",
			withReason(fmt.Sprintf("Booking %s could not be accepted.", ref), b.StatusReason())
	default:
		return notification.CategoryBooking, "Booking updated",
			fmt.Sprintf("Booking %s is now %s.", ref, b.Status())
	}
}

func withReason(msg string, r *booking.Reason) string {
	if r == nil {
		return msg
	}
	return msg + " " + r.Message()
}

func bookingLink(id uuid.UUID) string {
	return "/dashboard/bookings/" + id.String()
}

// NotificationCommands are the recipient-side operations on an inbox.
type NotificationCommands interface {
	MarkRead(ctx context.Context, actor user.Actor, id uuid.UUID) error
	MarkAllRead(ctx context.Context, actor user.Actor) (int64, error)
	Delete(ctx context.Context, actor user.Actor, id uuid.UUID) error
}

type notificationUseCaseImpl struct {
	repo NotificationRepository
}

func NewNotificationUseCase(repo NotificationRepository) NotificationCommands {
	return &notificationUseCaseImpl{repo: repo}
}

func (u *notificationUseCaseImpl) MarkRead(ctx context.Context, actor user.Actor, id uuid.UUID) error {
	if actor.IsAnonymous() {
		return ErrNotificationAuth
	}
	return mapNotificationErr(u.repo.MarkRead(ctx, actor.UserID, id))
}

func (u *notificationUseCaseImpl) MarkAllRead(ctx context.Context, actor user.Actor) (int64, error) {
	if actor.IsAnonymous() {
		return 0, ErrNotificationAuth
	}
	n, err := u.repo.MarkAllRead(ctx, actor.UserID)
	if err != nil {
		return 0, errs.Mark(err, errs.ErrExternalDependency)
	}
	return n, nil
}

func (u *notificationUseCaseImpl) Delete(ctx context.Context, actor user.Actor, id uuid.UUID) error {
	if actor.IsAnonymous() {
		return ErrNotificationAuth
	}
	return mapNotificationErr(u.repo.Delete(ctx, actor.UserID, id))
}

// Another user's notification is reported as not found.
func mapNotificationErr(err error) error {
	if err == nil {
		return nil
	}
	if infra.IsKind(err, infra.KindNotFound) {
		return ErrNotificationNotFound
	}
	return errs.Mark(err, errs.ErrExternalDependency)
}
