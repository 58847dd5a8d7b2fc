package stripe

import (
	"encoding/json"
	"strings"
	"time"

	"carhire-booking/internal/domain/payment"
	"carhire-booking/internal/pkg/errs"

	"github.com/google/uuid"
	stripeapi "github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/webhook"
)

// Checkout sessions and payment intents are created with this metadata key.
const bookingIDMetadataKey = "booking_id"

var (
	ErrSignature = errs.Mark(errs.New("stripe signature verification failed"), errs.ErrWebhookSignature)
	ErrMalformed = errs.Mark(errs.New("stripe event could not be decoded"), errs.ErrMalformedEvent)
)

// Verifier checks the Stripe-Signature header and turns the verified event
// into a provider-agnostic payment.Event.
type Verifier struct {
	secret    string
	tolerance time.Duration
}

func NewVerifier(secret string, tolerance time.Duration) *Verifier {
	if tolerance <= 0 {
		tolerance = webhook.DefaultTolerance
	}
	return &Verifier{secret: secret, tolerance: tolerance}
}

// Decode returns an event with only ID and Type set for event types we do not handle.
func (v *Verifier) Decode(payload []byte, signatureHeader string) (payment.Event, error) {
	ev, err := webhook.ConstructEventWithTolerance(payload, signatureHeader, v.secret, v.tolerance)
	if err != nil {
		return payment.Event{}, errs.Mark(errs.Wrap(err, "construct event"), ErrSignature)
	}
	// The typed objects below are decoded against this SDK's pinned version.
	if ev.APIVersion != stripeapi.APIVersion {
		return payment.Event{}, errs.Mark(
			errs.Newf("event api version %q does not match %q", ev.APIVersion, stripeapi.APIVersion), ErrSignature)
	}
	if ev.ID == "" || ev.Data == nil {
		return payment.Event{}, errs.Mark(errs.New("event without id or data"), ErrMalformed)
	}

	out := payment.Event{ID: ev.ID, Type: payment.EventType(ev.Type)}
	switch out.Type {
	case payment.EventCheckoutCompleted:
		var s stripeapi.CheckoutSession
		if err := json.Unmarshal(ev.Data.Raw, &s); err != nil {
			return payment.Event{}, errs.Mark(errs.Wrap(err, "decode checkout session"), ErrMalformed)
		}
		out.SessionID = s.ID
		if s.PaymentIntent != nil {
			out.PaymentIntentID = s.PaymentIntent.ID
		}
		out.AmountCents = s.AmountTotal
		out.Currency = string(s.Currency)
		ref := s.Metadata[bookingIDMetadataKey]
		if ref == "" {
			ref = s.ClientReferenceID
		}
		out.BookingID = parseBookingID(ref)

	case payment.EventPaymentSucceeded, payment.EventPaymentFailed:
		var pi stripeapi.PaymentIntent
		if err := json.Unmarshal(ev.Data.Raw, &pi); err != nil {
			return payment.Event{}, errs.Mark(errs.Wrap(err, "decode payment intent"), ErrMalformed)
		}
		out.PaymentIntentID = pi.ID
		out.AmountCents = pi.Amount
		out.Currency = string(pi.Currency)
		out.BookingID = parseBookingID(pi.Metadata[bookingIDMetadataKey])

	case payment.EventChargeRefunded:
		var ch stripeapi.Charge
		if err := json.Unmarshal(ev.Data.Raw, &ch); err != nil {
			return payment.Event{}, errs.Mark(errs.Wrap(err, "decode charge"), ErrMalformed)
		}
		if ch.PaymentIntent != nil {
			out.PaymentIntentID = ch.PaymentIntent.ID
		}
		out.AmountCents = ch.AmountRefunded
		out.Currency = string(ch.Currency)
		out.BookingID = parseBookingID(ch.Metadata[bookingIDMetadataKey])
	}
	return out, nil
}

func parseBookingID(raw string) *uuid.UUID {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil || id == uuid.Nil {
		return nil
	}
	return &id
}
