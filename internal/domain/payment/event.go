package payment

import "github.com/google/uuid"

// EventType is the provider event name we act on.
type EventType string

const (
	EventCheckoutCompleted EventType = "checkout.session.completed"
	EventPaymentSucceeded  EventType = "payment_intent.succeeded"
	EventPaymentFailed     EventType = "payment_intent.payment_failed"
	EventChargeRefunded    EventType = "charge.refunded"
)

func (t EventType) String() string {
	return string(t)
}

func (t EventType) IsHandled() bool {
	switch t {
	case EventCheckoutCompleted, EventPaymentSucceeded, EventPaymentFailed, EventChargeRefunded:
		return true
	default:
		return false
	}
}

// Event is the provider-agnostic fact extracted from a verified webhook.
type Event struct {
	ID              string
	Type            EventType
	BookingID       *uuid.UUID
	SessionID       string
	PaymentIntentID string
	AmountCents     int64
	Currency        string
}

// Outcome is what applying an event did.
type Outcome string

const (
	OutcomeApplied   Outcome = "applied"
	OutcomeDuplicate Outcome = "duplicate"
	OutcomeIgnored   Outcome = "ignored"
)
