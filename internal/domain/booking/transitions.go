package booking

import "slices"

// Trigger identifies who or what is driving a transition.
type Trigger string

const (
	TriggerPayment  Trigger = "payment"
	TriggerCustomer Trigger = "customer"
	TriggerStaff    Trigger = "staff"
	TriggerSystem   Trigger = "system"
)

// Guards carries the externally-evaluated facts a transition may depend on.
type Guards struct {
	AgreementSigned  bool
	HandoverRecorded bool
	ReturnRecorded   bool
	Reason           *Reason
}

var anyTrigger = []Trigger{TriggerPayment, TriggerCustomer, TriggerStaff, TriggerSystem}

// edges lists every legal (from, to) pair and who may take it. Cancellation
// from any non-terminal status is handled separately.
var edges = map[Status]map[Status][]Trigger{
	StatusPendingReview: {
		StatusPaymentCompleted: {TriggerPayment},
		StatusRejected:         {TriggerStaff},
	},
	StatusPaymentCompleted: {
		StatusDocumentsSubmitted: {TriggerCustomer, TriggerStaff},
	},
	StatusDocumentsSubmitted: {
		StatusConfirmed:         {TriggerStaff},
		StatusDocumentsRejected: {TriggerStaff},
	},
	StatusDocumentsRejected: {
		StatusDocumentsSubmitted: {TriggerCustomer, TriggerStaff},
	},
	StatusConfirmed: {
		StatusOnRent: {TriggerStaff, TriggerSystem},
	},
	StatusOnRent: {
		StatusCompleted: {TriggerStaff, TriggerSystem},
	},
}

func allowedTriggers(from, to Status) ([]Trigger, bool) {
	if to == StatusCancelled && !from.IsTerminal() {
		return anyTrigger, true
	}
	targets, ok := edges[from]
	if !ok {
		return nil, false
	}
	triggers, ok := targets[to]
	return triggers, ok
}

// CanTransition reports whether the edge exists at all, ignoring triggers and guards.
func CanTransition(from, to Status) bool {
	if from.IsTerminal() {
		return false
	}
	_, ok := allowedTriggers(from, to)
	return ok
}

// NextStatuses lists the statuses reachable from s in one step.
func NextStatuses(s Status) []Status {
	var out []Status
	for _, to := range AllStatuses {
		if CanTransition(s, to) {
			out = append(out, to)
		}
	}
	return out
}

// requiresReason reports whether the customer must be told why. Cancelling a
// booking that was never reviewed counts as a refusal.
func requiresReason(from, to Status) bool {
	switch to {
	case StatusRejected, StatusDocumentsRejected:
		return true
	case StatusCancelled:
		return from == StatusPendingReview
	}
	return false
}

// Transition validates moving from -> to and returns the first rule it breaks.
func Transition(from, to Status, trigger Trigger, g Guards) error {
	if !from.IsValid() || !to.IsValid() {
		return ErrInvalidStatus
	}
	if from.IsTerminal() {
		return ErrTerminalStatus
	}

	triggers, ok := allowedTriggers(from, to)
	if !ok {
		return ErrIllegalTransition
	}
	if !slices.Contains(triggers, trigger) {
		return ErrTriggerNotPermitted
	}

	if g.Reason != nil && !g.Reason.IsValid() {
		return ErrUnknownReason
	}
	if requiresReason(from, to) && g.Reason == nil {
		return ErrReasonRequired
	}

	switch to {
	case StatusOnRent:
		if !g.AgreementSigned || !g.HandoverRecorded {
			return ErrRentalNotReady
		}
	case StatusCompleted:
		if !g.ReturnRecorded {
			return ErrReturnInspectionMissing
		}
	}
	return nil
}
