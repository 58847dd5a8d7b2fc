package booking

import "strings"

type Status string

const (
	StatusPendingReview      Status = "pending_review"
	StatusPaymentCompleted   Status = "payment_completed"
	StatusDocumentsSubmitted Status = "documents_submitted"
	StatusDocumentsRejected  Status = "documents_rejected"
	StatusConfirmed          Status = "confirmed"
	StatusOnRent             Status = "on_rent"
	StatusCompleted          Status = "completed"
	StatusCancelled          Status = "cancelled"
	StatusRejected           Status = "rejected"
)

// AllStatuses is ordered along the happy path.
var AllStatuses = []Status{
	StatusPendingReview,
	StatusPaymentCompleted,
	StatusDocumentsSubmitted,
	StatusDocumentsRejected,
	StatusConfirmed,
	StatusOnRent,
	StatusCompleted,
	StatusCancelled,
	StatusRejected,
}

// legacy labels still found in older rows and provider metadata
var statusAliases = map[string]Status{
	"pending":         StatusPendingReview,
	"pending_payment": StatusPendingReview,
	"paid":            StatusPaymentCompleted,
	"documents":       StatusDocumentsSubmitted,
	"approved":        StatusConfirmed,
	"active":          StatusOnRent,
	"onrent":          StatusOnRent,
	"returned":        StatusCompleted,
	"canceled":        StatusCancelled,
	"declined":        StatusRejected,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPendingReview, StatusPaymentCompleted, StatusDocumentsSubmitted, StatusDocumentsRejected,
		StatusConfirmed, StatusOnRent, StatusCompleted, StatusCancelled, StatusRejected:
		return true
	default:
		return false
	}
}

// ParseStatus is the only place raw status strings become Status values.
// Everything downstream compares typed values.
func ParseStatus(raw string) (Status, error) {
	key := strings.ToLower(strings.TrimSpace(raw))
	key = strings.NewReplacer(" ", "_", "-", "_").Replace(key)

	if s := Status(key); s.IsValid() {
		return s, nil
	}
	if s, ok := statusAliases[key]; ok {
		return s, nil
	}
	return "", ErrInvalidStatus
}

func (s Status) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusCancelled, StatusRejected:
		return true
	default:
		return false
	}
}

// BlocksAvailability reports whether a booking in this status holds its vehicle.
func (s Status) BlocksAvailability() bool {
	return s != StatusCancelled && s != StatusRejected
}

// ReleasedStatuses are the statuses that never block a vehicle.
func ReleasedStatuses() []Status {
	return []Status{StatusCancelled, StatusRejected}
}

type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "unpaid"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

func (p PaymentStatus) String() string {
	return string(p)
}

func ParsePaymentStatus(raw string) (PaymentStatus, error) {
	switch p := PaymentStatus(strings.ToLower(strings.TrimSpace(raw))); p {
	case PaymentUnpaid, PaymentPaid, PaymentFailed, PaymentRefunded:
		return p, nil
	default:
		return "", ErrInvalidPaymentStatus
	}
}
