package errs

import "errors"

// Error taxonomy shared by the use case and handler layers.
// Layer-specific errors are Mark()ed onto one of these.
var (
	ErrValidation           = errors.New("validation error")
	ErrAvailabilityConflict = errors.New("availability conflict")
	ErrGuardViolation       = errors.New("guard violation")
	ErrAuthorization        = errors.New("not authorized")
	ErrNotFound             = errors.New("not found")
	ErrExternalDependency   = errors.New("external dependency failure")

	// Idempotency errors
	ErrIdempotencyInProgress = errors.New("idempotency in progress")
	ErrIdempotencyKeyReused  = errors.New("idempotency key reused with different request")

	// Webhook errors
	ErrWebhookSignature = errors.New("webhook signature verification failed")
	ErrMalformedEvent   = errors.New("malformed webhook event")
)
