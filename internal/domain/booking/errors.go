package booking

import "errors"

var (
	ErrInvalidStatus        = errors.New("invalid booking status")
	ErrInvalidPaymentStatus = errors.New("invalid payment status")
	ErrInvalidBookingType   = errors.New("invalid booking type")
	ErrInvalidDateRange     = errors.New("dropoff date must not be before pickup date")
	ErrInvalidDate          = errors.New("date must be formatted as YYYY-MM-DD")
	ErrInvalidTimeOfDay     = errors.New("time must be formatted as HH:MM")
	ErrPickupInPast         = errors.New("pickup date cannot be in the past")
	ErrMinimumDuration      = errors.New("booking is shorter than the minimum duration for its type")
	ErrVehicleRequired      = errors.New("vehicle is required")
	ErrLocationRequired     = errors.New("pickup and dropoff locations are required")
	ErrNegativeAmount       = errors.New("total amount cannot be negative")
	ErrCustomerIncomplete   = errors.New("guest bookings require name, email and phone")
	ErrInvalidEmail         = errors.New("invalid customer email")
	ErrUnknownReason        = errors.New("unknown reason code")
	ErrNotReschedulable     = errors.New("booking dates can no longer be changed")

	// Lifecycle errors
	ErrTerminalStatus          = errors.New("booking is in a terminal status")
	ErrIllegalTransition       = errors.New("transition is not allowed")
	ErrTriggerNotPermitted     = errors.New("caller may not perform this transition")
	ErrReasonRequired          = errors.New("a reason is required for this transition")
	ErrRentalNotReady          = errors.New("rental cannot start before the agreement is signed and the handover inspection is recorded")
	ErrReturnInspectionMissing = errors.New("rental cannot complete before the return inspection is recorded")
)
