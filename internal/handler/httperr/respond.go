package httperr

import (
	"log/slog"
	"net/http"

	"carhire-booking/internal/domain/booking"
	"carhire-booking/internal/pkg/errs"
	"carhire-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const retryMessage = "Service temporarily unavailable, please try again"

type BlockedRange struct {
	PickupDate  string `json:"pickupDate"`
	DropoffDate string `json:"dropoffDate"`
}

type ConflictDetail struct {
	VehicleID string         `json:"vehicleId"`
	Blocked   []BlockedRange `json:"blocked"`
}

// Respond maps a use case error onto the error taxonomy. Unknown errors are 500.
func Respond(c *gin.Context, err error) {
	status, msg, detail := classify(err)
	if status >= http.StatusInternalServerError {
		slog.Error("request failed",
			"path", c.FullPath(),
			"status", status,
			"error", err,
			"stack", errs.ExtractStackLines(err, 8))
	}
	AbortWithError(c, status, err, msg, detail)
}

func classify(err error) (int, string, any) {
	var conflict *commands.AvailabilityConflictError
	switch {
	case errs.As(err, &conflict):
		return http.StatusConflict, "Vehicle is not available for the requested dates", conflictDetail(conflict)
	case errs.Is(err, errs.ErrAvailabilityConflict):
		return http.StatusConflict, "Vehicle is not available for the requested dates", nil
	case errs.Is(err, errs.ErrIdempotencyInProgress):
		return http.StatusConflict, "A request with this idempotency key is still being processed", nil
	case errs.Is(err, errs.ErrIdempotencyKeyReused):
		return http.StatusUnprocessableEntity, "Idempotency key was already used with a different request", nil
	case errs.Is(err, errs.ErrExternalDependency):
		return http.StatusServiceUnavailable, retryMessage, nil
	case errs.Is(err, errs.ErrValidation):
		return http.StatusBadRequest, err.Error(), nil
	case errs.Is(err, errs.ErrAuthorization):
		return http.StatusForbidden, err.Error(), nil
	case errs.Is(err, errs.ErrNotFound):
		return http.StatusNotFound, err.Error(), nil
	case errs.Is(err, errs.ErrGuardViolation):
		return http.StatusUnprocessableEntity, err.Error(), nil
	default:
		return http.StatusInternalServerError, "Internal server error", nil
	}
}

func conflictDetail(e *commands.AvailabilityConflictError) ConflictDetail {
	d := ConflictDetail{
		VehicleID: e.VehicleID.String(),
		Blocked:   make([]BlockedRange, 0, len(e.Blocked)),
	}
	for _, r := range e.Blocked {
		d.Blocked = append(d.Blocked, BlockedRange{
			PickupDate:  r.Start().Format(booking.DateLayout),
			DropoffDate: r.End().Format(booking.DateLayout),
		})
	}
	return d
}
