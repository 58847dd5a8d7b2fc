//go:build unit

package httperr

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"carhire-booking/internal/domain/booking"
	"carhire-booking/internal/pkg/errs"
	"carhire-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "validation", err: errs.Mark(errs.New("bad dates"), errs.ErrValidation), wantStatus: http.StatusBadRequest},
		{name: "authorization", err: errs.Mark(errs.New("not yours"), errs.ErrAuthorization), wantStatus: http.StatusForbidden},
		{name: "not found", err: errs.Mark(errs.New("gone"), errs.ErrNotFound), wantStatus: http.StatusNotFound},
		{name: "guard", err: errs.Mark(errs.New("illegal transition"), errs.ErrGuardViolation), wantStatus: http.StatusUnprocessableEntity},
		{name: "plain conflict", err: errs.Mark(errs.New("exclusion constraint"), errs.ErrAvailabilityConflict), wantStatus: http.StatusConflict},
		{name: "in progress", err: commands.ErrIdempotencyInProgress, wantStatus: http.StatusConflict},
		{name: "key reused", err: commands.ErrIdempotencyKeyReused, wantStatus: http.StatusUnprocessableEntity},
		{name: "dependency down", err: commands.ErrAvailabilityLookup, wantStatus: http.StatusServiceUnavailable},
		{name: "wrapped dependency", err: errs.Wrap(commands.ErrGuardLookup, "transition"), wantStatus: http.StatusServiceUnavailable},
		{name: "unknown", err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, _, _ := classify(tc.err)
			assert.Equal(t, tc.wantStatus, status)
		})
	}
}

func TestClassifyHidesInternalMessages(t *testing.T) {
	_, msg, _ := classify(errors.New("pq: connection refused to 10.0.0.3"))
	assert.Equal(t, "Internal server error", msg)

	_, msg, _ = classify(commands.ErrAvailabilityLookup)
	assert.Equal(t, retryMessage, msg)
}

func TestClassifyConflictDetail(t *testing.T) {
	vehicleID := uuid.New()
	first, err := booking.ParseDateRange("2026-05-10", "2026-05-12")
	require.NoError(t, err)
	second, err := booking.ParseDateRange("2026-05-14", "2026-05-14")
	require.NoError(t, err)

	conflict := &commands.AvailabilityConflictError{VehicleID: vehicleID, Blocked: []booking.DateRange{first, second}}
	status, _, detail := classify(errs.Wrap(conflict, "create booking"))

	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, ConflictDetail{
		VehicleID: vehicleID.String(),
		Blocked: []BlockedRange{
			{PickupDate: "2026-05-10", DropoffDate: "2026-05-12"},
			{PickupDate: "2026-05-14", DropoffDate: "2026-05-14"},
		},
	}, detail)
}

func TestRespondWritesEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	Respond(c, errs.Mark(errs.New("booking not found"), errs.ErrNotFound))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.True(t, c.IsAborted())
	require.Len(t, c.Errors, 1)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, map[string]any{"message": "booking not found"}, body["error"])
	assert.NotContains(t, body, "detail")
}

func TestAbortWithErrorPanicsOnNil(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Panics(t, func() { AbortWithError(c, http.StatusBadRequest, nil, "x", nil) })
}
