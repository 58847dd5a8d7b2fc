//go:build unit

package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"carhire-booking/internal/domain/booking"
	"carhire-booking/internal/handler/api"
	resdto "carhire-booking/internal/handler/dto/response"
	"carhire-booking/internal/usecase/commands"
	"carhire-booking/internal/usecase/queries"
	"carhire-booking/tests/common/builder"
	"carhire-booking/tests/common/httptest"
	"carhire-booking/tests/common/testutil"
	commandsmock "carhire-booking/tests/mock/commands"
	queriesmock "carhire-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/bookings", fakeAuth(false), s.handler.Create)
	s.router.GET("/bookings", fakeAuth(true), s.handler.List)
	s.router.GET("/bookings/:id", fakeAuth(true), s.handler.Get)
	s.router.POST("/bookings/:id/transitions", fakeAuth(true), s.handler.Transition)
	s.router.PUT("/bookings/:id/dates", fakeAuth(true), s.handler.Reschedule)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type testCaseBooking struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

type conflictBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail struct {
		VehicleID string `json:"vehicleId"`
		Blocked   []struct {
			PickupDate  string `json:"pickupDate"`
			DropoffDate string `json:"dropoffDate"`
		} `json:"blocked"`
	} `json:"detail"`
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"

	vehicleID := uuid.New()
	pickup := time.Now().UTC().AddDate(0, 0, 14)
	reqBody := builder.NewCreateBookingRequest(vehicleID, pickup)
	expectedInput, err := reqBody.ToInput()
	s.Require().NoError(err)

	created := builder.NewBookingBuilder().WithVehicle(vehicleID).AsGuest("Sam Carter", "sam@example.com", "+447700900123").Build()

	s.Run("success: guest booking returns 201 with Location", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), expectedInput, (*uuid.UUID)(nil)).
			Return(&commands.CreateBookingResult{Booking: created}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(created.ID(), body.ID)
		s.Equal("pending_review", body.Status)
		s.Nil(body.UserID)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/bookings/" + created.ID().String()})
		s.Empty(rec.Header().Get("Idempotent-Replayed"))
	})

	s.Run("success: signed-in caller is passed through", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), customerActor, expectedInput, (*uuid.UUID)(nil)).
			Return(&commands.CreateBookingResult{Booking: created}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, customerToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("success: idempotency key is forwarded and a replay returns 200", func() {
		key := uuid.New()
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), expectedInput, &key).
			Return(&commands.CreateBookingResult{Booking: created, IsReplayed: true}, nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody,
			map[string]string{"Idempotency-Key": key.String()})

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(created.ID(), body.ID)
		httptest.AssertHeaders(s.T(), rec, map[string]string{
			"Idempotent-Replayed": "true",
			"Location":            "/api/bookings/" + created.ID().String(),
		})
	})

	s.Run("error: 400 for a malformed idempotency key", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody,
			map[string]string{"Idempotency-Key": "not-a-uuid"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Idempotency-Key must be a UUID")
		s.NotContains(rec.Body.String(), "invalid UUID length", "parser detail stays out of the response")
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCaseBooking{
			{name: "missing field: vehicleId", mutate: testutil.Field("vehicleId", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: customerName", mutate: testutil.Field("customerName", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: customerEmail", mutate: testutil.Field("customerEmail", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: customerPhone", mutate: testutil.Field("customerPhone", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: pickupLocation", mutate: testutil.Field("pickupLocation", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: pickupDate", mutate: testutil.Field("pickupDate", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: dropoffDate", mutate: testutil.Field("dropoffDate", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: bookingType", mutate: testutil.Field("bookingType", nil), expectCode: http.StatusBadRequest},
			{name: "invalid email", mutate: testutil.Field("customerEmail", "not-an-email"), expectCode: http.StatusBadRequest},
			{name: "negative amount", mutate: testutil.Field("totalAmountCents", -1), expectCode: http.StatusBadRequest},
			{name: "name too long", mutate: testutil.Field("customerName", strings.Repeat("a", 256)), expectCode: http.StatusBadRequest},
			{name: "name at limit", mutate: testutil.Field("customerName", strings.Repeat("a", 255)), expectCode: http.StatusCreated},
			{name: "zero amount", mutate: testutil.Field("totalAmountCents", 0), expectCode: http.StatusCreated},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				if tc.expectCode == http.StatusCreated {
					s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
						Return(&commands.CreateBookingResult{Booking: created}, nil).Times(1)
				}

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				if tc.expectCode == http.StatusCreated {
					httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
				} else {
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
				}
			})
		}
	})

	s.Run("error: 409 carries the blocking ranges", func() {
		blocked, err := booking.ParseDateRange("2026-05-10", "2026-05-12")
		s.Require().NoError(err)
		conflict := &commands.AvailabilityConflictError{VehicleID: vehicleID, Blocked: []booking.DateRange{blocked}}
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, conflict).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusConflict, rec.Code)

		var body conflictBody
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Equal("Vehicle is not available for the requested dates", body.Error.Message)
		s.Equal(vehicleID.String(), body.Detail.VehicleID)
		s.Require().Len(body.Detail.Blocked, 1)
		s.Equal("2026-05-10", body.Detail.Blocked[0].PickupDate)
		s.Equal("2026-05-12", body.Detail.Blocked[0].DropoffDate)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "vehicle not found",
				commandsError:  commands.ErrVehicleNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "vehicle not found",
			},
			{
				name:           "vehicle not for hire",
				commandsError:  commands.ErrVehicleUnavailable,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "not available for hire",
			},
			{
				name:           "availability lookup failed",
				commandsError:  commands.ErrAvailabilityLookup,
				expectedStatus: http.StatusServiceUnavailable,
				expectedMsg:    "try again",
			},
			{
				name:           "key still in flight",
				commandsError:  commands.ErrIdempotencyInProgress,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "still being processed",
			},
			{
				name:           "key reused with another body",
				commandsError:  commands.ErrIdempotencyKeyReused,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "different request",
			},
			{
				name:           "unexpected failure",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *BookingHandlerTestSuite) TestList() {
	items := []*queries.BookingListItem{
		{
			ID:          uuid.New(),
			Reference:   "CH-AAAA1111",
			VehicleName: "Ford Transit Custom",
			PickupDate:  time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC),
			DropoffDate: time.Date(2026, 5, 12, 0, 0, 0, 0, time.UTC),
			Status:      "confirmed",
			BookingType: "rent",
		},
	}

	s.Run("success: first page with next cursor", func() {
		s.mockQueries.EXPECT().ListMine(gomock.Any(), customerActor, (*queries.Cursor)(nil), 0).
			Return(items, &queries.Cursor{After: "next-page"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, customerToken)

		var body resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Items, 1)
		s.Equal("2026-05-10", body.Items[0].PickupDate)
		s.Require().NotNil(body.NextCursor)
		s.Equal("next-page", *body.NextCursor)
	})

	s.Run("success: cursor and limit are forwarded", func() {
		s.mockQueries.EXPECT().ListMine(gomock.Any(), customerActor, &queries.Cursor{After: "abc"}, 5).
			Return([]*queries.BookingListItem{}, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?cursor=abc&limit=5", nil, customerToken)

		var body resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body.Items)
		s.Nil(body.NextCursor)
	})

	s.Run("error: 400 for limit over 100", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?limit=101", nil, customerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 400 for a bad cursor", func() {
		s.mockQueries.EXPECT().ListMine(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil, queries.ErrInvalidCursor).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?cursor=zzz", nil, customerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid cursor")
	})

	s.Run("error: 401 when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *BookingHandlerTestSuite) TestGet() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String()

	view := builder.NewBookingBuilder().WithID(bookingID).WithUser(customerActor.UserID).BuildView()

	s.Run("success: returns 200 with detail", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), customerActor, bookingID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, customerToken)

		var body resdto.BookingDetailResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(bookingID, body.ID)
		s.Equal("AB12CDE", body.Registration)
		s.Nil(body.Agreement)
		s.Empty(body.Inspections)
	})

	s.Run("error: 400 for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/invalid-uuid", nil, customerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: maps query errors to proper statuses", func() {
		testCases := []struct {
			name           string
			queriesError   error
			expectedStatus int
		}{
			{name: "booking not found", queriesError: queries.ErrBookingNotFound, expectedStatus: http.StatusNotFound},
			{name: "another customer's booking", queriesError: queries.ErrBookingAccess, expectedStatus: http.StatusForbidden},
			{name: "query failed", queriesError: errors.New("database error"), expectedStatus: http.StatusInternalServerError},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), bookingID).
					Return(nil, tc.queriesError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, customerToken)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}

// ================================================================================
// TestTransition
// ================================================================================

func (s *BookingHandlerTestSuite) TestTransition() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/transitions"

	s.Run("success: returns the updated booking", func() {
		updated := builder.NewBookingBuilder().WithID(bookingID).WithStatus(booking.StatusConfirmed).Build()
		s.mockCommands.EXPECT().TransitionStatus(gomock.Any(), staffActor, bookingID, "confirmed", "").
			Return(updated, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"status": "confirmed"}, staffToken)

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("confirmed", body.Status)
	})

	s.Run("success: reason code is forwarded", func() {
		updated := builder.NewBookingBuilder().WithID(bookingID).WithStatus(booking.StatusRejected).Build()
		s.mockCommands.EXPECT().TransitionStatus(gomock.Any(), staffActor, bookingID, "rejected", "vehicle_unavailable").
			Return(updated, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"status": "rejected", "reason": "vehicle_unavailable"}, staffToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 when status is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"reason": "x"}, staffToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{name: "booking not found", commandsError: commands.ErrBookingNotFound, expectedStatus: http.StatusNotFound},
			{name: "not the owner", commandsError: commands.ErrBookingAccess, expectedStatus: http.StatusForbidden},
			{name: "concurrent change", commandsError: commands.ErrStaleBooking, expectedStatus: http.StatusUnprocessableEntity},
			{name: "guards unavailable", commandsError: commands.ErrGuardLookup, expectedStatus: http.StatusServiceUnavailable},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().TransitionStatus(gomock.Any(), gomock.Any(), bookingID, gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"status": "cancelled"}, customerToken)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}

// ================================================================================
// TestReschedule
// ================================================================================

func (s *BookingHandlerTestSuite) TestReschedule() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/dates"

	s.Run("success: parsed range is forwarded", func() {
		dates, err := booking.ParseDateRange("2026-06-01", "2026-06-04")
		s.Require().NoError(err)
		updated := builder.NewBookingBuilder().WithID(bookingID).WithDates(dates.Start(), dates.End()).Build()
		s.mockCommands.EXPECT().RescheduleBooking(gomock.Any(), customerActor, bookingID, dates).
			Return(updated, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url,
			map[string]any{"pickupDate": "2026-06-01", "dropoffDate": "2026-06-04"}, customerToken)

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("2026-06-01", body.PickupDate)
		s.Equal("2026-06-04", body.DropoffDate)
	})

	s.Run("error: 400 for unparseable or inverted dates", func() {
		for _, body := range []map[string]any{
			{"pickupDate": "2026-13-01", "dropoffDate": "2026-13-04"},
			{"pickupDate": "2026-06-04", "dropoffDate": "2026-06-01"},
			{"pickupDate": "2026-06-04"},
		} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, customerToken)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
		}
	})

	s.Run("error: 409 when the new dates collide", func() {
		s.mockCommands.EXPECT().RescheduleBooking(gomock.Any(), gomock.Any(), bookingID, gomock.Any()).
			Return(nil, &commands.AvailabilityConflictError{VehicleID: uuid.New()}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url,
			map[string]any{"pickupDate": "2026-06-01", "dropoffDate": "2026-06-04"}, customerToken)

		var body conflictBody
		s.Equal(http.StatusConflict, rec.Code)
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.NotNil(body.Detail.Blocked)
		s.Empty(body.Detail.Blocked)
	})
}
