//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"carhire-booking/internal/domain/booking"
	"carhire-booking/internal/domain/vehicle"
	"carhire-booking/internal/handler/api"
	resdto "carhire-booking/internal/handler/dto/response"
	"carhire-booking/internal/usecase/commands"
	"carhire-booking/internal/usecase/shared"
	"carhire-booking/tests/common/builder"
	"carhire-booking/tests/common/httptest"
	commandsmock "carhire-booking/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type VehicleHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockAvailability *commandsmock.MockAvailabilityCommands
	handler          *api.VehicleHandler
}

func (s *VehicleHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockAvailability = commandsmock.NewMockAvailabilityCommands(s.mockCtrl)
	s.handler = api.NewVehicleHandler(s.mockAvailability)

	s.router.GET("/vehicles/availability", s.handler.Search)
	s.router.GET("/vehicles/:id/availability", s.handler.Availability)
}

func (s *VehicleHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestVehicleHandlerSuite(t *testing.T) {
	suite.Run(t, new(VehicleHandlerTestSuite))
}

// ================================================================================
// TestSearch
// ================================================================================

func (s *VehicleHandlerTestSuite) TestSearch() {
	dates, err := booking.ParseDateRange("2026-05-10", "2026-05-12")
	s.Require().NoError(err)

	van := builder.NewVehicleBuilder().WithName("Ford Transit Custom").WithCategory("van").Build()

	s.Run("success: lists free vehicles with the requested range", func() {
		s.mockAvailability.EXPECT().ListAvailableVehicles(gomock.Any(), dates, vehicle.Filter{}).
			Return(commands.AvailabilityListing{Vehicles: []*shared.VehicleSnapshot{&van}}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/vehicles/availability?start=2026-05-10&end=2026-05-12", nil, "")

		var body resdto.AvailableVehiclesResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("2026-05-10", body.PickupDate)
		s.Equal("2026-05-12", body.DropoffDate)
		s.Require().Len(body.Vehicles, 1)
		s.Equal(van.ID, body.Vehicles[0].ID)
		s.Equal("van", body.Vehicles[0].Category)
	})

	s.Run("success: filters are bound from the query", func() {
		filter := vehicle.Filter{
			Category:          "van",
			Transmission:      "manual",
			FuelType:          "diesel",
			MinSeats:          3,
			MaxDailyRateCents: 9000,
		}
		s.mockAvailability.EXPECT().ListAvailableVehicles(gomock.Any(), dates, filter).
			Return(commands.AvailabilityListing{}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/vehicles/availability?start=2026-05-10&end=2026-05-12&category=van&transmission=manual&fuel_type=diesel&min_seats=3&max_daily_rate_cents=9000", nil, "")

		var body resdto.AvailableVehiclesResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.NotNil(body.Vehicles)
		s.Empty(body.Vehicles)
	})

	s.Run("error: 400 for missing or invalid dates", func() {
		for _, url := range []string{
			"/vehicles/availability",
			"/vehicles/availability?start=2026-05-10",
			"/vehicles/availability?start=10/05/2026&end=12/05/2026",
			"/vehicles/availability?start=2026-05-12&end=2026-05-10",
			"/vehicles/availability?start=2026-05-10&end=2026-05-12&min_seats=0",
			"/vehicles/availability?start=2026-05-10&end=2026-05-12&max_daily_rate_cents=0",
			"/vehicles/availability?start=2026-05-10&end=2026-05-12&min_seats=-2",
		} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
		}
	})

	s.Run("error: 503 instead of a partial list when the lookup fails", func() {
		s.mockAvailability.EXPECT().ListAvailableVehicles(gomock.Any(), dates, gomock.Any()).
			Return(commands.AvailabilityListing{Err: commands.ErrAvailabilityLookup}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/vehicles/availability?start=2026-05-10&end=2026-05-12", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "try again")
	})
}

// ================================================================================
// TestAvailability
// ================================================================================

func (s *VehicleHandlerTestSuite) TestAvailability() {
	vehicleID := uuid.New()
	url := "/vehicles/" + vehicleID.String() + "/availability?start=2026-05-01&end=2026-05-31"
	dates, err := booking.ParseDateRange("2026-05-01", "2026-05-31")
	s.Require().NoError(err)

	s.Run("success: free vehicle", func() {
		s.mockAvailability.EXPECT().BlockedRanges(gomock.Any(), vehicleID, dates, (*uuid.UUID)(nil)).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body resdto.VehicleAvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Available)
		s.Empty(body.Blocked)
	})

	s.Run("success: blocked ranges are listed", func() {
		first, _ := booking.ParseDateRange("2026-05-03", "2026-05-05")
		second, _ := booking.ParseDateRange("2026-05-20", "2026-05-22")
		s.mockAvailability.EXPECT().BlockedRanges(gomock.Any(), vehicleID, dates, (*uuid.UUID)(nil)).
			Return([]booking.DateRange{first, second}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body resdto.VehicleAvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.Available)
		s.Require().Len(body.Blocked, 2)
		s.Equal("2026-05-03", body.Blocked[0].PickupDate)
		s.Equal("2026-05-22", body.Blocked[1].DropoffDate)
	})

	s.Run("error: 400 for invalid vehicle id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/vehicles/xyz/availability?start=2026-05-01&end=2026-05-31", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: maps lookup errors", func() {
		testCases := []struct {
			name           string
			err            error
			expectedStatus int
		}{
			{name: "unknown vehicle", err: commands.ErrVehicleNotFound, expectedStatus: http.StatusNotFound},
			{name: "lookup failed", err: commands.ErrAvailabilityLookup, expectedStatus: http.StatusServiceUnavailable},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockAvailability.EXPECT().BlockedRanges(gomock.Any(), vehicleID, gomock.Any(), gomock.Any()).
					Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}
