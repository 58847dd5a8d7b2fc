//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"carhire-booking/internal/domain/agreement"
	"carhire-booking/internal/domain/inspection"
	"carhire-booking/internal/handler/api"
	resdto "carhire-booking/internal/handler/dto/response"
	"carhire-booking/internal/usecase/commands"
	"carhire-booking/tests/common/httptest"
	"carhire-booking/tests/common/testutil"
	commandsmock "carhire-booking/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RentalHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockCtrl        *gomock.Controller
	mockCoordinator *commandsmock.MockCoordinatorCommands
	handler         *api.RentalHandler
}

func (s *RentalHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCoordinator = commandsmock.NewMockCoordinatorCommands(s.mockCtrl)
	s.handler = api.NewRentalHandler(s.mockCoordinator)

	s.router.POST("/bookings/:id/agreement/send", fakeAuth(true), s.handler.SendAgreement)
	s.router.POST("/bookings/:id/inspections", fakeAuth(true), s.handler.RecordInspection)
	s.router.POST("/agreements/:id/sign", fakeAuth(true), s.handler.SignAgreement)
}

func (s *RentalHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRentalHandlerSuite(t *testing.T) {
	suite.Run(t, new(RentalHandlerTestSuite))
}

func sentAgreement(s *RentalHandlerTestSuite, bookingID uuid.UUID) *agreement.Agreement {
	a := agreement.NewDraft(bookingID, time.Now())
	s.Require().NoError(a.Send("https://docs.example.com/a.pdf", "terms", "AB12CDE", time.Now()))
	return a
}

// ================================================================================
// TestSendAgreement
// ================================================================================

func (s *RentalHandlerTestSuite) TestSendAgreement() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/agreement/send"
	reqBody := map[string]any{
		"unsignedUrl":  "https://docs.example.com/a.pdf",
		"text":         "terms",
		"registration": "AB12CDE",
	}

	s.Run("success: returns the sent agreement", func() {
		s.mockCoordinator.EXPECT().SendAgreement(gomock.Any(), staffActor, bookingID, commands.SendAgreementInput{
			UnsignedURL:  "https://docs.example.com/a.pdf",
			Text:         "terms",
			Registration: "AB12CDE",
		}).Return(sentAgreement(s, bookingID), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, staffToken)

		var body resdto.AgreementResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("sent", body.Status)
		s.Equal("AB12CDE", body.Registration)
		s.Require().NotNil(body.UnsignedURL)
		s.Nil(body.SignedAt)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, mutate := range []func(map[string]any){
			testutil.Field("unsignedUrl", nil),
			testutil.Field("unsignedUrl", "not a url"),
			testutil.Field("text", nil),
		} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, mutate), staffToken)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		}
	})

	s.Run("error: maps coordinator errors to proper statuses", func() {
		testCases := []struct {
			name           string
			err            error
			expectedStatus int
		}{
			{name: "customer tried to send", err: commands.ErrStaffOnly, expectedStatus: http.StatusForbidden},
			{name: "booking not found", err: commands.ErrBookingNotFound, expectedStatus: http.StatusNotFound},
			{name: "not yet paid", err: commands.ErrAgreementNotIssuable, expectedStatus: http.StatusUnprocessableEntity},
			{name: "concurrent change", err: commands.ErrAgreementChanged, expectedStatus: http.StatusUnprocessableEntity},
			{name: "unexpected failure", err: errors.New("database error"), expectedStatus: http.StatusInternalServerError},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCoordinator.EXPECT().SendAgreement(gomock.Any(), gomock.Any(), bookingID, gomock.Any()).
					Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, staffToken)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}

// ================================================================================
// TestSignAgreement
// ================================================================================

func (s *RentalHandlerTestSuite) TestSignAgreement() {
	agreementID := uuid.New()
	url := "/agreements/" + agreementID.String() + "/sign"
	reqBody := map[string]any{"signature": "data:image/png;base64,AAAA", "signerName": "Sam Carter"}

	s.Run("success: returns the signed agreement", func() {
		a := sentAgreement(s, uuid.New())
		s.Require().NoError(a.Sign("data:image/png;base64,AAAA", "Sam Carter", nil, time.Now()))
		s.mockCoordinator.EXPECT().SignAgreement(gomock.Any(), customerActor, agreementID, commands.SignAgreementInput{
			Signature:  "data:image/png;base64,AAAA",
			SignerName: "Sam Carter",
		}).Return(a, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, customerToken)

		var body resdto.AgreementResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("signed", body.Status)
		s.Require().NotNil(body.SignerName)
		s.Equal("Sam Carter", *body.SignerName)
		s.NotNil(body.SignedAt)
	})

	s.Run("error: 400 for a missing signature", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			testutil.DtoMap(s.T(), reqBody, testutil.Field("signature", nil)), customerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 400 for an invalid agreement id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/agreements/nope/sign", reqBody, customerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 for an unknown agreement", func() {
		s.mockCoordinator.EXPECT().SignAgreement(gomock.Any(), gomock.Any(), agreementID, gomock.Any()).
			Return(nil, commands.ErrAgreementNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, customerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "agreement not found")
	})
}

// ================================================================================
// TestRecordInspection
// ================================================================================

func (s *RentalHandlerTestSuite) TestRecordInspection() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/inspections"
	reqBody := map[string]any{
		"type":             "handover",
		"fuelLevel":        "full",
		"odometer":         12034,
		"overallCondition": "good",
		"exteriorPhotos":   []string{"https://img.example.com/front.jpg"},
		"videoUrls":        []string{"https://img.example.com/walkround.mp4"},
		"inspectorName":    "Priya Shah",
	}

	recorded, err := inspection.NewInspection(inspection.Params{
		BookingID: bookingID,
		Type:      inspection.TypeHandover,
		FuelLevel: inspection.FuelFull,
		Odometer:  12034,
		Condition: inspection.ConditionGood,
		Evidence: inspection.Evidence{
			ExteriorPhotos: []string{"https://img.example.com/front.jpg"},
			VideoURLs:      []string{"https://img.example.com/walkround.mp4"},
		},
		InspectedBy:     staffActor.UserID,
		InspectorName:   "Priya Shah",
		CustomerPresent: true,
	}, time.Now())
	s.Require().NoError(err)

	s.Run("success: returns 201 and defaults customerPresent", func() {
		s.mockCoordinator.EXPECT().RecordInspection(gomock.Any(), staffActor, bookingID, commands.RecordInspectionInput{
			Type:            "handover",
			FuelLevel:       "full",
			Odometer:        12034,
			Condition:       "good",
			ExteriorPhotos:  []string{"https://img.example.com/front.jpg"},
			VideoURLs:       []string{"https://img.example.com/walkround.mp4"},
			InspectorName:   "Priya Shah",
			CustomerPresent: true,
		}).Return(recorded, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, staffToken)

		var body resdto.InspectionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("handover", body.Type)
		s.Equal(12034, body.Odometer)
		s.Equal(staffActor.UserID, body.InspectedBy)
		s.Equal("good", body.OverallCondition)
		s.Len(body.ExteriorPhotos, 1)
		s.Empty(body.InteriorPhotos)
		s.NotNil(body.DamagePhotos, "empty categories render as []")
		s.Len(body.VideoURLs, 1)
		s.Equal("Priya Shah", body.InspectorName)
	})

	s.Run("success: zero odometer is accepted", func() {
		s.mockCoordinator.EXPECT().RecordInspection(gomock.Any(), gomock.Any(), bookingID, gomock.Any()).
			Return(recorded, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			testutil.DtoMap(s.T(), reqBody, testutil.Field("odometer", 0)), staffToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "unknown type", mutate: testutil.Field("type", "midway")},
			{name: "missing fuel level", mutate: testutil.Field("fuelLevel", nil)},
			{name: "missing odometer", mutate: testutil.Field("odometer", nil)},
			{name: "negative odometer", mutate: testutil.Field("odometer", -1)},
			{name: "missing condition", mutate: testutil.Field("overallCondition", nil)},
			{name: "unknown condition", mutate: testutil.Field("overallCondition", "mint")},
			{name: "photo is not a url", mutate: testutil.Field("exteriorPhotos", []string{"front.jpg"})},
			{name: "damage photo is not a url", mutate: testutil.Field("damagePhotos", []string{"dent.jpg"})},
			{name: "video is not a url", mutate: testutil.Field("videoUrls", []string{"walkround.mp4"})},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), staffToken)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: 422 when the booking is in the wrong status", func() {
		s.mockCoordinator.EXPECT().RecordInspection(gomock.Any(), gomock.Any(), bookingID, gomock.Any()).
			Return(nil, commands.ErrInspectionNotAllowed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, staffToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "not allowed")
	})
}
