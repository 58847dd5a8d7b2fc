//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"carhire-booking/internal/handler/api"
	resdto "carhire-booking/internal/handler/dto/response"
	"carhire-booking/internal/usecase/commands"
	"carhire-booking/internal/usecase/queries"
	"carhire-booking/tests/common/httptest"
	commandsmock "carhire-booking/tests/mock/commands"
	queriesmock "carhire-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type NotificationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockNotificationCommands
	mockQueries  *queriesmock.MockNotificationQueries
	handler      *api.NotificationHandler
}

func (s *NotificationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockNotificationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockNotificationQueries(s.mockCtrl)
	s.handler = api.NewNotificationHandler(s.mockCommands, s.mockQueries)

	g := s.router.Group("/notifications", fakeAuth(true))
	g.GET("", s.handler.List)
	g.POST("/read-all", s.handler.MarkAllRead)
	g.POST("/:id/read", s.handler.MarkRead)
	g.DELETE("/:id", s.handler.Delete)
}

func (s *NotificationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestNotificationHandlerSuite(t *testing.T) {
	suite.Run(t, new(NotificationHandlerTestSuite))
}

func (s *NotificationHandlerTestSuite) TestList() {
	link := "/bookings/" + uuid.NewString()
	list := &queries.NotificationList{
		Items: []*queries.NotificationView{
			{ID: uuid.New(), Category: "booking", Title: "Booking confirmed", Message: "See you soon", Link: &link, CreatedAt: time.Now()},
			{ID: uuid.New(), Category: "payment", Title: "Payment received", Message: "Thanks", IsRead: true, CreatedAt: time.Now()},
		},
		Unread: 1,
	}

	s.Run("success: returns items and unread count", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), customerActor, false, 0).Return(list, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/notifications", nil, customerToken)

		var body resdto.NotificationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(1), body.UnreadCount)
		s.Require().Len(body.Items, 2)
		s.Equal("Booking confirmed", body.Items[0].Title)
		s.Require().NotNil(body.Items[0].Link)
		s.Equal(link, *body.Items[0].Link)
		s.True(body.Items[1].IsRead)
	})

	s.Run("success: unread filter and limit are forwarded", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), customerActor, true, 10).
			Return(&queries.NotificationList{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/notifications?unread=true&limit=10", nil, customerToken)

		var body resdto.NotificationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body.Items)
	})

	s.Run("error: 400 for limit over 100", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/notifications?limit=500", nil, customerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/notifications", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}

func (s *NotificationHandlerTestSuite) TestMarkRead() {
	id := uuid.New()
	url := "/notifications/" + id.String() + "/read"

	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().MarkRead(gomock.Any(), customerActor, id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, customerToken)
		s.Equal(http.StatusNoContent, rec.Code)
		s.Empty(rec.Body.String())
	})

	s.Run("error: 404 for another user's notification", func() {
		s.mockCommands.EXPECT().MarkRead(gomock.Any(), customerActor, id).
			Return(commands.ErrNotificationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, customerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "notification not found")
	})

	s.Run("error: 400 for invalid id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/notifications/abc/read", nil, customerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

func (s *NotificationHandlerTestSuite) TestMarkAllRead() {
	s.mockCommands.EXPECT().MarkAllRead(gomock.Any(), customerActor).Return(int64(3), nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/notifications/read-all", nil, customerToken)

	var body resdto.MarkAllReadResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal(int64(3), body.Updated)
}

func (s *NotificationHandlerTestSuite) TestDelete() {
	id := uuid.New()
	url := "/notifications/" + id.String()

	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), customerActor, id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, customerToken)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 when already gone", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), customerActor, id).
			Return(commands.ErrNotificationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, customerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}
