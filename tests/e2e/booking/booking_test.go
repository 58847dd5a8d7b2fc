//go:build e2e

package booking_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"carhire-booking/internal/domain/user"
	resdto "carhire-booking/internal/handler/dto/response"
	"carhire-booking/tests/common/authtest"
	"carhire-booking/tests/common/dbtest"
	commonhttptest "carhire-booking/tests/common/httptest"
	"carhire-booking/tests/e2e"

	"github.com/google/uuid"
	stripeapi "github.com/stripe/stripe-go/v72"
	"github.com/stretchr/testify/suite"
)

type BookingE2ESuite struct {
	e2e.SharedSuite
	vehicleID  uuid.UUID
	staffToken string
}

func TestBookingE2E(t *testing.T) {
	suite.Run(t, new(BookingE2ESuite))
}

func (s *BookingE2ESuite) SetupTest() {
	s.SharedSuite.SetupTest()
	s.vehicleID = dbtest.CreateTestVehicle(s.T(), s.DB, "Ford Transit LWB", "E2E001")
	s.staffToken = authtest.NewJWTHelper(s.Config.JWT).GenerateToken(s.T(), uuid.New(), user.RoleStaff)
}

func (s *BookingE2ESuite) createBody(pickup, dropoff string) map[string]any {
	return map[string]any{
		"vehicleId":        s.vehicleID,
		"customerName":     "Sam Carter",
		"customerEmail":    "sam@example.com",
		"customerPhone":    "+447700900123",
		"pickupLocation":   "Heathrow T5",
		"dropoffLocation":  "Heathrow T5",
		"pickupDate":       pickup,
		"dropoffDate":      dropoff,
		"pickupTime":       "09:00",
		"dropoffTime":      "17:00",
		"totalAmountCents": 19500,
		"bookingType":      "rent",
	}
}

func (s *BookingE2ESuite) futureDates(offsetDays, length int) (string, string) {
	start := time.Now().UTC().AddDate(0, 0, offsetDays)
	return start.Format(time.DateOnly), start.AddDate(0, 0, length).Format(time.DateOnly)
}

func (s *BookingE2ESuite) TestConcurrentCreatesForSameDates() {
	pickup, dropoff := s.futureDates(30, 3)
	body := s.createBody(pickup, dropoff)

	const attempts = 8
	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		codes = map[int]int{}
	)
	for range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w := commonhttptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/bookings", body, "")
			mu.Lock()
			codes[w.Code]++
			mu.Unlock()
		}()
	}
	wg.Wait()

	s.Equal(1, codes[http.StatusCreated], "codes: %v", codes)
	s.Equal(attempts-1, codes[http.StatusConflict], "codes: %v", codes)
	s.Equal(1, dbtest.CountBookings(s.T(), s.DB, s.vehicleID, "pending_review"))
}

func (s *BookingE2ESuite) TestAdjacentBookings() {
	s.Run("same-day turnaround collides", func() {
		s.vehicleID = dbtest.CreateTestVehicle(s.T(), s.DB, "Ford Transit LWB", "E2E001")
		first := commonhttptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/bookings", s.createBody("2031-05-10", "2031-05-12"), "")
		s.Require().Equal(http.StatusCreated, first.Code, first.Body.String())

		second := commonhttptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/bookings", s.createBody("2031-05-12", "2031-05-14"), "")
		commonhttptest.AssertErrorResponse(s.T(), second, http.StatusConflict, "")
	})

	s.Run("next day is free", func() {
		s.vehicleID = dbtest.CreateTestVehicle(s.T(), s.DB, "Ford Transit LWB", "E2E001")
		first := commonhttptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/bookings", s.createBody("2031-05-10", "2031-05-12"), "")
		s.Require().Equal(http.StatusCreated, first.Code, first.Body.String())

		second := commonhttptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/bookings", s.createBody("2031-05-13", "2031-05-14"), "")
		s.Equal(http.StatusCreated, second.Code, second.Body.String())
	})
}

func (s *BookingE2ESuite) TestIdempotentCreate() {
	pickup, dropoff := s.futureDates(40, 2)
	key := uuid.NewString()
	headers := map[string]string{"Idempotency-Key": key}

	first := commonhttptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, "/api/bookings", s.createBody(pickup, dropoff), headers)
	var created resdto.BookingResponse
	commonhttptest.AssertSuccessResponse(s.T(), first, http.StatusCreated, &created)

	replay := commonhttptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, "/api/bookings", s.createBody(pickup, dropoff), headers)
	var replayed resdto.BookingResponse
	commonhttptest.AssertSuccessResponse(s.T(), replay, http.StatusOK, &replayed)
	s.Equal("true", replay.Header().Get("Idempotent-Replayed"))
	s.Equal(created.ID, replayed.ID)
	s.Equal(created.Reference, replayed.Reference)

	otherPickup, otherDropoff := s.futureDates(60, 2)
	reused := commonhttptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, "/api/bookings", s.createBody(otherPickup, otherDropoff), headers)
	commonhttptest.AssertErrorResponse(s.T(), reused, http.StatusUnprocessableEntity, "Idempotency key")

	s.Equal(1, dbtest.CountBookings(s.T(), s.DB, s.vehicleID, "pending_review"))
}

func (s *BookingE2ESuite) TestAvailabilityReflectsBookings() {
	pickup, dropoff := s.futureDates(20, 4)
	w := commonhttptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/bookings", s.createBody(pickup, dropoff), "")
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	path := fmt.Sprintf("/api/vehicles/%s/availability?start=%s&end=%s", s.vehicleID, pickup, dropoff)
	got := commonhttptest.PerformRequest(s.T(), s.Router, http.MethodGet, path, nil, "")
	var body struct {
		Available bool `json:"available"`
	}
	commonhttptest.AssertSuccessResponse(s.T(), got, http.StatusOK, &body)
	s.False(body.Available)

	laterPickup, laterDropoff := s.futureDates(90, 2)
	path = fmt.Sprintf("/api/vehicles/%s/availability?start=%s&end=%s", s.vehicleID, laterPickup, laterDropoff)
	got = commonhttptest.PerformRequest(s.T(), s.Router, http.MethodGet, path, nil, "")
	commonhttptest.AssertSuccessResponse(s.T(), got, http.StatusOK, &body)
	s.True(body.Available)
}

func (s *BookingE2ESuite) TestCheckoutWebhookCompletesPayment() {
	pickup, dropoff := s.futureDates(14, 3)
	w := commonhttptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/bookings", s.createBody(pickup, dropoff), "")
	var created resdto.BookingResponse
	commonhttptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &created)

	payload := s.checkoutEvent("evt_e2e_checkout", created.ID)
	headers := map[string]string{"Stripe-Signature": s.sign(payload)}

	first := commonhttptest.PerformRawRequest(s.T(), s.Router, http.MethodPost, "/api/webhooks/stripe", payload, headers)
	s.assertOutcome(first, "applied")

	again := commonhttptest.PerformRawRequest(s.T(), s.Router, http.MethodPost, "/api/webhooks/stripe", payload, headers)
	s.assertOutcome(again, "duplicate")

	detail := commonhttptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodGet, "/api/bookings/"+created.ID.String(), nil,
		map[string]string{"Authorization": "Bearer " + s.staffToken})
	var got resdto.BookingDetailResponse
	commonhttptest.AssertSuccessResponse(s.T(), detail, http.StatusOK, &got)
	s.Equal("payment_completed", got.Status)
	s.Equal("paid", got.PaymentStatus)
}

func (s *BookingE2ESuite) TestWebhookRejectsBadSignature() {
	payload := s.checkoutEvent("evt_e2e_forged", uuid.New())
	w := commonhttptest.PerformRawRequest(s.T(), s.Router, http.MethodPost, "/api/webhooks/stripe", payload,
		map[string]string{"Stripe-Signature": "t=1,v1=deadbeef"})
	commonhttptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid signature")
}

func (s *BookingE2ESuite) TestStaffRejectsBooking() {
	bookingID := dbtest.CreateTestBooking(s.T(), s.DB, s.vehicleID, uuid.New(),
		time.Now().UTC().AddDate(0, 0, 50), time.Now().UTC().AddDate(0, 0, 52), "pending_review")
	auth := map[string]string{"Authorization": "Bearer " + s.staffToken}
	path := "/api/bookings/" + bookingID.String() + "/transitions"

	missing := commonhttptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, path, map[string]string{"status": "rejected"}, auth)
	commonhttptest.AssertErrorResponse(s.T(), missing, http.StatusUnprocessableEntity, "")

	w := commonhttptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, path,
		map[string]string{"status": "rejected", "reason": "vehicle_unavailable"}, auth)
	var got resdto.BookingResponse
	commonhttptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
	s.Equal("rejected", got.Status)
	s.Equal(1, dbtest.CountBookings(s.T(), s.DB, s.vehicleID, "rejected"))
}

func (s *BookingE2ESuite) checkoutEvent(eventID string, bookingID uuid.UUID) []byte {
	b, err := json.Marshal(map[string]any{
		"id":          eventID,
		"object":      "event",
		"type":        "checkout.session.completed",
		"api_version": stripeapi.APIVersion,
		"created":     time.Now().Unix(),
		"data": map[string]any{"object": map[string]any{
			"id":             "cs_" + eventID,
			"object":         "checkout.session",
			"amount_total":   19500,
			"currency":       "gbp",
			"payment_intent": "pi_" + eventID,
			"metadata":       map[string]string{"booking_id": bookingID.String()},
		}},
	})
	s.Require().NoError(err)
	return b
}

func (s *BookingE2ESuite) sign(payload []byte) string {
	ts := time.Now().Unix()
	mac := hmac.New(sha256.New, []byte(s.Config.Stripe.WebhookSecret))
	mac.Write([]byte(fmt.Sprintf("%d.", ts)))
	mac.Write(payload)
	return fmt.Sprintf("t=%d,v1=%s", ts, hex.EncodeToString(mac.Sum(nil)))
}

func (s *BookingE2ESuite) assertOutcome(w *httptest.ResponseRecorder, want string) {
	var body struct {
		Received bool   `json:"received"`
		Outcome  string `json:"outcome"`
	}
	commonhttptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
	s.True(body.Received)
	s.Equal(want, body.Outcome)
}
