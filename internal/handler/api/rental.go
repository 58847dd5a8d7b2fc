package api

import (
	"net/http"

	reqdto "carhire-booking/internal/handler/dto/request"
	resdto "carhire-booking/internal/handler/dto/response"
	"carhire-booking/internal/handler/httperr"
	"carhire-booking/internal/handler/middleware"
	"carhire-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// RentalHandler serves agreement and inspection endpoints.
type RentalHandler struct {
	coordinator commands.CoordinatorCommands
}

func NewRentalHandler(coordinator commands.CoordinatorCommands) *RentalHandler {
	return &RentalHandler{coordinator: coordinator}
}

// @Summary Send agreement for signature
// @Tags agreements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.SendAgreementRequest true "Unsigned document"
// @Success 200 {object} resdto.AgreementResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings/{id}/agreement/send [post]
func (h *RentalHandler) SendAgreement(c *gin.Context) {
	bookingID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.SendAgreementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}

	a, err := h.coordinator.SendAgreement(c.Request.Context(), middleware.GetActor(c), bookingID, req.ToInput())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAgreement(a))
}

// @Summary Sign agreement
// @Tags agreements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Agreement ID"
// @Param request body reqdto.SignAgreementRequest true "Signature"
// @Success 200 {object} resdto.AgreementResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /agreements/{id}/sign [post]
func (h *RentalHandler) SignAgreement(c *gin.Context) {
	agreementID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.SignAgreementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}

	a, err := h.coordinator.SignAgreement(c.Request.Context(), middleware.GetActor(c), agreementID, req.ToInput())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAgreement(a))
}

// @Summary Record inspection
// @Tags inspections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.RecordInspectionRequest true "Inspection"
// @Success 201 {object} resdto.InspectionResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings/{id}/inspections [post]
func (h *RentalHandler) RecordInspection(c *gin.Context) {
	bookingID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.RecordInspectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}

	i, err := h.coordinator.RecordInspection(c.Request.Context(), middleware.GetActor(c), bookingID, req.ToInput())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromInspection(i))
}
