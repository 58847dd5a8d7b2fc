package api

import (
	"net/http"

	"carhire-booking/internal/domain/booking"
	reqdto "carhire-booking/internal/handler/dto/request"
	resdto "carhire-booking/internal/handler/dto/response"
	"carhire-booking/internal/handler/httperr"
	"carhire-booking/internal/pkg/errs"
	"carhire-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type VehicleHandler struct {
	availability commands.AvailabilityCommands
}

func NewVehicleHandler(availability commands.AvailabilityCommands) *VehicleHandler {
	return &VehicleHandler{availability: availability}
}

// @Summary Search available vehicles
// @Description Vehicles that are for hire and free over the whole closed date range.
// @Tags vehicles
// @Produce json
// @Param start query string true "Pickup date (YYYY-MM-DD)"
// @Param end query string true "Dropoff date (YYYY-MM-DD)"
// @Param category query string false "Category"
// @Param transmission query string false "Transmission"
// @Param fuel_type query string false "Fuel type"
// @Param min_seats query int false "Minimum seats"
// @Param max_daily_rate_cents query int false "Maximum daily rate in cents"
// @Success 200 {object} resdto.AvailableVehiclesResponse
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /vehicles/availability [get]
func (h *VehicleHandler) Search(c *gin.Context) {
	var q reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	dates, err := booking.ParseDateRange(q.Start, q.End)
	if err != nil {
		httperr.Respond(c, errs.Mark(err, errs.ErrValidation))
		return
	}

	listing := h.availability.ListAvailableVehicles(c.Request.Context(), dates, q.Filter())
	if listing.Err != nil {
		httperr.Respond(c, listing.Err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailableVehicles(dates, listing.Vehicles))
}

// @Summary Vehicle availability
// @Description Whether one vehicle is free over the range, with the ranges that block it.
// @Tags vehicles
// @Produce json
// @Param id path string true "Vehicle ID"
// @Param start query string true "Pickup date (YYYY-MM-DD)"
// @Param end query string true "Dropoff date (YYYY-MM-DD)"
// @Success 200 {object} resdto.VehicleAvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /vehicles/{id}/availability [get]
func (h *VehicleHandler) Availability(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var q reqdto.VehicleAvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	dates, err := booking.ParseDateRange(q.Start, q.End)
	if err != nil {
		httperr.Respond(c, errs.Mark(err, errs.ErrValidation))
		return
	}

	blocked, err := h.availability.BlockedRanges(c.Request.Context(), id, dates, nil)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewVehicleAvailability(id, blocked))
}
