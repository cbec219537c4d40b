package api

import (
	"net/http"

	reqdto "appointment-gateway/internal/handler/dto/request"
	resdto "appointment-gateway/internal/handler/dto/response"
	"appointment-gateway/internal/handler/httperr"
	"appointment-gateway/internal/usecase/appointments"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	appointments appointments.AppointmentUseCase
}

func NewAppointmentHandler(appointmentUseCase appointments.AppointmentUseCase) *AppointmentHandler {
	return &AppointmentHandler{appointments: appointmentUseCase}
}

// @Summary Book appointment
// @Description Book an appointment at a bookable dealer
// @Tags appointments
// @Accept json
// @Produce json
// @Param request body reqdto.CreateAppointmentRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Router /api/appointments [post]
func (h *AppointmentHandler) Create(c *gin.Context) {
	var req reqdto.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request")
		return
	}

	result, err := h.appointments.Create(c.Request.Context(), req.ToBooking())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Header("Location", "/api/appointments/"+result.AppointmentID)
	c.JSON(http.StatusCreated, resdto.BookingResponse{AppointmentID: result.AppointmentID})
}

// @Summary Update appointment
// @Tags appointments
// @Accept json
// @Param appointmentId path string true "Appointment ID"
// @Param request body reqdto.UpdateAppointmentRequest true "Changed fields"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Router /api/appointments/{appointmentId} [put]
func (h *AppointmentHandler) Update(c *gin.Context) {
	var req reqdto.UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request")
		return
	}

	if err := h.appointments.Update(c.Request.Context(), req.ToUpdate(c.Param("appointmentId"))); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Synchronize provider appointment
// @Description Apply a date change reported by the booking provider
// @Tags appointments
// @Accept json
// @Param providerAppointmentId path string true "Provider appointment ID"
// @Param dealerId query string true "Dealer ID"
// @Param request body reqdto.ProviderSynchRequest true "New date"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/provider-appointments/{providerAppointmentId} [put]
func (h *AppointmentHandler) ProviderSynch(c *gin.Context) {
	var q reqdto.DealerIDQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request")
		return
	}
	var req reqdto.ProviderSynchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request")
		return
	}

	err := h.appointments.ProviderSynch(c.Request.Context(), q.DealerID, req.ToSynch(c.Param("providerAppointmentId")))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Reopen appointment
// @Tags appointments
// @Param appointmentId path string true "Appointment ID"
// @Param dealerId query string true "Dealer ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/appointments/{appointmentId}/reopen [put]
func (h *AppointmentHandler) Reopen(c *gin.Context) {
	var q reqdto.DealerIDQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request")
		return
	}

	if err := h.appointments.Reopen(c.Request.Context(), c.Param("appointmentId"), q.DealerID); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get appointment
// @Tags appointments
// @Produce json
// @Param appointmentId path string true "Appointment ID"
// @Success 200 {object} appointment.ClientAppointment
// @Failure 404 {object} httperr.Response
// @Router /api/appointments/{appointmentId} [get]
func (h *AppointmentHandler) Get(c *gin.Context) {
	found, err := h.appointments.Get(c.Request.Context(), c.Param("appointmentId"))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, found)
}

// @Summary List appointments of a user
// @Tags appointments
// @Produce json
// @Param userId path string true "User ID"
// @Param fromDate query string false "Range start"
// @Param toDate query string false "Range end"
// @Param status query string false "Status filter"
// @Success 200 {array} appointment.ClientAppointment
// @Router /api/users/{userId}/appointments [get]
func (h *AppointmentHandler) ListByUser(c *gin.Context) {
	var q reqdto.RangeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request")
		return
	}

	list, err := h.appointments.ListByUser(c.Request.Context(), c.Param("userId"), q.ToRange())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromClientList(list))
}

// @Summary List appointments of a dealer
// @Tags appointments
// @Produce json
// @Param dealerId path string true "Dealer ID"
// @Param fromDate query string false "Range start"
// @Param toDate query string false "Range end"
// @Param status query string false "Status filter"
// @Success 200 {array} appointment.ClientAppointment
// @Router /api/dealers/{dealerId}/appointments [get]
func (h *AppointmentHandler) ListByDealer(c *gin.Context) {
	var q reqdto.RangeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request")
		return
	}

	list, err := h.appointments.ListByDealer(c.Request.Context(), c.Param("dealerId"), q.ToRange())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromClientList(list))
}

// @Summary List appointments of several dealers
// @Tags appointments
// @Produce json
// @Param id query []string true "Dealer IDs" collectionFormat(multi)
// @Param fromDate query string false "Range start"
// @Param toDate query string false "Range end"
// @Param status query string false "Status filter"
// @Success 200 {array} appointment.ClientAppointment
// @Failure 400 {object} httperr.Response
// @Router /api/appointments [get]
func (h *AppointmentHandler) ListByDealers(c *gin.Context) {
	var q reqdto.AppointmentsByDealersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request")
		return
	}

	list, err := h.appointments.ListByDealers(c.Request.Context(), q.DealerIDs(), q.ToRange())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromClientList(list))
}

// @Summary List appointments of an order
// @Tags appointments
// @Produce json
// @Param orderId path string true "Order ID"
// @Param fromDate query string false "Range start"
// @Param toDate query string false "Range end"
// @Param status query string false "Status filter"
// @Success 200 {array} appointment.ClientAppointment
// @Router /api/orders/{orderId}/appointments [get]
func (h *AppointmentHandler) ListByOrder(c *gin.Context) {
	var q reqdto.RangeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request")
		return
	}

	list, err := h.appointments.ListByOrder(c.Request.Context(), c.Param("orderId"), q.ToRange())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromClientList(list))
}

// @Summary Cancel appointment
// @Tags appointments
// @Param appointmentId path string true "Appointment ID"
// @Param comment query string false "Cancellation comment"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /api/appointments/{appointmentId} [delete]
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	var q reqdto.CancelAppointmentQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request")
		return
	}

	if err := h.appointments.Cancel(c.Request.Context(), c.Param("appointmentId"), q.Comment); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Complete appointment
// @Tags appointments
// @Accept json
// @Param appointmentId path string true "Appointment ID"
// @Param request body reqdto.CompleteAppointmentRequest false "Completion comment"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /api/appointments/{appointmentId}/complete [post]
func (h *AppointmentHandler) Complete(c *gin.Context) {
	var req reqdto.CompleteAppointmentRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request")
			return
		}
	}

	if err := h.appointments.Complete(c.Request.Context(), c.Param("appointmentId"), req.Comment); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
