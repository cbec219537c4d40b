package api

import (
	"net/http"

	reqdto "appointment-gateway/internal/handler/dto/request"
	resdto "appointment-gateway/internal/handler/dto/response"
	"appointment-gateway/internal/handler/httperr"
	"appointment-gateway/internal/usecase/slots"

	"github.com/gin-gonic/gin"
)

type SlotsHandler struct {
	slots slots.SlotsUseCase
}

func NewSlotsHandler(slotsUseCase slots.SlotsUseCase) *SlotsHandler {
	return &SlotsHandler{slots: slotsUseCase}
}

// @Summary Free slots near a location
// @Description Find installer dealers around a point and return their free appointment slots
// @Tags slots
// @Produce json
// @Param latitude query number true "Latitude in degrees"
// @Param longitude query number true "Longitude in degrees"
// @Param distance query number false "Search radius"
// @Param country query []string false "Country filter" collectionFormat(multi)
// @Param channel query string false "Sales channel"
// @Param quantity query int false "Number of tyres"
// @Param numberOfDays query int false "Window length in days (default 7)"
// @Param services query []string false "Requested services" collectionFormat(multi)
// @Param fromDate query string false "Window start, YYYY-MM-DD (default today)"
// @Success 200 {array} resdto.DealerSlotsResponse
// @Failure 400 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/slots [get]
func (h *SlotsHandler) GetFreeSlots(c *gin.Context) {
	var req reqdto.FreeSlotsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request")
		return
	}

	found, err := h.slots.GetFreeSlots(c.Request.Context(), req.ToQuery())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDealerSlotsList(found))
}

// @Summary Free slots of one dealer
// @Description Return the free appointment slots of a single dealer
// @Tags slots
// @Produce json
// @Param dealerId path string true "Dealer ID"
// @Param channel query string false "Sales channel"
// @Param quantity query int false "Number of tyres"
// @Param numberOfDays query int false "Window length in days (default 7)"
// @Param services query []string false "Requested services" collectionFormat(multi)
// @Param fromDate query string false "Window start, YYYY-MM-DD (default today)"
// @Success 200 {object} resdto.DealerSlotsResponse
// @Failure 400 {object} httperr.Response
// @Router /api/dealers/{dealerId}/slots [get]
func (h *SlotsHandler) GetFreeSlotsByDealer(c *gin.Context) {
	var req reqdto.SlotsWindowRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request")
		return
	}

	found, err := h.slots.GetFreeSlotsByDealer(c.Request.Context(), c.Param("dealerId"), req.ToQuery())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDealerSlots(found))
}
