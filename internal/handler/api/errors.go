package api

import (
	"net/http"

	"appointment-gateway/internal/handler/httperr"
	"appointment-gateway/internal/pkg/errs"
	"appointment-gateway/internal/usecase/appointments"
	"appointment-gateway/internal/usecase/slots"

	"github.com/gin-gonic/gin"
)

const msgDealerUnavailable = "Dealer is not available."

func abortWithUseCaseError(c *gin.Context, err error) {
	var (
		unavailable *slots.UnavailableError
		remote      *appointments.RemoteError
	)
	switch {
	case errs.As(err, &unavailable), errs.Is(err, appointments.ErrDealerNotBookable):
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgDealerUnavailable)
	case errs.Is(err, appointments.ErrCustomerRequired):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Customer is required")
	case errs.As(err, &remote):
		httperr.AbortWithError(c, remote.Status, err, remote.Message)
	case errs.Is(err, errs.ErrNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found")
	case errs.Is(err, errs.ErrUpstreamFailure):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Upstream service failure")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
	}
}
