//go:build e2e

package appointments_test

import (
	"net/http"
	"testing"

	"appointment-gateway/internal/domain/appointment"
	"appointment-gateway/internal/domain/notification"
	"appointment-gateway/internal/handler/dto/response"
	"appointment-gateway/internal/usecase/appointments"
	"appointment-gateway/tests/common/builder"
	"appointment-gateway/tests/common/httptest"
	"appointment-gateway/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	appointmentsURL = "/api/appointments"
	appointmentURL  = "/api/appointments/apt-1001"
	dealerPath      = "/dealers/0001234567"
)

type AppointmentSuite struct {
	e2e.SharedSuite
}

func TestAppointmentSuite(t *testing.T) {
	suite.Run(t, new(AppointmentSuite))
}

// =============================================================================
// TestCreateAppointment
// =============================================================================

func (s *AppointmentSuite) TestCreateAppointment() {
	reqBody := builder.NewAppointmentBuilder().BuildCreateRequestDTO()

	s.Run("Normal case: booking is forwarded with provider and default shop", func() {
		t := s.T()
		s.Upstreams.Dealers.On(http.MethodGet, dealerPath,
			e2e.Respond(http.StatusOK, builder.NewDealerBuilder().BuildRecord()))
		s.Upstreams.Engine.On(http.MethodPost, "/appointments",
			e2e.Respond(http.StatusOK, appointment.BookingResult{AppointmentID: "apt-1001"}))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, reqBody, nil)

		var created response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		s.Equal("apt-1001", created.AppointmentID)
		httptest.AssertHeaders(t, w, map[string]string{"Location": appointmentURL})

		var booked appointment.Booking
		s.Upstreams.Engine.Last(t, http.MethodPost, "/appointments").DecodeBody(t, &booked)
		s.Equal(appointment.ProviderZeitmechanik, booked.AppointmentProvider)
		s.Equal(s.Config.Booking.DefaultShopIdentifier, booked.ShopIdentifier)
		s.Empty(s.Upstreams.Mailing.Requests())
	})

	s.Run("Error case: engine failure reaches the caller and the service desk", func() {
		t := s.T()
		s.Upstreams.Dealers.On(http.MethodGet, dealerPath,
			e2e.Respond(http.StatusOK, builder.NewDealerBuilder().BuildRecord()))
		s.Upstreams.Engine.On(http.MethodPost, "/appointments",
			e2e.Respond(http.StatusConflict, map[string]string{"message": "Slot already taken"}))
		s.Upstreams.Mailing.On(http.MethodPost, "/notifications/pinpoint", e2e.Respond(http.StatusNoContent, nil))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, reqBody, nil)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Slot already taken")

		var mail notification.PinpointRequest
		s.Upstreams.Mailing.Last(t, http.MethodPost, "/notifications/pinpoint").DecodeBody(t, &mail)
		s.Equal(notification.ProviderAppointment, mail.Provider)
		s.Equal(appointments.FailureSubject, mail.Email.Subject)
		s.Equal(s.Config.Mailing.Receiver, mail.Email.To)
		s.Contains(mail.Email.TextBody, "Slot already taken")
		s.Contains(mail.Email.TextBody, `"dealerId": "0001234567"`)
	})

	s.Run("Error case: mailing failure does not change the response", func() {
		t := s.T()
		s.Upstreams.Dealers.On(http.MethodGet, dealerPath,
			e2e.Respond(http.StatusOK, builder.NewDealerBuilder().BuildRecord()))
		s.Upstreams.Engine.On(http.MethodPost, "/appointments",
			e2e.Respond(http.StatusUnprocessableEntity, map[string]string{"message": "Date in the past"}))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, reqBody, nil)
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "Date in the past")
	})

	s.Run("Error case: dealer that is not an installer cannot be booked", func() {
		t := s.T()
		record := builder.NewDealerBuilder().With(func(b *builder.DealerBuilder) { b.Installer = false }).BuildRecord()
		s.Upstreams.Dealers.On(http.MethodGet, dealerPath, e2e.Respond(http.StatusOK, record))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, reqBody, nil)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Dealer is not available.")
		s.Empty(s.Upstreams.Engine.Requests())
	})
}

// =============================================================================
// TestAppointmentLifecycle
// =============================================================================

func (s *AppointmentSuite) TestAppointmentLifecycle() {
	engineView := builder.NewAppointmentBuilder().BuildEngine()

	s.Run("Normal case: get hides provider internals", func() {
		t := s.T()
		s.Upstreams.Engine.On(http.MethodGet, "/appointments/apt-1001", e2e.Respond(http.StatusOK, engineView))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, appointmentURL, nil, nil)

		s.Equal(http.StatusOK, w.Code)
		s.Contains(w.Body.String(), `"appointmentId":"apt-1001"`)
		s.NotContains(w.Body.String(), "zm-778899")
	})

	s.Run("Normal case: cancel uses the stored dealer and provider", func() {
		t := s.T()
		s.Upstreams.Engine.On(http.MethodGet, "/appointments/apt-1001", e2e.Respond(http.StatusOK, engineView))
		s.Upstreams.Engine.On(http.MethodPost, "/appointments/apt-1001/cancel", e2e.Respond(http.StatusNoContent, nil))

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, appointmentURL+"?comment=sick", nil, nil)
		httptest.AssertNoContent(t, w)

		var sent appointment.Cancellation
		s.Upstreams.Engine.Last(t, http.MethodPost, "/appointments/apt-1001/cancel").DecodeBody(t, &sent)
		s.Equal(appointment.Cancellation{
			AppointmentID:       "apt-1001",
			DealerID:            "0001234567",
			AppointmentProvider: appointment.ProviderZeitmechanik,
			Comment:             "sick",
		}, sent)
	})

	s.Run("Normal case: provider synch strips leading zeros from the dealer id", func() {
		t := s.T()
		s.Upstreams.Dealers.On(http.MethodGet, "/dealers/1234567",
			e2e.Respond(http.StatusOK, builder.NewDealerBuilder().BuildRecord()))
		s.Upstreams.Engine.On(http.MethodPost, "/provider-appointments/zm-778899/synch", e2e.Respond(http.StatusOK, nil))

		body := map[string]any{"appointmentDate": "2025-03-12T08:00:00.000Z"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, "/api/provider-appointments/zm-778899?dealerId=0001234567", body, nil)
		httptest.AssertNoContent(t, w)
	})

	s.Run("Normal case: user listing decodes the escaped pipe", func() {
		t := s.T()
		s.Upstreams.Engine.On(http.MethodPost, "/appointments/by-users",
			e2e.Respond(http.StatusOK, []appointment.Appointment{*engineView}))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/users/auth0%257C5f1c/appointments?status=BOOKED", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var sent appointment.ListByIDs
		s.Upstreams.Engine.Last(t, http.MethodPost, "/appointments/by-users").DecodeBody(t, &sent)
		s.Equal([]string{"auth0|5f1c"}, sent.IDs)
		s.Equal("BOOKED", sent.Status)
	})

	s.Run("Error case: complete of a missing appointment is a 404", func() {
		t := s.T()
		s.Upstreams.Engine.On(http.MethodGet, "/appointments/apt-1001",
			e2e.Respond(http.StatusNotFound, map[string]string{"message": "Appointment not found"}))
		s.Upstreams.Mailing.On(http.MethodPost, "/notifications/pinpoint", e2e.Respond(http.StatusNoContent, nil))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentURL+"/complete", nil, nil)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Appointment not found")

		for _, r := range s.Upstreams.Engine.Requests() {
			s.NotEqual("/appointments/apt-1001/complete", r.Path)
		}
	})
}
