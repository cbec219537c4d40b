//go:build unit

package handler_test

import (
	"net/http"
	"testing"

	"appointment-gateway/internal/handler"
	"appointment-gateway/internal/handler/api"
	"appointment-gateway/internal/handler/middleware"
	"appointment-gateway/internal/pkg/config"
	"appointment-gateway/internal/pkg/metrics"
	"appointment-gateway/internal/usecase/slots"
	"appointment-gateway/tests/common/httptest"
	appointmentsmock "appointment-gateway/tests/mock/appointments"
	slotsmock "appointment-gateway/tests/mock/slots"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T, m *metrics.Metrics) (*gin.Engine, *slotsmock.MockSlotsUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	slotsUseCase := slotsmock.NewMockSlotsUseCase(ctrl)
	appointmentUseCase := appointmentsmock.NewMockAppointmentUseCase(ctrl)

	cfg := config.NewTestConfig()
	engine := gin.New()
	handler.NewRouter(engine, cfg, middleware.NewLogger(cfg.Log), m,
		api.NewSlotsHandler(slotsUseCase), api.NewAppointmentHandler(appointmentUseCase))
	return engine, slotsUseCase
}

func TestRouter(t *testing.T) {
	t.Run("health check", func(t *testing.T) {
		router, _ := newRouter(t, nil)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/health", nil, nil)

		var body map[string]string
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, "ok", body["status"])
	})

	t.Run("request id is echoed when sent", func(t *testing.T) {
		router, _ := newRouter(t, nil)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/health", nil,
			map[string]string{middleware.HeaderRequestID: "req-42"})

		httptest.AssertHeaders(t, rec, map[string]string{middleware.HeaderRequestID: "req-42"})
	})

	t.Run("request id is generated when missing", func(t *testing.T) {
		router, _ := newRouter(t, nil)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/health", nil, nil)

		assert.Len(t, rec.Header().Get(middleware.HeaderRequestID), 36)
	})

	t.Run("CORS preflight for a configured origin", func(t *testing.T) {
		router, _ := newRouter(t, nil)

		rec := httptest.PerformRequest(t, router, http.MethodOptions, "/api/slots", nil, map[string]string{
			"Origin":                        "http://localhost:3000",
			"Access-Control-Request-Method": http.MethodGet,
		})

		assert.Equal(t, http.StatusNoContent, rec.Code)
		httptest.AssertHeaders(t, rec, map[string]string{"Access-Control-Allow-Origin": "http://localhost:3000"})
	})

	t.Run("metrics endpoint is not mounted when disabled", func(t *testing.T) {
		router, _ := newRouter(t, nil)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/metrics", nil, nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("requests are counted by route template", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		router, slotsUseCase := newRouter(t, metrics.New("router_test", reg))
		slotsUseCase.EXPECT().GetFreeSlotsByDealer(gomock.Any(), "0001234567", gomock.Any()).
			Return(&slots.DealerSlots{DealerID: "0001234567"}, nil)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/api/dealers/0001234567/slots", nil, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		families, err := reg.Gather()
		require.NoError(t, err)
		routes := map[string]float64{}
		for _, f := range families {
			if f.GetName() != "router_test_http_requests_total" {
				continue
			}
			for _, metric := range f.GetMetric() {
				for _, label := range metric.GetLabel() {
					if label.GetName() == "route" {
						routes[label.GetValue()] += metric.GetCounter().GetValue()
					}
				}
			}
		}
		assert.Equal(t, map[string]float64{"/api/dealers/:dealerId/slots": 1}, routes)
	})
}
