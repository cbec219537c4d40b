package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"appointment-gateway/internal/handler/api"
	"appointment-gateway/internal/handler/middleware"
	"appointment-gateway/internal/pkg/config"
	"appointment-gateway/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	m *metrics.Metrics,
	slotsHandler *api.SlotsHandler,
	appointmentHandler *api.AppointmentHandler,
) {
	setupMiddleware(engine, cfg, logger, m)
	setupRoutes(engine, cfg.Metrics, slotsHandler, appointmentHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, m *metrics.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	if m != nil {
		engine.Use(middleware.MetricsMiddleware(m))
	}
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, metricsCfg config.MetricsConfig, slotsHandler *api.SlotsHandler, appointmentHandler *api.AppointmentHandler) {
	engine.GET("/health", healthCheck)

	if metricsCfg.Enabled {
		engine.GET(metricsCfg.Path, gin.WrapH(promhttp.Handler()))
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/slots", Handler: slotsHandler.GetFreeSlots},
		})

		dealers := apiGroup.Group("/dealers/:dealerId")
		{
			addRoutes(dealers, []route{
				{Method: http.MethodGet, Path: "/slots", Handler: slotsHandler.GetFreeSlotsByDealer},
				{Method: http.MethodGet, Path: "/appointments", Handler: appointmentHandler.ListByDealer},
			})
		}

		appointments := apiGroup.Group("/appointments")
		{
			addRoutes(appointments, []route{
				{Method: http.MethodPost, Path: "", Handler: appointmentHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: appointmentHandler.ListByDealers},
				{Method: http.MethodGet, Path: "/:appointmentId", Handler: appointmentHandler.Get},
				{Method: http.MethodPut, Path: "/:appointmentId", Handler: appointmentHandler.Update},
				{Method: http.MethodDelete, Path: "/:appointmentId", Handler: appointmentHandler.Cancel},
				{Method: http.MethodPost, Path: "/:appointmentId/complete", Handler: appointmentHandler.Complete},
				{Method: http.MethodPut, Path: "/:appointmentId/reopen", Handler: appointmentHandler.Reopen},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodPut, Path: "/provider-appointments/:providerAppointmentId", Handler: appointmentHandler.ProviderSynch},
			{Method: http.MethodGet, Path: "/users/:userId/appointments", Handler: appointmentHandler.ListByUser},
			{Method: http.MethodGet, Path: "/orders/:orderId/appointments", Handler: appointmentHandler.ListByOrder},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}
