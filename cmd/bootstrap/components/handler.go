package components

import (
	"appointment-gateway/internal/handler"
	"appointment-gateway/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSlotsHandler,
		api.NewAppointmentHandler,
	),
	fx.Invoke(handler.NewRouter),
)
