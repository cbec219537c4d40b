package bootstrap

import (
	"appointment-gateway/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	MetricsModule,
	ClientModule,
	components.UseCaseModule,
	components.HandlerModule,
)
