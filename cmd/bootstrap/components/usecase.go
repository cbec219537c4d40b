package components

import (
	"log/slog"

	"appointment-gateway/internal/pkg/clock"
	"appointment-gateway/internal/pkg/config"
	"appointment-gateway/internal/usecase/appointments"
	"appointment-gateway/internal/usecase/slots"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseSlotsModule,
	usecaseAppointmentsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseSlotsModule = fx.Module("usecase/slots",
	fx.Provide(
		slots.NewSlotsUseCase,
	),
)

var usecaseAppointmentsModule = fx.Module("usecase/appointments",
	fx.Provide(
		func(mailer appointments.Mailer, cfg config.Config, logger *slog.Logger) appointments.FailureNotifier {
			return appointments.NewFailureNotifier(mailer, cfg.Mailing, logger)
		},
		func(
			dealers appointments.DealerDirectory,
			engine appointments.AppointmentEngine,
			notifier appointments.FailureNotifier,
			cfg config.Config,
			logger *slog.Logger,
		) appointments.AppointmentUseCase {
			return appointments.NewAppointmentUseCase(dealers, engine, notifier, cfg.Booking, logger)
		},
	),
)
