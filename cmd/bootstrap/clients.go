package bootstrap

import (
	"log/slog"

	"appointment-gateway/internal/infra/dealerclient"
	"appointment-gateway/internal/infra/engineclient"
	"appointment-gateway/internal/infra/httpclient"
	"appointment-gateway/internal/infra/mailingclient"
	"appointment-gateway/internal/pkg/config"
	"appointment-gateway/internal/pkg/metrics"
	"appointment-gateway/internal/usecase/appointments"
	"appointment-gateway/internal/usecase/slots"

	"go.uber.org/fx"
)

var ClientModule = fx.Module("clients",
	fx.Provide(
		fx.Annotate(
			NewDealerClient,
			fx.As(new(slots.DealerLocator)),
			fx.As(new(appointments.DealerDirectory)),
		),
		fx.Annotate(
			NewEngineClient,
			fx.As(new(slots.AvailabilityEngine)),
			fx.As(new(appointments.AppointmentEngine)),
		),
		fx.Annotate(
			NewMailingClient,
			fx.As(new(appointments.Mailer)),
		),
	),
)

func NewDealerClient(cfg config.Config, m *metrics.Metrics, logger *slog.Logger) *dealerclient.Client {
	return dealerclient.NewClient(httpclient.New(httpclient.Options{
		Service: dealerclient.ServiceName,
		BaseURL: cfg.Upstream.DealerServiceURL,
		Timeout: cfg.Upstream.Timeout,
		Stage:   cfg.Server.Stage,
		Region:  cfg.Server.Region,
	}, m, logger))
}

func NewEngineClient(cfg config.Config, m *metrics.Metrics, logger *slog.Logger) *engineclient.Client {
	return engineclient.NewClient(httpclient.New(httpclient.Options{
		Service: engineclient.ServiceName,
		BaseURL: cfg.Upstream.AppointmentEngineURL,
		Timeout: cfg.Upstream.Timeout,
		Stage:   cfg.Server.Stage,
		Region:  cfg.Server.Region,
	}, m, logger))
}

func NewMailingClient(cfg config.Config, m *metrics.Metrics, logger *slog.Logger) *mailingclient.Client {
	return mailingclient.NewClient(httpclient.New(httpclient.Options{
		Service: mailingclient.ServiceName,
		BaseURL: cfg.Mailing.ServiceURL,
		Timeout: cfg.Upstream.Timeout,
		Stage:   cfg.Server.Stage,
		Region:  cfg.Mailing.Region,
	}, m, logger))
}
