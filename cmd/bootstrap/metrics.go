package bootstrap

import (
	"appointment-gateway/internal/pkg/config"
	"appointment-gateway/internal/pkg/metrics"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		NewMetrics,
	),
)

// NewMetrics returns nil when metrics are disabled; every consumer accepts a nil *Metrics.
func NewMetrics(cfg config.Config) *metrics.Metrics {
	if !cfg.Metrics.Enabled {
		return nil
	}
	return metrics.New(cfg.Metrics.ServiceName, nil)
}
