package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between stages (port, upstream endpoints, mail addresses)
// - default: Values common across all stages (timeouts, log format, shop identifier)
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	Upstream UpstreamConfig
	Mailing  MailingConfig
	Booking  BookingConfig
	CORS     CORSConfig
	Log      LogConfig
	Metrics  MetricsConfig
}

type ServerConfig struct {
	Port   string `envconfig:"PORT" required:"true"`
	Stage  string `envconfig:"STAGE" required:"true"`
	Region string `envconfig:"REGION" default:"eu-central-1"`
}

type UpstreamConfig struct {
	DealerServiceURL     string        `envconfig:"DEALER_SERVICE_URL" required:"true"`
	AppointmentEngineURL string        `envconfig:"APPOINTMENT_ENGINE_URL" required:"true"`
	Timeout              time.Duration `envconfig:"UPSTREAM_TIMEOUT" default:"10s"`
}

type MailingConfig struct {
	ServiceURL string `envconfig:"MAILING_SERVICE_URL" required:"true"`
	Region     string `envconfig:"MAILING_REGION" default:"eu-west-1"`
	Sender     string `envconfig:"EMAIL_SENDER" required:"true"`
	Receiver   string `envconfig:"EMAIL_RECEIVER" required:"true"`
}

type BookingConfig struct {
	DefaultShopIdentifier string `envconfig:"DEFAULT_SHOP_IDENTIFIER" default:"goodyear"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-Request-ID"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/Berlin"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"3600"` // 1*60*60
}

type MetricsConfig struct {
	Enabled     bool   `envconfig:"METRICS_ENABLED" default:"true"`
	Path        string `envconfig:"METRICS_PATH" default:"/metrics"`
	ServiceName string `envconfig:"METRICS_SERVICE_NAME" default:"appointment_gateway"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:   "8889", // Test port
			Stage:  "test",
			Region: "eu-central-1",
		},
		Upstream: UpstreamConfig{
			DealerServiceURL:     "http://localhost:18081",
			AppointmentEngineURL: "http://localhost:18082",
			Timeout:              2 * time.Second,
		},
		Mailing: MailingConfig{
			ServiceURL: "http://localhost:18083",
			Region:     "eu-west-1",
			Sender:     "noreply@example.com",
			Receiver:   "servicedesk@example.com",
		},
		Booking: BookingConfig{
			DefaultShopIdentifier: "goodyear",
		},
		CORS: CORSConfig{
			AllowOrigins:  []string{"http://localhost:3000"},
			AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
			MaxAge:        time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Europe/Berlin",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 3600,
		},
		Metrics: MetricsConfig{
			Enabled:     false,
			Path:        "/metrics",
			ServiceName: "appointment_gateway_test",
		},
	}
}
