package metrics

import (
	"os"
	"strconv"
)

// Default port for the metrics server if none is specified.
const DefaultMetricsAddress = ":9090"

// Config defines the configuration for the Prometheus metrics server.
type Config struct {
	// Address the metrics HTTP server listens on, e.g. ":9090" or
	// "127.0.0.1:9100".
	Address string `yaml:"address" envconfig:"SERIESDESK_METRICS_ADDRESS"`

	// EnableDefaultCollectors controls whether the built-in Go runtime and
	// process collectors are registered alongside the domain instruments.
	EnableDefaultCollectors bool `yaml:"enable_default_collectors" envconfig:"SERIESDESK_METRICS_DEFAULT_COLLECTORS"`

	// ServiceName is attached as a common "service" label on every metric.
	ServiceName string `yaml:"service_name" envconfig:"SERIESDESK_SERVICE_NAME"`
}

// NewConfig reads the configuration from the environment.
func NewConfig() Config {
	collectors := true
	if v := os.Getenv("SERIESDESK_METRICS_DEFAULT_COLLECTORS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			collectors = b
		}
	}
	address := os.Getenv("SERIESDESK_METRICS_ADDRESS")
	if address == "" {
		address = DefaultMetricsAddress
	}
	service := os.Getenv("SERIESDESK_SERVICE_NAME")
	if service == "" {
		service = "seriesdesk"
	}
	return Config{
		Address:                 address,
		EnableDefaultCollectors: collectors,
		ServiceName:             service,
	}
}
