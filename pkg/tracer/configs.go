package tracer

import (
	"os"
	"strconv"
)

type Config struct {
	// ServiceName identifies this process in exported traces.
	ServiceName string

	// AppEnv tags spans with the deployment environment.
	AppEnv string

	// EnableExport switches the OTLP/HTTP exporter on. The exporter reads
	// its endpoint from the standard OTEL_EXPORTER_OTLP_* variables.
	EnableExport bool
}

// NewConfig reads the configuration from the environment.
func NewConfig() Config {
	export := false
	if v := os.Getenv("SERIESDESK_TRACE_EXPORT"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			export = b
		}
	}
	service := os.Getenv("SERIESDESK_SERVICE_NAME")
	if service == "" {
		service = "seriesdesk"
	}
	env := os.Getenv("SERIESDESK_APP_ENV")
	if env == "" {
		env = "development"
	}
	return Config{
		ServiceName:  service,
		AppEnv:       env,
		EnableExport: export,
	}
}
