package logger

import "os"

const (
	Debug   = "debug"
	Info    = "info"
	Warning = "warning"
	Error   = "error"
)

type Config struct {
	// Log level: debug, info, warning or error. Anything else -> info.
	Level string `yaml:"level" envconfig:"SERIESDESK_LOG_LEVEL"`

	// ServiceName is attached to every entry as the "service" field.
	ServiceName string `yaml:"service_name" envconfig:"SERIESDESK_SERVICE_NAME"`
}

// NewConfig reads the configuration from the environment.
func NewConfig() Config {
	return Config{
		Level:       getenvDefault("SERIESDESK_LOG_LEVEL", Info),
		ServiceName: getenvDefault("SERIESDESK_SERVICE_NAME", "seriesdesk"),
	}
}

func getenvDefault(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
