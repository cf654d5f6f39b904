package export

import (
	"fmt"
	"os"
	"strconv"
)

// Config defines the object-storage target for series exports.
type Config struct {
	Endpoint        string // storage endpoint, e.g. "localhost:9000"
	AccessKeyID     string
	SecretAccessKey string
	UseSSL          bool
	BucketName      string
	Region          string // e.g. "us-east-1"

	// Prefix is prepended to every object key, e.g. "exports".
	Prefix string
}

// NewConfig reads the configuration from the environment.
func NewConfig() Config {
	useSSL := false
	if v := os.Getenv("SERIESDESK_EXPORT_USE_SSL"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			useSSL = b
		}
	}
	prefix := os.Getenv("SERIESDESK_EXPORT_PREFIX")
	if prefix == "" {
		prefix = "exports"
	}
	return Config{
		Endpoint:        os.Getenv("SERIESDESK_EXPORT_ENDPOINT"),
		AccessKeyID:     os.Getenv("SERIESDESK_EXPORT_ACCESS_KEY"),
		SecretAccessKey: os.Getenv("SERIESDESK_EXPORT_SECRET_KEY"),
		UseSSL:          useSSL,
		BucketName:      os.Getenv("SERIESDESK_EXPORT_BUCKET"),
		Region:          os.Getenv("SERIESDESK_EXPORT_REGION"),
		Prefix:          prefix,
	}
}

func (c Config) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("export: missing SERIESDESK_EXPORT_ENDPOINT")
	}
	if c.BucketName == "" {
		return fmt.Errorf("export: missing SERIESDESK_EXPORT_BUCKET")
	}
	return nil
}
