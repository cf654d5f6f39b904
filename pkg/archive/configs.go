package archive

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	// BaseURL of the archive's REST endpoint, e.g. "http://localhost:8042".
	BaseURL string

	// Optional HTTP basic auth credentials.
	Username string
	Password string

	// HTTPTimeoutS is the per-request timeout in seconds (default 30).
	HTTPTimeoutS int
}

// NewConfig reads the client configuration from the environment.
func NewConfig() Config {
	timeout := 30
	if v := os.Getenv("SERIESDESK_ARCHIVE_HTTP_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			timeout = n
		}
	}
	return Config{
		BaseURL:      strings.TrimRight(os.Getenv("SERIESDESK_ARCHIVE_URL"), "/"),
		Username:     os.Getenv("SERIESDESK_ARCHIVE_USERNAME"),
		Password:     os.Getenv("SERIESDESK_ARCHIVE_PASSWORD"),
		HTTPTimeoutS: timeout,
	}
}

func (c Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("archive: missing SERIESDESK_ARCHIVE_URL")
	}
	return nil
}
