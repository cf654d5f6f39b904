package metastore

import (
	"fmt"
	"os"
	"strconv"
)

// DefaultKey is the metadata key holding the custom-tags document.
const DefaultKey = "seriesdesk-tags"

type Config struct {
	// Key is the metadata key the document lives under.
	Key string

	// ProbeIndex controls whether the first read of a series consults the
	// metadata key index before attempting the direct key fetch. Some
	// deployments 404 the index route itself; switch this off there.
	ProbeIndex bool

	// ConflictRetries caps the re-read/re-merge attempts WriteWithRetry
	// makes after a conditional write is rejected.
	ConflictRetries int
}

// NewConfig reads the configuration from the environment.
func NewConfig() Config {
	probe := true
	if v := os.Getenv("SERIESDESK_METADATA_PROBE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			probe = b
		}
	}
	retries := 3
	if v := os.Getenv("SERIESDESK_METADATA_CONFLICT_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			retries = n
		}
	}
	key := os.Getenv("SERIESDESK_METADATA_KEY")
	if key == "" {
		key = DefaultKey
	}
	return Config{
		Key:             key,
		ProbeIndex:      probe,
		ConflictRetries: retries,
	}
}

func (c Config) Validate() error {
	if c.Key == "" {
		return fmt.Errorf("metastore: metadata key must not be empty")
	}
	return nil
}
