package collection

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	// MaxParallel bounds how many series are aggregated concurrently during
	// one load. Unbounded fan-out can overwhelm smaller archive deployments
	// on large collections.
	MaxParallel int
}

// NewConfig reads the loader configuration from the environment.
func NewConfig() Config {
	parallel := 8
	if v := os.Getenv("SERIESDESK_LOAD_PARALLELISM"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			parallel = n
		}
	}
	return Config{MaxParallel: parallel}
}

func (c Config) Validate() error {
	if c.MaxParallel < 1 {
		return fmt.Errorf("collection: MaxParallel must be at least 1")
	}
	return nil
}
