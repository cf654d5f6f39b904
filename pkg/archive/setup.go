package archive

import (
	"net/http"
	"time"
)

// Logger defines the interface for logging operations within the archive client.
// This interface allows for dependency injection of any compatible logger implementation.
//
//go:generate mockgen -source=setup.go -destination=mock_logger.go -package=archive
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
	Fatal(msg string, err error, fields ...map[string]interface{})
}

// Observer receives one notification per archive request. Implementations
// typically record metrics; the client works fine without one.
type Observer interface {
	ObserveRequest(route, method string, status int, duration time.Duration, err error)
}

// Client talks to the archive's REST endpoint.
type Client struct {
	baseURL    string
	username   string
	password   string
	httpClient *http.Client
	logger     Logger
	observer   Observer
}

// NewClient creates a new archive client from configuration. The observer
// may be nil.
func NewClient(cfg Config, logger Logger, observer Observer) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Info("archive client configured", nil, map[string]interface{}{
		"base_url": cfg.BaseURL,
		"auth":     cfg.Username != "",
	})

	return &Client{
		baseURL:    cfg.BaseURL,
		username:   cfg.Username,
		password:   cfg.Password,
		httpClient: &http.Client{Timeout: time.Duration(cfg.HTTPTimeoutS) * time.Second},
		logger:     logger,
		observer:   observer,
	}, nil
}

func (c *Client) observe(route, method string, status int, started time.Time, err error) {
	if c.observer == nil {
		return
	}
	c.observer.ObserveRequest(route, method, status, time.Since(started), err)
}
