package config

import "time"

// HTTP client configuration constants
const (
	APIRequestTimeout         = 30 * time.Second
	APIRequestMaxIdleConns    = 10
	APIRequestIdleConnTimeout = 90 * time.Second
	APIRequestUserAgent       = "clashberry/1.0"
)

// HTTPClientConfig defines how the War Data API client talks to the backend.
// Requests are never retried; the caller decides when to refresh again.
type HTTPClientConfig struct {
	Timeout         time.Duration
	MaxIdleConns    int
	IdleConnTimeout time.Duration
	UserAgent       string
}

// DefaultHTTPClientConfig provides sensible defaults
var DefaultHTTPClientConfig = HTTPClientConfig{
	Timeout:         APIRequestTimeout,
	MaxIdleConns:    APIRequestMaxIdleConns,
	IdleConnTimeout: APIRequestIdleConnTimeout,
	UserAgent:       APIRequestUserAgent,
}

// WithTimeout returns a copy of the config using the given timeout.
// Non-positive values keep the current timeout.
func (c HTTPClientConfig) WithTimeout(timeout time.Duration) HTTPClientConfig {
	if timeout > 0 {
		c.Timeout = timeout
	}
	return c
}
