// Package http builds retrying HTTP clients on hashicorp/go-retryablehttp,
// with retry diagnostics sent to the application logger.
package http

import (
	"context"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/gabapcia/palletsapi/internal/pkg/logger"
)

type config struct {
	timeout      time.Duration
	retryWaitMin time.Duration
	retryWaitMax time.Duration
	retryMax     int
	userAgent    string
}

// Option configures the client built by NewClient.
type Option func(*config)

// NewClient returns a retryablehttp.Client. Defaults: 5s per request, 1s to
// 5s between retries, 2 retries, no User-Agent override.
func NewClient(opts ...Option) *retryablehttp.Client {
	cfg := config{
		timeout:      5 * time.Second,
		retryWaitMin: 1 * time.Second,
		retryWaitMax: 5 * time.Second,
		retryMax:     2,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	client := retryablehttp.NewClient()
	client.Logger = leveledLogger{}
	client.HTTPClient.Timeout = cfg.timeout
	client.RetryWaitMin = cfg.retryWaitMin
	client.RetryWaitMax = cfg.retryWaitMax
	client.RetryMax = cfg.retryMax

	if cfg.userAgent != "" {
		userAgent := cfg.userAgent
		client.RequestLogHook = func(_ retryablehttp.Logger, req *http.Request, _ int) {
			req.Header.Set("User-Agent", userAgent)
		}
	}

	return client
}

// WithTimeout sets the timeout of a single request attempt.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// WithRetryWaitMin sets the minimum delay between attempts.
func WithRetryWaitMin(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMin = d
	}
}

// WithRetryWaitMax sets the maximum delay between attempts.
func WithRetryWaitMax(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMax = d
	}
}

// WithRetryMax sets how many times a failed request is retried.
func WithRetryMax(n int) Option {
	return func(c *config) {
		c.retryMax = n
	}
}

// WithUserAgent sets the User-Agent header of every attempt.
func WithUserAgent(ua string) Option {
	return func(c *config) {
		c.userAgent = ua
	}
}

// leveledLogger routes retryablehttp diagnostics to the application logger.
// Request-level chatter is kept at debug.
type leveledLogger struct{}

var _ retryablehttp.LeveledLogger = leveledLogger{}

func (leveledLogger) Error(msg string, kv ...any) {
	logger.Error(context.Background(), msg, kv...)
}

func (leveledLogger) Warn(msg string, kv ...any) {
	logger.Warn(context.Background(), msg, kv...)
}

func (leveledLogger) Info(msg string, kv ...any) {
	logger.Debug(context.Background(), msg, kv...)
}

func (leveledLogger) Debug(msg string, kv ...any) {
	logger.Debug(context.Background(), msg, kv...)
}
