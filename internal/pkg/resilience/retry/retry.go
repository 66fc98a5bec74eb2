// Package retry wraps avast/retry-go behind a small interface with functional
// options. Delays grow exponentially between attempts.
//
//	r := retry.New(retry.WithAttempts(5), retry.WithDelay(500*time.Millisecond))
//	err := r.Execute(ctx, func() error { return dial() })
package retry

import (
	"context"
	"time"

	retry "github.com/avast/retry-go/v4"
)

// Retry runs an operation until it succeeds, the attempts are exhausted or
// ctx is done.
type Retry interface {
	// Execute runs operation with the configured policy. The operation must
	// be safe to call more than once.
	Execute(ctx context.Context, operation func() error) error
}

type config struct {
	attempts    uint
	delay       time.Duration
	maxDelay    time.Duration
	lastErrOnly bool
	retryIf     func(error) bool
	onRetry     func(attempt uint, err error)
}

// Option configures a Retry.
type Option func(*config)

type retrier struct {
	cfg config
}

var _ Retry = (*retrier)(nil)

// New returns a Retry configured with opts. Defaults: 3 attempts, 1s base
// delay capped at 5s, only the last error returned, every error retried.
func New(opts ...Option) Retry {
	cfg := config{
		attempts:    3,
		delay:       1 * time.Second,
		maxDelay:    5 * time.Second,
		lastErrOnly: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &retrier{
		cfg: cfg,
	}
}

func (r *retrier) Execute(ctx context.Context, operation func() error) error {
	options := []retry.Option{
		retry.Attempts(r.cfg.attempts),
		retry.Delay(r.cfg.delay),
		retry.MaxDelay(r.cfg.maxDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(r.cfg.lastErrOnly),
		retry.Context(ctx),
	}
	if r.cfg.retryIf != nil {
		options = append(options, retry.RetryIf(r.cfg.retryIf))
	}
	if r.cfg.onRetry != nil {
		options = append(options, retry.OnRetry(r.cfg.onRetry))
	}

	return retry.Do(operation, options...)
}

// WithAttempts sets the total number of attempts, the first one included.
func WithAttempts(n uint) Option {
	return func(c *config) {
		c.attempts = n
	}
}

// WithDelay sets the delay before the first retry.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithMaxDelay caps the delay between attempts.
func WithMaxDelay(d time.Duration) Option {
	return func(c *config) {
		c.maxDelay = d
	}
}

// WithLastErrorOnly controls whether only the final error is returned or all
// attempt errors are joined.
func WithLastErrorOnly(b bool) Option {
	return func(c *config) {
		c.lastErrOnly = b
	}
}

// WithRetryIf stops retrying as soon as fn reports an error as permanent.
func WithRetryIf(fn func(error) bool) Option {
	return func(c *config) {
		c.retryIf = fn
	}
}

// WithOnRetry registers a hook called after every failed attempt that will
// be retried. Attempts are numbered from zero.
func WithOnRetry(fn func(attempt uint, err error)) Option {
	return func(c *config) {
		c.onRetry = fn
	}
}

// Unrecoverable marks err so Execute returns it without further attempts.
func Unrecoverable(err error) error {
	return retry.Unrecoverable(err)
}
