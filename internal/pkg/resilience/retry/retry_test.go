package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	retrygo "github.com/avast/retry-go/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fast(opts ...Option) Retry {
	return New(append([]Option{WithDelay(time.Millisecond), WithMaxDelay(5 * time.Millisecond)}, opts...)...)
}

func TestExecute(t *testing.T) {
	t.Run("succeeds first time", func(t *testing.T) {
		calls := 0
		err := New().Execute(t.Context(), func() error {
			calls++
			return nil
		})

		assert.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("retries until success", func(t *testing.T) {
		calls := 0
		err := fast(WithAttempts(3)).Execute(t.Context(), func() error {
			calls++
			if calls < 2 {
				return errors.New("temporary error")
			}
			return nil
		})

		assert.NoError(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("returns the last error when exhausted", func(t *testing.T) {
		calls := 0
		expectedErr := errors.New("persistent error")

		err := fast(WithAttempts(3)).Execute(t.Context(), func() error {
			calls++
			return expectedErr
		})

		assert.ErrorIs(t, err, expectedErr)
		assert.Equal(t, 3, calls)
	})

	t.Run("collects every error", func(t *testing.T) {
		err := fast(WithAttempts(3), WithLastErrorOnly(false)).Execute(t.Context(), func() error {
			return errors.New("persistent error")
		})

		var all retrygo.Error
		require.ErrorAs(t, err, &all)
		assert.Len(t, all, 3)
	})

	t.Run("stops on permanent errors", func(t *testing.T) {
		calls := 0
		permanent := errors.New("permanent")

		err := fast(WithAttempts(5), WithRetryIf(func(err error) bool {
			return !errors.Is(err, permanent)
		})).Execute(t.Context(), func() error {
			calls++
			return permanent
		})

		assert.ErrorIs(t, err, permanent)
		assert.Equal(t, 1, calls)
	})

	t.Run("reports retried attempts", func(t *testing.T) {
		var attempts []uint
		calls := 0

		err := fast(WithAttempts(5), WithOnRetry(func(n uint, _ error) {
			attempts = append(attempts, n)
		})).Execute(t.Context(), func() error {
			calls++
			if calls < 3 {
				return errors.New("temporary error")
			}
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, []uint{0, 1}, attempts)
	})

	t.Run("context cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		go func() {
			time.Sleep(10 * time.Millisecond)
			cancel()
		}()

		calls := 0
		err := New(WithAttempts(5), WithDelay(time.Second)).Execute(ctx, func() error {
			calls++
			return errors.New("error that would normally trigger retry")
		})

		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, calls)
	})
}

func TestOptions(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		r, ok := New().(*retrier)
		require.True(t, ok)

		assert.Equal(t, uint(3), r.cfg.attempts)
		assert.Equal(t, time.Second, r.cfg.delay)
		assert.Equal(t, 5*time.Second, r.cfg.maxDelay)
		assert.True(t, r.cfg.lastErrOnly)
		assert.Nil(t, r.cfg.retryIf)
	})

	t.Run("custom", func(t *testing.T) {
		r, ok := New(
			WithAttempts(5),
			WithDelay(2*time.Second),
			WithMaxDelay(10*time.Second),
			WithLastErrorOnly(false),
		).(*retrier)
		require.True(t, ok)

		assert.Equal(t, uint(5), r.cfg.attempts)
		assert.Equal(t, 2*time.Second, r.cfg.delay)
		assert.Equal(t, 10*time.Second, r.cfg.maxDelay)
		assert.False(t, r.cfg.lastErrOnly)
	})
}

func TestUnrecoverable(t *testing.T) {
	calls := 0
	permanent := errors.New("permanent")

	err := fast(WithAttempts(5)).Execute(t.Context(), func() error {
		calls++
		return Unrecoverable(permanent)
	})

	assert.ErrorIs(t, err, permanent)
	assert.Equal(t, 1, calls)
}
