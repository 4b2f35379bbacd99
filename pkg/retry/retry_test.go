package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/niksmo/storefront/pkg/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errTemporary = errors.New("temporary")

func TestDoWithResult(t *testing.T) {
	cfg := retry.RetryConfig{
		MaxAttempts: 3,
		Backoff:     retry.LinearBackoff(time.Millisecond),
	}

	t.Run("SucceedsAfterRetries", func(t *testing.T) {
		var calls int
		v, err := retry.DoWithResult(t.Context(), cfg, func() (int, error) {
			calls++
			if calls < 3 {
				return 0, errTemporary
			}
			return 42, nil
		})
		require.NoError(t, err)
		assert.Equal(t, 42, v)
		assert.Equal(t, 3, calls)
	})

	t.Run("ReturnsLastErrorWhenExhausted", func(t *testing.T) {
		var calls int
		_, err := retry.DoWithResult(t.Context(), cfg, func() (int, error) {
			calls++
			return 0, errTemporary
		})
		assert.ErrorIs(t, err, errTemporary)
		assert.Equal(t, 3, calls)
	})

	t.Run("StopsOnPermanentError", func(t *testing.T) {
		errPermanent := errors.New("permanent")
		c := cfg
		c.ShouldRetry = func(err error) bool { return !errors.Is(err, errPermanent) }

		var calls int
		err := retry.Do(t.Context(), c, func() error {
			calls++
			return errPermanent
		})
		assert.ErrorIs(t, err, errPermanent)
		assert.Equal(t, 1, calls)
	})

	t.Run("CanceledBeforeStart", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		err := retry.Do(ctx, cfg, func() error {
			t.Fatal("must not be called")
			return nil
		})
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("CanceledWhileWaiting", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		c := retry.RetryConfig{
			MaxAttempts: 5,
			Backoff:     retry.LinearBackoff(time.Hour),
		}

		err := retry.Do(ctx, c, func() error {
			cancel()
			return errTemporary
		})
		assert.ErrorIs(t, err, context.Canceled)
		assert.ErrorIs(t, err, errTemporary)
	})

	t.Run("ZeroConfigRunsOnce", func(t *testing.T) {
		var calls int
		_ = retry.Do(t.Context(), retry.RetryConfig{}, func() error {
			calls++
			return errTemporary
		})
		assert.Equal(t, 1, calls)
	})
}

func TestExponentialBackoff(t *testing.T) {
	b := retry.ExponentialBackoff(10 * time.Millisecond)

	for attempt := 1; attempt <= 4; attempt++ {
		base := (1 << attempt) * 10 * time.Millisecond
		got := b(attempt)
		assert.GreaterOrEqual(t, got, base)
		assert.Less(t, got, base+base/2)
	}
}
