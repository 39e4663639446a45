package scrape_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/docgrab"
	"github.com/fwojciec/docgrab/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDelayLimiter(t *testing.T) {
	t.Parallel()

	t.Run("implements docgrab.Limiter interface", func(t *testing.T) {
		t.Parallel()
		var _ docgrab.Limiter = scrape.NewDelayLimiter(time.Second)
	})

	t.Run("first wait is immediate", func(t *testing.T) {
		t.Parallel()

		limiter := scrape.NewDelayLimiter(time.Second)

		start := time.Now()
		err := limiter.Wait(context.Background())
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.Less(t, elapsed, 50*time.Millisecond, "first wait should be immediate")
	})

	t.Run("spaces subsequent waits by the interval", func(t *testing.T) {
		t.Parallel()

		limiter := scrape.NewDelayLimiter(100 * time.Millisecond)

		err := limiter.Wait(context.Background())
		require.NoError(t, err)

		start := time.Now()
		err = limiter.Wait(context.Background())
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.GreaterOrEqual(t, elapsed, 80*time.Millisecond, "should wait for the interval")
	})

	t.Run("zero interval disables the delay", func(t *testing.T) {
		t.Parallel()

		limiter := scrape.NewDelayLimiter(0)

		start := time.Now()
		for i := 0; i < 10; i++ {
			require.NoError(t, limiter.Wait(context.Background()))
		}
		assert.Less(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		limiter := scrape.NewDelayLimiter(time.Second)

		// First wait consumes the token.
		require.NoError(t, limiter.Wait(context.Background()))

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		err := limiter.Wait(ctx)
		require.Error(t, err)
	})
}
