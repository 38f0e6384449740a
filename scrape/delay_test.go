package scrape_test

import (
	"context"
	"testing"
	"time"

	"newsharvest/scrape"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomDelay(t *testing.T) {
	t.Parallel()

	t.Run("sleeps at least the minimum", func(t *testing.T) {
		t.Parallel()

		d := scrape.NewRandomDelay(20*time.Millisecond, 40*time.Millisecond)

		start := time.Now()
		err := d.Sleep(context.Background())
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.GreaterOrEqual(t, elapsed, 20*time.Millisecond)
	})

	t.Run("returns when context is canceled", func(t *testing.T) {
		t.Parallel()

		d := scrape.NewRandomDelay(time.Hour, 2*time.Hour)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := d.Sleep(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestNoDelay(t *testing.T) {
	t.Parallel()

	t.Run("does not wait", func(t *testing.T) {
		t.Parallel()

		start := time.Now()
		err := scrape.NoDelay{}.Sleep(context.Background())

		require.NoError(t, err)
		assert.Less(t, time.Since(start), 10*time.Millisecond)
	})

	t.Run("still honors cancellation", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.ErrorIs(t, scrape.NoDelay{}.Sleep(ctx), context.Canceled)
	})
}
