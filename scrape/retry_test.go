package scrape_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"newsharvest/scrape"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchWithRetryDelays(t *testing.T) {
	t.Parallel()

	t.Run("returns on first success", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(ctx context.Context, url string) (string, error) {
			calls++
			return "<html>ok</html>", nil
		}

		html, err := scrape.FetchWithRetryDelays(context.Background(), "https://example.com", fetch, nil, []time.Duration{0, 0, 0})

		require.NoError(t, err)
		assert.Equal(t, "<html>ok</html>", html)
		assert.Equal(t, 1, calls)
	})

	t.Run("retries until success", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(ctx context.Context, url string) (string, error) {
			calls++
			if calls < 3 {
				return "", errors.New("temporary failure")
			}
			return "<html>ok</html>", nil
		}

		html, err := scrape.FetchWithRetryDelays(context.Background(), "https://example.com", fetch, nil, []time.Duration{0, 0, 0})

		require.NoError(t, err)
		assert.Equal(t, "<html>ok</html>", html)
		assert.Equal(t, 3, calls)
	})

	t.Run("returns last error after exhausting attempts", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(ctx context.Context, url string) (string, error) {
			calls++
			return "", errors.New("persistent failure")
		}

		_, err := scrape.FetchWithRetryDelays(context.Background(), "https://example.com", fetch, nil, []time.Duration{0, 0})

		require.Error(t, err)
		assert.Equal(t, "persistent failure", err.Error())
		assert.Equal(t, 3, calls) // 1 initial + 2 retries
	})

	t.Run("stops when context is canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		fetch := func(ctx context.Context, url string) (string, error) {
			cancel()
			return "", errors.New("failure")
		}

		_, err := scrape.FetchWithRetryDelays(ctx, "https://example.com", fetch, nil, []time.Duration{time.Hour})

		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("logs retries", func(t *testing.T) {
		t.Parallel()

		var logged int
		logger := func(format string, args ...any) { logged++ }
		calls := 0
		fetch := func(ctx context.Context, url string) (string, error) {
			calls++
			if calls < 2 {
				return "", errors.New("failure")
			}
			return "ok", nil
		}

		_, err := scrape.FetchWithRetryDelays(context.Background(), "https://example.com", fetch, logger, []time.Duration{0})

		require.NoError(t, err)
		assert.Equal(t, 1, logged)
	})
}
