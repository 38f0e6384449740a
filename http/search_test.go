package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"newsharvest"
	nhhttp "newsharvest/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func searchPage(links []string, next string) map[string]any {
	results := make([]map[string]any, 0, len(links))
	for _, link := range links {
		results = append(results, map[string]any{
			"document": map[string]any{
				"derivedStructData": map[string]any{
					"title":       "Title for " + link,
					"link":        link,
					"displayLink": "example.com",
					"snippets":    []map[string]any{{"snippet": "snippet text"}},
					"pagemap": map[string]any{
						"metatags": []map[string]string{{"article:published_time": "2024-05-01T10:00:00Z"}},
					},
				},
			},
		})
	}
	return map[string]any{"results": results, "nextPageToken": next}
}

func TestSearchClient_Search(t *testing.T) {
	t.Parallel()

	t.Run("follows pagination up to the limit", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var req struct {
				PageToken string `json:"pageToken"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

			var page map[string]any
			if req.PageToken == "" {
				page = searchPage([]string{"https://example.com/a", "https://example.com/b"}, "page2")
			} else {
				page = searchPage([]string{"https://example.com/c"}, "")
			}
			require.NoError(t, json.NewEncoder(w).Encode(page))
		}))
		defer srv.Close()

		client := nhhttp.NewSearchClient("projects/p/servingConfigs/default", "key",
			nhhttp.WithSearchEndpoint(srv.URL),
			nhhttp.WithSearchRetryDelays(nil),
		)

		results, err := client.Search(context.Background(), "warehouse news", 3)

		require.NoError(t, err)
		require.Len(t, results, 3)
		assert.Equal(t, "https://example.com/a", results[0].URL)
		assert.Equal(t, "https://example.com/c", results[2].URL)
		assert.Equal(t, "snippet text", results[0].Description)
		assert.Equal(t, "2024-05-01T10:00:00Z", results[0].PublishedAt)
	})

	t.Run("retries failed requests", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int64
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) == 1 {
				http.Error(w, "flaky", http.StatusInternalServerError)
				return
			}
			require.NoError(t, json.NewEncoder(w).Encode(searchPage([]string{"https://example.com/a"}, "")))
		}))
		defer srv.Close()

		client := nhhttp.NewSearchClient("projects/p/servingConfigs/default", "key",
			nhhttp.WithSearchEndpoint(srv.URL),
			nhhttp.WithSearchRetryDelays([]time.Duration{0}),
		)

		results, err := client.Search(context.Background(), "warehouse news", 1)

		require.NoError(t, err)
		assert.Len(t, results, 1)
		assert.EqualValues(t, 2, calls.Load())
	})

	t.Run("gives up after exhausting retries", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "down", http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		client := nhhttp.NewSearchClient("projects/p/servingConfigs/default", "key",
			nhhttp.WithSearchEndpoint(srv.URL),
			nhhttp.WithSearchRetryDelays([]time.Duration{0, 0}),
		)

		_, err := client.Search(context.Background(), "warehouse news", 1)

		require.Error(t, err)
		assert.Equal(t, newsharvest.EUNAVAILABLE, newsharvest.ErrorCode(err))
	})

	t.Run("empty query is invalid", func(t *testing.T) {
		t.Parallel()

		client := nhhttp.NewSearchClient("projects/p/servingConfigs/default", "key")

		_, err := client.Search(context.Background(), "", 5)

		require.Error(t, err)
		assert.Equal(t, newsharvest.EINVALID, newsharvest.ErrorCode(err))
	})
}
