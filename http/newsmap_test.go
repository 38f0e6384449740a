package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	nhhttp "newsharvest/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewsmapService_ListURLs(t *testing.T) {
	t.Parallel()

	t.Run("lists urlset entries in document order", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url><loc>https://example.com/story-1</loc></url>
  <url><loc>https://example.com/story-2</loc></url>
  <url><loc>https://example.com/story-1</loc></url>
</urlset>`))
		}))
		defer srv.Close()

		svc := nhhttp.NewNewsmapService(nil)
		urls, err := svc.ListURLs(context.Background(), srv.URL+"/news-sitemap.xml")

		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://example.com/story-1",
			"https://example.com/story-2",
		}, urls)
	})

	t.Run("follows sitemap index entries", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		srv := httptest.NewServer(mux)
		defer srv.Close()

		mux.HandleFunc("/index.xml", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<sitemapindex>
  <sitemap><loc>` + srv.URL + `/part1.xml</loc></sitemap>
  <sitemap><loc>` + srv.URL + `/part2.xml</loc></sitemap>
</sitemapindex>`))
		})
		mux.HandleFunc("/part1.xml", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<urlset><url><loc>https://example.com/a</loc></url></urlset>`))
		})
		mux.HandleFunc("/part2.xml", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<urlset><url><loc>https://example.com/b</loc></url></urlset>`))
		})

		svc := nhhttp.NewNewsmapService(nil)
		urls, err := svc.ListURLs(context.Background(), srv.URL+"/index.xml")

		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/a", "https://example.com/b"}, urls)
	})

	t.Run("unexpected root element is an error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<rss version="2.0"></rss>`))
		}))
		defer srv.Close()

		svc := nhhttp.NewNewsmapService(nil)
		_, err := svc.ListURLs(context.Background(), srv.URL)

		require.Error(t, err)
	})
}
