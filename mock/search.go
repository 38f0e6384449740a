package mock

import (
	"context"

	"newsharvest"
)

var _ newsharvest.SearchClient = (*SearchClient)(nil)

// SearchClient is a mock implementation of newsharvest.SearchClient.
type SearchClient struct {
	SearchFn func(ctx context.Context, query string, limit int) ([]newsharvest.SearchResult, error)
}

func (c *SearchClient) Search(ctx context.Context, query string, limit int) ([]newsharvest.SearchResult, error) {
	return c.SearchFn(ctx, query, limit)
}

var _ newsharvest.URLLister = (*URLLister)(nil)

// URLLister is a mock implementation of newsharvest.URLLister.
type URLLister struct {
	ListURLsFn func(ctx context.Context, indexURL string) ([]string, error)
}

func (l *URLLister) ListURLs(ctx context.Context, indexURL string) ([]string, error) {
	return l.ListURLsFn(ctx, indexURL)
}
