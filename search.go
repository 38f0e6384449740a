package newsharvest

import "context"

// SearchResult holds metadata for one article discovered through a search
// backend. Metadata only; article content comes from the extraction
// pipeline.
type SearchResult struct {
	Title       string
	Description string
	URL         string
	Source      string
	PublishedAt string
}

// SearchClient discovers article URLs from an external search backend.
type SearchClient interface {
	// Search returns up to limit results for the query, following
	// pagination as needed.
	Search(ctx context.Context, query string, limit int) ([]SearchResult, error)
}

// URLLister discovers article URLs from a structured site index such as a
// news sitemap.
type URLLister interface {
	// ListURLs returns the article URLs advertised by the index at indexURL.
	ListURLs(ctx context.Context, indexURL string) ([]string, error)
}
