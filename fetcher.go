package newsharvest

import "context"

// Fetcher retrieves raw HTML from URLs.
// Network concerns (timeouts, headers, TLS) belong to implementations;
// the extraction pipeline only sees the returned document.
type Fetcher interface {
	// Fetch retrieves the HTML content of the URL.
	// The context controls timeout and cancellation.
	// Returns an ENOTHTML-coded error for non-HTML responses.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until a request to the domain is allowed.
	Wait(ctx context.Context, domain string) error
}
