package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"newsharvest"
)

// Search client defaults, matching the upstream API's limits.
const (
	searchPageSize        = 25
	maxPageAttempts       = 10
	defaultSearchEndpoint = "https://discoveryengine.googleapis.com/v1"
)

// DefaultSearchRetryDelays returns the backoff delays between failed
// search requests: five retries of 5s each.
func DefaultSearchRetryDelays() []time.Duration {
	return []time.Duration{
		5 * time.Second, 5 * time.Second, 5 * time.Second,
		5 * time.Second, 5 * time.Second,
	}
}

// Ensure SearchClient implements newsharvest.SearchClient at compile time.
var _ newsharvest.SearchClient = (*SearchClient)(nil)

// SearchClient queries a Discovery Engine style search backend for article
// metadata. It only discovers URLs and head metadata; article content
// always comes from the extraction pipeline.
type SearchClient struct {
	client        *http.Client
	endpoint      string
	servingConfig string
	apiKey        string
	retryDelays   []time.Duration
}

// SearchOption configures a SearchClient.
type SearchOption func(*SearchClient)

// WithSearchEndpoint overrides the API endpoint, mainly for tests.
func WithSearchEndpoint(endpoint string) SearchOption {
	return func(c *SearchClient) {
		c.endpoint = endpoint
	}
}

// WithSearchRetryDelays overrides the retry backoff schedule.
func WithSearchRetryDelays(delays []time.Duration) SearchOption {
	return func(c *SearchClient) {
		c.retryDelays = delays
	}
}

// WithSearchHTTPClient overrides the underlying HTTP client.
func WithSearchHTTPClient(client *http.Client) SearchOption {
	return func(c *SearchClient) {
		c.client = client
	}
}

// NewSearchClient creates a SearchClient for the given serving config path
// (projects/<p>/locations/<l>/collections/default_collection/engines/<e>/
// servingConfigs/default_config) authenticated with the API key.
func NewSearchClient(servingConfig, apiKey string, opts ...SearchOption) *SearchClient {
	c := &SearchClient{
		client:        http.DefaultClient,
		endpoint:      defaultSearchEndpoint,
		servingConfig: servingConfig,
		apiKey:        apiKey,
		retryDelays:   DefaultSearchRetryDelays(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type searchRequest struct {
	Query     string `json:"query"`
	PageSize  int    `json:"pageSize"`
	PageToken string `json:"pageToken,omitempty"`
}

type searchSnippet struct {
	Snippet string `json:"snippet"`
}

type searchDocumentData struct {
	Title       string          `json:"title"`
	Link        string          `json:"link"`
	DisplayLink string          `json:"displayLink"`
	Snippets    []searchSnippet `json:"snippets"`
	Pagemap     struct {
		Metatags []map[string]string `json:"metatags"`
	} `json:"pagemap"`
}

type searchResponse struct {
	Results []struct {
		Document struct {
			DerivedStructData searchDocumentData `json:"derivedStructData"`
		} `json:"document"`
	} `json:"results"`
	NextPageToken string `json:"nextPageToken"`
}

// Search returns up to limit results for the query, following page tokens
// until the limit is reached, the backend runs out of pages, or the page
// attempt cap is hit.
func (c *SearchClient) Search(ctx context.Context, query string, limit int) ([]newsharvest.SearchResult, error) {
	if query == "" {
		return nil, newsharvest.Errorf(newsharvest.EINVALID, "search query required")
	}
	if limit <= 0 {
		limit = searchPageSize
	}

	var results []newsharvest.SearchResult
	pageToken := ""

	for attempt := 0; attempt < maxPageAttempts && len(results) < limit; attempt++ {
		page, err := c.searchPage(ctx, query, pageToken)
		if err != nil {
			return results, err
		}

		for i := range page.Results {
			dsd := &page.Results[i].Document.DerivedStructData
			if dsd.Link == "" {
				continue
			}
			results = append(results, newsharvest.SearchResult{
				Title:       dsd.Title,
				Description: firstSnippet(dsd.Snippets),
				URL:         dsd.Link,
				Source:      dsd.DisplayLink,
				PublishedAt: publishedTime(dsd.Pagemap.Metatags),
			})
			if len(results) >= limit {
				break
			}
		}

		pageToken = page.NextPageToken
		if pageToken == "" {
			break
		}
	}

	return results, nil
}

// searchPage performs one paged request with retries.
func (c *SearchClient) searchPage(ctx context.Context, query, pageToken string) (*searchResponse, error) {
	var lastErr error
	for attempt := 0; attempt <= len(c.retryDelays); attempt++ {
		resp, err := c.doSearch(ctx, query, pageToken)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if attempt >= len(c.retryDelays) {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.retryDelays[attempt]):
		}
	}
	return nil, newsharvest.Errorf(newsharvest.EUNAVAILABLE, "search failed after retries: %v", lastErr)
}

func (c *SearchClient) doSearch(ctx context.Context, query, pageToken string) (*searchResponse, error) {
	body, err := json.Marshal(searchRequest{
		Query:     query,
		PageSize:  searchPageSize,
		PageToken: pageToken,
	})
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/%s:searchLite?key=%s", c.endpoint, c.servingConfig, url.QueryEscape(c.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("search HTTP %d: %s", resp.StatusCode, data)
	}

	var decoded searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decoding search response: %w", err)
	}
	return &decoded, nil
}

func firstSnippet(snippets []searchSnippet) string {
	if len(snippets) == 0 {
		return ""
	}
	return snippets[0].Snippet
}

func publishedTime(metatags []map[string]string) string {
	if len(metatags) == 0 {
		return ""
	}
	return metatags[0]["article:published_time"]
}
