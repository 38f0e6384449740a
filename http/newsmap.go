package http

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/beevik/etree"
	"newsharvest"
)

// maxSitemapDepth bounds nested sitemap index recursion.
const maxSitemapDepth = 3

// Ensure NewsmapService implements newsharvest.URLLister at compile time.
var _ newsharvest.URLLister = (*NewsmapService)(nil)

// NewsmapService lists article URLs from a news sitemap or sitemap index.
// It feeds the batch driver when no search backend is configured.
type NewsmapService struct {
	client *http.Client
}

// NewNewsmapService creates a new NewsmapService with the given HTTP
// client. If client is nil, http.DefaultClient is used.
func NewNewsmapService(client *http.Client) *NewsmapService {
	if client == nil {
		client = http.DefaultClient
	}
	return &NewsmapService{client: client}
}

// ListURLs returns the article URLs advertised by the sitemap at indexURL.
// Sitemap indexes are followed to a bounded depth; URLs are deduplicated
// in document order.
func (s *NewsmapService) ListURLs(ctx context.Context, indexURL string) ([]string, error) {
	seen := make(map[string]bool)
	var urls []string

	var walk func(sitemapURL string, depth int) error
	walk = func(sitemapURL string, depth int) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if depth > maxSitemapDepth {
			return nil
		}

		doc, err := s.fetchXML(ctx, sitemapURL)
		if err != nil {
			return err
		}

		root := doc.Root()
		if root == nil {
			return newsharvest.Errorf(newsharvest.EINVALID, "sitemap %s has no root element", sitemapURL)
		}

		switch root.Tag {
		case "sitemapindex":
			for _, sm := range root.SelectElements("sitemap") {
				if loc := childText(sm, "loc"); loc != "" {
					if err := walk(loc, depth+1); err != nil {
						return err
					}
				}
			}
		case "urlset":
			for _, u := range root.SelectElements("url") {
				loc := childText(u, "loc")
				if loc == "" || seen[loc] {
					continue
				}
				seen[loc] = true
				urls = append(urls, loc)
			}
		default:
			return newsharvest.Errorf(newsharvest.EINVALID, "unexpected sitemap root element %q", root.Tag)
		}
		return nil
	}

	if err := walk(indexURL, 0); err != nil {
		return nil, err
	}
	return urls, nil
}

func (s *NewsmapService) fetchXML(ctx context.Context, rawURL string) (*etree.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, rawURL)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("parsing sitemap %s: %w", rawURL, err)
	}
	return doc, nil
}

func childText(parent *etree.Element, tag string) string {
	if child := parent.SelectElement(tag); child != nil {
		return child.Text()
	}
	return ""
}
