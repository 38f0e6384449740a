// Package bloom tracks already-scraped article URLs with a Bloom filter.
package bloom

import (
	"context"

	"newsharvest"

	"github.com/bits-and-blooms/bloom/v3"
)

// SeenFilter answers whether an article URL has probably been scraped
// before. False positives are possible, meaning a fresh URL may be
// skipped; false negatives are not, so a seen URL is never re-fetched
// because of the filter.
type SeenFilter struct {
	f *bloom.BloomFilter
}

// NewSeenFilter creates a filter sized for n expected URLs with the
// given false positive rate.
func NewSeenFilter(n uint, fpRate float64) *SeenFilter {
	return &SeenFilter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add marks a URL as seen.
func (f *SeenFilter) Add(url string) {
	f.f.AddString(url)
}

// Seen returns true if the URL was probably added before.
func (f *SeenFilter) Seen(url string) bool {
	return f.f.TestString(url)
}

// EstimatedCount returns the approximate number of URLs in the filter.
func (f *SeenFilter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}

// SeedFromStore loads the stored articles for each source and marks
// their URLs as seen, so a restarted scrape skips work already saved.
func (f *SeenFilter) SeedFromStore(ctx context.Context, store newsharvest.ArticleStore, sources ...string) error {
	for _, source := range sources {
		articles, err := store.LoadArticles(ctx, source)
		if err != nil {
			return err
		}
		for _, article := range articles {
			f.Add(article.URL)
		}
	}
	return nil
}

// FilterNew returns the URLs not yet seen, preserving order, and marks
// them as seen so a URL appearing twice in the input survives once.
func (f *SeenFilter) FilterNew(urls []string) []string {
	fresh := make([]string, 0, len(urls))
	for _, url := range urls {
		if f.Seen(url) {
			continue
		}
		f.Add(url)
		fresh = append(fresh, url)
	}
	return fresh
}
