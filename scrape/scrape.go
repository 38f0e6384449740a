// Package scrape provides news article scraping orchestration.
// It coordinates fetching, content extraction, and per-source storage
// of news articles.
package scrape

import (
	"context"
	"net/url"
	"sync"
	"sync/atomic"
	"time"

	"newsharvest"

	"golang.org/x/sync/errgroup"
)

// Scraper orchestrates the scraping of news article URLs.
type Scraper struct {
	Fetcher     newsharvest.Fetcher
	Extractor   newsharvest.Extractor
	Store       newsharvest.ArticleStore
	RateLimiter newsharvest.DomainLimiter
	Delay       DelayPolicy
	Concurrency int
	RetryDelays []time.Duration

	// storeMu serializes merges per source so concurrent workers never
	// interleave read-modify-write cycles on the same source.
	storeMu sync.Map
}

// Result holds the outcome of a scrape operation.
type Result struct {
	Scraped int // URLs processed
	Saved   int // articles newly persisted
	Skipped int // extraction below the acceptance gate or already stored
	Failed  int // fetch or extraction errors
}

// ProgressEvent reports progress during a scrape operation.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Source    string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressSaved
	ProgressSkipped
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting scrape progress.
type ProgressFunc func(event ProgressEvent)

// scrapeResult holds the outcome of processing a single URL.
type scrapeResult struct {
	url    string
	source string
	saved  int
	skip   bool
	err    error
}

// Run scrapes the given URLs and merges accepted articles into the
// store. The progress callback, if provided, receives events as
// scraping proceeds.
func (s *Scraper) Run(ctx context.Context, urls []string, progress ProgressFunc) (*Result, error) {
	if len(urls) == 0 {
		return &Result{}, nil
	}

	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = 5
	}

	resultCh := make(chan scrapeResult, len(urls))

	var completed atomic.Int64
	total := len(urls)

	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressStarted,
			Total: total,
		})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, u := range urls {
			u := u
			g.Go(func() error {
				resultCh <- s.processURL(gctx, u)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	var result Result
	for r := range resultCh {
		completed.Add(1)
		result.Scraped++

		event := ProgressEvent{
			Completed: int(completed.Load()),
			Total:     total,
			URL:       r.url,
			Source:    r.source,
		}
		switch {
		case r.err != nil:
			result.Failed++
			event.Type = ProgressFailed
			event.Error = r.err
		case r.skip:
			result.Skipped++
			event.Type = ProgressSkipped
		default:
			result.Saved += r.saved
			if r.saved == 0 {
				result.Skipped++
				event.Type = ProgressSkipped
			} else {
				event.Type = ProgressSaved
			}
		}
		if progress != nil {
			progress(event)
		}
	}

	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: total,
			Total:     total,
		})
	}

	return &result, nil
}

// processURL fetches a single URL, extracts its article content, and
// merges the article into the store when it passes the acceptance gate.
func (s *Scraper) processURL(ctx context.Context, rawURL string) scrapeResult {
	result := scrapeResult{
		url:    rawURL,
		source: newsharvest.SourceForURL(rawURL),
	}

	if u, err := url.Parse(rawURL); err == nil && s.RateLimiter != nil {
		if err := s.RateLimiter.Wait(ctx, u.Host); err != nil {
			result.err = err
			return result
		}
	}

	if s.Delay != nil {
		if err := s.Delay.Sleep(ctx); err != nil {
			result.err = err
			return result
		}
	}

	delays := s.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	html, err := FetchWithRetryDelays(ctx, rawURL, s.Fetcher.Fetch, nil, delays)
	if err != nil {
		// A fetch failure still records the URL so reruns can tell it
		// apart from pages whose extraction came up empty.
		result.err = err
		return result
	}

	extracted, err := s.Extractor.Extract(html, result.source)
	if err != nil {
		result.err = err
		return result
	}

	article := &newsharvest.Article{
		URL:         rawURL,
		Source:      result.source,
		Content:     extracted.Content,
		ExtractedAt: time.Now().UTC(),
	}
	article.ContentHash = newsharvest.HashContent(article.Content)

	if !article.Accepted() {
		result.skip = true
		return result
	}

	inserted, err := s.mergeArticle(ctx, article)
	if err != nil {
		result.err = err
		return result
	}
	result.saved = inserted

	return result
}

// mergeArticle merges a single article under the per-source lock.
func (s *Scraper) mergeArticle(ctx context.Context, article *newsharvest.Article) (int, error) {
	v, _ := s.storeMu.LoadOrStore(article.Source, &sync.Mutex{})
	mu := v.(*sync.Mutex)

	mu.Lock()
	defer mu.Unlock()

	return s.Store.MergeArticles(ctx, article.Source, []*newsharvest.Article{article})
}
