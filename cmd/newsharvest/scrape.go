package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"newsharvest"
	"newsharvest/scrape"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	urls, err := c.collectURLs(deps)
	if err != nil {
		return err
	}
	if len(urls) == 0 {
		fmt.Fprintln(deps.Stdout, "No URLs to scrape.")
		return nil
	}

	alreadySaved, err := c.filterSeen(deps, &urls)
	if err != nil {
		return err
	}
	if len(urls) == 0 {
		fmt.Fprintf(deps.Stdout, "All %d URLs already saved.\n", alreadySaved)
		return nil
	}

	progress := func(event scrape.ProgressEvent) {
		switch event.Type {
		case scrape.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Scraping %d URLs\n", event.Total)
		case scrape.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  fail %s: %v\n", event.URL, event.Error)
		case scrape.ProgressSkipped:
			fmt.Fprintf(deps.Stdout, "  skip %s\n", event.URL)
		case scrape.ProgressSaved:
			fmt.Fprintf(deps.Stdout, "  save %s (%s)\n", event.URL, event.Source)
		}
	}

	result, err := deps.Scraper.Run(deps.Ctx, urls, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error scraping: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Done: %d scraped, %d saved, %d skipped, %d failed\n",
		result.Scraped, result.Saved, result.Skipped+alreadySaved, result.Failed)

	return nil
}

// filterSeen seeds the seen-URL filter from the persisted collections the
// URLs resolve to and drops URLs already saved, reporting how many were
// dropped. A nil filter leaves the URL list untouched.
func (c *ScrapeCmd) filterSeen(deps *Dependencies, urls *[]string) (int, error) {
	if deps.Seen == nil {
		return 0, nil
	}

	var sources []string
	seeded := make(map[string]bool)
	for _, u := range *urls {
		source := newsharvest.SourceForURL(u)
		if source == "" || seeded[source] {
			continue
		}
		seeded[source] = true
		sources = append(sources, source)
	}

	if err := deps.Seen.SeedFromStore(deps.Ctx, deps.Store, sources...); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsharvest.ErrorMessage(err))
		return 0, err
	}

	fresh := deps.Seen.FilterNew(*urls)
	dropped := len(*urls) - len(fresh)
	if dropped > 0 {
		fmt.Fprintf(deps.Stdout, "Skipping %d already saved URLs\n", dropped)
	}
	*urls = fresh
	return dropped, nil
}

// collectURLs gathers article URLs from arguments, a file, a search
// query, or a news sitemap, deduplicated in encounter order.
func (c *ScrapeCmd) collectURLs(deps *Dependencies) ([]string, error) {
	var urls []string
	urls = append(urls, c.URLs...)

	if c.File != "" {
		fromFile, err := readURLFile(c.File)
		if err != nil {
			return nil, err
		}
		urls = append(urls, fromFile...)
	}

	if c.Query != "" {
		results, err := deps.Search.Search(deps.Ctx, c.Query, c.Limit)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", newsharvest.ErrorMessage(err))
			return nil, err
		}
		for _, r := range results {
			urls = append(urls, r.URL)
		}
	}

	if c.Sitemap != "" {
		fromSitemap, err := deps.Newsmap.ListURLs(deps.Ctx, c.Sitemap)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", newsharvest.ErrorMessage(err))
			return nil, err
		}
		urls = append(urls, fromSitemap...)
	}

	seen := make(map[string]struct{}, len(urls))
	unique := urls[:0]
	for _, u := range urls {
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		unique = append(unique, u)
	}

	return unique, nil
}

// readURLFile reads one URL per line, skipping blanks and # comments.
func readURLFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var urls []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	return urls, scanner.Err()
}
