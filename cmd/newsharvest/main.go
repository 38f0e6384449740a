package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"newsharvest"
	"newsharvest/bloom"
	"newsharvest/fs"
	"newsharvest/goquery"
	nhhttp "newsharvest/http"
	"newsharvest/readability"
	"newsharvest/scrape"
	nhslog "newsharvest/slog"
	"newsharvest/sqlite"
	"newsharvest/trafilatura"
	"newsharvest/yaml"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
)

func main() {
	ctx := context.Background()

	m := NewMain()
	defer m.Close()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Directory for per-source JSON article files.
	DataDir string

	// Optional SQLite database path. When set, articles are stored in
	// SQLite instead of JSON files.
	DBPath string

	// SQLite database, opened lazily when DBPath is set.
	DB *sqlite.DB

	// Store is exposed for end-to-end testing.
	Store newsharvest.ArticleStore
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	// Environment overrides come from the process or an optional .env
	// file in the working directory.
	_ = godotenv.Load()

	return &Main{
		DataDir: defaultDataDir(),
		DBPath:  os.Getenv("NEWSHARVEST_DB"),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("newsharvest"),
		kong.Description("Scrape and store news article content"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'newsharvest --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Wire the article store
	if m.DBPath != "" {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintln(stderr, "Hint: Unset NEWSHARVEST_DB to store articles as JSON files")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		m.Store = sqlite.NewArticleStore(m.DB)
	} else {
		m.Store = fs.NewArticleStore(m.DataDir)
	}
	deps.Store = m.Store

	// Wire command-specific dependencies
	if cmd == "scrape" {
		registry := goquery.DefaultRegistry()
		if cli.Scrape.Profiles != "" {
			if err := yaml.RegisterProfiles(registry, cli.Scrape.Profiles); err != nil {
				return err
			}
		}
		deps.Registry = registry

		var extractor newsharvest.Extractor
		switch cli.Scrape.Engine {
		case "readability":
			extractor = readability.NewExtractor()
		case "trafilatura":
			extractor = trafilatura.NewExtractor()
		default:
			extractor = goquery.NewExtractor(registry)
		}

		var fetcher newsharvest.Fetcher = nhhttp.NewFetcher(nhhttp.WithTimeout(fetchTimeoutOrDefault(cli.Scrape.Timeout)))
		store := deps.Store

		if cli.Scrape.Verbose {
			logger := slog.New(slog.NewTextHandler(stderr, nil))
			fetcher = nhslog.NewLoggingFetcher(fetcher, logger)
			extractor = nhslog.NewLoggingExtractor(extractor, logger)
			store = nhslog.NewLoggingArticleStore(store, logger)
		}
		defer fetcher.Close()

		var delay scrape.DelayPolicy
		if cli.Scrape.MaxDelay > 0 {
			delay = scrape.NewRandomDelay(cli.Scrape.MinDelay, cli.Scrape.MaxDelay)
		}

		deps.Scraper = &scrape.Scraper{
			Fetcher:     fetcher,
			Extractor:   extractor,
			Store:       store,
			RateLimiter: scrape.NewDomainLimiter(cli.Scrape.RPS),
			Delay:       delay,
			Concurrency: cli.Scrape.Concurrency,
		}

		deps.Newsmap = nhhttp.NewNewsmapService(nil)

		// Sized for a large backlog; at this rate a false positive wrongly
		// skips roughly one fresh URL in ten thousand.
		if !cli.Scrape.Refetch {
			deps.Seen = bloom.NewSeenFilter(100000, 0.0001)
		}
	}

	if cmd == "search" || (cmd == "scrape" && cli.Scrape.Query != "") {
		servingConfig := os.Getenv("NEWSHARVEST_SEARCH_CONFIG")
		apiKey := os.Getenv("NEWSHARVEST_SEARCH_KEY")
		if servingConfig == "" || apiKey == "" {
			fmt.Fprintln(stderr, "Hint: Set NEWSHARVEST_SEARCH_CONFIG and NEWSHARVEST_SEARCH_KEY to enable search")
			return fmt.Errorf("search backend not configured")
		}
		deps.Search = nhhttp.NewSearchClient(servingConfig, apiKey)
	}

	return kongCtx.Run(deps)
}

func defaultDataDir() string {
	if dir := os.Getenv("NEWSHARVEST_DATA"); dir != "" {
		return dir
	}
	return filepath.Join(".", "data")
}

// fetchTimeoutOrDefault guards against a zero timeout from tests that
// construct ScrapeCmd directly.
func fetchTimeoutOrDefault(d time.Duration) time.Duration {
	if d <= 0 {
		return nhhttp.DefaultFetchTimeout
	}
	return d
}
