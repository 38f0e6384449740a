package main

import (
	"context"
	"io"
	"time"

	"newsharvest"
	"newsharvest/bloom"
	"newsharvest/scrape"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Store    newsharvest.ArticleStore
	Registry newsharvest.ProfileRegistry
	Scraper  *scrape.Scraper
	Search   newsharvest.SearchClient
	Newsmap  newsharvest.URLLister

	// Seen pre-filters already-saved URLs before scraping. Nil disables
	// the pre-check.
	Seen *bloom.SeenFilter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Scrape  ScrapeCmd  `cmd:"" help:"Scrape article URLs and save extracted content"`
	Search  SearchCmd  `cmd:"" help:"Search for articles and export the results"`
	List    ListCmd    `cmd:"" help:"List saved articles for a source"`
	Sources SourcesCmd `cmd:"" help:"List sources with selector profiles"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URLs        []string      `arg:"" optional:"" help:"Article URLs to scrape"`
	File        string        `short:"f" help:"File with one article URL per line"`
	Query       string        `short:"q" help:"Discover article URLs through search"`
	Sitemap     string        `help:"Discover article URLs from a news sitemap"`
	Limit       int           `default:"25" help:"Maximum URLs to discover per query"`
	Engine      string        `default:"goquery" enum:"goquery,readability,trafilatura" help:"Extraction engine"`
	Profiles    string        `short:"P" help:"YAML file with extra selector profiles"`
	Concurrency int           `short:"c" default:"5" help:"Concurrent fetch limit"`
	Timeout     time.Duration `short:"t" default:"30s" help:"Fetch timeout per page"`
	RPS         float64       `default:"1" help:"Requests per second per domain"`
	MinDelay    time.Duration `default:"0s" help:"Minimum random delay before each fetch"`
	MaxDelay    time.Duration `default:"0s" help:"Maximum random delay before each fetch"`
	Refetch     bool          `help:"Scrape URLs even if already saved"`
	Verbose     bool          `short:"v" help:"Log fetch and extraction details"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query  string `arg:"" help:"Search query"`
	Limit  int    `short:"n" default:"25" help:"Maximum results"`
	Format string `default:"json" enum:"json,csv" help:"Output format"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Source string `arg:"" help:"Source name, e.g. \"Economic Times\""`
	Full   bool   `help:"Show full article content"`
}

// SourcesCmd is the "sources" subcommand.
type SourcesCmd struct{}
