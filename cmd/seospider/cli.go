package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/seospider"
	"github.com/fwojciec/seospider/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	// DB and the services over it are nil when SEOSPIDER_DB is not set;
	// the crawl then runs in tabular-only mode and the status and
	// cancellation commands are unavailable.
	DB     *sqlite.DB
	Crawls seospider.CrawlService
	Status seospider.StatusService
	Pages  seospider.PageSink

	Fetcher   seospider.Fetcher
	Extractor seospider.Extractor
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Crawl  CrawlCmd  `cmd:"" help:"Crawl a domain and write SEO signals to a CSV file"`
	Status StatusCmd `cmd:"" help:"Show the status of a crawl job"`
	Cancel CancelCmd `cmd:"" help:"Request cancellation of a running crawl"`
	Jobs   JobsCmd   `cmd:"" help:"List crawl jobs"`
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	Domain  string        `arg:"" help:"Target domain or URL (https:// is assumed when the scheme is missing)"`
	Output  string        `arg:"" help:"CSV output path"`
	CrawlID string        `arg:"" optional:"" help:"Crawl job UUID (a fresh one is generated when missing or invalid)"`
	Timeout time.Duration `default:"10s" help:"Per-request fetch timeout"`
}

// StatusCmd is the "status" subcommand.
type StatusCmd struct {
	CrawlID string `arg:"" help:"Crawl job UUID"`
}

// CancelCmd is the "cancel" subcommand.
type CancelCmd struct {
	CrawlID string `arg:"" help:"Crawl job UUID"`
}

// JobsCmd is the "jobs" subcommand.
type JobsCmd struct{}
