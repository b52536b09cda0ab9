package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/seospider/goquery"
	seohttp "github.com/fwojciec/seospider/http"
	"github.com/fwojciec/seospider/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path, read from SEOSPIDER_DB. Empty disables the
	// relational sink and the status oracle. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: os.Getenv("SEOSPIDER_DB"),
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
		kong.Name("seospider"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'seospider --help' to see available commands")
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// The relational sink and status oracle are optional: without
	// SEOSPIDER_DB the crawl degrades to tabular-only mode.
	if m.DBPath != "" {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		crawls := sqlite.NewCrawlService(m.DB)
		deps.DB = m.DB
		deps.Crawls = crawls
		deps.Status = crawls
		deps.Pages = sqlite.NewPageService(m.DB)
	} else {
		deps.Logger.Info("SEOSPIDER_DB not set, continuing without database")
	}

	timeout := cli.Crawl.Timeout
	if timeout <= 0 {
		timeout = seohttp.DefaultFetchTimeout
	}
	deps.Fetcher = seohttp.NewFetcher(seohttp.WithTimeout(timeout))
	deps.Extractor = goquery.NewExtractor()

	return kongCtx.Run(deps)
}
