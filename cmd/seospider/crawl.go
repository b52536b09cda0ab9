package main

import (
	"fmt"

	"github.com/fwojciec/seospider"
	"github.com/fwojciec/seospider/crawl"
	"github.com/fwojciec/seospider/csv"
	seoslog "github.com/fwojciec/seospider/slog"
	"github.com/google/uuid"
)

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	crawlID := c.CrawlID
	if _, err := uuid.Parse(crawlID); err != nil {
		crawlID = uuid.New().String()
		fmt.Fprintf(deps.Stdout, "Generated crawl ID: %s\n", crawlID)
	}

	// The tabular output is the one mandatory sink: failing to open it
	// aborts the run before anything is fetched.
	tabular, err := csv.Open(c.Output)
	if err != nil {
		return err
	}
	defer tabular.Close()

	sinks := []seospider.PageSink{tabular}
	if deps.Pages != nil {
		sinks = append(sinks, seoslog.NewLoggingSink(deps.Pages, deps.Logger))
	}

	crawler := &crawl.Crawler{
		Fetcher:   deps.Fetcher,
		Extractor: deps.Extractor,
		Sinks:     sinks,
		Crawls:    deps.Crawls,
		Status:    deps.Status,
		Logger:    deps.Logger,
	}

	job := &seospider.CrawlJob{ID: crawlID, Domain: c.Domain}

	summary, err := crawler.Run(deps.Ctx, job)
	if err != nil {
		return err
	}

	if summary.Cancelled {
		fmt.Fprintf(deps.Stdout, "Crawl cancelled after %d pages\n", summary.Saved)
	} else {
		fmt.Fprintf(deps.Stdout, "Crawl completed: %d pages saved, %d failed\n", summary.Saved, summary.Failed)
	}
	fmt.Fprintf(deps.Stdout, "  Output: %s\n", c.Output)
	fmt.Fprintf(deps.Stdout, "  Crawl ID: %s\n", summary.CrawlID)

	return nil
}
