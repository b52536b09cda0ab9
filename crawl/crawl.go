// Package crawl provides the breadth-first crawl scheduler. It owns the
// frontier and visited set, drives the fetch, extract, persist cycle for
// every internal page of a domain, and honors externally requested
// cancellation between pages.
package crawl

import (
	"context"
	"log/slog"

	"github.com/fwojciec/seospider"
	"github.com/fwojciec/seospider/url"
)

// Crawler crawls a single domain breadth-first. The loop is strictly
// sequential: one page is fetched, fully processed, and persisted before
// the next frontier item is dequeued, so the frontier and visited set
// have exactly one mutator.
type Crawler struct {
	Fetcher   seospider.Fetcher
	Extractor seospider.Extractor

	// Sinks receive page records, link edges, and images. Failures in
	// one sink never stop the crawl or the other sinks.
	Sinks []seospider.PageSink

	// Crawls manages the job lifecycle record. Optional: without it the
	// crawl runs without a persisted job.
	Crawls seospider.CrawlService

	// Status is polled once per dequeued URL; a failed status cancels
	// the crawl before the next fetch. Optional: without it the crawl
	// runs to frontier exhaustion.
	Status seospider.StatusService

	Logger *slog.Logger
}

// Summary holds the outcome of a crawl run.
type Summary struct {
	CrawlID   string
	Domain    string
	Processed int // URLs dequeued and marked visited
	Saved     int // pages extracted and handed to the sinks
	Failed    int // pages abandoned on fetch or parse failure
	Cancelled bool
}

// Run crawls job.Domain starting from the domain root. It terminates
// when the frontier is empty, when the status oracle reports the job
// failed, or when ctx is done. On normal completion the job is marked
// finished; a cancelled run leaves the externally set status untouched.
func (c *Crawler) Run(ctx context.Context, job *seospider.CrawlJob) (*Summary, error) {
	job.Domain = url.Normalize(job.Domain)

	logger := c.logger()
	summary := &Summary{CrawlID: job.ID, Domain: job.Domain}

	if c.Crawls != nil {
		if err := c.Crawls.CreateCrawl(ctx, job); err != nil {
			// The crawl is still useful without a lifecycle record.
			logger.Warn("failed to create crawl record", "crawl_id", job.ID, "err", err)
		}
	}

	frontier := NewFrontier()
	frontier.Push(job.Domain)
	visited := make(map[string]struct{})

	for {
		pageURL, ok := frontier.Pop()
		if !ok {
			break
		}

		// Unreachable given push-time dedup, but tolerated.
		if _, ok := visited[pageURL]; ok {
			continue
		}
		visited[pageURL] = struct{}{}
		summary.Processed++

		if ctx.Err() != nil {
			summary.Cancelled = true
			break
		}

		if c.cancelled(ctx, job.ID) {
			logger.Info("crawl cancelled", "crawl_id", job.ID, "processed", summary.Processed)
			summary.Cancelled = true
			break
		}

		logger.Info("crawling page",
			"url", pageURL,
			"queued", frontier.Len(),
			"processed", summary.Processed,
		)

		html, statusCode, err := c.Fetcher.Fetch(ctx, pageURL)
		if err != nil {
			// Abandoned permanently: the URL stays visited, no record
			// is emitted, no retry happens.
			logger.Warn("fetch failed", "url", pageURL, "status", statusCode, "err", err)
			summary.Failed++
			continue
		}

		result, err := c.Extractor.Extract(html, pageURL, job.Domain)
		if err != nil {
			logger.Warn("extraction failed", "url", pageURL, "err", err)
			summary.Failed++
			continue
		}

		for _, link := range result.InternalLinks {
			if frontier.Push(link) {
				logger.Debug("queued", "url", link)
			}
		}

		result.Page.CrawlID = job.ID
		result.Page.StatusCode = statusCode
		for _, edge := range result.Edges {
			edge.CrawlID = job.ID
		}
		for _, img := range result.Images {
			img.CrawlID = job.ID
		}

		c.persist(ctx, result, logger)
		summary.Saved++
	}

	if !summary.Cancelled && c.Crawls != nil {
		if err := c.Crawls.UpdateCrawlStatus(ctx, job.ID, seospider.CrawlStatusFinished); err != nil {
			logger.Warn("failed to mark crawl finished", "crawl_id", job.ID, "err", err)
		}
	}

	return summary, nil
}

// cancelled polls the status oracle. Only an explicit failed status
// cancels; an unreachable oracle or any other status keeps the crawl
// running.
func (c *Crawler) cancelled(ctx context.Context, crawlID string) bool {
	if c.Status == nil {
		return false
	}
	status, err := c.Status.Status(ctx, crawlID)
	if err != nil {
		c.logger().Warn("could not check crawl status", "crawl_id", crawlID, "err", err)
		return false
	}
	return status == seospider.CrawlStatusFailed
}

// persist writes one page's records to every sink in dependency order:
// the page row first, then all link edges, then images. Images are only
// written when the page insert succeeded and yielded an identifier; all
// failures are page-scoped and logged.
func (c *Crawler) persist(ctx context.Context, result *seospider.ExtractResult, logger *slog.Logger) {
	for _, sink := range c.Sinks {
		pageErr := sink.CreatePage(ctx, result.Page)
		if pageErr != nil {
			logger.Warn("failed to save page", "url", result.Page.URL, "err", pageErr)
		}

		for _, edge := range result.Edges {
			if err := sink.CreateLinkEdge(ctx, edge); err != nil {
				logger.Warn("failed to save link",
					"from", edge.FromURL, "to", edge.ToURL, "err", err)
			}
		}

		if pageErr != nil || result.Page.ID == "" {
			continue
		}
		for _, img := range result.Images {
			img.PageID = result.Page.ID
		}
		if len(result.Images) == 0 {
			continue
		}
		if err := sink.CreateImages(ctx, result.Images); err != nil {
			logger.Warn("failed to save images", "url", result.Page.URL, "err", err)
		}
	}
}

func (c *Crawler) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.New(slog.DiscardHandler)
}
