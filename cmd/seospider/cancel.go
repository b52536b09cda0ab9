package main

import (
	"fmt"

	"github.com/fwojciec/seospider"
)

// Run executes the cancel command. Cancellation is cooperative: the
// running crawl notices the failed status before its next page fetch.
func (c *CancelCmd) Run(deps *Dependencies) error {
	if deps.Crawls == nil {
		return fmt.Errorf("SEOSPIDER_DB not set: cancellation requires the database")
	}

	if err := deps.Crawls.UpdateCrawlStatus(deps.Ctx, c.CrawlID, seospider.CrawlStatusFailed); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", seospider.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Requested cancellation of crawl %s\n", c.CrawlID)
	return nil
}
