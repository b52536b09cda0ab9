package main

import (
	"fmt"

	"github.com/fwojciec/seospider"
)

// Run executes the status command.
func (c *StatusCmd) Run(deps *Dependencies) error {
	if deps.Crawls == nil {
		return fmt.Errorf("SEOSPIDER_DB not set: crawl status requires the database")
	}

	job, err := deps.Crawls.FindCrawlByID(deps.Ctx, c.CrawlID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", seospider.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", job.ID, job.Domain, job.Status)
	return nil
}
