package main

import (
	"fmt"

	"github.com/fwojciec/seospider"
)

// Run executes the jobs command.
func (c *JobsCmd) Run(deps *Dependencies) error {
	if deps.Crawls == nil {
		return fmt.Errorf("SEOSPIDER_DB not set: listing jobs requires the database")
	}

	jobs, err := deps.Crawls.FindCrawls(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", seospider.ErrorMessage(err))
		return err
	}

	if len(jobs) == 0 {
		fmt.Fprintln(deps.Stdout, "No crawl jobs found")
		return nil
	}

	for _, job := range jobs {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n",
			job.ID, job.CreatedAt.Format("2006-01-02 15:04"), job.Status, job.Domain)
	}
	return nil
}
