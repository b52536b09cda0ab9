package seospider

import (
	"context"
	"time"
)

// CrawlStatus represents the lifecycle state of a crawl job.
type CrawlStatus string

// Crawl job lifecycle states.
const (
	CrawlStatusRunning  CrawlStatus = "running"
	CrawlStatusFinished CrawlStatus = "finished"
	CrawlStatusFailed   CrawlStatus = "failed"
)

// CrawlJob represents one crawl of a single domain. A job is created in
// the running state when the crawl starts, moves to finished on normal
// completion, and can be set to failed externally to request cancellation.
type CrawlJob struct {
	ID        string      `json:"id"`
	Domain    string      `json:"domain"`
	OwnerID   string      `json:"ownerId"`
	Status    CrawlStatus `json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
}

// Validate returns an error if the job contains invalid fields.
func (j *CrawlJob) Validate() error {
	if j.ID == "" {
		return Errorf(EINVALID, "crawl job ID required")
	}
	if j.Domain == "" {
		return Errorf(EINVALID, "crawl job domain required")
	}
	return nil
}

// CrawlService represents a service for managing crawl jobs.
type CrawlService interface {
	// CreateCrawl creates a crawl job if one with the same ID does not
	// already exist. An existing job is left untouched.
	CreateCrawl(ctx context.Context, job *CrawlJob) error

	// FindCrawlByID retrieves a crawl job by ID.
	// Returns ENOTFOUND if the job does not exist.
	FindCrawlByID(ctx context.Context, id string) (*CrawlJob, error)

	// FindCrawls retrieves all crawl jobs, most recent first.
	FindCrawls(ctx context.Context) ([]*CrawlJob, error)

	// UpdateCrawlStatus sets the status of an existing crawl job.
	// Returns ENOTFOUND if the job does not exist.
	UpdateCrawlStatus(ctx context.Context, id string, status CrawlStatus) error
}

// StatusService reports the current status of a crawl job. The crawler
// polls it once per dequeued URL to honor externally requested
// cancellation.
type StatusService interface {
	// Status returns the current status of the crawl job.
	// Implementations should return CrawlStatusRunning for unknown jobs
	// so an unreachable or empty store never cancels a crawl.
	Status(ctx context.Context, crawlID string) (CrawlStatus, error)
}
