package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/fwojciec/seospider"
)

// Compile-time interface verification.
var (
	_ seospider.CrawlService  = (*CrawlService)(nil)
	_ seospider.StatusService = (*CrawlService)(nil)
)

// CrawlService implements seospider.CrawlService and the crawl status
// oracle (seospider.StatusService) using SQLite.
type CrawlService struct {
	db *DB
}

// NewCrawlService creates a new CrawlService.
func NewCrawlService(db *DB) *CrawlService {
	return &CrawlService{db: db}
}

// CreateCrawl creates a crawl job if one with the same ID does not
// already exist. An existing job is left untouched so an externally
// created job (and its status) survives the crawl start.
func (s *CrawlService) CreateCrawl(ctx context.Context, job *seospider.CrawlJob) error {
	if err := job.Validate(); err != nil {
		return err
	}

	if job.Status == "" {
		job.Status = seospider.CrawlStatusRunning
	}
	job.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO crawls (id, domain, owner_id, status, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`, job.ID, job.Domain, job.OwnerID, string(job.Status), job.CreatedAt.Format(time.RFC3339))

	return err
}

// FindCrawlByID retrieves a crawl job by ID.
func (s *CrawlService) FindCrawlByID(ctx context.Context, id string) (*seospider.CrawlJob, error) {
	var job seospider.CrawlJob
	var status, createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, domain, owner_id, status, created_at
		FROM crawls
		WHERE id = ?
	`, id).Scan(&job.ID, &job.Domain, &job.OwnerID, &status, &createdAt)

	if err == sql.ErrNoRows {
		return nil, seospider.Errorf(seospider.ENOTFOUND, "crawl job not found")
	}
	if err != nil {
		return nil, err
	}

	job.Status = seospider.CrawlStatus(status)
	job.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}

	return &job, nil
}

// FindCrawls retrieves all crawl jobs, most recent first.
func (s *CrawlService) FindCrawls(ctx context.Context) ([]*seospider.CrawlJob, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, domain, owner_id, status, created_at
		FROM crawls
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []*seospider.CrawlJob
	for rows.Next() {
		var job seospider.CrawlJob
		var status, createdAt string

		if err := rows.Scan(&job.ID, &job.Domain, &job.OwnerID, &status, &createdAt); err != nil {
			return nil, err
		}

		job.Status = seospider.CrawlStatus(status)
		job.CreatedAt, err = parseRFC3339(createdAt, "created_at")
		if err != nil {
			return nil, err
		}

		jobs = append(jobs, &job)
	}

	return jobs, rows.Err()
}

// UpdateCrawlStatus sets the status of an existing crawl job.
func (s *CrawlService) UpdateCrawlStatus(ctx context.Context, id string, status seospider.CrawlStatus) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE crawls SET status = ? WHERE id = ?", string(status), id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return seospider.Errorf(seospider.ENOTFOUND, "crawl job not found")
	}

	return nil
}

// Status returns the current status of a crawl job. An unknown job
// reports running so a missing record never cancels a crawl.
func (s *CrawlService) Status(ctx context.Context, crawlID string) (seospider.CrawlStatus, error) {
	var status string

	err := s.db.QueryRowContext(ctx,
		"SELECT status FROM crawls WHERE id = ?", crawlID).Scan(&status)

	if err == sql.ErrNoRows {
		return seospider.CrawlStatusRunning, nil
	}
	if err != nil {
		return seospider.CrawlStatusRunning, err
	}

	return seospider.CrawlStatus(status), nil
}
