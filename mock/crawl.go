package mock

import (
	"context"

	"github.com/fwojciec/seospider"
)

var (
	_ seospider.CrawlService  = (*CrawlService)(nil)
	_ seospider.StatusService = (*StatusService)(nil)
)

// CrawlService is a mock implementation of seospider.CrawlService.
type CrawlService struct {
	CreateCrawlFn       func(ctx context.Context, job *seospider.CrawlJob) error
	FindCrawlByIDFn     func(ctx context.Context, id string) (*seospider.CrawlJob, error)
	FindCrawlsFn        func(ctx context.Context) ([]*seospider.CrawlJob, error)
	UpdateCrawlStatusFn func(ctx context.Context, id string, status seospider.CrawlStatus) error
}

func (s *CrawlService) CreateCrawl(ctx context.Context, job *seospider.CrawlJob) error {
	return s.CreateCrawlFn(ctx, job)
}

func (s *CrawlService) FindCrawlByID(ctx context.Context, id string) (*seospider.CrawlJob, error) {
	return s.FindCrawlByIDFn(ctx, id)
}

func (s *CrawlService) FindCrawls(ctx context.Context) ([]*seospider.CrawlJob, error) {
	return s.FindCrawlsFn(ctx)
}

func (s *CrawlService) UpdateCrawlStatus(ctx context.Context, id string, status seospider.CrawlStatus) error {
	return s.UpdateCrawlStatusFn(ctx, id, status)
}

// StatusService is a mock implementation of seospider.StatusService.
type StatusService struct {
	StatusFn func(ctx context.Context, crawlID string) (seospider.CrawlStatus, error)
}

func (s *StatusService) Status(ctx context.Context, crawlID string) (seospider.CrawlStatus, error) {
	return s.StatusFn(ctx, crawlID)
}
