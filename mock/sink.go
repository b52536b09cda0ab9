package mock

import (
	"context"

	"github.com/fwojciec/seospider"
)

var _ seospider.PageSink = (*PageSink)(nil)

// PageSink is a mock implementation of seospider.PageSink.
type PageSink struct {
	CreatePageFn     func(ctx context.Context, record *seospider.PageRecord) error
	CreateLinkEdgeFn func(ctx context.Context, edge *seospider.LinkEdge) error
	CreateImagesFn   func(ctx context.Context, images []*seospider.ImageRecord) error
}

func (s *PageSink) CreatePage(ctx context.Context, record *seospider.PageRecord) error {
	return s.CreatePageFn(ctx, record)
}

func (s *PageSink) CreateLinkEdge(ctx context.Context, edge *seospider.LinkEdge) error {
	return s.CreateLinkEdgeFn(ctx, edge)
}

func (s *PageSink) CreateImages(ctx context.Context, images []*seospider.ImageRecord) error {
	return s.CreateImagesFn(ctx, images)
}
