// Package slog provides logging decorators for seospider services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/seospider"
)

// Ensure LoggingSink implements seospider.PageSink.
var _ seospider.PageSink = (*LoggingSink)(nil)

// LoggingSink wraps a PageSink with debug logging for persistence calls.
type LoggingSink struct {
	next   seospider.PageSink
	logger *slog.Logger
}

// NewLoggingSink creates a new LoggingSink.
func NewLoggingSink(next seospider.PageSink, logger *slog.Logger) *LoggingSink {
	return &LoggingSink{next: next, logger: logger}
}

// CreatePage delegates to the wrapped sink and logs the operation.
func (s *LoggingSink) CreatePage(ctx context.Context, record *seospider.PageRecord) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("save page",
			"url", record.URL,
			"status", record.StatusCode,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreatePage(ctx, record)
}

// CreateLinkEdge delegates to the wrapped sink and logs the operation.
func (s *LoggingSink) CreateLinkEdge(ctx context.Context, edge *seospider.LinkEdge) (err error) {
	defer func() {
		s.logger.Debug("save link",
			"from", edge.FromURL,
			"to", edge.ToURL,
			"nofollow", edge.Nofollow,
			"err", err,
		)
	}()
	return s.next.CreateLinkEdge(ctx, edge)
}

// CreateImages delegates to the wrapped sink and logs the operation.
func (s *LoggingSink) CreateImages(ctx context.Context, images []*seospider.ImageRecord) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("save images",
			"count", len(images),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateImages(ctx, images)
}
