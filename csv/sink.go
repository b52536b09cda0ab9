// Package csv provides a CSV-file implementation of seospider.PageSink.
// The tabular output holds one row per successfully fetched page; link
// edges and images only exist in the relational sink.
package csv

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fwojciec/seospider"
)

// Ensure Sink implements seospider.PageSink at compile time.
var _ seospider.PageSink = (*Sink)(nil)

// header defines the ordered column layout of the tabular output.
var header = []string{
	"url", "status_code", "title", "meta_description", "canonical",
	"schema_types", "text_length", "h1_count", "h2_count", "h3_count",
	"h4_count", "h5_count", "h6_count", "internal_links", "external_links",
	"nofollow_links", "target_keyword",
}

// Sink writes page records to a CSV file, one row per page, flushed
// incrementally so a cancelled crawl keeps everything written so far.
type Sink struct {
	file   *os.File
	writer *csv.Writer
}

// Open creates (or truncates) the CSV file at path and writes the
// header row. Failure to open the destination is fatal to the crawl.
func Open(path string) (*Sink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file %q: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return nil, err
	}

	return &Sink{file: f, writer: w}, nil
}

// CreatePage appends one row for the page record and flushes it.
func (s *Sink) CreatePage(_ context.Context, record *seospider.PageRecord) error {
	row := []string{
		record.URL,
		strconv.Itoa(record.StatusCode),
		record.Title,
		record.MetaDescription,
		record.Canonical,
		strings.Join(record.SchemaTypes, ","),
		strconv.Itoa(record.TextLength),
		strconv.Itoa(record.H1Count),
		strconv.Itoa(record.H2Count),
		strconv.Itoa(record.H3Count),
		strconv.Itoa(record.H4Count),
		strconv.Itoa(record.H5Count),
		strconv.Itoa(record.H6Count),
		strconv.Itoa(record.InternalLinks),
		strconv.Itoa(record.ExternalLinks),
		strconv.Itoa(record.NofollowLinks),
		record.TargetKeyword,
	}

	if err := s.writer.Write(row); err != nil {
		return err
	}
	s.writer.Flush()
	return s.writer.Error()
}

// CreateLinkEdge is a no-op: link edges are not part of the tabular output.
func (s *Sink) CreateLinkEdge(_ context.Context, _ *seospider.LinkEdge) error {
	return nil
}

// CreateImages is a no-op: images are not part of the tabular output.
func (s *Sink) CreateImages(_ context.Context, _ []*seospider.ImageRecord) error {
	return nil
}

// Close flushes pending rows and closes the file.
func (s *Sink) Close() error {
	s.writer.Flush()
	if err := s.writer.Error(); err != nil {
		s.file.Close()
		return err
	}
	return s.file.Close()
}
