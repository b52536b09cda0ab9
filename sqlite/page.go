package sqlite

import (
	"context"
	"encoding/hex"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/seospider"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ seospider.PageSink = (*PageService)(nil)

// PageService implements seospider.PageSink using SQLite. It persists
// page records, link edges, and image records for a crawl.
type PageService struct {
	db *DB
}

// NewPageService creates a new PageService.
func NewPageService(db *DB) *PageService {
	return &PageService{db: db}
}

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// CreatePage persists a page record and assigns it a generated ID.
func (s *PageService) CreatePage(ctx context.Context, record *seospider.PageRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}

	record.ID = uuid.New().String()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO pages (
			id, crawl_id, url, status_code, title, meta_description, canonical,
			schema_types, text_length, full_text, content_hash,
			h1_count, h2_count, h3_count, h4_count, h5_count, h6_count,
			internal_links, external_links, nofollow_links, target_keyword
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, record.ID, record.CrawlID, record.URL, record.StatusCode, record.Title,
		record.MetaDescription, record.Canonical, strings.Join(record.SchemaTypes, ","),
		record.TextLength, record.FullText, hashContent(record.FullText),
		record.H1Count, record.H2Count, record.H3Count, record.H4Count,
		record.H5Count, record.H6Count,
		record.InternalLinks, record.ExternalLinks, record.NofollowLinks,
		record.TargetKeyword)

	if err != nil {
		record.ID = ""
		return err
	}

	return nil
}

// CreateLinkEdge persists one link edge. Re-inserting an edge that
// already exists for the crawl is a benign skip.
func (s *PageService) CreateLinkEdge(ctx context.Context, edge *seospider.LinkEdge) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO page_links (crawl_id, from_url, to_url, is_nofollow, link_count)
		VALUES (?, ?, ?, ?, ?)
	`, edge.CrawlID, edge.FromURL, edge.ToURL, edge.Nofollow, edge.Count)

	if err != nil && isDuplicateKey(err) {
		return nil
	}

	return err
}

// CreateImages persists a page's images in one batch. Every image must
// carry the generated page ID of an already-persisted page.
func (s *PageService) CreateImages(ctx context.Context, images []*seospider.ImageRecord) error {
	for _, img := range images {
		if img.PageID == "" {
			return seospider.Errorf(seospider.EINVALID, "image record page ID required")
		}

		_, err := s.db.ExecContext(ctx, `
			INSERT INTO page_images (page_id, crawl_id, src, alt, format)
			VALUES (?, ?, ?, ?, ?)
		`, img.PageID, img.CrawlID, img.Src, img.Alt, img.Format)
		if err != nil {
			return err
		}
	}

	return nil
}

// isDuplicateKey reports whether the driver error indicates a unique
// constraint violation.
func isDuplicateKey(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate key")
}
