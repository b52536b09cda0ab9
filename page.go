package seospider

import "context"

// PageRecord holds the SEO signals extracted from one successfully
// fetched page. A record is produced once per page and never mutated
// after extraction, except for ID which the relational sink assigns on
// insert.
type PageRecord struct {
	ID              string   `json:"id"`
	CrawlID         string   `json:"crawlId"`
	URL             string   `json:"url"`
	StatusCode      int      `json:"statusCode"`
	Title           string   `json:"title"`
	MetaDescription string   `json:"metaDescription"`
	Canonical       string   `json:"canonical"`
	SchemaTypes     []string `json:"schemaTypes"`
	TextLength      int      `json:"textLength"`
	FullText        string   `json:"fullText"`
	H1Count         int      `json:"h1Count"`
	H2Count         int      `json:"h2Count"`
	H3Count         int      `json:"h3Count"`
	H4Count         int      `json:"h4Count"`
	H5Count         int      `json:"h5Count"`
	H6Count         int      `json:"h6Count"`
	InternalLinks   int      `json:"internalLinks"`
	ExternalLinks   int      `json:"externalLinks"`
	NofollowLinks   int      `json:"nofollowLinks"`
	TargetKeyword   string   `json:"targetKeyword"`
}

// Validate returns an error if the record contains invalid fields.
func (r *PageRecord) Validate() error {
	if r.CrawlID == "" {
		return Errorf(EINVALID, "page record crawl ID required")
	}
	if r.URL == "" {
		return Errorf(EINVALID, "page record URL required")
	}
	return nil
}

// LinkEdge is a directed record of one anchor reference from a source
// page to a destination URL. Edges are not deduplicated: a page with two
// anchors to the same destination produces two edges.
type LinkEdge struct {
	CrawlID  string `json:"crawlId"`
	FromURL  string `json:"fromUrl"`
	ToURL    string `json:"toUrl"`
	Nofollow bool   `json:"isNofollow"`
	Count    int    `json:"linkCount"`
}

// ImageRecord describes one image on a page, deduplicated by raw src
// within that page. PageID references the persisted PageRecord, so
// images can only be written after their page.
type ImageRecord struct {
	PageID  string `json:"pageId"`
	CrawlID string `json:"crawlId"`
	Src     string `json:"src"`
	Alt     string `json:"alt"`
	Format  string `json:"format"`
}

// ExtractResult holds everything extracted from one page's HTML.
type ExtractResult struct {
	// Page is the extracted record. CrawlID and ID are left for the
	// caller and the sink respectively.
	Page *PageRecord

	// Edges lists every classified anchor on the page, internal and
	// external, duplicates included. CrawlID is left for the caller.
	Edges []*LinkEdge

	// Images lists the page's images, deduplicated by raw src.
	Images []*ImageRecord

	// InternalLinks are resolved same-authority URLs, candidates for
	// frontier discovery. Deduplication against visited/queued URLs
	// happens in the crawler, not here.
	InternalLinks []string
}

// Extractor extracts SEO signals from an HTML page.
type Extractor interface {
	// Extract parses html fetched from pageURL and returns the page
	// record, link edges, images, and internal link candidates. Links
	// are classified internal/external against domain by authority
	// comparison. Malformed fragments (bad JSON-LD, unresolvable hrefs)
	// degrade to empty fields; they never fail the whole extraction.
	Extract(html, pageURL, domain string) (*ExtractResult, error)
}

// Fetcher retrieves HTML from URLs.
type Fetcher interface {
	// Fetch performs a GET request and returns the response body and
	// HTTP status code. A non-2xx status or transport failure returns a
	// non-nil error; the status code is still returned when known.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, statusCode int, err error)
}

// PageSink persists extracted records. Implementations that have no use
// for a record type (e.g. the CSV sink only holds page rows) treat the
// corresponding method as a no-op.
type PageSink interface {
	// CreatePage persists a page record. Implementations that generate
	// identifiers set record.ID on success.
	CreatePage(ctx context.Context, record *PageRecord) error

	// CreateLinkEdge persists one link edge. A duplicate edge is a
	// benign skip, not an error.
	CreateLinkEdge(ctx context.Context, edge *LinkEdge) error

	// CreateImages persists a page's images in one batch.
	CreateImages(ctx context.Context, images []*ImageRecord) error
}
