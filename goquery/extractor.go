// Package goquery provides a goquery-based implementation of
// seospider.Extractor.
package goquery

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/seospider"
	"github.com/fwojciec/seospider/url"
)

// Compile-time interface verification.
var _ seospider.Extractor = (*Extractor)(nil)

// Extractor extracts SEO signals from raw HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses html fetched from pageURL and returns the page record,
// link edges, images, and internal link candidates. Links are classified
// against domain by authority comparison.
func (e *Extractor) Extract(html, pageURL, domain string) (*seospider.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, seospider.Errorf(seospider.EINVALID, "failed to parse HTML: %v", err)
	}

	fullText := strings.Join(strings.Fields(doc.Text()), " ")

	page := &seospider.PageRecord{
		URL:             pageURL,
		Title:           strings.TrimSpace(doc.Find("title").First().Text()),
		MetaDescription: doc.Find(`meta[name="description"]`).First().AttrOr("content", ""),
		Canonical:       doc.Find(`link[rel="canonical"]`).First().AttrOr("href", ""),
		SchemaTypes:     extractSchemaTypes(doc),
		TextLength:      len(fullText),
		FullText:        fullText,
		H1Count:         doc.Find("h1").Length(),
		H2Count:         doc.Find("h2").Length(),
		H3Count:         doc.Find("h3").Length(),
		H4Count:         doc.Find("h4").Length(),
		H5Count:         doc.Find("h5").Length(),
		H6Count:         doc.Find("h6").Length(),
	}

	result := &seospider.ExtractResult{Page: page}

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href := sel.AttrOr("href", "")
		if !url.Navigable(href) {
			return
		}

		nofollow := hasRelToken(sel, "nofollow")
		if nofollow {
			page.NofollowLinks++
		}

		resolved, err := url.Resolve(pageURL, href)
		if err != nil {
			// Unresolvable hrefs count as external but produce no edge.
			page.ExternalLinks++
			return
		}

		if url.SameAuthority(resolved, domain) {
			page.InternalLinks++
			result.InternalLinks = append(result.InternalLinks, resolved)
		} else {
			page.ExternalLinks++
		}

		result.Edges = append(result.Edges, &seospider.LinkEdge{
			FromURL:  pageURL,
			ToURL:    resolved,
			Nofollow: nofollow,
			Count:    1,
		})
	})

	result.Images = extractImages(doc, pageURL)

	return result, nil
}

// extractSchemaTypes collects @type values from every JSON-LD script
// block, recursing one level into @graph arrays. Malformed blocks are
// skipped. The result is deduplicated, in first-seen order.
func extractSchemaTypes(doc *goquery.Document) []string {
	seen := make(map[string]struct{})
	var types []string

	add := func(v any) {
		switch t := v.(type) {
		case string:
			if _, ok := seen[t]; !ok {
				seen[t] = struct{}{}
				types = append(types, t)
			}
		case []any:
			// JSON-LD allows array-valued @type.
			for _, item := range t {
				if s, ok := item.(string); ok {
					if _, ok := seen[s]; !ok {
						seen[s] = struct{}{}
						types = append(types, s)
					}
				}
			}
		}
	}

	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, sel *goquery.Selection) {
		var data map[string]any
		if err := json.Unmarshal([]byte(sel.Text()), &data); err != nil {
			return
		}
		if v, ok := data["@type"]; ok {
			add(v)
		}
		if graph, ok := data["@graph"].([]any); ok {
			for _, member := range graph {
				if m, ok := member.(map[string]any); ok {
					if v, ok := m["@type"]; ok {
						add(v)
					}
				}
			}
		}
	})

	return types
}

// extractImages collects the page's images, deduplicated by raw src.
// Image src URLs are resolved against the page URL, falling back to the
// raw src when resolution fails.
func extractImages(doc *goquery.Document, pageURL string) []*seospider.ImageRecord {
	seenSrcs := make(map[string]struct{})
	var images []*seospider.ImageRecord

	doc.Find("img[src]").Each(func(_ int, sel *goquery.Selection) {
		src := strings.TrimSpace(sel.AttrOr("src", ""))
		if src == "" {
			return
		}
		if _, ok := seenSrcs[src]; ok {
			return
		}
		seenSrcs[src] = struct{}{}

		resolved, err := url.Resolve(pageURL, src)
		if err != nil {
			resolved = src
		}

		images = append(images, &seospider.ImageRecord{
			Src:    resolved,
			Alt:    strings.TrimSpace(sel.AttrOr("alt", "")),
			Format: imageFormat(resolved),
		})
	})

	return images
}

// imageFormat derives an image format from the lowercased substring
// after the last "." in src, with trailing query string or fragment
// stripped. Returns "" when src has no extension.
func imageFormat(src string) string {
	idx := strings.LastIndex(src, ".")
	if idx == -1 {
		return ""
	}
	format := strings.ToLower(src[idx+1:])
	if i := strings.Index(format, "?"); i != -1 {
		format = format[:i]
	}
	if i := strings.Index(format, "#"); i != -1 {
		format = format[:i]
	}
	return format
}

// hasRelToken reports whether the selection's rel attribute contains the
// given token.
func hasRelToken(sel *goquery.Selection, token string) bool {
	for _, t := range strings.Fields(sel.AttrOr("rel", "")) {
		if strings.EqualFold(t, token) {
			return true
		}
	}
	return false
}
