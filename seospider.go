// Package seospider provides a single-domain, breadth-first SEO crawler.
// It fetches every internal page of a site, extracts SEO-relevant signals
// (titles, metadata, schema.org types, heading counts, the link graph,
// images), and persists results to a CSV file and optionally to a SQLite
// database.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, http/).
package seospider
