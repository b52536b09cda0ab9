package main

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/seospider"
	"github.com/fwojciec/seospider/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testSite serves a two-page site with internal, external, duplicate,
// and non-navigable links plus a duplicated image.
func testSite(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`<html><head>
			<title>Home</title>
			<meta name="description" content="A small site">
			<script type="application/ld+json">{"@type": "WebSite"}</script>
		</head><body>
			<h1>Welcome</h1>
			<a href="/about">About</a>
			<a href="/about">About again</a>
			<a href="https://other.example/page" rel="nofollow">Elsewhere</a>
			<a href="#">Top</a>
			<img src="/logo.png?v=1" alt="Logo">
			<img src="/logo.png?v=1" alt="Logo duplicate">
		</body></html>`))
	})
	srv := httptest.NewServer(mux)
	mux.HandleFunc("/about", func(w http.ResponseWriter, r *http.Request) {
		// Links back with the exact seed URL so the home page is not
		// rediscovered under a trailing-slash variant.
		fmt.Fprintf(w, `<html><head><title>About</title></head>
			<body><h1>About us</h1><a href=%q>Home</a></body></html>`, srv.URL)
	})
	t.Cleanup(srv.Close)
	return srv
}

func TestMain_Run_crawl_tabular_only(t *testing.T) {
	t.Parallel()

	srv := testSite(t)
	out := filepath.Join(t.TempDir(), "out.csv")
	crawlID := uuid.New().String()

	m := NewMain()
	m.DBPath = ""

	var stdout, stderr bytes.Buffer
	err := m.Run(context.Background(), []string{"crawl", srv.URL, out, crawlID}, &stdout, &stderr)
	require.NoError(t, err)

	assert.Contains(t, stdout.String(), "Crawl completed: 2 pages saved, 0 failed")
	assert.Contains(t, stdout.String(), crawlID)

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3, "header plus one row per fetched page")

	// Row order follows BFS order: seed first.
	home := rows[1]
	assert.Equal(t, srv.URL, home[0])
	assert.Equal(t, "200", home[1])
	assert.Equal(t, "Home", home[2])
	assert.Equal(t, "A small site", home[3])
	assert.Equal(t, "WebSite", home[5])
	assert.Equal(t, "1", home[7])  // h1_count
	assert.Equal(t, "2", home[13]) // internal_links: duplicate anchors both count
	assert.Equal(t, "1", home[14]) // external_links
	assert.Equal(t, "1", home[15]) // nofollow_links

	about := rows[2]
	assert.Equal(t, srv.URL+"/about", about[0])
	assert.Equal(t, "About", about[2])
}

func TestMain_Run_crawl_with_database(t *testing.T) {
	t.Parallel()

	srv := testSite(t)
	out := filepath.Join(t.TempDir(), "out.csv")
	crawlID := uuid.New().String()

	m := NewMain()
	m.DBPath = filepath.Join(t.TempDir(), "seospider.db")

	var stdout, stderr bytes.Buffer
	err := m.Run(context.Background(), []string{"crawl", srv.URL, out, crawlID}, &stdout, &stderr)
	require.NoError(t, err)

	// Re-open the database and verify the crawl's records.
	db := sqlite.NewDB(m.DBPath)
	require.NoError(t, db.Open())
	defer db.Close()
	ctx := context.Background()

	job, err := sqlite.NewCrawlService(db).FindCrawlByID(ctx, crawlID)
	require.NoError(t, err)
	assert.Equal(t, seospider.CrawlStatusFinished, job.Status)

	var pageCount int
	require.NoError(t, db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM pages WHERE crawl_id = ?", crawlID).Scan(&pageCount))
	assert.Equal(t, 2, pageCount)

	// Three anchors on the home page, one on the about page; the
	// duplicate about anchor collapses under the uniqueness constraint.
	var linkCount int
	require.NoError(t, db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM page_links WHERE crawl_id = ?", crawlID).Scan(&linkCount))
	assert.Equal(t, 3, linkCount)

	// The duplicated image src yields a single record.
	var imageCount int
	require.NoError(t, db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM page_images WHERE crawl_id = ?", crawlID).Scan(&imageCount))
	assert.Equal(t, 1, imageCount)
}

func TestMain_Run_crawl_generates_ID_for_invalid_UUID(t *testing.T) {
	t.Parallel()

	srv := testSite(t)
	out := filepath.Join(t.TempDir(), "out.csv")

	m := NewMain()
	m.DBPath = ""

	var stdout, stderr bytes.Buffer
	err := m.Run(context.Background(), []string{"crawl", srv.URL, out, "not-a-uuid"}, &stdout, &stderr)
	require.NoError(t, err)

	assert.Contains(t, stdout.String(), "Generated crawl ID:")
	assert.NotContains(t, stdout.String(), "not-a-uuid")
}

func TestMain_Run_crawl_fails_on_unwritable_output(t *testing.T) {
	t.Parallel()

	srv := testSite(t)

	m := NewMain()
	m.DBPath = ""

	var stdout, stderr bytes.Buffer
	err := m.Run(context.Background(),
		[]string{"crawl", srv.URL, filepath.Join(t.TempDir(), "missing", "out.csv")},
		&stdout, &stderr)
	require.Error(t, err)
}

func TestMain_Run_cancel_and_status(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "seospider.db")
	crawlID := uuid.New().String()

	// Seed a job directly.
	db := sqlite.NewDB(dbPath)
	require.NoError(t, db.Open())
	require.NoError(t, sqlite.NewCrawlService(db).CreateCrawl(context.Background(), &seospider.CrawlJob{
		ID:     crawlID,
		Domain: "https://example.com",
	}))
	require.NoError(t, db.Close())

	m := NewMain()
	m.DBPath = dbPath

	var stdout, stderr bytes.Buffer
	require.NoError(t, m.Run(context.Background(), []string{"cancel", crawlID}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "Requested cancellation")

	stdout.Reset()
	m2 := NewMain()
	m2.DBPath = dbPath
	require.NoError(t, m2.Run(context.Background(), []string{"status", crawlID}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), string(seospider.CrawlStatusFailed))
}

func TestMain_Run_jobs_requires_database(t *testing.T) {
	t.Parallel()

	m := NewMain()
	m.DBPath = ""

	var stdout, stderr bytes.Buffer
	err := m.Run(context.Background(), []string{"jobs"}, &stdout, &stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SEOSPIDER_DB")
}

func TestMain_Run_no_command(t *testing.T) {
	t.Parallel()

	m := NewMain()

	var stdout, stderr bytes.Buffer
	err := m.Run(context.Background(), nil, &stdout, &stderr)
	require.Error(t, err)
}
