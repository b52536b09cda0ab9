package crawl_test

import (
	"testing"

	"github.com/fwojciec/seospider/crawl"
	"github.com/stretchr/testify/assert"
)

func TestFrontier_Push_rejects_duplicate_URLs(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier()

	assert.True(t, f.Push("https://example.com/about"), "first push should succeed")
	assert.False(t, f.Push("https://example.com/about"), "duplicate URL should be rejected")
	assert.Equal(t, 1, f.Len())
}

func TestFrontier_Pop_returns_URLs_in_discovery_order(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier()
	f.Push("https://example.com/a")
	f.Push("https://example.com/b")
	f.Push("https://example.com/c")

	for _, want := range []string{
		"https://example.com/a",
		"https://example.com/b",
		"https://example.com/c",
	} {
		url, ok := f.Pop()
		assert.True(t, ok)
		assert.Equal(t, want, url)
	}

	_, ok := f.Pop()
	assert.False(t, ok, "empty frontier should report no URL")
}

func TestFrontier_popped_URLs_stay_seen(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier()
	f.Push("https://example.com/a")

	url, ok := f.Pop()
	assert.True(t, ok)
	assert.Equal(t, "https://example.com/a", url)

	// Re-discovering a popped URL must be a no-op.
	assert.False(t, f.Push("https://example.com/a"))
	assert.True(t, f.Seen("https://example.com/a"))
	assert.Equal(t, 0, f.Len())
}
