package mock

import (
	"context"

	"github.com/fwojciec/seospider"
)

var _ seospider.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of seospider.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, int, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, int, error) {
	return f.FetchFn(ctx, url)
}
