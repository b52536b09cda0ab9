package mock

import "github.com/fwojciec/seospider"

var _ seospider.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of seospider.Extractor.
type Extractor struct {
	ExtractFn func(html, pageURL, domain string) (*seospider.ExtractResult, error)
}

func (e *Extractor) Extract(html, pageURL, domain string) (*seospider.ExtractResult, error) {
	return e.ExtractFn(html, pageURL, domain)
}
