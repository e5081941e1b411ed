package mock

import "github.com/fwojciec/unitext"

var _ unitext.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor is a mock implementation of unitext.ContentExtractor.
type ContentExtractor struct {
	ExtractFn func(html string) (*unitext.ExtractResult, error)
}

func (e *ContentExtractor) Extract(html string) (*unitext.ExtractResult, error) {
	return e.ExtractFn(html)
}
