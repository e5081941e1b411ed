package mock

import (
	"context"

	"github.com/fwojciec/unitext"
)

var _ unitext.URLExtractor = (*URLExtractor)(nil)

// URLExtractor is a mock implementation of unitext.URLExtractor.
type URLExtractor struct {
	ExtractURLFn func(ctx context.Context, rawURL, credential string) (string, error)
}

func (e *URLExtractor) ExtractURL(ctx context.Context, rawURL, credential string) (string, error) {
	return e.ExtractURLFn(ctx, rawURL, credential)
}
