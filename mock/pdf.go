package mock

import (
	"context"

	"github.com/fwojciec/unitext"
)

var _ unitext.PDFExtractor = (*PDFExtractor)(nil)

// PDFExtractor is a mock implementation of unitext.PDFExtractor.
type PDFExtractor struct {
	ExtractPDFFn func(ctx context.Context, data []byte) (string, error)
}

func (e *PDFExtractor) ExtractPDF(ctx context.Context, data []byte) (string, error) {
	return e.ExtractPDFFn(ctx, data)
}
