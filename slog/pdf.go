package slog

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/dustin/go-humanize"
	"github.com/fwojciec/unitext"
)

// Ensure LoggingPDFExtractor implements unitext.PDFExtractor.
var _ unitext.PDFExtractor = (*LoggingPDFExtractor)(nil)

// LoggingPDFExtractor wraps a PDFExtractor with logging. Documents are
// identified by size and content digest, never by their text.
type LoggingPDFExtractor struct {
	next   unitext.PDFExtractor
	logger *slog.Logger
}

// NewLoggingPDFExtractor creates a new LoggingPDFExtractor.
func NewLoggingPDFExtractor(next unitext.PDFExtractor, logger *slog.Logger) *LoggingPDFExtractor {
	return &LoggingPDFExtractor{next: next, logger: logger}
}

// ExtractPDF delegates to the wrapped extractor and logs the operation.
func (e *LoggingPDFExtractor) ExtractPDF(ctx context.Context, data []byte) (text string, err error) {
	defer func(begin time.Time) {
		e.logger.Info("pdf extraction",
			"size", humanize.Bytes(uint64(len(data))),
			"digest", Digest(data),
			"chars", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractPDF(ctx, data)
}

// Digest returns the hex xxhash of data.
func Digest(data []byte) string {
	return strconv.FormatUint(xxhash.Sum64(data), 16)
}
