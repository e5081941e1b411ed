package slog

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/fwojciec/unitext"
)

// Ensure LoggingURLExtractor implements unitext.URLExtractor.
var _ unitext.URLExtractor = (*LoggingURLExtractor)(nil)

// LoggingURLExtractor wraps a URLExtractor with logging.
// The credential is never logged, only whether one was supplied.
type LoggingURLExtractor struct {
	next   unitext.URLExtractor
	logger *slog.Logger
}

// NewLoggingURLExtractor creates a new LoggingURLExtractor.
func NewLoggingURLExtractor(next unitext.URLExtractor, logger *slog.Logger) *LoggingURLExtractor {
	return &LoggingURLExtractor{next: next, logger: logger}
}

// ExtractURL delegates to the wrapped extractor and logs the operation.
func (e *LoggingURLExtractor) ExtractURL(ctx context.Context, rawURL, credential string) (text string, err error) {
	defer func(begin time.Time) {
		e.logger.Info("url extraction",
			"url", rawURL,
			"credential", strings.TrimSpace(credential) != "",
			"chars", len(text),
			"duration", time.Since(begin),
			"kind", unitext.ErrorKind(err),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractURL(ctx, rawURL, credential)
}
