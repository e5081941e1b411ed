// Package readability isolates the main content of web pages with go-readability.
package readability

import (
	"net/url"
	"strings"

	"github.com/fwojciec/unitext"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements unitext.ContentExtractor at compile time.
var _ unitext.ContentExtractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*unitext.ExtractResult, error) {
	return e.ExtractWithURL(rawHTML, nil)
}

// ExtractWithURL is like Extract but resolves relative links against pageURL.
func (e *Extractor) ExtractWithURL(rawHTML string, pageURL *url.URL) (*unitext.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, unitext.Errorf(unitext.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), pageURL)
	if err != nil {
		return nil, unitext.WrapError(err, unitext.EPARSE, "", "Could not find the main content of the page.")
	}

	return &unitext.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
		ContentText: strings.TrimSpace(article.TextContent),
	}, nil
}
