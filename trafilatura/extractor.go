// Package trafilatura isolates the main content of web pages with go-trafilatura.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/unitext"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements unitext.ContentExtractor at compile time.
var _ unitext.ContentExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct {
	opts trafilatura.Options
}

// NewExtractor creates a new Extractor. Fallback extraction is enabled so
// pages trafilatura cannot handle alone are retried with readability and
// dom-distiller heuristics.
func NewExtractor() *Extractor {
	return &Extractor{
		opts: trafilatura.Options{
			EnableFallback: true,
			IncludeLinks:   true,
		},
	}
}

// Extract processes raw HTML and returns the main content as HTML and text.
func (e *Extractor) Extract(rawHTML string) (*unitext.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, unitext.Errorf(unitext.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), e.opts)
	if err != nil {
		return nil, unitext.WrapError(err, unitext.EPARSE, "", "Could not find the main content of the page.")
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &unitext.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
		ContentText: strings.TrimSpace(result.ContentText),
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
