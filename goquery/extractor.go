// Package goquery extracts page content selected by a CSS selector.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/unitext"
)

// Ensure SelectorExtractor implements unitext.ContentExtractor at compile time.
var _ unitext.ContentExtractor = (*SelectorExtractor)(nil)

// noise is removed from the selection before its text is read.
const noise = "script, style, noscript, template"

// SelectorExtractor returns the content of every element matching Selector,
// in document order. Use it when the main content sits in a known element
// and heuristic extraction picks the wrong part of the page.
type SelectorExtractor struct {
	Selector string
}

// NewSelectorExtractor creates a SelectorExtractor for the given CSS selector.
func NewSelectorExtractor(selector string) *SelectorExtractor {
	return &SelectorExtractor{Selector: selector}
}

// Extract parses html and returns the matching elements as HTML and text.
// A selector that matches nothing yields an empty result, not an error.
func (e *SelectorExtractor) Extract(html string) (*unitext.ExtractResult, error) {
	if strings.TrimSpace(html) == "" {
		return nil, unitext.Errorf(unitext.EINVALID, "empty HTML input")
	}
	if strings.TrimSpace(e.Selector) == "" {
		return nil, unitext.Errorf(unitext.EINVALID, "empty CSS selector")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, unitext.Errorf(unitext.EPARSE, "failed to parse HTML: %v", err)
	}

	sel := doc.Find(e.Selector)
	sel.Find(noise).Remove()

	var htmlParts, textParts []string
	sel.Each(func(_ int, s *goquery.Selection) {
		if h, err := goquery.OuterHtml(s); err == nil {
			htmlParts = append(htmlParts, h)
		}
		if text := collapseSpace(s.Text()); text != "" {
			textParts = append(textParts, text)
		}
	})

	return &unitext.ExtractResult{
		Title:       title(doc),
		ContentHTML: strings.Join(htmlParts, "\n"),
		ContentText: strings.Join(textParts, "\n\n"),
	}, nil
}

// title prefers the Open Graph title over the document title.
func title(doc *goquery.Document) string {
	if og, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok && strings.TrimSpace(og) != "" {
		return strings.TrimSpace(og)
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
