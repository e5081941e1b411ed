// Package pdf implements unitext.PDFExtractor on top of github.com/ledongthuc/pdf.
package pdf

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fwojciec/unitext"
	"github.com/ledongthuc/pdf"
)

// Ensure Extractor implements unitext.PDFExtractor at compile time.
var _ unitext.PDFExtractor = (*Extractor)(nil)

// Extractor extracts page text from PDF documents held in memory.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractPDF returns the text of every page in page order. Each page is
// followed by a blank line and the result is trimmed, so an empty document
// yields an empty string.
func (e *Extractor) ExtractPDF(ctx context.Context, data []byte) (string, error) {
	pages, err := e.ExtractPages(ctx, data)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, page := range pages {
		sb.WriteString(page)
		sb.WriteString("\n\n")
	}
	return strings.TrimSpace(sb.String()), nil
}

// ExtractPages returns one entry per page. The text fragments of a page are
// joined with single spaces. Any page that fails to decode fails the whole
// document.
func (e *Extractor) ExtractPages(ctx context.Context, data []byte) (pages []string, err error) {
	if len(data) == 0 {
		return nil, unitext.Errorf(unitext.EPARSE, "Failed to parse PDF: the file is empty.")
	}

	// The library panics on some malformed streams.
	defer func() {
		if r := recover(); r != nil {
			pages = nil
			err = unitext.WrapError(fmt.Errorf("%v", r), unitext.EPARSE, "",
				"Failed to parse PDF. The file may be corrupted.")
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		if errors.Is(err, pdf.ErrInvalidPassword) {
			return nil, unitext.WrapError(err, unitext.EPARSE, "",
				"Failed to parse PDF: the document is password-protected.")
		}
		return nil, unitext.WrapError(err, unitext.EPARSE, "",
			"Failed to parse PDF. The file may be corrupted or not a PDF.")
	}

	n := reader.NumPage()
	pages = make([]string, 0, n)
	for i := 1; i <= n; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		text, err := pageText(reader.Page(i))
		if err != nil {
			return nil, unitext.WrapError(err, unitext.EPARSE, "",
				"Failed to parse PDF: page %d could not be read.", i)
		}
		pages = append(pages, text)
	}
	return pages, nil
}

func pageText(p pdf.Page) (string, error) {
	if p.V.IsNull() {
		return "", errors.New("page object not found")
	}

	rows, err := p.GetTextByRow()
	if err != nil {
		return "", err
	}

	var fragments []string
	for _, row := range rows {
		for _, t := range row.Content {
			// Rows open with an empty run.
			if strings.TrimSpace(t.S) == "" {
				continue
			}
			fragments = append(fragments, t.S)
		}
	}
	return strings.Join(fragments, " "), nil
}
