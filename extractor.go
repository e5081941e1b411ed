package unitext

import "context"

// PDFExtractor extracts text from PDF documents.
type PDFExtractor interface {
	// ExtractPDF decodes a PDF byte stream and returns the text of every
	// page in reading order, pages separated by a blank line, trimmed.
	// Returns EPARSE if the document or any of its pages cannot be decoded.
	ExtractPDF(ctx context.Context, data []byte) (string, error)
}

// URLExtractor extracts the main textual content of a web page.
type URLExtractor interface {
	// ExtractURL returns the main text of the page at rawURL. Implementations
	// that call a remote service authenticate with credential.
	// Returns EINVALID for a missing credential or a malformed URL.
	ExtractURL(ctx context.Context, rawURL, credential string) (string, error)
}

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	ContentHTML string

	// ContentText is the main content as plain text.
	ContentText string
}

// ContentExtractor isolates the main content of an HTML page, removing boilerplate.
type ContentExtractor interface {
	Extract(html string) (*ExtractResult, error)
}
