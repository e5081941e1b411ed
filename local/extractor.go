// Package local extracts page text on this machine without a remote AI
// service: the page is fetched over HTTP, its main content is isolated and
// then rendered as Markdown.
package local

import (
	"context"
	"errors"
	"net"
	"strings"

	"github.com/fwojciec/unitext"
)

// Ensure URLExtractor implements unitext.URLExtractor at compile time.
var _ unitext.URLExtractor = (*URLExtractor)(nil)

// URLExtractor composes a fetcher, a content extractor and an optional
// converter into a unitext.URLExtractor. The credential argument is ignored.
type URLExtractor struct {
	Fetcher   unitext.Fetcher
	Extractor unitext.ContentExtractor

	// Converter renders the extracted HTML. When nil, the extractor's plain
	// text is used instead.
	Converter unitext.Converter

	// IncludeTitle prefixes the output with the page title as a heading.
	IncludeTitle bool
}

// ExtractURL fetches rawURL and returns its main content.
func (e *URLExtractor) ExtractURL(ctx context.Context, rawURL, _ string) (string, error) {
	if err := unitext.ValidateURL(rawURL); err != nil {
		return "", err
	}

	html, err := e.Fetcher.Fetch(ctx, strings.TrimSpace(rawURL))
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		return "", classifyFetchError(err)
	}

	result, err := e.Extractor.Extract(html)
	if err != nil {
		if unitext.ErrorCode(err) == unitext.EINVALID {
			return "", unitext.WrapError(err, unitext.EREMOTE, unitext.KindEmptyResult, emptyResultMessage)
		}
		return "", err
	}

	text := strings.TrimSpace(result.ContentText)
	if e.Converter != nil && strings.TrimSpace(result.ContentHTML) != "" {
		text, err = e.Converter.Convert(result.ContentHTML)
		if err != nil {
			return "", err
		}
	}
	if text == "" {
		return "", unitext.KindErrorf(unitext.EREMOTE, unitext.KindEmptyResult, emptyResultMessage)
	}

	if e.IncludeTitle {
		if title := strings.TrimSpace(result.Title); title != "" {
			text = "# " + title + "\n\n" + text
		}
	}
	return text, nil
}

const emptyResultMessage = "No significant textual content could be extracted from this URL, or the page was empty."

func classifyFetchError(err error) error {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) || strings.Contains(err.Error(), "no such host") {
		return unitext.WrapError(err, unitext.EREMOTE, unitext.KindNetworkUnreachable,
			"Failed to fetch the URL. The domain name might be incorrect or the server unreachable.")
	}
	return unitext.WrapError(err, unitext.EREMOTE, unitext.KindRemoteService,
		"Failed to fetch the URL. Details: %s", err.Error())
}
