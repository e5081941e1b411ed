package unitext

import (
	"net/url"
	"strings"
)

// ValidateURL checks that rawURL is a well-formed absolute URL with a
// scheme and a host. Returns EINVALID with KindInvalidURL otherwise.
func ValidateURL(rawURL string) error {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return KindErrorf(EINVALID, KindInvalidURL, "Please enter a URL.")
	}
	u, err := url.Parse(rawURL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return KindErrorf(EINVALID, KindInvalidURL, "Invalid URL format. Please enter a valid URL (e.g., https://example.com).")
	}
	return nil
}
