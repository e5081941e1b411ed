package gemini

import (
	"errors"
	"net"
	"strings"

	"github.com/fwojciec/unitext"
)

// Classify maps an error from the Gemini client to an application error.
//
// The API does not expose stable error codes for these cases, so the
// mapping inspects the error text and may drift when upstream wording
// changes. The original error stays reachable through errors.Unwrap.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	var appErr *unitext.Error
	if errors.As(err, &appErr) {
		return err
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "API_KEY_INVALID"), strings.Contains(msg, "API key not valid"):
		return unitext.WrapError(err, unitext.EREMOTE, unitext.KindInvalidCredential,
			"The provided Gemini API key is invalid. Please verify it and try again.")
	case strings.Contains(strings.ToLower(msg), "quota"):
		return unitext.WrapError(err, unitext.EREMOTE, unitext.KindQuotaExceeded,
			"Gemini API quota exceeded. Please check your quota with Google or try again later.")
	case isUnreachable(err, msg):
		return unitext.WrapError(err, unitext.EREMOTE, unitext.KindNetworkUnreachable,
			"Failed to fetch the URL. The domain name might be incorrect or the server unreachable.")
	default:
		return unitext.WrapError(err, unitext.EREMOTE, unitext.KindRemoteService,
			"AI service failed to process the URL. Details: %s", msg)
	}
}

func isUnreachable(err error, msg string) bool {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	return strings.Contains(msg, "ENOTFOUND") || strings.Contains(msg, "no such host")
}
