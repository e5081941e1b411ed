package unitext

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EINTERNAL = "internal"
	EINVALID  = "invalid"
	ENOTFOUND = "not_found"
	EPARSE    = "parse"
	EREMOTE   = "remote"
)

// Error kinds narrow a code down to the specific failure a caller may want
// to react to.
const (
	KindMissingCredential  = "missing_credential"
	KindInvalidURL         = "invalid_url"
	KindInvalidFileType    = "invalid_file_type"
	KindInvalidCredential  = "invalid_credential"
	KindQuotaExceeded      = "quota_exceeded"
	KindNetworkUnreachable = "network_unreachable"
	KindRemoteService      = "remote_service"
	KindEmptyResult        = "empty_result"
)

// Error represents an application-specific error. Message is safe to show
// to end users; Err holds the underlying cause, if any.
type Error struct {
	Code    string
	Kind    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Kind != "" {
		return fmt.Sprintf("unitext error: code=%s kind=%s message=%s", e.Code, e.Kind, e.Message)
	}
	return fmt.Sprintf("unitext error: code=%s message=%s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Errorf is a helper function to return an Error with a given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// KindErrorf returns an Error with a code, a kind and a formatted message.
func KindErrorf(code, kind string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

// WrapError returns an Error that keeps err as its cause.
func WrapError(err error, code, kind string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorKind unwraps an application error and returns its kind.
// Returns an empty string for errors without a kind.
func ErrorKind(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error.".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}
