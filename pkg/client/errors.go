package client

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError is a non-2xx answer from the portfolio API. Message holds the
// body's "message" or "error" field, or the raw body when it is not JSON.
type HTTPError struct {
	Method     string
	Path       string
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	s := fmt.Sprintf("api: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	if e.Method != "" {
		s = fmt.Sprintf("api %s %s: %d %s", e.Method, e.Path, e.StatusCode, http.StatusText(e.StatusCode))
	}
	if e.Message != "" {
		s += ": " + e.Message
	}
	return s
}

func asHTTPError(err error) (*HTTPError, bool) {
	var httpErr *HTTPError
	ok := errors.As(err, &httpErr)
	return httpErr, ok
}

// IsStatus reports whether err wraps an API answer with the given status.
// Callers use it to tell a record deleted elsewhere (404) from a real failure.
func IsStatus(err error, code int) bool {
	httpErr, ok := asHTTPError(err)
	return ok && httpErr.StatusCode == code
}

// ServerMessage returns the message the API attached to a failed answer,
// or "" when err is not an API answer.
func ServerMessage(err error) string {
	if httpErr, ok := asHTTPError(err); ok {
		return httpErr.Message
	}
	return ""
}
