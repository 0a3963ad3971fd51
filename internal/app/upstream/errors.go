// internal/app/upstream/errors.go
package upstream

import (
	"errors"
	"fmt"
	"net/http"
)

// RequestError means the request never completed: DNS failure, connection
// refused, timeout, or a malformed response. The school API was not
// necessarily consulted.
type RequestError struct {
	Op  string
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("upstream: %s: %v", e.Op, e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// APIError is a non-2xx answer from the school API, carrying the
// server-supplied message when one was present in the response body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("upstream: %d: %s", e.StatusCode, e.Message)
}

// AsAPIError extracts the APIError from err, if there is one.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsNotFound reports whether err is a 404 rejection from the school API.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// IsRejected reports whether err is any HTTP rejection from the school API
// (as opposed to a transport failure).
func IsRejected(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}

// Message returns the best human-readable message for err: the
// server-supplied text for rejections, otherwise fallback.
func Message(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
