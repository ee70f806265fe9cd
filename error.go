package cloud

import (
	"errors"
	"fmt"
)

// maxErrBodySize caps the amount of response body read when building an
// error for a failed request. This prevents unbounded memory usage when
// a large response arrives with an error status.
const maxErrBodySize = 4 << 10 // 4KB

var (
	// ErrRequestFailed is the sentinel error wrapped by [RequestError].
	ErrRequestFailed = errors.New("http request failed")
	// ErrAuthFailure is joined with [ErrRequestFailed] when the server
	// responds with 401 Unauthorized or 403 Forbidden.
	ErrAuthFailure = errors.New("auth failure")
)

// RequestError is returned when the server responds with a client or
// server error status. Status holds the status line text and Body the raw
// response body, capped at maxErrBodySize.
type RequestError struct {
	StatusCode int
	Status     string
	Body       string
	Err        error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%v: %s, body: %s", e.Err, e.Status, e.Body)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}
