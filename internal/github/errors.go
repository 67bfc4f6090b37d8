package github

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/go-github/v50/github"
)

// RemoteError is returned when the API answers with a non-2xx status.
type RemoteError struct {
	Op         string
	StatusCode int
	Message    string
}

// Error implements the error interface
func (e *RemoteError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("%s: %d %s", e.Op, e.StatusCode, msg)
}

// NetworkError is returned when the API could not be reached at all.
type NetworkError struct {
	Op  string
	Err error
}

// Error implements the error interface
func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %s: %v", e.Op, e.Err)
}

// Unwrap returns the transport error
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status carried by err, or 0 if there is none.
func StatusCode(err error) int {
	var remoteErr *RemoteError
	if errors.As(err, &remoteErr) {
		return remoteErr.StatusCode
	}
	return 0
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

// IsUnprocessable reports whether err is a 422 from the API. GitHub answers
// 422 when a label with the same name already exists.
func IsUnprocessable(err error) bool {
	return StatusCode(err) == http.StatusUnprocessableEntity
}

// IsNetworkError reports whether err is a transport level failure.
func IsNetworkError(err error) bool {
	var netErr *NetworkError
	return errors.As(err, &netErr)
}

// classifyError converts an error returned by go-github into a RemoteError
// or a NetworkError.
func classifyError(op string, resp *github.Response, err error) error {
	if err == nil {
		return nil
	}

	var errResp *github.ErrorResponse
	if errors.As(err, &errResp) && errResp.Response != nil {
		return &RemoteError{Op: op, StatusCode: errResp.Response.StatusCode, Message: errResp.Message}
	}

	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) && rateErr.Response != nil {
		return &RemoteError{Op: op, StatusCode: rateErr.Response.StatusCode, Message: rateErr.Message}
	}

	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) && abuseErr.Response != nil {
		return &RemoteError{Op: op, StatusCode: abuseErr.Response.StatusCode, Message: abuseErr.Message}
	}

	// any other error that still came with a response
	if resp != nil && resp.Response != nil {
		return &RemoteError{Op: op, StatusCode: resp.StatusCode, Message: err.Error()}
	}

	return &NetworkError{Op: op, Err: err}
}
