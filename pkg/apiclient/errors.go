package apiclient

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrInvalidBaseURL indicates the base URL is empty or not http(s)
	ErrInvalidBaseURL = errors.New("apiclient.invalid_base_url")

	// ErrRequestFailed indicates a transport-level failure before any response
	ErrRequestFailed = errors.New("apiclient.request_failed")

	// ErrDecodeResponse indicates a 2xx response whose body could not be decoded
	ErrDecodeResponse = errors.New("apiclient.decode_response")

	// ErrUnauthorized indicates the backend rejected the session (HTTP 401)
	ErrUnauthorized = errors.New("apiclient.unauthorized")

	// ErrConflict indicates a business-rule conflict, e.g. a seat no longer
	// available (HTTP 409)
	ErrConflict = errors.New("apiclient.conflict")

	// ErrNotFound indicates the requested resource does not exist (HTTP 404)
	ErrNotFound = errors.New("apiclient.not_found")
)

// Error describes a non-success response from the backend. Status is the
// HTTP status code; Code and Message come from the response envelope when
// the body carried one.
type Error struct {
	Status  int
	Code    int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
	}
	return fmt.Sprintf("api: request failed with status %d", e.Status)
}

// Unwrap maps the HTTP status onto a sentinel so callers can classify the
// failure with errors.Is without inspecting status codes themselves.
func (e *Error) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusConflict:
		return ErrConflict
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return ErrRequestFailed
	}
}
