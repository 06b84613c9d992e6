package apiclient

import (
	"errors"
	"fmt"
)

// The adapter classifies every failure into a closed set of variants so
// downstream code can match with errors.As instead of probing shapes:
// *NetworkError (no response received) or *APIError (structured error
// envelope with an HTTP error status). Client-side validation failures are
// a third variant owned by the domain package and never reach this layer.

// APIError is a structured error returned by a backend. Detail carries the
// first entry of the error envelope, already fit for display.
type APIError struct {
	StatusCode int
	Title      string
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Detail)
}

// NotFound reports whether the backend answered 404.
func (e *APIError) NotFound() bool {
	return e.StatusCode == 404
}

// NetworkError wraps a transport-level failure where no response arrived.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return "network error: " + e.Err.Error()
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

const genericDetail = "the service returned an unexpected error"

// Message derives the user-facing text for any error crossing the adapter
// boundary, falling back to a generic message when the envelope carried no
// detail.
func Message(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.Detail != "" {
			return apiErr.Detail
		}
		return genericDetail
	}

	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return "could not reach the service"
	}

	if err != nil {
		return err.Error()
	}
	return genericDetail
}

// IsNotFound reports whether err is a backend 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.NotFound()
}
