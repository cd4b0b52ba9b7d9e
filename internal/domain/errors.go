package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingURI is returned when no endpoint URI was supplied.
	ErrMissingURI = errors.New("CDAP URI is required (-u or " + EnvURI + ")")
	// ErrInvalidURI is returned for URIs that are not absolute http(s) URLs.
	ErrInvalidURI = errors.New("CDAP URI must be an absolute http or https URL")
	// ErrInvalidTimeout is returned for non-numeric or non-positive timeouts.
	ErrInvalidTimeout = errors.New("timeout must be a positive number of seconds")
	// ErrMalformedResponse wraps every response body parse failure.
	ErrMalformedResponse = errors.New("malformed response")
	// ErrUnreachable wraps transport failures (HTTP 000).
	ErrUnreachable = errors.New("service unreachable")
)

// HTTPError describes a non-200 response from the status endpoint.
type HTTPError struct {
	Code int
	URL  string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("GET %s: HTTP %03d", e.URL, e.Code)
}
