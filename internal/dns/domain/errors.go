package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for lookups that miss. Providers wrap these so callers can
// branch with errors.Is.
//
//	return nil, fmt.Errorf("record %q: %w", name, domain.ErrRecordNotFound)
var (
	// ErrZoneNotFound indicates no zone visible to the token matches the
	// registrable domain. Usually the token lacks Zone:Read or the domain is wrong.
	ErrZoneNotFound = errors.New("zone not found")

	// ErrRecordNotFound indicates the zone holds no record with the exact name.
	ErrRecordNotFound = errors.New("record not found")

	// ErrUnsupportedRecordType indicates a record type other than A or AAAA.
	ErrUnsupportedRecordType = errors.New("unsupported record type")
)

// TransportError is returned when a request never produced a readable
// response (connection refused, TLS failure, truncated body).
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("failed to send %s request to %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// HTTPStatusError is returned for any non-2xx response. Code and Message hold
// the first provider error from the body when it could be parsed.
type HTTPStatusError struct {
	StatusCode int
	Code       int
	Message    string
}

func (e *HTTPStatusError) Error() string {
	msg := fmt.Sprintf("HTTP error was received: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	if e.Message != "" {
		msg += fmt.Sprintf(": details (%d): %s", e.Code, e.Message)
	}
	if e.StatusCode == http.StatusBadRequest {
		msg += " (is your token correct?)"
	}
	return msg
}

// APIError is returned when the provider answered 2xx but reported
// success=false in the response envelope.
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string {
	if e.Code == 0 && e.Message == "" {
		return "unknown API error"
	}
	return fmt.Sprintf("API error %d: %s", e.Code, e.Message)
}

// ParseError is returned when a response body does not match the expected
// envelope or record schema.
type ParseError struct {
	// Subject names the response being decoded (e.g. "zones").
	Subject string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s response: %v", e.Subject, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
