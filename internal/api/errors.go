package api

import (
	"errors"
	"fmt"
)

// Kind classifies a request failure so callers can branch on it without
// matching message text.
type Kind string

const (
	KindTimeout            Kind = "timeout"
	KindEmptyResponse      Kind = "empty_response"
	KindMalformedResponse  Kind = "malformed_response"
	KindSessionExpired     Kind = "session_expired"
	KindHTTPError          Kind = "http_error"
	KindNetworkUnreachable Kind = "network_unreachable"
	KindInvalidIdentifier  Kind = "invalid_identifier"
)

// Error is the failure type returned by every Gateway call.
type Error struct {
	Kind    Kind
	Status  int // HTTP status when known, zero otherwise
	Message string
	Err     error // underlying cause, if any
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s (status %d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes the underlying cause to errors.Is / errors.As chains.
func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the Kind carried by err, or the empty string when err is
// not a Gateway error.
func KindOf(err error) Kind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return ""
}

// IsKind reports whether err is a Gateway error of the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
