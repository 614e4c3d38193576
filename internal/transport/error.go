package transport

import "net/http"

// Kind classifies a transport failure. The external contract stays a
// plain message string; the kind travels alongside it so callers that
// want richer handling can have it without breaking that contract.
type Kind int

const (
	// KindUnknown is a failure that fits no other class.
	KindUnknown Kind = iota
	// KindNetwork is a connection-level failure with no server response.
	KindNetwork
	// KindValidation is a server-reported bad request.
	KindValidation
	// KindAuth is a missing or invalid credential.
	KindAuth
	// KindForbidden is an authenticated but unauthorized request.
	KindForbidden
	// KindNotFound is a request against an absent resource.
	KindNotFound
	// KindConflict is a request rejected because of existing state.
	KindConflict
	// KindServer is a server-side fault.
	KindServer
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindValidation:
		return "validation"
	case KindAuth:
		return "auth"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindServer:
		return "server"
	default:
		return "unknown"
	}
}

// Error is the normalized transport failure. Message carries the
// server-provided text and may be empty (network faults, unparseable
// bodies), in which case slices substitute their fixed fallback string.
type Error struct {
	Kind    Kind
	Code    string // business error code from the envelope, e.g. "PROPERTY_NOT_FOUND"
	Message string
	cause   error
}

// Error returns the server-provided message, or a generic description
// when none is available.
func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}

	return "request failed (" + e.Kind.String() + ")"
}

// APIMessage returns the server-provided message verbatim; empty when the
// server gave none.
func (e *Error) APIMessage() string {
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// kindFromStatus maps an HTTP status code to a failure kind.
func kindFromStatus(status int) Kind {
	switch {
	case status == http.StatusBadRequest:
		return KindValidation
	case status == http.StatusUnauthorized:
		return KindAuth
	case status == http.StatusForbidden:
		return KindForbidden
	case status == http.StatusNotFound:
		return KindNotFound
	case status == http.StatusConflict:
		return KindConflict
	case status >= 500:
		return KindServer
	default:
		return KindUnknown
	}
}
