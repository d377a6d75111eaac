package slidespeak

import (
	"errors"
	"fmt"
)

// ErrMissingAPIKey is the precondition failure for every API call: no
// request leaves the process without a configured key.
var ErrMissingAPIKey = errors.New("API key is not configured")

// ErrorKind categorizes API call failures. Callers treat every kind as
// the same absent result, but the kind is logged and remains available
// through errors.As for tests and diagnostics.
type ErrorKind string

const (
	// ErrKindMissingKey means the call was refused locally because no
	// API key is configured.
	ErrKindMissingKey ErrorKind = "missing_api_key"
	// ErrKindTransport covers connection, DNS and timeout failures,
	// plus local rejections by the outbound middleware.
	ErrKindTransport ErrorKind = "transport"
	// ErrKindHTTPStatus means the API answered with a non-2xx status.
	ErrKindHTTPStatus ErrorKind = "http_status"
	// ErrKindDecode means the response body was not valid JSON.
	ErrKindDecode ErrorKind = "decode"
)

// APIError describes a failed SlideSpeak API call.
type APIError struct {
	Kind     ErrorKind
	Method   string
	Endpoint string
	Status   int    // HTTP status, when one was received
	Body     string // response body, when one was received
	Err      error
}

func (e *APIError) Error() string {
	switch e.Kind {
	case ErrKindMissingKey:
		return "slidespeak: API key is missing"
	case ErrKindHTTPStatus:
		return fmt.Sprintf("slidespeak: %s %s returned status %d", e.Method, e.Endpoint, e.Status)
	default:
		return fmt.Sprintf("slidespeak: %s %s failed: %v", e.Method, e.Endpoint, e.Err)
	}
}

func (e *APIError) Unwrap() error {
	return e.Err
}
