package redaxios

import (
	"errors"
	"fmt"
)

// Error type constants carried by RequestError.
const (
	// ErrorTypeEncode marks a request body that failed to serialize; the
	// transport was never invoked.
	ErrorTypeEncode = "Encode"

	// ErrorTypeNetwork marks a transport-level failure with no Response.
	ErrorTypeNetwork = "Network"

	// ErrorTypeStatus marks a completed exchange whose status failed
	// validation; Response carries the full result.
	ErrorTypeStatus = "Status"

	// ErrorTypeValidation marks invalid client configuration.
	ErrorTypeValidation = "Validation"
)

// RequestError is the error shape for every defined failure. Callers
// distinguish "network/encoding failure" (Response nil, Cause set) from
// "request completed, not considered successful" (Response set) via the
// Type constant or errors.As.
type RequestError struct {
	Type     string
	Message  string
	Cause    error
	Method   string
	URL      string
	Status   int
	Response *Response
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := fmt.Sprintf("%s: %s", e.Type, e.Message)
	if e.Status > 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.Status)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s (%v)", msg, e.Cause)
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *RequestError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Is compares error types for errors.Is.
func (e *RequestError) Is(target error) bool {
	if e == nil {
		return false
	}
	if targetErr, ok := target.(*RequestError); ok {
		return e.Type == targetErr.Type
	}
	return false
}

// IsStatusError reports whether err is a status-validation failure and, if
// so, returns the Response it settled with.
func IsStatusError(err error) (*Response, bool) {
	var reqErr *RequestError
	if errors.As(err, &reqErr) && reqErr.Type == ErrorTypeStatus {
		return reqErr.Response, true
	}
	return nil, false
}
