package console

import (
	"errors"
	"fmt"
)

// ErrRequestTimeout reports that the per-request wall-clock bound elapsed
// before the console responded. The request is aborted; whether it reached
// the console is unknown.
var ErrRequestTimeout = errors.New("console: request timed out")

// ErrNotFound is returned by lookup helpers when the console reports no
// matching resource.
var ErrNotFound = errors.New("console: not found")

// APIError is a non-2xx response from the console. The status code is what
// callers branch on for retry decisions; the body is kept for operator-facing
// detail.
type APIError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("console api: status %d", e.StatusCode)
	}
	return fmt.Sprintf("console api: status %d: %s", e.StatusCode, e.Body)
}

// IsStatus reports whether err carries an APIError with the given status code.
func IsStatus(err error, code int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == code
}

// TransportError is any request failure that is neither a timeout nor an HTTP
// status: DNS failures, connection resets, malformed response bodies. The
// underlying cause is logged by the client but deliberately not carried here,
// so URL or credential-adjacent detail cannot leak to callers.
type TransportError struct {
	Op     string
	Reason string
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("console: transport failure during %s", e.Op)
	}
	return fmt.Sprintf("console: %s during %s", e.Reason, e.Op)
}
