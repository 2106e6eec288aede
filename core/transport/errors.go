package transport

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport is the root of every delivery failure.
	ErrTransport = errors.New("transport failure")

	// ErrDecode is returned when the hub reply is not a non-empty JSON array
	// whose first element is an object.
	ErrDecode = fmt.Errorf("%w: malformed hub reply", ErrTransport)

	// Configuration errors returned by constructors.
	ErrInvalidURL    = errors.New("transport: invalid hub URL")
	ErrNilSigner     = errors.New("transport: signer is required")
	ErrNilPusher     = errors.New("transport: queue pusher is required")
	ErrEmptyPrefix   = errors.New("transport: queue prefix is required")
	ErrInvalidShards = errors.New("transport: shard count must not be negative")
)

// StatusError is returned when the hub answers with a non-200 status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: unexpected status code %d", ErrTransport, e.StatusCode)
	}
	return fmt.Sprintf("%s: unexpected status code %d: %s", ErrTransport, e.StatusCode, e.Body)
}

func (e *StatusError) Unwrap() error {
	return ErrTransport
}

// APIError is an error reported by the hub in its reply.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}
