package backend

import (
	"errors"
	"fmt"
)

// NetworkError is a transport-level failure (connection refused, timeout,
// DNS). It is retryable by the user; it carries no server message.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error during %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// APIError is a structured rejection from the backend (4xx/5xx). Message is
// the server's own text when present; handlers surface it verbatim.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("backend returned status %d", e.StatusCode)
}

func IsNetworkError(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}

func IsAPIError(err error) bool {
	var ae *APIError
	return errors.As(err, &ae)
}
