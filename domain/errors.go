package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyURL indicates the user submitted a blank thread URL.
	ErrEmptyURL = errors.New("thread url cannot be empty")

	// ErrMalformedResponse indicates the server reply could not be decoded.
	ErrMalformedResponse = errors.New("malformed server response")
)

// APIError is a non-2xx reply from the thread server.
// Message is the server-provided "error" field and may be empty.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned %d", e.StatusCode)
	}
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}
