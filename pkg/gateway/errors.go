package gateway

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig is returned when the client configuration is incomplete
	ErrInvalidConfig = errors.New("invalid gateway configuration")

	// ErrNetwork is returned when the backend cannot be reached
	ErrNetwork = errors.New("gateway network error")

	// ErrUnauthorized is returned on 401 responses
	ErrUnauthorized = errors.New("gateway unauthorized")

	// ErrForbidden is returned on 403 responses
	ErrForbidden = errors.New("gateway forbidden")

	// ErrMissingData is returned when a 2xx response carries no data field
	// but the caller required one
	ErrMissingData = errors.New("gateway response has no data")
)

// APIError is a failure reported by the backend: a non-2xx status, with the
// envelope message when the body was parseable.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("gateway error: status=%d", e.Status)
	}
	return fmt.Sprintf("gateway error: status=%d message=%s", e.Status, e.Message)
}

// IsAuthError reports whether err represents a 401 or 403 from the backend.
func IsAuthError(err error) bool {
	return errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrForbidden)
}

// Message extracts the backend-provided message from err, or returns the
// fallback. Used to show server messages verbatim to the user when present.
func Message(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
