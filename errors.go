package openshock

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the OpenShock client.
// All errors are defined here for easy discovery and consistent organization.
var (
	// Construction errors
	ErrEmptyAPIKey = errors.New("openshock: API key cannot be empty")

	// Argument validation errors
	ErrEmptyHubID         = errors.New("openshock: hub ID cannot be empty")
	ErrEmptyShockerID     = errors.New("openshock: shocker ID cannot be empty")
	ErrInvalidCommandType = errors.New("openshock: command type must be Shock, Vibrate, Sound, or Stop")
	ErrInvalidDuration    = errors.New("openshock: duration must be between 300 and 65535 milliseconds")
	ErrEmptyCommandBatch  = errors.New("openshock: command batch cannot be empty")

	// Response shape errors
	ErrMissingData    = errors.New("openshock: response is missing the data field")
	ErrMissingMessage = errors.New("openshock: response is missing the message field")
	ErrHubNotFound    = errors.New("openshock: no shocker group matches the hub ID")
)

// APIError represents a non-2xx response from the OpenShock API.
// Body holds the raw response body so callers can inspect payloads the
// client does not interpret.
type APIError struct {
	StatusCode int
	Message    string
	Body       []byte
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("openshock: API error %d: %s", e.StatusCode, e.Message)
}

// IsUnauthorized returns true if the error indicates an invalid or
// revoked API key.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == 401
}

// IsNotFound returns true if the error indicates the resource was not found.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == 404
}

// IsTimeout returns true if the error indicates a timeout.
func IsTimeout(err error) bool {
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}
