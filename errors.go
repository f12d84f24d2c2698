package cheatsheets

import (
	"errors"
	"fmt"

	"github.com/cheatsheets/client-go/internal/api"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingServerURL is returned when no server origin is configured.
	ErrMissingServerURL = errors.New("server URL is required")

	// ErrUnauthorized is returned when the server rejects the bearer token.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound is returned when the requested cheat sheet does not exist.
	ErrNotFound = errors.New("not found")

	// ErrMissingToken is returned when a login response carries no access token.
	ErrMissingToken = errors.New("login response has no access token")

	// ErrMissingID is returned when a cheat sheet operation is given an empty id.
	ErrMissingID = errors.New("cheat sheet id is required")
)

// CheatSheetError is implemented by all client errors.
type CheatSheetError interface {
	error
	CheatSheetError() // marker method
}

// APIError is returned for any response whose status is not exactly 200,
// including other 2xx codes such as 201 and 204.
type APIError struct {
	StatusCode int
	// Message is the status text sent by the server.
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// CheatSheetError implements the CheatSheetError interface.
func (e *APIError) CheatSheetError() {}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch e.StatusCode {
	case 401:
		return target == ErrUnauthorized
	case 404:
		return target == ErrNotFound
	}
	return false
}

// NetworkError represents a network-level failure.
type NetworkError struct {
	Err error
	URL string
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// CheatSheetError implements the CheatSheetError interface.
func (e *NetworkError) CheatSheetError() {}

// wrapError converts internal API errors to public errors.
// This ensures that errors.Is() checks work with public sentinel errors.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return &APIError{
			StatusCode: apiErr.StatusCode,
			Message:    apiErr.Message,
		}
	}

	var netErr *api.NetworkError
	if errors.As(err, &netErr) {
		return &NetworkError{
			Err: netErr.Err,
			URL: netErr.URL,
		}
	}

	if errors.Is(err, api.ErrMissingBaseURL) {
		return ErrMissingServerURL
	}

	return err
}
