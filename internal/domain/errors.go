package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidQuery indicates a weather lookup without a city or a complete coordinate pair
	ErrInvalidQuery = errors.New("city or coordinates required")

	// ErrInvalidInput indicates a malformed prompt or events payload
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthenticated indicates the session holds no calendar credentials
	ErrUnauthenticated = errors.New("not logged in")

	// ErrUpstreamUnavailable indicates a network or unexpected failure talking to a provider
	ErrUpstreamUnavailable = errors.New("upstream service unavailable")

	// ErrAuthExchange indicates the OAuth provider rejected the authorization code
	ErrAuthExchange = errors.New("oauth2 code exchange failed")
)

// UpstreamError is a structured error returned by a provider, carrying the
// provider's own HTTP status and message so handlers can pass them through.
type UpstreamError struct {
	Provider string
	Status   int
	Message  string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: status %d - %s", e.Provider, e.Status, e.Message)
}
