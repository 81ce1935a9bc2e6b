package output

import (
	"context"

	"weather-insight/internal/domain"
)

// OAuthProvider interface - Output port
// Defines what the application needs from the calendar provider's OAuth server
type OAuthProvider interface {
	// AuthCodeURL returns the consent URL requesting offline, read-only calendar
	// access with a forced consent prompt, carrying state verbatim.
	AuthCodeURL(state string) string

	// Exchange trades an authorization code for a credential set.
	// Rejections are wrapped with domain.ErrAuthExchange.
	Exchange(ctx context.Context, code string) (*domain.CredentialSet, error)
}
