package input

import "context"

// AuthService interface - Input port (use case)
// Drives the three-legged OAuth authorization-code flow with the calendar provider
type AuthService interface {
	// Begin builds the provider consent URL. The redirect hint travels in the
	// state parameter and defaults to "/".
	Begin(redirectHint string) string

	// Complete exchanges the authorization code and stores the resulting
	// credentials against sessionID. stateValues are the raw state query values;
	// the first one is used as the post-login path when it is usable.
	// Returns the path to redirect the browser to.
	Complete(ctx context.Context, sessionID, code string, stateValues []string) (string, error)

	// Logout forgets the credentials held for sessionID. Idempotent.
	Logout(ctx context.Context, sessionID string) error
}
