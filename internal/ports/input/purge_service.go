package input

import "context"

// CredentialPurgeService interface - Input port (use case)
type CredentialPurgeService interface {
	// PurgeExpired removes credentials of sessions idle past the session
	// timeout and returns how many were removed.
	PurgeExpired(ctx context.Context) (int, error)
}
