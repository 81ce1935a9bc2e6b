package output

import (
	"context"
	"time"

	"weather-insight/internal/domain"
)

// CredentialStore interface - Output port
// Holds at most one CredentialSet per session. Implementations must be safe
// for concurrent access.
type CredentialStore interface {
	// GetCredentials returns the credentials held for sessionID, or nil when the
	// session has none. Returns an error only on storage access failure.
	GetCredentials(ctx context.Context, sessionID string) (*domain.CredentialSet, error)

	// PutCredentials stores creds against sessionID, replacing any previous set.
	PutCredentials(ctx context.Context, sessionID string, creds *domain.CredentialSet) error

	// DeleteCredentials removes the credentials for sessionID. Idempotent.
	DeleteCredentials(ctx context.Context, sessionID string) error

	// PurgeExpired removes entries last written before cutoff and returns how many were removed.
	PurgeExpired(ctx context.Context, cutoff time.Time) (int, error)

	// Ping reports whether the backing storage is reachable.
	Ping(ctx context.Context) error
}
