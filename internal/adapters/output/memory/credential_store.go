package memory

import (
	"context"
	"sync"
	"time"

	"weather-insight/internal/domain"
	"weather-insight/internal/ports/output"
)

// Compile-time check to ensure MemoryCredentialStore implements CredentialStore interface
var _ output.CredentialStore = (*MemoryCredentialStore)(nil)

// MemoryCredentialStore struct - Output adapter for in-memory credential storage
// Uses sync.Map for thread-safe concurrent access keyed by session ID.
// Contents are lost on restart.
type MemoryCredentialStore struct {
	entries sync.Map
	timeout time.Duration
}

// NewMemoryCredentialStore creates a new in-memory credential store.
// timeout: idle duration after which an entry is dropped on read; zero keeps entries until purged.
func NewMemoryCredentialStore(timeout time.Duration) *MemoryCredentialStore {
	return &MemoryCredentialStore{
		timeout: timeout,
	}
}

// GetCredentials retrieves the credentials held for a session.
// Returns nil if the session has none or the entry has expired. Expired entries
// are deleted (lazy cleanup). The access time is updated for valid entries.
func (m *MemoryCredentialStore) GetCredentials(ctx context.Context, sessionID string) (*domain.CredentialSet, error) {
	value, exists := m.entries.Load(sessionID)
	if !exists {
		return nil, nil
	}

	entry, ok := value.(*domain.CredentialEntry)
	if !ok {
		m.entries.Delete(sessionID)
		return nil, nil
	}

	if entry.IsExpired() {
		m.entries.Delete(sessionID)
		return nil, nil
	}

	entry.Touch(time.Now())

	return entry.Snapshot(), nil
}

// PutCredentials stores credentials for a session, replacing any previous set
func (m *MemoryCredentialStore) PutCredentials(ctx context.Context, sessionID string, creds *domain.CredentialSet) error {
	m.entries.Store(sessionID, domain.NewCredentialEntry(sessionID, creds, m.timeout))
	return nil
}

// DeleteCredentials removes the credentials of a session.
// This operation is idempotent - deleting a missing entry does not return an error.
func (m *MemoryCredentialStore) DeleteCredentials(ctx context.Context, sessionID string) error {
	m.entries.Delete(sessionID)
	return nil
}

// PurgeExpired removes every entry last accessed before cutoff
func (m *MemoryCredentialStore) PurgeExpired(ctx context.Context, cutoff time.Time) (int, error) {
	removed := 0
	m.entries.Range(func(key, value any) bool {
		entry, ok := value.(*domain.CredentialEntry)
		if !ok || entry.AccessedBefore(cutoff) {
			m.entries.Delete(key)
			removed++
		}
		return true
	})
	return removed, nil
}

// Ping always succeeds for the in-memory store
func (m *MemoryCredentialStore) Ping(ctx context.Context) error {
	return nil
}
